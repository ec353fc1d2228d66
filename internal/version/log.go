// Package version implements the append-only history attached to a
// requirement. Version numbers are assigned here and never reused.
package version

import (
	"time"

	"github.com/Gabriel-Pasternak/ReqWise/internal/model"
)

// Next returns the version number the next appended entry receives:
// one past the current maximum, or 1 for an empty history.
func Next(versions model.VersionList) int {
	max := 0
	for _, v := range versions {
		if v.VersionNumber > max {
			max = v.VersionNumber
		}
	}
	return max + 1
}

// Append returns the history with a new entry added. The input slice is
// not modified; entries already appended are immutable.
func Append(versions model.VersionList, description, author, changes string, now time.Time) (model.VersionList, model.RequirementVersion) {
	entry := model.RequirementVersion{
		VersionNumber: Next(versions),
		Description:   description,
		Author:        author,
		Timestamp:     now,
		Changes:       changes,
	}
	out := make(model.VersionList, 0, len(versions)+1)
	out = append(out, versions...)
	out = append(out, entry)
	return out, entry
}
