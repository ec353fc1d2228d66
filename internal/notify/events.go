package notify

import (
	"time"

	"github.com/Gabriel-Pasternak/ReqWise/internal/model"
)

// RequirementEvent describes one lifecycle change, shipped as-is to the
// configured webhook.
type RequirementEvent struct {
	Event         string         `json:"event"`
	RequirementID string         `json:"requirement_id"`
	Title         string         `json:"title"`
	Status        model.Status   `json:"status"`
	Priority      model.Priority `json:"priority"`
	Owner         string         `json:"owner"`
	Changes       string         `json:"changes,omitempty"`
	Timestamp     time.Time      `json:"timestamp"`
}

// NewRequirementEvent snapshots the fields a webhook consumer needs.
func NewRequirementEvent(event string, req *model.Requirement, changes string) RequirementEvent {
	return RequirementEvent{
		Event:         event,
		RequirementID: req.ID,
		Title:         req.Title,
		Status:        req.Status,
		Priority:      req.Priority,
		Owner:         req.Owner,
		Changes:       changes,
		Timestamp:     time.Now(),
	}
}
