// Package suggest talks to the external text-classification collaborator
// that proposes tags for requirement text. The collaborator is
// best-effort: callers treat any failure as zero suggestions.
package suggest

import "context"

type Suggester interface {
	SuggestTags(ctx context.Context, text string) ([]string, error)
}

// Noop is used when suggestion is disabled.
type Noop struct{}

func (Noop) SuggestTags(context.Context, string) ([]string, error) { return nil, nil }

var _ Suggester = Noop{}
