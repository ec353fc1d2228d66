// Package store owns the authoritative collection of requirement
// records. Callers always receive independent copies; mutating a
// returned record never affects stored state.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gabriel-Pasternak/ReqWise/internal/model"
)

// ErrNotFound is returned by Get, Update and Delete for an absent id.
var ErrNotFound = errors.New("requirement not found")

type Store interface {
	// Create assigns a new unique id to req and persists it. Structural
	// validation is the caller's job; the store enforces only id
	// assignment and uniqueness.
	Create(ctx context.Context, req *model.Requirement) error

	Get(ctx context.Context, id string) (*model.Requirement, error)

	// List returns a snapshot copy of all records in store iteration
	// order.
	List(ctx context.Context) ([]model.Requirement, error)

	// Update applies mutate to the stored record and bumps UpdatedAt.
	// If mutate returns an error the record is left unchanged.
	Update(ctx context.Context, id string, mutate func(*model.Requirement) error) (*model.Requirement, error)

	// Delete removes the record and its entire version history.
	Delete(ctx context.Context, id string) error
}

// FormatID renders the n-th assigned id as REQ-NNN, zero-padded to at
// least three digits and widening beyond 999.
func FormatID(n uint64) string {
	return fmt.Sprintf("REQ-%03d", n)
}
