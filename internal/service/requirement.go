package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/Gabriel-Pasternak/ReqWise/internal/fields"
	"github.com/Gabriel-Pasternak/ReqWise/internal/model"
	"github.com/Gabriel-Pasternak/ReqWise/internal/store"
	"github.com/Gabriel-Pasternak/ReqWise/internal/suggest"
	"github.com/Gabriel-Pasternak/ReqWise/internal/tags"
	"github.com/Gabriel-Pasternak/ReqWise/internal/version"
)

// minSuggestLen avoids low-signal collaborator calls.
const minSuggestLen = 10

// RequirementService is the public operation surface: it validates,
// invokes the tag-suggestion collaborator, merges tags, enforces the
// custom-field schema and drives the store and version history.
type RequirementService struct {
	store          store.Store
	registry       *fields.Registry
	suggester      suggest.Suggester
	suggestTimeout time.Duration
}

func NewRequirementService(st store.Store, registry *fields.Registry, suggester suggest.Suggester) *RequirementService {
	return &RequirementService{
		store:          st,
		registry:       registry,
		suggester:      suggester,
		suggestTimeout: 20 * time.Second,
	}
}

type CreateInput struct {
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Priority     model.Priority         `json:"priority"`
	RiskLevel    model.RiskLevel        `json:"riskLevel"`
	Owner        string                 `json:"owner"`
	Status       model.Status           `json:"status"`
	Tags         []string               `json:"tags"`
	CustomFields map[string]interface{} `json:"customFields"`
	Dependencies []string               `json:"dependencies"`
	AffectedDocs []string               `json:"affectedDocs"`
}

type UpdateInput struct {
	Title        *string                `json:"title"`
	Description  *string                `json:"description"`
	Priority     *model.Priority        `json:"priority"`
	RiskLevel    *model.RiskLevel       `json:"riskLevel"`
	Owner        *string                `json:"owner"`
	Status       *model.Status          `json:"status"`
	Tags         *[]string              `json:"tags"`
	CustomFields map[string]interface{} `json:"customFields"`
	Dependencies *[]string              `json:"dependencies"`
	AffectedDocs *[]string              `json:"affectedDocs"`

	// ResuggestTags re-runs the collaborator against the (new)
	// description and merges the result into the tag set.
	ResuggestTags bool `json:"resuggest_tags"`

	// Author is recorded on the appended version; falls back to the
	// requirement's owner.
	Author string `json:"author"`
}

// Create validates, gathers suggestions, merges tags and persists a new
// requirement with its creation version. Validation failures return a
// *ValidationError and leave no side effects.
func (s *RequirementService) Create(ctx context.Context, in CreateInput) (*model.Requirement, error) {
	errs := validateCreate(in)

	values, fieldErrs := s.registry.Validate(in.CustomFields)
	errs = append(errs, fieldErrs...)
	if len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	suggested := s.suggestFor(ctx, in.Description)

	status := in.Status
	if status == "" {
		status = model.StatusDraft
	}

	now := time.Now()
	versions, _ := version.Append(nil, "Initial draft", in.Owner, "Created requirement", now)

	req := &model.Requirement{
		Title:        in.Title,
		Description:  in.Description,
		Priority:     in.Priority,
		RiskLevel:    in.RiskLevel,
		Owner:        in.Owner,
		Status:       status,
		Tags:         tags.Merge(in.Tags, suggested),
		CustomFields: values,
		Versions:     versions,
		Dependencies: in.Dependencies,
		AffectedDocs: in.AffectedDocs,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *RequirementService) Get(ctx context.Context, id string) (*model.Requirement, error) {
	return s.store.Get(ctx, id)
}

func (s *RequirementService) List(ctx context.Context) ([]model.Requirement, error) {
	return s.store.List(ctx)
}

// Update applies a partial patch. Every successful update appends
// exactly one version entry naming the changed fields.
func (s *RequirementService) Update(ctx context.Context, id string, in UpdateInput) (*model.Requirement, error) {
	errs := validateUpdate(in)

	var values model.FieldValues
	if in.CustomFields != nil {
		var fieldErrs []model.FieldError
		values, fieldErrs = s.registry.Validate(in.CustomFields)
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	var suggested []string
	if in.ResuggestTags {
		text := ""
		if in.Description != nil {
			text = *in.Description
		} else {
			cur, err := s.store.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			text = cur.Description
		}
		suggested = s.suggestFor(ctx, text)
	}

	return s.store.Update(ctx, id, func(r *model.Requirement) error {
		var changed []string

		if in.Title != nil && *in.Title != r.Title {
			r.Title = *in.Title
			changed = append(changed, "title")
		}
		if in.Description != nil && *in.Description != r.Description {
			r.Description = *in.Description
			changed = append(changed, "description")
		}
		if in.Priority != nil && *in.Priority != r.Priority {
			r.Priority = *in.Priority
			changed = append(changed, "priority")
		}
		if in.RiskLevel != nil && *in.RiskLevel != r.RiskLevel {
			r.RiskLevel = *in.RiskLevel
			changed = append(changed, "riskLevel")
		}
		if in.Owner != nil && *in.Owner != r.Owner {
			r.Owner = *in.Owner
			changed = append(changed, "owner")
		}
		if in.Status != nil && *in.Status != r.Status {
			// Any status is reachable from any other; no transition
			// graph is enforced here.
			r.Status = *in.Status
			changed = append(changed, "status")
		}
		if in.Tags != nil || len(suggested) > 0 {
			base := r.Tags
			if in.Tags != nil {
				base = *in.Tags
			}
			r.Tags = tags.Merge(base, suggested)
			changed = append(changed, "tags")
		}
		if in.CustomFields != nil {
			r.CustomFields = values
			changed = append(changed, "customFields")
		}
		if in.Dependencies != nil {
			r.Dependencies = *in.Dependencies
			changed = append(changed, "dependencies")
		}
		if in.AffectedDocs != nil {
			r.AffectedDocs = *in.AffectedDocs
			changed = append(changed, "affectedDocs")
		}

		summary := "No field changes"
		if len(changed) > 0 {
			summary = "Updated " + strings.Join(changed, ", ")
		}
		author := in.Author
		if author == "" {
			author = r.Owner
		}
		r.Versions, _ = version.Append(r.Versions, "Revised requirement", author, summary, time.Now())
		return nil
	})
}

// Delete removes the requirement and its entire version history.
// Deleting an absent id reports store.ErrNotFound, not success.
func (s *RequirementService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// SuggestTags is a pass-through to the collaborator. Short text and
// collaborator failures both yield an empty list.
func (s *RequirementService) SuggestTags(ctx context.Context, text string) []string {
	return s.suggestFor(ctx, text)
}

func (s *RequirementService) suggestFor(ctx context.Context, text string) []string {
	if len(strings.TrimSpace(text)) < minSuggestLen {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.suggestTimeout)
	defer cancel()

	suggested, err := s.suggester.SuggestTags(ctx, text)
	if err != nil {
		// Best-effort: the operation proceeds with zero suggestions.
		log.Printf("[suggest] tag suggestion failed: %v", err)
		return nil
	}
	return suggested
}
