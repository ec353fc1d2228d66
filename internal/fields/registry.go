// Package fields holds the custom-field schema registry. Definitions are
// configured per deployment; values submitted against them are validated
// and coerced into typed values at the boundary.
package fields

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Gabriel-Pasternak/ReqWise/internal/model"
)

type Registry struct {
	defs []model.CustomFieldDefinition
}

func NewRegistry(defs []model.CustomFieldDefinition) *Registry {
	return &Registry{defs: append([]model.CustomFieldDefinition(nil), defs...)}
}

// Defaults returns the built-in definitions used when none are configured.
func Defaults() []model.CustomFieldDefinition {
	return []model.CustomFieldDefinition{
		{ID: "project", Name: "Project Name", Type: model.FieldTypeText, Placeholder: "Enter project name", Required: true},
		{ID: "module", Name: "Module", Type: model.FieldTypeSelect, Options: []string{"Core", "Reporting", "Integrations", "UI/UX"}, Required: true},
		{ID: "targetRelease", Name: "Target Release", Type: model.FieldTypeText, Placeholder: "e.g., Q4 2024"},
		{ID: "stakeholder", Name: "Key Stakeholder", Type: model.FieldTypeText, Placeholder: "Name of stakeholder"},
	}
}

// Definitions returns the definitions in their configured order.
func (r *Registry) Definitions() []model.CustomFieldDefinition {
	return append([]model.CustomFieldDefinition(nil), r.defs...)
}

// Validate checks submitted raw values against the registered definitions
// and coerces them into typed values. It returns every field-level
// violation rather than stopping at the first.
func (r *Registry) Validate(raw map[string]interface{}) (model.FieldValues, []model.FieldError) {
	var errs []model.FieldError
	values := make(model.FieldValues, len(raw))

	known := make(map[string]bool, len(r.defs))
	for _, def := range r.defs {
		known[def.ID] = true

		rv, present := raw[def.ID]
		if !present || rv == nil {
			if def.Required {
				errs = append(errs, model.FieldError{Field: def.ID, Message: fmt.Sprintf("missing required field %s", def.ID)})
			}
			continue
		}

		fv, err := coerce(def, rv)
		if err != nil {
			errs = append(errs, model.FieldError{Field: def.ID, Message: err.Error()})
			continue
		}
		if fv.IsEmpty() {
			if def.Required {
				errs = append(errs, model.FieldError{Field: def.ID, Message: fmt.Sprintf("missing required field %s", def.ID)})
			}
			continue
		}
		values[def.ID] = fv
	}

	for id := range raw {
		if !known[id] {
			errs = append(errs, model.FieldError{Field: id, Message: fmt.Sprintf("unknown field %s", id)})
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return values, nil
}

func coerce(def model.CustomFieldDefinition, rv interface{}) (model.FieldValue, error) {
	switch def.Type {
	case model.FieldTypeText:
		s, ok := asString(rv)
		if !ok {
			return model.FieldValue{}, fmt.Errorf("invalid value for %s: expected text", def.ID)
		}
		return model.TextValue(model.FieldTypeText, strings.TrimSpace(s)), nil

	case model.FieldTypeSelect:
		s, ok := asString(rv)
		if !ok {
			return model.FieldValue{}, fmt.Errorf("invalid value for %s: expected text", def.ID)
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return model.FieldValue{Type: model.FieldTypeSelect}, nil
		}
		for _, opt := range def.Options {
			if s == opt {
				return model.TextValue(model.FieldTypeSelect, s), nil
			}
		}
		return model.FieldValue{}, fmt.Errorf("invalid option for %s", def.ID)

	case model.FieldTypeNumber:
		n, ok := asNumber(rv)
		if !ok {
			return model.FieldValue{}, fmt.Errorf("invalid value for %s: expected number", def.ID)
		}
		return model.NumberValue(n), nil

	case model.FieldTypeDate:
		s, ok := asString(rv)
		if !ok {
			return model.FieldValue{}, fmt.Errorf("invalid value for %s: expected date", def.ID)
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return model.FieldValue{Type: model.FieldTypeDate}, nil
		}
		if _, err := model.ParseDate(s); err != nil {
			return model.FieldValue{}, fmt.Errorf("invalid value for %s: expected date", def.ID)
		}
		return model.TextValue(model.FieldTypeDate, s), nil

	default:
		return model.FieldValue{}, fmt.Errorf("invalid value for %s: unknown type %q", def.ID, def.Type)
	}
}

func asString(rv interface{}) (string, bool) {
	s, ok := rv.(string)
	return s, ok
}

func asNumber(rv interface{}) (float64, bool) {
	switch v := rv.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
