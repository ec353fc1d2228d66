package service

import (
	"fmt"

	"github.com/Gabriel-Pasternak/ReqWise/internal/model"
)

// ValidationError carries every field-level violation found in a
// request, so callers can highlight each offending field. An operation
// that returns it has had no side effects.
type ValidationError struct {
	Fields []model.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("validation failed: %s", e.Fields[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(e.Fields))
}
