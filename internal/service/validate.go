package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Gabriel-Pasternak/ReqWise/internal/model"
)

const (
	minTitleLen       = 3
	minDescriptionLen = 10
	minOwnerLen       = 2
)

func validateCreate(in CreateInput) []model.FieldError {
	var errs []model.FieldError
	errs = appendTitleErr(errs, in.Title)
	errs = appendDescriptionErr(errs, in.Description)
	errs = appendOwnerErr(errs, in.Owner)
	if !model.ValidPriority(in.Priority) {
		errs = append(errs, model.FieldError{Field: "priority", Message: fmt.Sprintf("invalid priority %q", in.Priority)})
	}
	if !model.ValidRiskLevel(in.RiskLevel) {
		errs = append(errs, model.FieldError{Field: "riskLevel", Message: fmt.Sprintf("invalid risk level %q", in.RiskLevel)})
	}
	if in.Status != "" && !model.ValidStatus(in.Status) {
		errs = append(errs, model.FieldError{Field: "status", Message: fmt.Sprintf("invalid status %q", in.Status)})
	}
	return errs
}

func validateUpdate(in UpdateInput) []model.FieldError {
	var errs []model.FieldError
	if in.Title != nil {
		errs = appendTitleErr(errs, *in.Title)
	}
	if in.Description != nil {
		errs = appendDescriptionErr(errs, *in.Description)
	}
	if in.Owner != nil {
		errs = appendOwnerErr(errs, *in.Owner)
	}
	if in.Priority != nil && !model.ValidPriority(*in.Priority) {
		errs = append(errs, model.FieldError{Field: "priority", Message: fmt.Sprintf("invalid priority %q", *in.Priority)})
	}
	if in.RiskLevel != nil && !model.ValidRiskLevel(*in.RiskLevel) {
		errs = append(errs, model.FieldError{Field: "riskLevel", Message: fmt.Sprintf("invalid risk level %q", *in.RiskLevel)})
	}
	if in.Status != nil && !model.ValidStatus(*in.Status) {
		errs = append(errs, model.FieldError{Field: "status", Message: fmt.Sprintf("invalid status %q", *in.Status)})
	}
	return errs
}

func appendTitleErr(errs []model.FieldError, title string) []model.FieldError {
	if utf8.RuneCountInString(strings.TrimSpace(title)) < minTitleLen {
		errs = append(errs, model.FieldError{Field: "title", Message: "Title must be at least 3 characters"})
	}
	return errs
}

func appendDescriptionErr(errs []model.FieldError, desc string) []model.FieldError {
	if utf8.RuneCountInString(strings.TrimSpace(desc)) < minDescriptionLen {
		errs = append(errs, model.FieldError{Field: "description", Message: "Description must be at least 10 characters"})
	}
	return errs
}

func appendOwnerErr(errs []model.FieldError, owner string) []model.FieldError {
	if utf8.RuneCountInString(strings.TrimSpace(owner)) < minOwnerLen {
		errs = append(errs, model.FieldError{Field: "owner", Message: "Owner must be at least 2 characters"})
	}
	return errs
}
