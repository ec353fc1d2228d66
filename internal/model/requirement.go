package model

import (
	"time"
)

type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

type RiskLevel string

const (
	RiskMinimal RiskLevel = "Minimal"
	RiskLow     RiskLevel = "Low"
	RiskMedium  RiskLevel = "Medium"
	RiskHigh    RiskLevel = "High"
	RiskSevere  RiskLevel = "Severe"
)

type Status string

const (
	StatusDraft       Status = "Draft"
	StatusInReview    Status = "In Review"
	StatusApproved    Status = "Approved"
	StatusImplemented Status = "Implemented"
	StatusVerified    Status = "Verified"
	StatusObsolete    Status = "Obsolete"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

var RiskLevels = []RiskLevel{RiskMinimal, RiskLow, RiskMedium, RiskHigh, RiskSevere}

var Statuses = []Status{StatusDraft, StatusInReview, StatusApproved, StatusImplemented, StatusVerified, StatusObsolete}

func ValidPriority(p Priority) bool {
	for _, v := range Priorities {
		if v == p {
			return true
		}
	}
	return false
}

func ValidRiskLevel(r RiskLevel) bool {
	for _, v := range RiskLevels {
		if v == r {
			return true
		}
	}
	return false
}

func ValidStatus(s Status) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// RequirementVersion is one immutable entry in a requirement's history.
// Entries are never updated or removed; corrections append a new version.
type RequirementVersion struct {
	VersionNumber int       `json:"versionNumber"`
	Description   string    `json:"description"`
	Author        string    `json:"author"`
	Timestamp     time.Time `json:"timestamp"`
	Changes       string    `json:"changes"`
}

type Requirement struct {
	ID           string      `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Title        string      `gorm:"type:varchar(256);not null" json:"title"`
	Description  string      `gorm:"type:text;not null" json:"description"`
	Priority     Priority    `gorm:"type:varchar(16);not null" json:"priority"`
	RiskLevel    RiskLevel   `gorm:"type:varchar(16);not null" json:"riskLevel"`
	Owner        string      `gorm:"type:varchar(128);not null" json:"owner"`
	Status       Status      `gorm:"type:varchar(20);default:Draft;index:idx_status" json:"status"`
	Tags         StringList  `gorm:"type:json" json:"tags"`
	CustomFields FieldValues `gorm:"type:json" json:"customFields"`
	Versions     VersionList `gorm:"type:json" json:"versions"`
	Dependencies StringList  `gorm:"type:json" json:"dependencies,omitempty"`
	AffectedDocs StringList  `gorm:"type:json" json:"affectedDocs,omitempty"`
	CreatedAt    time.Time   `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

func (Requirement) TableName() string { return "requirements" }

// Clone returns a deep copy. The store hands out clones so callers can
// never mutate its authoritative records through a shared reference.
func (r *Requirement) Clone() *Requirement {
	if r == nil {
		return nil
	}
	cp := *r
	cp.Tags = append(StringList(nil), r.Tags...)
	cp.Versions = append(VersionList(nil), r.Versions...)
	cp.Dependencies = append(StringList(nil), r.Dependencies...)
	cp.AffectedDocs = append(StringList(nil), r.AffectedDocs...)
	if r.CustomFields != nil {
		cp.CustomFields = make(FieldValues, len(r.CustomFields))
		for k, v := range r.CustomFields {
			cp.CustomFields[k] = v
		}
	}
	return &cp
}

// FieldError is one field-scoped validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
