package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeSelect FieldType = "select"
	FieldTypeNumber FieldType = "number"
	FieldTypeDate   FieldType = "date"
)

// CustomFieldDefinition is the schema for one project-defined attribute.
type CustomFieldDefinition struct {
	ID          string    `mapstructure:"id" json:"id"`
	Name        string    `mapstructure:"name" json:"name"`
	Type        FieldType `mapstructure:"type" json:"type"`
	Options     []string  `mapstructure:"options" json:"options,omitempty"`
	Required    bool      `mapstructure:"required" json:"required"`
	Placeholder string    `mapstructure:"placeholder" json:"placeholder,omitempty"`
}

// FieldValue is a custom-field value tagged with its declared type, so
// downstream code never pattern-matches on untyped data. On the wire it
// is {"type": "...", "value": ...}.
type FieldValue struct {
	Type   FieldType
	Text   string
	Number float64
}

func TextValue(t FieldType, s string) FieldValue { return FieldValue{Type: t, Text: s} }

func NumberValue(n float64) FieldValue { return FieldValue{Type: FieldTypeNumber, Number: n} }

func (v FieldValue) IsEmpty() bool {
	if v.Type == FieldTypeNumber {
		return false
	}
	return v.Text == ""
}

// String renders the value for display and for option comparison.
func (v FieldValue) String() string {
	if v.Type == FieldTypeNumber {
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	}
	return v.Text
}

func (v FieldValue) MarshalJSON() ([]byte, error) {
	type wire struct {
		Type  FieldType   `json:"type"`
		Value interface{} `json:"value"`
	}
	w := wire{Type: v.Type}
	if v.Type == FieldTypeNumber {
		w.Value = v.Number
	} else {
		w.Value = v.Text
	}
	return json.Marshal(w)
}

func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var w struct {
		Type  FieldType       `json:"type"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	v.Type = w.Type
	switch w.Type {
	case FieldTypeNumber:
		return json.Unmarshal(w.Value, &v.Number)
	case FieldTypeText, FieldTypeSelect, FieldTypeDate:
		return json.Unmarshal(w.Value, &v.Text)
	default:
		return fmt.Errorf("unknown field value type %q", w.Type)
	}
}

// ParseDate accepts the formats the form layer submits.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
