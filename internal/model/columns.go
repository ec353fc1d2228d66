package model

import (
	"database/sql/driver"
	"encoding/json"
)

// JSON-valued columns. MySQL hands values back as []byte, some drivers
// as string; both are accepted.

func jsonScan(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case string:
		bytes = []byte(v)
	case []byte:
		bytes = v
	}
	return json.Unmarshal(bytes, dest)
}

// StringList stores a JSON array of strings in a single column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	*l = nil
	return jsonScan(value, l)
}

// VersionList stores the full version history as a JSON array.
type VersionList []RequirementVersion

func (l VersionList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *VersionList) Scan(value interface{}) error {
	*l = nil
	return jsonScan(value, l)
}

// FieldValues stores custom-field values keyed by definition id.
type FieldValues map[string]FieldValue

func (f FieldValues) Value() (driver.Value, error) {
	if f == nil {
		return nil, nil
	}
	b, err := json.Marshal(f)
	return string(b), err
}

func (f *FieldValues) Scan(value interface{}) error {
	*f = nil
	return jsonScan(value, f)
}
