package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldValue_JSONRoundTrip(t *testing.T) {
	cases := []FieldValue{
		TextValue(FieldTypeText, "Apollo"),
		TextValue(FieldTypeSelect, "Core"),
		TextValue(FieldTypeDate, "2024-12-31"),
		NumberValue(3.5),
	}
	for _, v := range cases {
		data, err := json.Marshal(v)
		require.NoError(t, err)

		var back FieldValue
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, v, back)
	}
}

func TestFieldValue_WireShape(t *testing.T) {
	data, err := json.Marshal(TextValue(FieldTypeSelect, "Core"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"select","value":"Core"}`, string(data))

	data, err = json.Marshal(NumberValue(2))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"number","value":2}`, string(data))
}

func TestFieldValue_UnknownTypeRejected(t *testing.T) {
	var v FieldValue
	err := json.Unmarshal([]byte(`{"type":"blob","value":"x"}`), &v)
	assert.Error(t, err)
}

func TestRequirement_CloneIsDeep(t *testing.T) {
	req := &Requirement{
		ID:    "REQ-001",
		Title: "original",
		Tags:  StringList{"a"},
		Versions: VersionList{
			{VersionNumber: 1, Changes: "Created requirement"},
		},
		CustomFields: FieldValues{"project": TextValue(FieldTypeText, "Apollo")},
	}

	cp := req.Clone()
	cp.Title = "mutated"
	cp.Tags[0] = "mutated"
	cp.Versions[0].Changes = "mutated"
	cp.CustomFields["project"] = TextValue(FieldTypeText, "mutated")

	assert.Equal(t, "original", req.Title)
	assert.Equal(t, "a", req.Tags[0])
	assert.Equal(t, "Created requirement", req.Versions[0].Changes)
	assert.Equal(t, "Apollo", req.CustomFields["project"].Text)
}
