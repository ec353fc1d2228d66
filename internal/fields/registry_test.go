package fields

import (
	"testing"

	"github.com/Gabriel-Pasternak/ReqWise/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitions_StableOrder(t *testing.T) {
	r := NewRegistry(Defaults())

	first := r.Definitions()
	second := r.Definitions()
	require.Len(t, first, 4)
	assert.Equal(t, first, second)
	assert.Equal(t, "project", first[0].ID)
	assert.Equal(t, "module", first[1].ID)
}

func TestDefinitions_ReturnsCopy(t *testing.T) {
	r := NewRegistry(Defaults())

	defs := r.Definitions()
	defs[0].ID = "mutated"
	assert.Equal(t, "project", r.Definitions()[0].ID)
}

func TestValidate_MissingRequired(t *testing.T) {
	r := NewRegistry(Defaults())

	_, errs := r.Validate(map[string]interface{}{
		"module": "Core",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "project", errs[0].Field)
	assert.Equal(t, "missing required field project", errs[0].Message)
}

func TestValidate_EmptyRequiredValue(t *testing.T) {
	r := NewRegistry(Defaults())

	_, errs := r.Validate(map[string]interface{}{
		"project": "   ",
		"module":  "Core",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "project", errs[0].Field)
}

func TestValidate_InvalidSelectOption(t *testing.T) {
	r := NewRegistry(Defaults())

	_, errs := r.Validate(map[string]interface{}{
		"project": "Apollo",
		"module":  "Nonexistent",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "module", errs[0].Field)
	assert.Equal(t, "invalid option for module", errs[0].Message)
}

func TestValidate_ValidInput(t *testing.T) {
	r := NewRegistry(Defaults())

	values, errs := r.Validate(map[string]interface{}{
		"project":       "Apollo",
		"module":        "Reporting",
		"targetRelease": "Q4 2024",
	})
	require.Empty(t, errs)

	assert.Equal(t, model.FieldTypeText, values["project"].Type)
	assert.Equal(t, "Apollo", values["project"].Text)
	assert.Equal(t, model.FieldTypeSelect, values["module"].Type)
	assert.Equal(t, "Reporting", values["module"].Text)
	// optional field absent from input stays absent
	_, ok := values["stakeholder"]
	assert.False(t, ok)
}

func TestValidate_NumberAndDate(t *testing.T) {
	r := NewRegistry([]model.CustomFieldDefinition{
		{ID: "effort", Name: "Effort", Type: model.FieldTypeNumber},
		{ID: "due", Name: "Due Date", Type: model.FieldTypeDate},
	})

	values, errs := r.Validate(map[string]interface{}{
		"effort": 3.5,
		"due":    "2024-12-31",
	})
	require.Empty(t, errs)
	assert.Equal(t, 3.5, values["effort"].Number)
	assert.Equal(t, "2024-12-31", values["due"].Text)

	_, errs = r.Validate(map[string]interface{}{
		"effort": "not a number",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "effort", errs[0].Field)

	_, errs = r.Validate(map[string]interface{}{
		"due": "tomorrow",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "due", errs[0].Field)
}

func TestValidate_UnknownField(t *testing.T) {
	r := NewRegistry(Defaults())

	_, errs := r.Validate(map[string]interface{}{
		"project": "Apollo",
		"module":  "Core",
		"bogus":   "value",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "bogus", errs[0].Field)
	assert.Equal(t, "unknown field bogus", errs[0].Message)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	r := NewRegistry(Defaults())

	_, errs := r.Validate(map[string]interface{}{
		"module": "Nonexistent",
	})
	assert.Len(t, errs, 2) // missing project + invalid module option
}
