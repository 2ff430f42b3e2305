package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validExport = `{
  "timestamp": "20240309_140507",
  "user_input": "python, sql",
  "recommendations": [
    {
      "career": "Data Scientist",
      "domain": "Data",
      "score": 80.0,
      "match_count": 2,
      "matched_skills": ["python", "sql"],
      "career_skill_count": 3,
      "description": "Builds models"
    }
  ]
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateExport(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantError bool
	}{
		{name: "valid document", doc: validExport},
		{
			name: "empty recommendations",
			doc:  `{"timestamp": "20240309_140507", "user_input": "", "recommendations": []}`,
		},
		{
			name:      "missing recommendations",
			doc:       `{"timestamp": "20240309_140507", "user_input": "x"}`,
			wantError: true,
		},
		{
			name:      "null recommendations",
			doc:       `{"timestamp": "20240309_140507", "user_input": "x", "recommendations": null}`,
			wantError: true,
		},
		{
			name:      "bad timestamp",
			doc:       `{"timestamp": "2024-03-09", "user_input": "x", "recommendations": []}`,
			wantError: true,
		},
		{
			name: "score out of range",
			doc: `{"timestamp": "20240309_140507", "user_input": "x", "recommendations": [
				{"career": "A", "score": 120, "match_count": 0, "matched_skills": []}]}`,
			wantError: true,
		},
		{
			name: "matched skills wrong type",
			doc: `{"timestamp": "20240309_140507", "user_input": "x", "recommendations": [
				{"career": "A", "score": 1, "match_count": 0, "matched_skills": "sql"}]}`,
			wantError: true,
		},
		{name: "malformed json", doc: `{ invalid json }`, wantError: true},
		{name: "empty input", doc: ``, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExport([]byte(tt.doc))
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "error should be ValidationError type")
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateExportFile(t *testing.T) {
	path := writeTemp(t, "recs.json", validExport)
	assert.NoError(t, ValidateExportFile(path))

	err := ValidateExportFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidateJSON_FileSchema(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", ExportSchema)
	jsonPath := writeTemp(t, "doc.json", validExport)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))

	badPath := writeTemp(t, "bad.json", `{"timestamp": "x"}`)
	err := ValidateJSON(schemaPath, badPath)
	require.Error(t, err)
	_, ok := err.(*ValidationError)
	assert.True(t, ok, "error should be ValidationError type")
}

func TestValidateJSON_NonExistentFiles(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", ExportSchema)

	err := ValidateJSON(filepath.Join(t.TempDir(), "nope.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString(t *testing.T) {
	assert.NoError(t, ValidateJSONString(ExportSchema, validExport))

	err := ValidateJSONString(`{"type": "object", "required": ["a"]}`, `{}`)
	require.Error(t, err)
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "recommendations.0.score", Message: "Must be less than or equal to 100"},
	}}
	assert.Contains(t, err.Error(), "1. recommendations.0.score: Must be less than or equal to 100")
}
