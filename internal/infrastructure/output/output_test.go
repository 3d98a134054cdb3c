package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/soustack/recipes/internal/domain/execution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createPassingReport creates a report where every recipe passed.
func createPassingReport() *execution.ValidationReport {
	report := execution.NewValidationReport(".")
	report.AddFileResult(execution.NewFileResult("recipes/lite/a.soustack.json", nil))
	report.AddFileResult(execution.NewFileResult("recipes/base/b.soustack.json", nil))
	report.Finalize()
	return report
}

// createFailingReport creates a report with one passing, one failing and
// one unparseable recipe.
func createFailingReport() *execution.ValidationReport {
	report := execution.NewValidationReport(".")
	report.ValidatorVersion = "1.2.3"
	report.AddFileResult(execution.NewFileResult("recipes/lite/a.soustack.json", nil))
	report.AddFileResult(execution.NewFileResult("recipes/lite/b.soustack.json", []execution.Finding{
		{Path: "recipes/lite/b.soustack.json", Kind: execution.KindMissingField, Message: "missing required field 'name'"},
		{Path: "recipes/lite/b.soustack.json", Kind: execution.KindStepShape, Message: "step 0 missing 'uses'"},
	}))
	report.AddFileResult(execution.NewFileResult("recipes/base/c.soustack.json", []execution.Finding{
		{Path: "recipes/base/c.soustack.json", Kind: execution.KindParse, Message: "invalid JSON (unexpected end of JSON input)"},
	}))
	report.Finalize()
	return report
}

func TestTextFormatter_Success(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(&buf).Format(createPassingReport()))

	assert.Equal(t, "Validated 2 recipe(s) successfully.\n", buf.String())
}

func TestTextFormatter_Failure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(&buf).Format(createFailingReport()))

	assert.Equal(t, strings.Join([]string{
		"Validation failed:",
		"- recipes/lite/b.soustack.json: missing required field 'name'",
		"- recipes/lite/b.soustack.json: step 0 missing 'uses'",
		"- recipes/base/c.soustack.json: invalid JSON (unexpected end of JSON input)",
		"",
	}, "\n"), buf.String())
}

func TestTextFormatter_Color(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewTextFormatter(&buf)
	formatter.EnableColor = true

	require.NoError(t, formatter.Format(createFailingReport()))

	lines := strings.Split(buf.String(), "\n")
	assert.Contains(t, lines[0], "\x1b[", "header is styled")
	assert.Contains(t, lines[0], "Validation failed:")
	assert.Equal(t, "- recipes/lite/b.soustack.json: missing required field 'name'", lines[1], "bullets stay plain")
}

func TestWriteNoRecipes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteNoRecipes(&buf, "recipes/"))
	assert.Equal(t, "No recipes found under recipes/\n", buf.String())
}

func TestJSONFormatter_Format(t *testing.T) {
	report := createFailingReport()
	var buf bytes.Buffer

	require.NoError(t, NewJSONFormatter(&buf, true).Format(report))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, report.RunID.String(), decoded["run_id"])
	assert.Equal(t, "1.2.3", decoded["validator_version"])

	findings, ok := decoded["findings"].([]interface{})
	require.True(t, ok)
	require.Len(t, findings, 3)
	first := findings[0].(map[string]interface{})
	assert.Equal(t, "missing_field", first["kind"])
	assert.Equal(t, "recipes/lite/b.soustack.json", first["path"])

	summary := decoded["summary"].(map[string]interface{})
	assert.Equal(t, float64(3), summary["total_files"])
	assert.Equal(t, float64(1), summary["error_files"])
}

func TestJSONFormatter_Compact(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf, false).Format(createPassingReport()))

	out := strings.TrimSuffix(buf.String(), "\n")
	assert.NotContains(t, out, "\n")
	assert.True(t, json.Valid([]byte(out)))
}

func TestYAMLFormatter_Format(t *testing.T) {
	report := createFailingReport()
	var buf bytes.Buffer

	require.NoError(t, NewYAMLFormatter(&buf).Format(report))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, report.RunID.String(), decoded["run_id"])
	files, ok := decoded["files"].([]interface{})
	require.True(t, ok)
	assert.Len(t, files, 3)
	assert.Contains(t, buf.String(), "kind: parse")
}
