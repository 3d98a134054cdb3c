package validation

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/soustack/recipes/internal/domain/entities"
	"github.com/soustack/recipes/internal/domain/execution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func document(t *testing.T, data string) *entities.RecipeDocument {
	t.Helper()
	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(data), &fields))
	return entities.NewRecipeDocument("recipes/lite/a.soustack.json", fields)
}

func messages(findings []execution.Finding) []string {
	out := make([]string, len(findings))
	for i, f := range findings {
		out[i] = f.Message
	}
	return out
}

func newValidator(t *testing.T) *StrictValidator {
	t.Helper()
	v, err := NewStrictValidator()
	require.NoError(t, err)
	return v
}

func TestStrictValidator_ValidRecipe(t *testing.T) {
	v := newValidator(t)
	doc := document(t, `{"name":"x","profile":"lite","version":"1.2.0","description":"d",
		"steps":[{"id":"a","uses":"b"},{"id":"c","uses":"d","with":{"k":1}}]}`)

	assert.Empty(t, v.Validate(context.Background(), doc))
}

func TestStrictValidator_LenientVersion(t *testing.T) {
	v := newValidator(t)
	doc := document(t, `{"name":"x","profile":"lite","version":"1","description":"d","steps":[{"id":"a","uses":"b"}]}`)

	assert.Empty(t, v.Validate(context.Background(), doc), "a bare major version is accepted")
}

func TestStrictValidator_SchemaTypes(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		location string
	}{
		{
			name:     "numeric name",
			data:     `{"name":5,"profile":"lite","version":"1","description":"d","steps":[{"id":"a","uses":"b"}]}`,
			location: "/name",
		},
		{
			name:     "empty step id",
			data:     `{"name":"x","profile":"lite","version":"1","description":"d","steps":[{"id":"","uses":"b"}]}`,
			location: "/steps/0/id",
		},
		{
			name:     "non-string uses",
			data:     `{"name":"x","profile":"lite","version":"1","description":"d","steps":[{"id":"a","uses":["b"]}]}`,
			location: "/steps/0/uses",
		},
		{
			name:     "object description",
			data:     `{"name":"x","profile":"lite","version":"1","description":{},"steps":[{"id":"a","uses":"b"}]}`,
			location: "/description",
		},
	}

	v := newValidator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := v.Validate(context.Background(), document(t, tt.data))
			require.NotEmpty(t, findings)

			found := false
			for _, f := range findings {
				assert.Equal(t, execution.KindSchema, f.Kind)
				assert.Equal(t, "recipes/lite/a.soustack.json", f.Path)
				if strings.HasPrefix(f.Message, "schema: "+tt.location+":") {
					found = true
				}
			}
			assert.True(t, found, "expected a finding at %s, got %v", tt.location, messages(findings))
		})
	}
}

func TestStrictValidator_InvalidVersion(t *testing.T) {
	v := newValidator(t)
	doc := document(t, `{"name":"x","profile":"lite","version":"banana","description":"d","steps":[{"id":"a","uses":"b"}]}`)

	assert.Equal(t, []string{"version 'banana' is not a valid semantic version"}, messages(v.Validate(context.Background(), doc)))
}

func TestStrictValidator_DuplicateStepIDs(t *testing.T) {
	v := newValidator(t)
	doc := document(t, `{"name":"x","profile":"lite","version":"1.0.0","description":"d","steps":[
		{"id":"a","uses":"b"},
		{"id":"b","uses":"b"},
		{"id":"a","uses":"c"},
		{"id":"a","uses":"d"}
	]}`)

	assert.Equal(t, []string{"duplicate step id 'a'"}, messages(v.Validate(context.Background(), doc)))
}

func TestRecipeSchema_Embedded(t *testing.T) {
	schema := RecipeSchema()
	require.NotEmpty(t, schema)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(schema, &parsed))
	assert.Equal(t, "object", parsed["type"])

	// Callers get a copy
	schema[0] = 'X'
	assert.Equal(t, byte('{'), RecipeSchema()[0])
}

func TestCompileSchema_Invalid(t *testing.T) {
	_, err := compileSchema([]byte(`{"type": 12}`))
	require.Error(t, err)
}
