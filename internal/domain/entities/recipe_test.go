package entities

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredFields_Order(t *testing.T) {
	assert.Equal(t, []string{"name", "profile", "version", "description", "steps"}, RequiredFields())

	fields := RequiredFields()
	fields[0] = "changed"
	assert.Equal(t, "name", RequiredFields()[0], "callers must not be able to mutate the required set")
}

func TestRecipeDocument_Has(t *testing.T) {
	doc := NewRecipeDocument("x.soustack.json", map[string]interface{}{
		"name":    "x",
		"profile": nil,
	})

	assert.True(t, doc.Has("name"))
	assert.True(t, doc.Has("profile"), "null values still count as present")
	assert.False(t, doc.Has("steps"))
	assert.Nil(t, doc.Profile())
}

func TestRecipeDocument_Steps(t *testing.T) {
	doc := NewRecipeDocument("x", map[string]interface{}{"steps": []interface{}{1}})
	steps, ok := doc.Steps()
	assert.True(t, ok)
	assert.Len(t, steps, 1)

	doc = NewRecipeDocument("x", map[string]interface{}{"steps": "nope"})
	_, ok = doc.Steps()
	assert.False(t, ok)
}

func TestRecipeDocument_DirectoryProfile(t *testing.T) {
	doc := NewRecipeDocument(filepath.Join("recipes", "lite", "foo.soustack.json"), nil)
	assert.Equal(t, "lite", doc.DirectoryProfile())
}

func TestAsStep(t *testing.T) {
	step, ok := AsStep(map[string]interface{}{"id": "a"})
	assert.True(t, ok)
	assert.True(t, step.Has("id"))
	assert.False(t, step.Has("uses"))

	id, ok := step.ID()
	assert.True(t, ok)
	assert.Equal(t, "a", id)

	_, ok = AsStep("a string")
	assert.False(t, ok)
	_, ok = AsStep([]interface{}{})
	assert.False(t, ok)
}

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"zero", float64(0), false},
		{"number", float64(3), true},
		{"empty string", "", false},
		{"string", "lite", true},
		{"empty array", []interface{}{}, false},
		{"array", []interface{}{1}, true},
		{"empty object", map[string]interface{}{}, false},
		{"object", map[string]interface{}{"a": 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTruthy(tt.value))
		})
	}
}
