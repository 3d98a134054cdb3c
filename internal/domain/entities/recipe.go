// Package entities contains domain entities for the recipe domain model.
// These are pure domain types with NO infrastructure dependencies.
package entities

import (
	"path/filepath"
)

// Top-level recipe fields.
const (
	FieldName        = "name"
	FieldProfile     = "profile"
	FieldVersion     = "version"
	FieldDescription = "description"
	FieldSteps       = "steps"
)

// Step fields.
const (
	StepFieldID   = "id"
	StepFieldUses = "uses"
)

// RequiredFields returns the top-level fields every recipe must declare,
// in reporting order. A new slice is returned on every call.
func RequiredFields() []string {
	return []string{FieldName, FieldProfile, FieldVersion, FieldDescription, FieldSteps}
}

// RecipeDocument is a parsed recipe file.
//
// The document is kept as a generic JSON object rather than a struct so that
// validation can tell an absent field apart from a zero value.
type RecipeDocument struct {
	Path   string
	Fields map[string]interface{}
}

// NewRecipeDocument wraps a decoded JSON object read from path.
func NewRecipeDocument(path string, fields map[string]interface{}) *RecipeDocument {
	if fields == nil {
		fields = map[string]interface{}{}
	}
	return &RecipeDocument{Path: path, Fields: fields}
}

// Has reports whether the field is present, even if its value is null.
func (d *RecipeDocument) Has(field string) bool {
	_, ok := d.Fields[field]
	return ok
}

// Get returns the raw value of a field (nil when absent).
func (d *RecipeDocument) Get(field string) interface{} {
	return d.Fields[field]
}

// Profile returns the declared profile value, which may be of any JSON type.
func (d *RecipeDocument) Profile() interface{} {
	return d.Fields[FieldProfile]
}

// Steps returns the steps value when it is a JSON array.
func (d *RecipeDocument) Steps() ([]interface{}, bool) {
	steps, ok := d.Fields[FieldSteps].([]interface{})
	return steps, ok
}

// DirectoryProfile returns the name of the directory containing the recipe.
// This is the profile the recipe is expected to declare.
func (d *RecipeDocument) DirectoryProfile() string {
	return filepath.Base(filepath.Dir(d.Path))
}

// Step is one element of a recipe's steps array that decoded as an object.
type Step map[string]interface{}

// AsStep converts a raw steps element into a Step.
// The second return value is false when the element is not a JSON object.
func AsStep(v interface{}) (Step, bool) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, false
	}
	return Step(m), true
}

// Has reports whether the step declares the field.
func (s Step) Has(field string) bool {
	_, ok := s[field]
	return ok
}

// ID returns the step id when it is a string.
func (s Step) ID() (string, bool) {
	id, ok := s[StepFieldID].(string)
	return id, ok
}

// IsTruthy mirrors JSON "truthiness": null, false, 0, "" and empty
// arrays/objects are falsy, everything else is truthy.
func IsTruthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	case []interface{}:
		return len(t) > 0
	case map[string]interface{}:
		return len(t) > 0
	default:
		return true
	}
}
