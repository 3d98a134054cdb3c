// Package validation provides the optional strict checks for recipes:
// JSON Schema conformance, semantic versions and unique step ids.
package validation

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/soustack/recipes/internal/domain/entities"
	"github.com/soustack/recipes/internal/domain/execution"
)

const schemaResource = "recipe.schema.json"

//go:embed schemas/recipe.schema.json
var recipeSchema []byte

// RecipeSchema returns the embedded JSON Schema for recipe documents.
func RecipeSchema() []byte {
	out := make([]byte, len(recipeSchema))
	copy(out, recipeSchema)
	return out
}

// StrictValidator implements ports.StrictValidator.
type StrictValidator struct {
	schema *jsonschema.Schema
}

// NewStrictValidator compiles the embedded recipe schema.
func NewStrictValidator() (*StrictValidator, error) {
	schema, err := compileSchema(recipeSchema)
	if err != nil {
		return nil, err
	}
	return &StrictValidator{schema: schema}, nil
}

func compileSchema(data []byte) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource(schemaResource, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add recipe schema resource: %w", err)
	}

	schema, err := compiler.Compile(schemaResource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile recipe schema: %w", err)
	}
	return schema, nil
}

// Validate runs every strict check and returns all findings.
func (v *StrictValidator) Validate(_ context.Context, doc *entities.RecipeDocument) []execution.Finding {
	var findings []execution.Finding

	findings = append(findings, v.validateSchema(doc)...)
	findings = append(findings, validateVersion(doc)...)
	findings = append(findings, validateUniqueStepIDs(doc)...)

	return findings
}

// validateSchema checks the document against the embedded JSON Schema.
func (v *StrictValidator) validateSchema(doc *entities.RecipeDocument) []execution.Finding {
	err := v.schema.Validate(doc.Fields)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return []execution.Finding{schemaFinding(doc, "schema validation failed: %v", err)}
	}

	var findings []execution.Finding
	for _, msg := range collectSchemaMessages(validationErr) {
		findings = append(findings, schemaFinding(doc, "schema: %s", msg))
	}
	return findings
}

// collectSchemaMessages flattens a validation error tree into its leaf
// messages, each prefixed with the instance location.
func collectSchemaMessages(err *jsonschema.ValidationError) []string {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
			return
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	return messages
}

// validateVersion requires a string version to parse as a semantic version.
// Non-string versions are already reported by the schema.
func validateVersion(doc *entities.RecipeDocument) []execution.Finding {
	version, ok := doc.Get(entities.FieldVersion).(string)
	if !ok || version == "" {
		return nil
	}

	if _, err := semver.NewVersion(version); err != nil {
		return []execution.Finding{schemaFinding(doc, "version '%s' is not a valid semantic version", version)}
	}
	return nil
}

// validateUniqueStepIDs reports every repeated string step id once.
func validateUniqueStepIDs(doc *entities.RecipeDocument) []execution.Finding {
	steps, ok := doc.Steps()
	if !ok {
		return nil
	}

	var findings []execution.Finding
	seen := make(map[string]int)

	for _, raw := range steps {
		step, ok := entities.AsStep(raw)
		if !ok {
			continue
		}
		id, ok := step.ID()
		if !ok {
			continue
		}

		seen[id]++
		if seen[id] == 2 {
			findings = append(findings, schemaFinding(doc, "duplicate step id '%s'", id))
		}
	}

	return findings
}

func schemaFinding(doc *entities.RecipeDocument, format string, args ...interface{}) execution.Finding {
	return execution.Finding{
		Path:    doc.Path,
		Kind:    execution.KindSchema,
		Message: fmt.Sprintf(format, args...),
	}
}
