// Package services contains domain services for recipe validation.
package services

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/soustack/recipes/internal/domain/entities"
	"github.com/soustack/recipes/internal/domain/execution"
	"github.com/soustack/recipes/internal/domain/values"
)

// RecipeValidator checks recipe documents against the structural contract.
// It never stops at the first problem: every finding for a file is returned
// together so a single fix-and-rerun cycle is possible.
type RecipeValidator struct{}

// NewRecipeValidator creates a new recipe validator service.
func NewRecipeValidator() *RecipeValidator {
	return &RecipeValidator{}
}

// Validate parses data as JSON and checks the resulting document.
// A parse failure yields exactly one finding and no further checks.
func (v *RecipeValidator) Validate(path string, data []byte) []execution.Finding {
	doc, err := Parse(path, data)
	if err != nil {
		return []execution.Finding{ParseFinding(path, err)}
	}
	return v.ValidateDocument(doc)
}

// Parse decodes data into a RecipeDocument.
// The data must be valid UTF-8 and the top-level JSON value an object.
func Parse(path string, data []byte) (*entities.RecipeDocument, error) {
	// json.Unmarshal would silently replace bad bytes with U+FFFD
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("invalid UTF-8")
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	fields, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("top-level value must be an object")
	}

	return entities.NewRecipeDocument(path, fields), nil
}

// ParseFinding builds the finding reported when a file cannot be read or parsed.
func ParseFinding(path string, err error) execution.Finding {
	return execution.Finding{
		Path:    path,
		Kind:    execution.KindParse,
		Message: fmt.Sprintf("invalid JSON (%v)", err),
	}
}

// ValidateDocument runs every structural check on an already parsed document.
func (v *RecipeValidator) ValidateDocument(doc *entities.RecipeDocument) []execution.Finding {
	var findings []execution.Finding

	findings = v.checkRequiredFields(doc, findings)
	findings = v.checkProfile(doc, findings)
	findings = v.checkDirectoryMatch(doc, findings)
	findings = v.checkSteps(doc, findings)

	return findings
}

// checkRequiredFields reports every absent required field.
func (v *RecipeValidator) checkRequiredFields(doc *entities.RecipeDocument, findings []execution.Finding) []execution.Finding {
	for _, field := range entities.RequiredFields() {
		if !doc.Has(field) {
			findings = append(findings, finding(doc, execution.KindMissingField,
				"missing required field '%s'", field))
		}
	}
	return findings
}

// checkProfile reports a profile outside the allowed set.
// An absent or non-string profile is never a member of the set.
func (v *RecipeValidator) checkProfile(doc *entities.RecipeDocument, findings []execution.Finding) []execution.Finding {
	profile, _ := doc.Profile().(string)
	if !values.Profile(profile).IsAllowed() {
		findings = append(findings, finding(doc, execution.KindInvalidProfile,
			"profile must be one of %s", values.FormatProfiles(values.AllowedProfiles())))
	}
	return findings
}

// checkDirectoryMatch reports a declared profile that differs from the
// parent directory name. A falsy profile is skipped here because
// checkRequiredFields and checkProfile already cover it.
func (v *RecipeValidator) checkDirectoryMatch(doc *entities.RecipeDocument, findings []execution.Finding) []execution.Finding {
	profile := doc.Profile()
	if !entities.IsTruthy(profile) {
		return findings
	}

	expected := doc.DirectoryProfile()
	if s, ok := profile.(string); ok && s == expected {
		return findings
	}

	return append(findings, finding(doc, execution.KindProfileMismatch,
		"profile '%v' must match parent directory '%s'", profile, expected))
}

// checkSteps reports a missing, non-array or empty steps value, otherwise
// the shape of each step.
func (v *RecipeValidator) checkSteps(doc *entities.RecipeDocument, findings []execution.Finding) []execution.Finding {
	steps, ok := doc.Steps()
	if !ok || len(steps) == 0 {
		return append(findings, finding(doc, execution.KindStepsShape, "steps must be a non-empty array"))
	}

	for i, raw := range steps {
		step, ok := entities.AsStep(raw)
		if !ok {
			findings = append(findings, finding(doc, execution.KindStepShape, "step %d is not an object", i))
			continue
		}
		if !step.Has(entities.StepFieldID) {
			findings = append(findings, finding(doc, execution.KindStepShape, "step %d missing '%s'", i, entities.StepFieldID))
		}
		if !step.Has(entities.StepFieldUses) {
			findings = append(findings, finding(doc, execution.KindStepShape, "step %d missing '%s'", i, entities.StepFieldUses))
		}
	}

	return findings
}

func finding(doc *entities.RecipeDocument, kind execution.FindingKind, format string, args ...interface{}) execution.Finding {
	return execution.Finding{
		Path:    doc.Path,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}
