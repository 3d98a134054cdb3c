// Package apperrors defines application-level error types.
package apperrors

import (
	"errors"
	"fmt"
)

// ErrNoRecipes is returned when discovery finds no recipe files.
// It is a distinct outcome from a run whose recipes fail validation.
var ErrNoRecipes = errors.New("no recipes found")

// ErrValidationFailed is returned when one or more recipes have findings.
var ErrValidationFailed = errors.New("recipe validation failed")

// IsReported reports whether err is an outcome the report already
// describes to the user, so it should not be logged again.
func IsReported(err error) bool {
	return errors.Is(err, ErrNoRecipes) || errors.Is(err, ErrValidationFailed)
}

// NoRecipesError carries the location that was searched.
type NoRecipesError struct {
	Dir string // Recipes directory as configured, e.g. "recipes/"
}

func (e *NoRecipesError) Error() string {
	return fmt.Sprintf("no recipes found under %s", e.Dir)
}

// Is matches ErrNoRecipes.
func (e *NoRecipesError) Is(target error) bool {
	return target == ErrNoRecipes
}

// NewNoRecipesError creates a new no-recipes error.
func NewNoRecipesError(dir string) *NoRecipesError {
	return &NoRecipesError{Dir: dir}
}

// ValidationError indicates recipe validation produced findings.
type ValidationError struct {
	Files    int // Files validated
	Findings int // Findings collected across all files
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("recipe validation failed: %d finding(s) in %d file(s)", e.Findings, e.Files)
}

// Is matches ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// NewValidationError creates a new validation error.
func NewValidationError(files, findings int) *ValidationError {
	return &ValidationError{
		Files:    files,
		Findings: findings,
	}
}

// ConfigurationError indicates a config or setup issue.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}
