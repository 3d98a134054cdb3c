package dto

import (
	"time"

	"github.com/soustack/recipes/internal/domain/execution"
)

// ValidateRecipesResponse contains the result of a validation run.
type ValidateRecipesResponse struct {
	// Report contains every file result and finding
	Report *execution.ValidationReport

	// Metadata contains response metadata
	Metadata ResponseMetadata
}

// ResponseMetadata contains metadata about the response.
type ResponseMetadata struct {
	// RequestID from the original request
	RequestID string

	// ProcessedAt is when the request was processed
	ProcessedAt time.Time

	// Duration is how long the request took
	Duration time.Duration
}
