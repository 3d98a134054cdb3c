// Package dto contains data transfer objects for application layer use cases.
package dto

// ValidateRecipesRequest encapsulates all inputs needed to validate recipes.
type ValidateRecipesRequest struct {
	Discovery DiscoveryOptions
	Options   ValidateOptions
	Metadata  RequestMetadata
}

// DiscoveryOptions controls where recipe files are looked for.
type DiscoveryOptions struct {
	// Root is the directory containing the recipes directory
	Root string

	// RecipesDir is the recipes subtree, relative to Root
	RecipesDir string

	// Pattern is a doublestar glob matched beneath RecipesDir
	Pattern string
}

// ValidateOptions toggles optional checks.
type ValidateOptions struct {
	// Strict enables schema, semver and duplicate-step-id checks
	Strict bool
}

// RequestMetadata contains metadata for request tracking.
type RequestMetadata struct {
	// RequestID uniquely identifies this request
	RequestID string

	// ValidatorVersion is stamped on the report
	ValidatorVersion string
}
