// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"context"
	"io"

	"github.com/soustack/recipes/internal/domain/entities"
	"github.com/soustack/recipes/internal/domain/execution"
)

// RecipeFinder discovers recipe files beneath a root directory.
type RecipeFinder interface {
	// Find returns matching file paths, joined with root and sorted.
	// A missing recipes directory yields an empty result, not an error.
	Find(ctx context.Context, root, recipesDir, pattern string) ([]string, error)
}

// RecipeLoader reads the raw bytes of a recipe file.
type RecipeLoader interface {
	Load(path string) ([]byte, error)
}

// StrictValidator runs the optional checks enabled by strict mode.
type StrictValidator interface {
	Validate(ctx context.Context, doc *entities.RecipeDocument) []execution.Finding
}

// OutputFormatter formats validation reports.
type OutputFormatter interface {
	Format(report *execution.ValidationReport) error
}

// FormatterOptions configures formatter creation.
type FormatterOptions struct {
	Color  bool
	Indent bool
}

// OutputFormatterFactory creates formatters by name.
type OutputFormatterFactory interface {
	Create(format string, writer io.Writer, options FormatterOptions) (OutputFormatter, error)
	SupportedFormats() []string
}
