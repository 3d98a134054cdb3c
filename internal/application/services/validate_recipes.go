// Package services contains application use cases.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/soustack/recipes/internal/application/dto"
	apperrors "github.com/soustack/recipes/internal/application/errors"
	"github.com/soustack/recipes/internal/application/ports"
	"github.com/soustack/recipes/internal/domain/execution"
	"github.com/soustack/recipes/internal/domain/services"
	"github.com/soustack/recipes/internal/domain/values"
)

// ValidateRecipesUseCase orchestrates discovery and validation of every
// recipe file. Files are validated one at a time in sorted order and all
// findings are accumulated into a single report.
type ValidateRecipesUseCase struct {
	finder    ports.RecipeFinder
	loader    ports.RecipeLoader
	validator *services.RecipeValidator
	strict    ports.StrictValidator
	logger    *slog.Logger
}

// NewValidateRecipesUseCase creates a new validate recipes use case.
// strict may be nil when strict mode is never requested.
func NewValidateRecipesUseCase(
	finder ports.RecipeFinder,
	loader ports.RecipeLoader,
	validator *services.RecipeValidator,
	strict ports.StrictValidator,
	logger *slog.Logger,
) *ValidateRecipesUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	if validator == nil {
		validator = services.NewRecipeValidator()
	}

	return &ValidateRecipesUseCase{
		finder:    finder,
		loader:    loader,
		validator: validator,
		strict:    strict,
		logger:    logger,
	}
}

// Execute discovers recipes and validates each of them.
//
// It returns apperrors.ErrNoRecipes (as *NoRecipesError) when discovery
// finds nothing. Findings are not errors: callers inspect
// response.Report.Passed().
func (uc *ValidateRecipesUseCase) Execute(ctx context.Context, req dto.ValidateRecipesRequest) (*dto.ValidateRecipesResponse, error) {
	startTime := time.Now()

	if req.Options.Strict && uc.strict == nil {
		return nil, apperrors.NewConfigurationError("strict", "strict mode requested but no strict validator configured", nil)
	}

	uc.logger.Debug("discovering recipes",
		"root", req.Discovery.Root,
		"dir", req.Discovery.RecipesDir,
		"pattern", req.Discovery.Pattern)

	paths, err := uc.finder.Find(ctx, req.Discovery.Root, req.Discovery.RecipesDir, req.Discovery.Pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to discover recipes: %w", err)
	}

	if len(paths) == 0 {
		return nil, apperrors.NewNoRecipesError(req.Discovery.RecipesDir + "/")
	}

	uc.logger.Info("recipes discovered", "count", len(paths))

	report := newReport(req)
	report.ValidatorVersion = req.Metadata.ValidatorVersion
	report.Strict = req.Options.Strict

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("validation interrupted: %w", err)
		}

		findings := uc.validateFile(ctx, path, req.Options)
		uc.logger.Debug("recipe validated", "path", path, "findings", len(findings))
		report.AddFileResult(execution.NewFileResult(path, findings))
	}

	report.Finalize()

	uc.logger.Info("validation complete",
		"duration", report.Duration,
		"files", report.Summary.TotalFiles,
		"passed", report.Summary.PassedFiles,
		"failed", report.Summary.FailedFiles,
		"errors", report.Summary.ErrorFiles)

	return &dto.ValidateRecipesResponse{
		Report: report,
		Metadata: dto.ResponseMetadata{
			RequestID:   req.Metadata.RequestID,
			ProcessedAt: time.Now(),
			Duration:    time.Since(startTime),
		},
	}, nil
}

// newReport starts a report, reusing the request ID as run ID when it is one.
func newReport(req dto.ValidateRecipesRequest) *execution.ValidationReport {
	if id, err := values.ParseRunID(req.Metadata.RequestID); err == nil {
		return execution.NewValidationReportWithID(id, req.Discovery.Root)
	}
	return execution.NewValidationReport(req.Discovery.Root)
}

// validateFile loads, parses and checks a single recipe.
// Strict checks only run on files that pass every structural check.
func (uc *ValidateRecipesUseCase) validateFile(ctx context.Context, path string, opts dto.ValidateOptions) []execution.Finding {
	data, err := uc.loader.Load(path)
	if err != nil {
		return []execution.Finding{services.ParseFinding(path, err)}
	}

	doc, err := services.Parse(path, data)
	if err != nil {
		return []execution.Finding{services.ParseFinding(path, err)}
	}

	findings := uc.validator.ValidateDocument(doc)
	if len(findings) == 0 && opts.Strict {
		findings = uc.strict.Validate(ctx, doc)
	}

	return findings
}
