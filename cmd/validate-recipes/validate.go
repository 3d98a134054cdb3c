package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/soustack/recipes/internal/application/dto"
	apperrors "github.com/soustack/recipes/internal/application/errors"
	"github.com/soustack/recipes/internal/application/ports"
	"github.com/soustack/recipes/internal/domain/values"
	"github.com/soustack/recipes/internal/infrastructure/output"
	"github.com/soustack/recipes/internal/version"
	"github.com/spf13/cobra"
)

// runValidate implements the core logic of the root command.
func runValidate(cc *CommandContext, cmd *cobra.Command, _ []string) error {
	cfg := cc.Container.Config()

	ctx, cancel := applyTimeout(cc.Context, cfg.Timeout)
	defer cancel()

	req := dto.ValidateRecipesRequest{
		Discovery: dto.DiscoveryOptions{
			Root:       cfg.Root,
			RecipesDir: cfg.RecipesDir,
			Pattern:    cfg.Pattern,
		},
		Options: dto.ValidateOptions{
			Strict: cfg.Strict,
		},
		Metadata: dto.RequestMetadata{
			RequestID:        values.NewRunID().String(),
			ValidatorVersion: version.Get().String(),
		},
	}

	resp, err := cc.Container.ValidateRecipesUseCase().Execute(ctx, req)
	if err != nil {
		var noRecipes *apperrors.NoRecipesError
		if errors.As(err, &noRecipes) {
			// Printed on stdout whatever the format
			if werr := output.WriteNoRecipes(cmd.OutOrStdout(), noRecipes.Dir); werr != nil {
				return fmt.Errorf("failed to write output: %w", werr)
			}
		}
		return err
	}

	writer := cmd.OutOrStdout()
	if cfg.Output != "" {
		//nolint:gosec // G304: User-controlled output file path is intentional
		file, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			_ = file.Close() // Best-effort cleanup
		}()
		writer = file
		cc.Logger.Info("writing output", "file", cfg.Output, "format", cfg.Format)
	}

	if err := formatReport(cc, writer, resp); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	report := resp.Report
	if !report.Passed() {
		return apperrors.NewValidationError(report.Summary.TotalFiles, report.Summary.TotalFindings)
	}
	return nil
}

func formatReport(cc *CommandContext, w io.Writer, resp *dto.ValidateRecipesResponse) error {
	cfg := cc.Container.Config()

	formatter, err := cc.Container.FormatterFactory().Create(cfg.Format, w, ports.FormatterOptions{
		Color:  cfg.UseColor(w),
		Indent: true,
	})
	if err != nil {
		return err
	}
	return formatter.Format(resp.Report)
}
