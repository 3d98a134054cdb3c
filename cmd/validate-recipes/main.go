// Package main provides the validate-recipes CLI, which checks every
// Soustack recipe under a recipes directory and reports all findings.
package main

import (
	"context"
	"log/slog"
	"os"

	apperrors "github.com/soustack/recipes/internal/application/errors"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

// run executes the CLI with the given arguments and returns the exit code.
func run(ctx context.Context, args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		// Findings and the no-recipes line are already on stdout
		if !apperrors.IsReported(err) {
			slog.Error("command failed", "error", err)
		}
		return 1
	}
	return 0
}
