package main

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/soustack/recipes/internal/application/errors"
	"github.com/soustack/recipes/internal/infrastructure/container"
	"github.com/soustack/recipes/internal/infrastructure/system"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CommandContext provides common command dependencies.
type CommandContext struct {
	Container *container.Container
	Logger    *slog.Logger
	Context   context.Context
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// withContainer wraps a command handler with container initialization.
// Handles common setup: config resolution, logger lookup, dependency injection.
func withContainer(v *viper.Viper, handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := system.Load(v)
		if err != nil {
			return apperrors.NewConfigurationError("config", "invalid configuration", err)
		}

		logger := slog.Default()

		c, err := container.New(container.Options{
			Config: cfg,
			Logger: logger,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		ctx := &CommandContext{
			Container: c,
			Logger:    logger,
			Context:   cmd.Context(),
		}

		return handler(ctx, cmd, args)
	}
}
