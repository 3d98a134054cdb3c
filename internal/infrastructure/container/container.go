// Package container provides dependency injection for the application.
package container

import (
	"fmt"
	"log/slog"

	"github.com/soustack/recipes/internal/application/ports"
	"github.com/soustack/recipes/internal/application/services"
	domainservices "github.com/soustack/recipes/internal/domain/services"
	"github.com/soustack/recipes/internal/infrastructure/config"
	"github.com/soustack/recipes/internal/infrastructure/discovery"
	"github.com/soustack/recipes/internal/infrastructure/output"
	"github.com/soustack/recipes/internal/infrastructure/system"
	"github.com/soustack/recipes/internal/infrastructure/validation"
)

// Container holds all application dependencies.
type Container struct {
	finder                 ports.RecipeFinder
	loader                 ports.RecipeLoader
	strictValidator        ports.StrictValidator
	formatterFactory       ports.OutputFormatterFactory
	validateRecipesUseCase *services.ValidateRecipesUseCase
	config                 *system.Config
	logger                 *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger *slog.Logger
	Config *system.Config
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Config == nil {
		opts.Config = system.DefaultConfig()
	}

	// Infrastructure adapters
	finder := discovery.NewFinder()
	loader := config.NewRecipeLoader()
	formatterFactory := output.NewFormatterFactory()

	// Strict checks are compiled only when requested
	var strictValidator ports.StrictValidator
	if opts.Config.Strict {
		sv, err := validation.NewStrictValidator()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize strict validator: %w", err)
		}
		strictValidator = sv
	}

	validateRecipesUseCase := services.NewValidateRecipesUseCase(
		finder,
		loader,
		domainservices.NewRecipeValidator(),
		strictValidator,
		opts.Logger,
	)

	return &Container{
		finder:                 finder,
		loader:                 loader,
		strictValidator:        strictValidator,
		formatterFactory:       formatterFactory,
		validateRecipesUseCase: validateRecipesUseCase,
		config:                 opts.Config,
		logger:                 opts.Logger,
	}, nil
}

// ValidateRecipesUseCase returns the validate recipes use case.
func (c *Container) ValidateRecipesUseCase() *services.ValidateRecipesUseCase {
	return c.validateRecipesUseCase
}

// FormatterFactory returns the output formatter factory.
func (c *Container) FormatterFactory() ports.OutputFormatterFactory {
	return c.formatterFactory
}

// RecipeFinder returns the recipe discovery port.
func (c *Container) RecipeFinder() ports.RecipeFinder {
	return c.finder
}

// Config returns the resolved run configuration.
func (c *Container) Config() *system.Config {
	return c.config
}

// Logger returns the configured logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
