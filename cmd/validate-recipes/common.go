package main

import (
	"context"
	"time"

	"github.com/soustack/recipes/internal/infrastructure/system"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configFlags maps command-line flags to configuration keys.
var configFlags = map[string]string{
	"root":        system.KeyRoot,
	"recipes-dir": system.KeyRecipesDir,
	"pattern":     system.KeyPattern,
	"format":      system.KeyFormat,
	"output":      system.KeyOutput,
	"strict":      system.KeyStrict,
	"color":       system.KeyColor,
	"timeout":     system.KeyTimeout,
}

// registerValidateFlags adds the validation flags to cmd and binds them to v.
// Flag defaults mirror system.DefaultConfig.
func registerValidateFlags(cmd *cobra.Command, v *viper.Viper) {
	d := system.DefaultConfig()
	flags := cmd.Flags()

	// Discovery
	flags.String("root", d.Root, "Directory containing the recipes directory")
	flags.String("recipes-dir", d.RecipesDir, "Recipes directory, relative to --root")
	flags.String("pattern", d.Pattern, "Glob matched beneath the recipes directory")

	// Checks
	flags.Bool("strict", d.Strict, "Also check schema, semantic version and unique step ids")
	flags.Duration("timeout", d.Timeout, "Global timeout for the whole run (0 to disable)")

	// Output
	flags.String("format", d.Format, "Output format: text, json, yaml, junit, sarif")
	flags.StringP("output", "o", d.Output, "Output file path (default: stdout)")
	flags.String("color", string(d.Color), "Colorize text output: auto, always, never")

	for name, key := range configFlags {
		// Lookup cannot fail for flags registered above
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}

// applyTimeout applies timeout to ctx.
// Returns new context and cancel function.
func applyTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	// No timeout - return no-op cancel
	return ctx, func() {}
}
