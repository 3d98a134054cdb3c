package main

import (
	"github.com/soustack/recipes/internal/infrastructure/validation"
	"github.com/spf13/cobra"
)

// newSchemaCmd prints the JSON Schema used by --strict.
func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for recipe documents",
		Long: `Print the JSON Schema (draft 2020-12) that --strict checks recipes against.
Editors can use it for completion and inline validation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := cmd.OutOrStdout().Write(validation.RecipeSchema())
			return err
		},
	}
}
