package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/soustack/recipes/internal/infrastructure/system"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootOptions holds state shared by the root command and its subcommands.
type rootOptions struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
}

// newRootCmd builds the application entry point.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "validate-recipes",
		Short: "Validate Soustack recipe files",
		Long: `validate-recipes checks every recipe under the recipes directory
(recipes/**/*.soustack.json by default). Each recipe must be a JSON object
with name, version, profile, description and steps; the profile must be one
of base, lite, scalable or timed and must match the directory the recipe
lives in; steps must be a non-empty array of objects carrying id and uses.

All findings across all files are reported together. The exit code is 0
when every recipe is valid and 1 otherwise, including when no recipes are
found.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd.ErrOrStderr(), opts.verbose)
			return opts.initConfig()
		},
		RunE:          withContainer(opts.v, runValidate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is ./.soustack.yaml or $HOME/.soustack.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	registerValidateFlags(cmd, opts.v)

	cmd.AddCommand(newVersionCmd(), newSchemaCmd())
	return cmd
}

// initConfig loads configuration from the config file and environment.
func (o *rootOptions) initConfig() error {
	system.ConfigureEnv(o.v)

	if o.cfgFile != "" {
		o.v.SetConfigFile(o.cfgFile)
	} else {
		o.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			o.v.AddConfigPath(home)
		}
		o.v.SetConfigType("yaml")
		o.v.SetConfigName(system.ConfigName)
	}

	if err := o.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if o.cfgFile == "" && errors.As(err, &notFound) {
			slog.Debug("no config file found, using defaults")
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	slog.Debug("using config file", "file", o.v.ConfigFileUsed())
	return nil
}

// setupLogging installs the default logger. Logs go to w (stderr) so
// stdout carries only the report.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
