// Package system provides infrastructure for run configuration.
// Values are layered by viper: defaults, then the optional .soustack.yaml
// file, then SOUSTACK_* environment variables, then command-line flags.
package system

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// Configuration keys shared by flags, env vars and the config file.
const (
	KeyRoot       = "root"
	KeyRecipesDir = "recipes_dir"
	KeyPattern    = "pattern"
	KeyFormat     = "format"
	KeyOutput     = "output"
	KeyStrict     = "strict"
	KeyColor      = "color"
	KeyTimeout    = "timeout"
)

// EnvPrefix is the prefix for environment variable overrides (SOUSTACK_STRICT etc).
const EnvPrefix = "SOUSTACK"

// ConfigName is the base name of the optional config file.
const ConfigName = ".soustack"

// ColorMode controls ANSI styling of the text report.
type ColorMode string

const (
	// ColorAuto styles output only when writing to a terminal
	ColorAuto ColorMode = "auto"

	// ColorAlways forces styling
	ColorAlways ColorMode = "always"

	// ColorNever disables styling
	ColorNever ColorMode = "never"
)

var validFormats = []string{"text", "json", "yaml", "junit", "sarif"}

// Config represents the resolved run configuration.
type Config struct {
	Root       string        `mapstructure:"root" yaml:"root"`
	RecipesDir string        `mapstructure:"recipes_dir" yaml:"recipes_dir"`
	Pattern    string        `mapstructure:"pattern" yaml:"pattern"`
	Format     string        `mapstructure:"format" yaml:"format"`
	Output     string        `mapstructure:"output" yaml:"output"`
	Color      ColorMode     `mapstructure:"color" yaml:"color"`
	Timeout    time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Strict     bool          `mapstructure:"strict" yaml:"strict"`
}

// DefaultConfig returns a Config with the defaults used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Root:       ".",
		RecipesDir: "recipes",
		Pattern:    "**/*.soustack.json",
		Format:     "text",
		Output:     "",
		Color:      ColorAuto,
		Timeout:    0, // 0 means no timeout
		Strict:     false,
	}
}

// SetDefaults registers every key with its default so that env vars
// are visible to Unmarshal even without a config file.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault(KeyRoot, d.Root)
	v.SetDefault(KeyRecipesDir, d.RecipesDir)
	v.SetDefault(KeyPattern, d.Pattern)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyOutput, d.Output)
	v.SetDefault(KeyColor, string(d.Color))
	v.SetDefault(KeyTimeout, d.Timeout)
	v.SetDefault(KeyStrict, d.Strict)
}

// ConfigureEnv enables SOUSTACK_* environment overrides on v.
func ConfigureEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.RecipesDir == "" {
		return fmt.Errorf("%s must not be empty", KeyRecipesDir)
	}
	if !doublestar.ValidatePattern(c.Pattern) {
		return fmt.Errorf("invalid %s %q", KeyPattern, c.Pattern)
	}
	if !slices.Contains(validFormats, c.Format) {
		return fmt.Errorf("invalid format: %s (valid: %s)", c.Format, strings.Join(validFormats, ", "))
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode: %s (valid: auto, always, never)", c.Color)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%s must not be negative", KeyTimeout)
	}
	return nil
}

// UseColor reports whether output written to w should be styled.
// Auto mode honours NO_COLOR and requires w to be a terminal.
func (c *Config) UseColor(w io.Writer) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: fd fits in int
}
