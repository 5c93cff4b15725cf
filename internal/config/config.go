package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/terminalsin/no-cluely/detect"
)

const (
	DefaultConfigPath = "cluely.config.yml"

	envIdentifiers      = "CLUELY_IDENTIFIERS"
	envIncludeOffscreen = "CLUELY_INCLUDE_OFFSCREEN"
	envFormat           = "CLUELY_FORMAT"
	envLogLevel         = "CLUELY_LOG_LEVEL"
	envSummaryFile      = "CLUELY_SUMMARY_FILE"
	envNoColor          = "CLUELY_NO_COLOR"
)

// Loader merges configuration coming from a file, environment variables, and
// CLI flags, in that order of increasing precedence.
type Loader struct {
	ConfigPath string
}

// RuntimeConfig contains the fully merged settings the sub-commands need.
type RuntimeConfig struct {
	Identifiers      []string
	IncludeOffscreen bool
	Format           string
	LogLevel         string
	SummaryFile      string
	NoColor          bool
}

// Overrides captures values coming from env vars or CLI flags. Pointer fields
// distinguish "unset" from an explicit false.
type Overrides struct {
	Identifiers      []string
	IncludeOffscreen *bool
	Format           string
	LogLevel         string
	SummaryFile      string
	NoColor          *bool
}

// DefaultRuntimeConfig returns the baseline configuration when nothing
// overrides it.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Identifiers: detect.DefaultIdentifiers,
		Format:      "text",
		LogLevel:    "info",
	}
}

// Load resolves the final runtime configuration.
func (l Loader) Load(override Overrides) (RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()
	path := l.ConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	if fileExists(path) {
		fileOv, err := loadFromFile(path)
		if err != nil {
			return cfg, err
		}
		cfg.apply(fileOv)
	}

	cfg.apply(overridesFromEnv())
	cfg.apply(override)

	return cfg, nil
}

// Validate ensures the merged config is usable by the sub-commands.
func (c RuntimeConfig) Validate() error {
	if len(c.Identifiers) == 0 {
		return errors.New("no identifiers configured; provide --identifiers or set CLUELY_IDENTIFIERS")
	}

	switch c.Format {
	case "text", "json":
	default:
		return errors.Errorf("unknown output format %q (expected text or json)", c.Format)
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.Errorf("unknown log level %q", c.LogLevel)
	}

	return nil
}

func (c *RuntimeConfig) apply(src Overrides) {
	if len(src.Identifiers) > 0 {
		c.Identifiers = cleanList(src.Identifiers)
	}

	if src.IncludeOffscreen != nil {
		c.IncludeOffscreen = *src.IncludeOffscreen
	}

	if src.Format != "" {
		c.Format = strings.ToLower(strings.TrimSpace(src.Format))
	}

	if src.LogLevel != "" {
		c.LogLevel = strings.ToLower(strings.TrimSpace(src.LogLevel))
	}

	if src.SummaryFile != "" {
		c.SummaryFile = src.SummaryFile
	}

	if src.NoColor != nil {
		c.NoColor = *src.NoColor
	}
}

type rawConfig struct {
	Identifiers      []string `yaml:"identifiers"`
	IncludeOffscreen *bool    `yaml:"includeOffscreen"`
	Format           string   `yaml:"format"`
	LogLevel         string   `yaml:"logLevel"`
	SummaryFile      string   `yaml:"summaryFile"`
	NoColor          *bool    `yaml:"noColor"`
}

func loadFromFile(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, errors.Wrapf(err, "read config file %s", path)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Overrides{}, errors.Wrapf(err, "parse config file %s", path)
	}

	return Overrides{
		Identifiers:      raw.Identifiers,
		IncludeOffscreen: raw.IncludeOffscreen,
		Format:           raw.Format,
		LogLevel:         raw.LogLevel,
		SummaryFile:      raw.SummaryFile,
		NoColor:          raw.NoColor,
	}, nil
}

func overridesFromEnv() Overrides {
	ov := Overrides{}

	if value := os.Getenv(envIdentifiers); value != "" {
		ov.Identifiers = ParseIdentifiersList(value)
	}

	if value := os.Getenv(envIncludeOffscreen); value != "" {
		parsed := parseBool(value)
		ov.IncludeOffscreen = &parsed
	}

	if value := os.Getenv(envFormat); value != "" {
		ov.Format = value
	}

	if value := os.Getenv(envLogLevel); value != "" {
		ov.LogLevel = value
	}

	if value := os.Getenv(envSummaryFile); value != "" {
		ov.SummaryFile = value
	}

	if value := os.Getenv(envNoColor); value != "" {
		parsed := parseBool(value)
		ov.NoColor = &parsed
	}

	return ov
}

// ParseIdentifiersList turns comma or newline separated input into individual
// identifiers.
func ParseIdentifiersList(input string) []string {
	if input == "" {
		return nil
	}

	parts := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	return cleanList(parts)
}

func cleanList(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}

func parseBool(value string) bool {
	return strings.EqualFold(value, "true") || value == "1"
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
