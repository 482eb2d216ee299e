package config

import (
	"slices"
	"strings"

	"github.com/arthur-debert/modulify/pkg/errors"
)

// Config is the complete modulify configuration.
type Config struct {
	Logging LoggingConfig `koanf:"logging" toml:"logging"`
	Codecs  CodecsConfig  `koanf:"codecs" toml:"codecs"`
	Convert ConvertConfig `koanf:"convert" toml:"convert"`
}

type LoggingConfig struct {
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

// CodecsConfig selects the codecs installed into the module provider.
type CodecsConfig struct {
	// Enabled lists codec names in registration order.
	Enabled []string `koanf:"enabled" toml:"enabled"`
	// ForceBinary marks text codecs that are also registered for
	// stream dispatch.
	ForceBinary map[string]bool `koanf:"force_binary" toml:"force_binary"`
}

type ConvertConfig struct {
	DefaultTarget string `koanf:"default_target" toml:"default_target"`
	Indent        int    `koanf:"indent" toml:"indent"`
}

// IsEnabled reports whether the named codec is enabled.
func (c *CodecsConfig) IsEnabled(name string) bool {
	return slices.Contains(c.Enabled, normalize(name))
}

// IsForcedBinary reports whether the named text codec is forced into
// stream dispatch.
func (c *CodecsConfig) IsForcedBinary(name string) bool {
	return c.ForceBinary[normalize(name)]
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Logging.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigParse, "logging.verbosity must not be negative, got %d", c.Logging.Verbosity)
	}
	if c.Convert.Indent < 0 || c.Convert.Indent > 8 {
		return errors.Newf(errors.ErrConfigParse, "convert.indent must be between 0 and 8, got %d", c.Convert.Indent)
	}
	return nil
}

// normalizeNames lowercases codec names and drops blanks and repeats.
func (c *Config) normalizeNames() {
	var enabled []string
	for _, name := range c.Codecs.Enabled {
		name = normalize(name)
		if name == "" || slices.Contains(enabled, name) {
			continue
		}
		enabled = append(enabled, name)
	}
	c.Codecs.Enabled = enabled

	forced := make(map[string]bool, len(c.Codecs.ForceBinary))
	for name, on := range c.Codecs.ForceBinary {
		forced[normalize(name)] = on
	}
	c.Codecs.ForceBinary = forced

	c.Convert.DefaultTarget = normalize(c.Convert.DefaultTarget)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
