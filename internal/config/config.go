// Package config defines the data structures related to configuration and
// includes functions for loading and checking the config.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/iwvelando/impact-dashboard/internal/impact"
	"github.com/iwvelando/impact-dashboard/pkg/constants"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for impact-dashboard.
type Configuration struct {
	Title    string        `mapstructure:"title" yaml:"title"`
	Subtitle string        `mapstructure:"subtitle" yaml:"subtitle"`
	Seed     Seed          `mapstructure:"seed" yaml:"seed"`
	Logging  LoggingConfig `mapstructure:"logging" yaml:"logging,omitempty"`
	Output   OutputConfig  `mapstructure:"output" yaml:"output,omitempty"`
}

// Seed holds the starting value, in millions, of each impact category.
type Seed struct {
	Direct   float64 `mapstructure:"direct" yaml:"direct"`
	Indirect float64 `mapstructure:"indirect" yaml:"indirect"`
	Induced  float64 `mapstructure:"induced" yaml:"induced"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`         // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format,omitempty"` // pretty, csv, json
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("title", constants.DefaultTitle)
	v.SetDefault("subtitle", constants.DefaultSubtitle)
	v.SetDefault("seed.direct", constants.SeedDirect)
	v.SetDefault("seed.indirect", constants.SeedIndirect)
	v.SetDefault("seed.induced", constants.SeedInduced)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", "")
	return v
}

// Default returns the configuration used when no file is present.
func Default() *Configuration {
	return &Configuration{
		Title:    constants.DefaultTitle,
		Subtitle: constants.DefaultSubtitle,
		Seed: Seed{
			Direct:   constants.SeedDirect,
			Indirect: constants.SeedIndirect,
			Induced:  constants.SeedInduced,
		},
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file yields the defaults.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	if configPath == "" {
		return decode(v)
	}

	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			return decode(v)
		}
		return nil, eris.Wrapf(err, "error reading config file %s", configPath)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from an io.Reader.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, eris.Wrap(err, "error reading config data")
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, eris.Wrap(err, "unable to decode into struct")
	}
	return &configuration, nil
}

// NewModel builds an impact model from the configured seed values.
func (c *Configuration) NewModel() *impact.Model {
	return impact.NewModelWithValues(c.Seed.Direct, c.Seed.Indirect, c.Seed.Induced)
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if strings.TrimSpace(c.Title) == "" {
		warnings = append(warnings, "title is empty")
	}

	seeds := []struct {
		name  string
		value float64
	}{
		{constants.CategoryDirect, c.Seed.Direct},
		{constants.CategoryIndirect, c.Seed.Indirect},
		{constants.CategoryInduced, c.Seed.Induced},
	}
	for _, s := range seeds {
		if s.value < 0 {
			warnings = append(warnings, fmt.Sprintf("seed for %s is negative (%g)", s.name, s.value))
		}
	}

	if c.Seed.Direct == 0 {
		warnings = append(warnings, fmt.Sprintf("seed for %s is zero, the economic multiplier will be undefined", constants.CategoryDirect))
	}

	return warnings
}
