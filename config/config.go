// Package config loads the settings of the quickplot command from a YAML
// file and QUICKPLOT_ environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/vdobler/quickplot"
)

// Sentinel validation errors.
var (
	ErrInvalidFormat  = errors.New("invalid output format")
	ErrInvalidSize    = errors.New("output width and height must be positive")
	ErrInvalidPalette = errors.New("unknown palette")
	ErrInvalidBins    = errors.New("histogram bins must not be negative")
	ErrInvalidLogging = errors.New("invalid logging configuration")
)

// Default configuration values.
const (
	defaultDir       = "."
	defaultFormat    = "png"
	defaultPalette   = "bright"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

const (
	configName = "quickplot"
	configType = "yaml"
	envPrefix  = "QUICKPLOT"
)

// HTMLFormat selects interactive HTML charts instead of images.
const HTMLFormat = "html"

// Config holds all configuration of the quickplot command.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OutputConfig says where and how charts are written.
type OutputConfig struct {
	Dir    string  `mapstructure:"dir"`
	Format string  `mapstructure:"format"`
	Width  float64 `mapstructure:"width"`  // inches
	Height float64 `mapstructure:"height"` // inches
}

// ThemeConfig overrides parts of quickplot.DefaultTheme.
type ThemeConfig struct {
	Palette string `mapstructure:"palette"`
	Bins    int    `mapstructure:"bins"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig loads configuration from file and environment variables.
// An explicit configPath must exist; otherwise quickplot.yaml is looked
// up in the working directory and ./config and may be missing.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.SetConfigType(configType)
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
	}

	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperCfg.AutomaticEnv()

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &cfg, nil
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("output.dir", defaultDir)
	viperCfg.SetDefault("output.format", defaultFormat)
	viperCfg.SetDefault("output.width", quickplot.DefaultTheme.Width)
	viperCfg.SetDefault("output.height", quickplot.DefaultTheme.Height)

	viperCfg.SetDefault("theme.palette", defaultPalette)
	viperCfg.SetDefault("theme.bins", quickplot.DefaultTheme.HistBins)

	viperCfg.SetDefault("logging.level", defaultLogLevel)
	viperCfg.SetDefault("logging.format", defaultLogFormat)
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if !validFormat(c.Output.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Output.Format)
	}
	if c.Output.Width <= 0 || c.Output.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidSize, c.Output.Width, c.Output.Height)
	}
	if _, ok := quickplot.Palettes[c.Theme.Palette]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPalette, c.Theme.Palette)
	}
	if c.Theme.Bins < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBins, c.Theme.Bins)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: level %q", ErrInvalidLogging, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidLogging, c.Logging.Format)
	}
	return nil
}

func validFormat(format string) bool {
	if format == HTMLFormat {
		return true
	}
	for _, f := range quickplot.ImageFormats {
		if f == format {
			return true
		}
	}
	return false
}

// PlotTheme returns quickplot.DefaultTheme adjusted to c.
func (c *Config) PlotTheme() quickplot.Theme {
	t := quickplot.DefaultTheme
	t.Palette = c.Theme.Palette
	t.HistBins = c.Theme.Bins
	t.Width = c.Output.Width
	t.Height = c.Output.Height
	return t
}
