// Package config resolves the runtime configuration of the centra CLI.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CENTRA_FORMAT.
const EnvPrefix = "CENTRA"

// Metric selects which centrality measures are printed.
const (
	MetricAll         = "all"
	MetricDegree      = "degree"
	MetricCloseness   = "closeness"
	MetricBetweenness = "betweenness"
)

// Output formats. FormatTable is human-oriented; the rest are codecs.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTOML  = "toml"
)

// ErrInvalid wraps every configuration problem found by Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all runtime configuration for a centra invocation.
// Values are populated from .centra.yaml, CENTRA_* env vars, and CLI flags.
type Config struct {
	Metric        string        `mapstructure:"metric"`
	Format        string        `mapstructure:"format"`
	Normalized    bool          `mapstructure:"normalized"`
	DirectedPaths bool          `mapstructure:"directed_paths"`
	Top           int           `mapstructure:"top"`
	Workers       int           `mapstructure:"workers"`
	Verbose       bool          `mapstructure:"verbose"`
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("metric", MetricAll)
	v.SetDefault("format", FormatTable)
	v.SetDefault("normalized", false)
	v.SetDefault("directed_paths", false)
	v.SetDefault("top", 0)
	v.SetDefault("workers", 1)
	v.SetDefault("verbose", false)
	v.SetDefault("watch_debounce", 200*time.Millisecond)
}

// Load reads configuration from v, applying built-in defaults for any values
// not set by config file, environment, or flags, and validates the result.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.Metric = strings.ToLower(cfg.Metric)
	cfg.Format = strings.ToLower(cfg.Format)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports every out-of-range setting at once.
func (c Config) Validate() error {
	var result *multierror.Error
	switch c.Metric {
	case MetricAll, MetricDegree, MetricCloseness, MetricBetweenness:
	default:
		result = multierror.Append(result, fmt.Errorf("%w: metric %q", ErrInvalid, c.Metric))
	}
	switch c.Format {
	case FormatTable, FormatJSON, FormatYAML, FormatTOML:
	default:
		result = multierror.Append(result, fmt.Errorf("%w: format %q", ErrInvalid, c.Format))
	}
	if c.Top < 0 {
		result = multierror.Append(result, fmt.Errorf("%w: top %d < 0", ErrInvalid, c.Top))
	}
	if c.Workers < 0 {
		result = multierror.Append(result, fmt.Errorf("%w: workers %d < 0", ErrInvalid, c.Workers))
	}
	if c.WatchDebounce < 0 {
		result = multierror.Append(result, fmt.Errorf("%w: watch_debounce %s < 0", ErrInvalid, c.WatchDebounce))
	}

	return result.ErrorOrNil()
}

// NewViper returns a viper instance wired to the CENTRA_ environment and, if
// found, a config file. cfgFile overrides the search for .centra.yaml in the
// working directory and $HOME. A missing default config file is not an error.
func NewViper(cfgFile, home string) (*viper.Viper, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".centra")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home != "" {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	return v, nil
}
