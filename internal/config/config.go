package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Logger     LoggerConfig     `mapstructure:"logger"`
	Currencies CurrenciesConfig `mapstructure:"currencies"`
	Rates      RatesConfig      `mapstructure:"rates"`
	Display    DisplayConfig    `mapstructure:"display"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// CurrenciesConfig names a CSV or TOML file whose definitions extend the ISO registry.
type CurrenciesConfig struct {
	File string `mapstructure:"file"`
}

// RatesConfig names a YAML or TOML rate file. Worth entries are applied on top of it.
type RatesConfig struct {
	File  string            `mapstructure:"file"`
	Worth map[string]string `mapstructure:"worth"`
}

// DisplayConfig sets the number of fractional digits used for output.
// A precision of -1 means the default precision of each currency.
type DisplayConfig struct {
	Precision int `mapstructure:"precision"`
}

const envPrefix = "MONET"

// Load loads configuration from file and environment variables.
// If path is empty, monet.yaml is looked up in the working directory
// and in $HOME/.config/monet, and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("monet")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/monet")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// viper lower-cases map keys
	if len(cfg.Rates.Worth) > 0 {
		worth := make(map[string]string, len(cfg.Rates.Worth))
		for code, w := range cfg.Rates.Worth {
			worth[strings.ToUpper(code)] = w
		}
		cfg.Rates.Worth = worth
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return &cfg, nil
}

// Validate reports the first setting that is out of range.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logger.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format)
	}
	if c.Display.Precision < -1 || c.Display.Precision > 6 {
		return fmt.Errorf("display.precision must be between -1 and 6, got %v", c.Display.Precision)
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stderr")

	v.SetDefault("currencies.file", "")

	v.SetDefault("rates.file", "")

	v.SetDefault("display.precision", -1)
}
