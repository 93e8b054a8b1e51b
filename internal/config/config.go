package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Log     Log     `mapstructure:"log"`
	Report  Report  `mapstructure:"report"`
	Metrics Metrics `mapstructure:"metrics"`
	Demo    Demo    `mapstructure:"demo"`
}

type Log struct {
	Level int `mapstructure:"level"`
}

type Report struct {
	// Unit durations are displayed in: ns, us, ms or s.
	Unit string `mapstructure:"unit"`
	// Format is one of text, table or json.
	Format string `mapstructure:"format"`
}

type Metrics struct {
	Enabled bool `mapstructure:"enabled"`
}

type Demo struct {
	// Scale multiplies every sleep of the demo scenarios.
	Scale float64 `mapstructure:"scale"`
}

var cfg *Config

// Get configuration bound to environment variables, the config file and command line flags.
func Get() Config {
	if cfg != nil {
		return *cfg
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnvs(Config{})

	viper.SetDefault("log.level", int(logrus.InfoLevel))
	viper.SetDefault("report.unit", "ms")
	viper.SetDefault("report.format", "text")
	viper.SetDefault("demo.scale", 1.0)

	cfg = &Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		panic(fmt.Errorf("parsing configuration: %v", err))
	}

	if cfg.Log.Level == 0 {
		cfg.Log.Level = int(logrus.InfoLevel)
	}

	unit, err := normalizeUnit(cfg.Report.Unit)
	if err != nil {
		invalid("REPORT_UNIT", err)
	}
	cfg.Report.Unit = unit

	format, err := normalizeFormat(cfg.Report.Format)
	if err != nil {
		invalid("REPORT_FORMAT", err)
	}
	cfg.Report.Format = format

	if cfg.Demo.Scale < 0 {
		invalid("DEMO_SCALE", fmt.Errorf("must not be negative, got %v", cfg.Demo.Scale))
	}

	return *cfg
}

// Reset is used only for unit testing to reset configuration and rebind variables.
func Reset() {
	cfg = nil
}

func invalid(variable string, err error) {
	panic(fmt.Errorf("env variable %s is invalid: %w", variable, err))
}
