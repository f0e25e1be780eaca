package cmd

import (
	"fmt"
	"math"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "BITMATCH"

const (
	DefaultInput    = "-"
	DefaultMaxInput = "0"
)

// Config holds the settings of a bitmatch run. Keys match the flag names.
type Config struct {
	Input    string `mapstructure:"input"`
	MaxInput string `mapstructure:"max-input"`
	Print    bool   `mapstructure:"print"`
	Verbose  bool   `mapstructure:"verbose"`
}

func DefaultConfig() Config {
	return Config{
		Input:    DefaultInput,
		MaxInput: DefaultMaxInput,
	}
}

func (cfg *Config) Validate() error {
	if cfg.Input == "" {
		return fmt.Errorf("invalid `input`; expected: a file path or %q", DefaultInput)
	}
	if _, err := cfg.MaxInputBytes(); err != nil {
		return err
	}
	return nil
}

// MaxInputBytes returns the input size limit in bytes, 0 meaning no limit.
// Sizes carry a unit: 512K, 64M, 1G, 100B.
func (cfg *Config) MaxInputBytes() (uint64, error) {
	if cfg.MaxInput == "" || cfg.MaxInput == "0" {
		return 0, nil
	}
	n, err := bytefmt.ToBytes(cfg.MaxInput)
	if err != nil {
		return 0, fmt.Errorf("invalid `max-input` %q: %w", cfg.MaxInput, err)
	}
	if n > math.MaxInt64 {
		n = math.MaxInt64
	}
	return n, nil
}

// loadConfig merges, from highest priority to lowest, flags set on the
// command line, BITMATCH_* environment variables, the file named by
// --config and the defaults.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("failed to bind flags: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
