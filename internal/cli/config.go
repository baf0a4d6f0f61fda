package cli

import (
	"errors"
	"fmt"

	"github.com/pavanmanishd/vector/internal/workload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initConfig wires config file, environment and flags into v.
// Flags win over environment, which wins over the config file.
func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("vecstat")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.vecstat")
	}

	// Set defaults
	def := workload.DefaultConfig()
	v.SetDefault("ops", def.Ops)
	v.SetDefault("reserve", def.Reserve)
	v.SetDefault("max_bytes", def.MaxBytes)
	v.SetDefault("shrink", def.Shrink)
	v.SetDefault("output", def.Output)

	// Allow environment variables
	v.SetEnvPrefix("VECSTAT")
	v.AutomaticEnv()

	if err := bindFlags(v, cmd); err != nil {
		return err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	} else {
		logger.Printf("using config file %s", v.ConfigFileUsed())
	}
	return nil
}

// bindFlags maps command-line flags onto config keys.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	bindings := map[string]string{
		"output":    "output",
		"max_bytes": "max-bytes",
		"ops":       "ops",
		"reserve":   "reserve",
		"shrink":    "shrink",
	}
	for key, name := range bindings {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

// loadConfig unmarshals and validates the effective configuration.
func loadConfig(v *viper.Viper) (workload.Config, error) {
	var cfg workload.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	logger.Printf("config: ops=%d reserve=%d max_bytes=%d shrink=%t output=%s",
		cfg.Ops, cfg.Reserve, cfg.MaxBytes, cfg.Shrink, cfg.Output)
	return cfg, nil
}
