package workload

import "fmt"

// Output formats understood by Render.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config holds the settings shared by every workload.
type Config struct {
	Ops      int    `mapstructure:"ops" yaml:"ops"`             // elements pushed by Grow
	Reserve  int    `mapstructure:"reserve" yaml:"reserve"`     // up-front Reserve, 0 for none
	MaxBytes int    `mapstructure:"max_bytes" yaml:"max_bytes"` // storage budget, 0 for none
	Shrink   bool   `mapstructure:"shrink" yaml:"shrink"`       // ShrinkToFit after Grow
	Output   string `mapstructure:"output" yaml:"output"`       // table, json or yaml
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Ops:    16,
		Output: FormatTable,
	}
}

// Validate checks the configuration for values no workload can run with.
func (c Config) Validate() error {
	if c.Ops < 0 {
		return fmt.Errorf("ops must not be negative, got %d", c.Ops)
	}
	if c.Reserve < 0 {
		return fmt.Errorf("reserve must not be negative, got %d", c.Reserve)
	}
	if c.MaxBytes < 0 {
		return fmt.Errorf("max_bytes must not be negative, got %d", c.MaxBytes)
	}
	switch c.Output {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	return nil
}
