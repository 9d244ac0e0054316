package config

import "github.com/sambeau/measure/pkg/units"

// Config represents the complete measure configuration
type Config struct {
	BaseDir string      `yaml:"-"` // Directory containing config file
	Units   UnitsConfig `yaml:"units"`
}

// UnitsConfig holds decimal precision settings for unit arithmetic
type UnitsConfig struct {
	DivisionPrecision int32 `yaml:"division_precision"` // Significant digits kept after a division (default: 34)
	PowPrecision      int32 `yaml:"pow_precision"`      // Significant digits kept for fractional or negative exponents (default: 34)
}

// Context returns the units.Context these settings describe.
func (c UnitsConfig) Context() units.Context {
	return units.Context{
		DivisionPrecision: c.DivisionPrecision,
		PowPrecision:      c.PowPrecision,
	}
}

// Defaults returns a Config with sensible defaults
func Defaults() *Config {
	return &Config{
		Units: UnitsConfig{
			DivisionPrecision: units.DefaultContext.DivisionPrecision,
			PowPrecision:      units.DefaultContext.PowPrecision,
		},
	}
}
