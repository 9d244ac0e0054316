package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// MaxPrecision bounds both precision settings. Beyond it decimal
	// arithmetic cost grows with no practical gain.
	MaxPrecision = 1000

	// lowPrecision is the threshold below which Warnings reports precision.
	lowPrecision = 10
)

// Load reads configuration from a file with ENV interpolation.
// If configPath is empty, MEASURE_CONFIG names the file.
func Load(configPath string, getenv func(string) string) (*Config, error) {
	cfg, _, err := LoadWithPath(configPath, getenv)
	return cfg, err
}

// LoadWithPath reads configuration and returns both the config and the resolved path.
func LoadWithPath(configPath string, getenv func(string) string) (*Config, string, error) {
	path, err := resolveConfigPath(configPath, getenv)
	if err != nil {
		return nil, "", err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data, getenv)
	if err != nil {
		return nil, "", err
	}
	cfg.BaseDir = filepath.Dir(absPath)

	return cfg, absPath, nil
}

// Parse decodes configuration YAML over the defaults, interpolating
// environment variables first, and validates the result.
func Parse(data []byte, getenv func(string) string) (*Config, error) {
	data = interpolateEnv(data, getenv)

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for errors.
func Validate(cfg *Config) error {
	var errs []string

	if p := cfg.Units.DivisionPrecision; p < 1 || p > MaxPrecision {
		errs = append(errs, fmt.Sprintf("invalid units.division_precision: %d (must be 1-%d)", p, MaxPrecision))
	}
	if p := cfg.Units.PowPrecision; p < 1 || p > MaxPrecision {
		errs = append(errs, fmt.Sprintf("invalid units.pow_precision: %d (must be 1-%d)", p, MaxPrecision))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// Warnings returns non-fatal configuration issues that should be reported to the user.
func Warnings(cfg *Config) []string {
	var warnings []string

	if cfg.Units.DivisionPrecision < lowPrecision {
		warnings = append(warnings, fmt.Sprintf("units.division_precision is %[1]d: conversions and quotients keep only %[1]d significant digits", cfg.Units.DivisionPrecision))
	}
	if cfg.Units.PowPrecision < lowPrecision {
		warnings = append(warnings, fmt.Sprintf("units.pow_precision is %d: fractional powers will be coarse", cfg.Units.PowPrecision))
	}

	return warnings
}

// resolveConfigPath picks the explicit path if given, then MEASURE_CONFIG.
func resolveConfigPath(explicit string, getenv func(string) string) (string, error) {
	path, source := explicit, "config file"
	if path == "" {
		path, source = getenv("MEASURE_CONFIG"), "MEASURE_CONFIG file"
	}
	if path == "" {
		return "", fmt.Errorf("no config file given and MEASURE_CONFIG is not set")
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%s not found: %s", source, path)
	}
	return path, nil
}

// interpolateEnv expands $NAME and ${NAME} from getenv. ${NAME:-fallback}
// uses fallback when NAME is unset or empty.
func interpolateEnv(data []byte, getenv func(string) string) []byte {
	return []byte(os.Expand(string(data), func(ref string) string {
		name, fallback, _ := strings.Cut(ref, ":-")
		if value := getenv(name); value != "" {
			return value
		}
		return fallback
	}))
}
