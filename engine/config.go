package engine

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/integrix/numeric"
	"github.com/katalvlaran/integrix/plotdata"
	"github.com/katalvlaran/integrix/quadrature"
)

// Stage timeout and warning defaults.
const (
	// DefaultQuadratureTimeout bounds the numeric side; hitting it is a
	// quadrature failure.
	DefaultQuadratureTimeout = 5 * time.Second
	// DefaultSymbolicTimeout bounds the symbolic chain; hitting it just
	// means no closed form.
	DefaultSymbolicTimeout = 3 * time.Second
	// DefaultWarnThreshold is the error estimate above which a success
	// carries a warning.
	DefaultWarnThreshold = 1e-6
)

// Config collects every tunable of the pipeline. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	QuadratureTimeout time.Duration
	SymbolicTimeout   time.Duration
	WarnThreshold     float64

	Numeric    numeric.Options
	Quadrature quadrature.Options
	Plot       plotdata.Options
}

// DefaultConfig returns the canonical configuration.
func DefaultConfig() Config {
	return Config{
		QuadratureTimeout: DefaultQuadratureTimeout,
		SymbolicTimeout:   DefaultSymbolicTimeout,
		WarnThreshold:     DefaultWarnThreshold,
		Numeric:           numeric.DefaultOptions(),
		Quadrature:        quadrature.DefaultOptions(),
		Plot:              plotdata.DefaultOptions(),
	}
}

// configFile is the YAML schema. Every field is optional; absent or
// zero fields keep their defaults. Durations are Go duration strings
// ("5s", "250ms").
type configFile struct {
	QuadratureTimeout string  `yaml:"quadrature_timeout"`
	SymbolicTimeout   string  `yaml:"symbolic_timeout"`
	WarnThreshold     float64 `yaml:"warn_threshold"`
	MarginFrac        float64 `yaml:"margin_frac"`
	Samples           int     `yaml:"samples"`
	AbsTol            float64 `yaml:"abs_tol"`
	RelTol            float64 `yaml:"rel_tol"`
	MaxIntervals      int     `yaml:"max_intervals"`
	FillSamples       int     `yaml:"fill_samples"`
}

// LoadConfig reads a YAML file and overlays it on DefaultConfig.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("engine: read config: %w", err)
	}
	var file configFile
	if err = yaml.Unmarshal(raw, &file); err != nil {
		return Config{}, fmt.Errorf("engine: parse config: %w", err)
	}

	cfg := DefaultConfig()
	if file.QuadratureTimeout != "" {
		if cfg.QuadratureTimeout, err = time.ParseDuration(file.QuadratureTimeout); err != nil {
			return Config{}, fmt.Errorf("engine: quadrature_timeout: %w", err)
		}
	}
	if file.SymbolicTimeout != "" {
		if cfg.SymbolicTimeout, err = time.ParseDuration(file.SymbolicTimeout); err != nil {
			return Config{}, fmt.Errorf("engine: symbolic_timeout: %w", err)
		}
	}
	if file.WarnThreshold > 0 {
		cfg.WarnThreshold = file.WarnThreshold
	}
	if file.MarginFrac > 0 {
		cfg.Numeric.MarginFrac = file.MarginFrac
	}
	if file.Samples > 0 {
		cfg.Numeric.Samples = file.Samples
	}
	if file.AbsTol > 0 {
		cfg.Quadrature.AbsTol = file.AbsTol
	}
	if file.RelTol > 0 {
		cfg.Quadrature.RelTol = file.RelTol
	}
	if file.MaxIntervals > 0 {
		cfg.Quadrature.MaxIntervals = file.MaxIntervals
	}
	if file.FillSamples > 0 {
		cfg.Plot.FillSamples = file.FillSamples
	}

	return cfg, nil
}
