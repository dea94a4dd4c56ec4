package engine_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/integrix/engine"
	"github.com/katalvlaran/integrix/numeric"
	"github.com/katalvlaran/integrix/plotdata"
	"github.com/katalvlaran/integrix/quadrature"
)

// writeConfig drops YAML into a fresh temp dir and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "integrix.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

//----------------------------------------------------------------------------//
// Defaults
//----------------------------------------------------------------------------//

// TestDefaultConfig: the canonical configuration mirrors the package
// defaults of every stage.
func TestDefaultConfig(t *testing.T) {
	cfg := engine.DefaultConfig()

	assert.Equal(t, 5*time.Second, cfg.QuadratureTimeout)
	assert.Equal(t, 3*time.Second, cfg.SymbolicTimeout)
	assert.Equal(t, 1e-6, cfg.WarnThreshold)
	assert.Equal(t, numeric.DefaultOptions(), cfg.Numeric)
	assert.Equal(t, quadrature.DefaultOptions(), cfg.Quadrature)
	assert.Equal(t, plotdata.DefaultOptions(), cfg.Plot)
}

//----------------------------------------------------------------------------//
// File Overlay
//----------------------------------------------------------------------------//

// TestLoadConfig_Overlay: every YAML field lands on its Config slot.
func TestLoadConfig_Overlay(t *testing.T) {
	path := writeConfig(t, `
quadrature_timeout: 250ms
symbolic_timeout: 1s
warn_threshold: 0.001
margin_frac: 0.1
samples: 64
abs_tol: 1e-9
rel_tol: 1e-9
max_intervals: 9
fill_samples: 32
`)

	cfg, err := engine.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.QuadratureTimeout)
	assert.Equal(t, time.Second, cfg.SymbolicTimeout)
	assert.Equal(t, 0.001, cfg.WarnThreshold)
	assert.Equal(t, 0.1, cfg.Numeric.MarginFrac)
	assert.Equal(t, 64, cfg.Numeric.Samples)
	assert.Equal(t, 1e-9, cfg.Quadrature.AbsTol)
	assert.Equal(t, 1e-9, cfg.Quadrature.RelTol)
	assert.Equal(t, 9, cfg.Quadrature.MaxIntervals)
	assert.Equal(t, 32, cfg.Plot.FillSamples)
}

// TestLoadConfig_PartialKeepsDefaults: absent fields keep their
// defaults rather than zeroing out.
func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "samples: 128\n")

	cfg, err := engine.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 128, cfg.Numeric.Samples)
	assert.Equal(t, numeric.DefaultOptions().MarginFrac, cfg.Numeric.MarginFrac)
	assert.Equal(t, engine.DefaultQuadratureTimeout, cfg.QuadratureTimeout)
	assert.Equal(t, quadrature.DefaultOptions(), cfg.Quadrature)
	assert.Equal(t, plotdata.DefaultOptions(), cfg.Plot)
}

// TestLoadConfig_EmptyFile: an empty file is exactly the defaults.
func TestLoadConfig_EmptyFile(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := engine.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, engine.DefaultConfig(), cfg)
}

//----------------------------------------------------------------------------//
// Bad Input
//----------------------------------------------------------------------------//

// TestLoadConfig_Errors: missing files, broken YAML, and unparseable
// durations each fail with a message naming the offending part.
func TestLoadConfig_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	cases := []struct {
		name     string
		path     string
		wantPart string
	}{
		{"MissingFile", missing, "read config"},
		{"BrokenYAML", writeConfig(t, "samples: [unclosed\n"), "parse config"},
		{"BadDuration", writeConfig(t, "quadrature_timeout: soon\n"), "quadrature_timeout"},
		{"BadSymbolicDuration", writeConfig(t, "symbolic_timeout: later\n"), "symbolic_timeout"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.LoadConfig(tc.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantPart)
		})
	}
}
