package plotdata_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/integrix/plotdata"
)

//----------------------------------------------------------------------------//
// Validation Tests
//----------------------------------------------------------------------------//

// TestBuild_Validation exercises every input sentinel.
func TestBuild_Validation(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 1, 4}
	cases := []struct {
		name    string
		xs, ys  []float64
		lo, hi  float64
		opts    plotdata.Options
		wantErr error
	}{
		{"LengthMismatch", xs, ys[:2], 0, 2, plotdata.DefaultOptions(), plotdata.ErrDimensionMismatch},
		{"EqualBounds", xs, ys, 1, 1, plotdata.DefaultOptions(), plotdata.ErrBadBounds},
		{"ReversedBounds", xs, ys, 2, 0, plotdata.DefaultOptions(), plotdata.ErrBadBounds},
		{"NaNBound", xs, ys, math.NaN(), 2, plotdata.DefaultOptions(), plotdata.ErrBadBounds},
		{"InfiniteBound", xs, ys, 0, math.Inf(1), plotdata.DefaultOptions(), plotdata.ErrBadBounds},
		{"OneFillSample", xs, ys, 0, 2, plotdata.Options{FillSamples: 1}, plotdata.ErrBadSamples},
		{
			"AllMasked",
			[]float64{0, 1}, []float64{math.NaN(), math.Inf(1)},
			0, 1, plotdata.DefaultOptions(), plotdata.ErrNoRenderablePoints,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := plotdata.Build(tc.xs, tc.ys, tc.lo, tc.hi, tc.opts)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

//----------------------------------------------------------------------------//
// Curve and Fill Tests
//----------------------------------------------------------------------------//

// TestBuild_CleanSamples: all-finite input keeps every point and lays
// the fill strip exactly across the bounds.
func TestBuild_CleanSamples(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, 4, 9}

	pd, err := plotdata.Build(xs, ys, 1, 3, plotdata.Options{FillSamples: 5})
	require.NoError(t, err)

	assert.Len(t, pd.Curve, 4)
	assert.Zero(t, pd.Masked)

	require.Len(t, pd.Fill, 5)
	assert.InDelta(t, 1.0, pd.Fill[0].X, 1e-12)
	assert.InDelta(t, 3.0, pd.Fill[4].X, 1e-12)
	// Linear interpolation between the bracketing samples.
	assert.InDelta(t, 2.5, pd.Fill[1].Y, 1e-12, "midpoint of (1,1)-(2,4)")
	assert.InDelta(t, 4.0, pd.Fill[2].Y, 1e-12)
	assert.InDelta(t, 6.5, pd.Fill[3].Y, 1e-12, "midpoint of (2,4)-(3,9)")
}

// TestBuild_MasksPole: a NaN sample disappears from the curve but the
// fill still bridges the gap from the finite flanks.
func TestBuild_MasksPole(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, math.NaN(), 9}

	pd, err := plotdata.Build(xs, ys, 1, 3, plotdata.Options{FillSamples: 5})
	require.NoError(t, err)

	assert.Len(t, pd.Curve, 3)
	assert.Equal(t, 1, pd.Masked)
	for _, p := range pd.Curve {
		assert.False(t, math.IsNaN(p.Y))
	}

	require.Len(t, pd.Fill, 5)
	// x=2 interpolates across the gap between (1,1) and (3,9).
	assert.InDelta(t, 5.0, pd.Fill[2].Y, 1e-12)
}

// TestBuild_ClampsToSupport: the strip never extends past the sampled
// support even when the bounds do.
func TestBuild_ClampsToSupport(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{1, 1, 1, 1}

	pd, err := plotdata.Build(xs, ys, -5, 5, plotdata.Options{FillSamples: 11})
	require.NoError(t, err)

	require.NotEmpty(t, pd.Fill)
	assert.InDelta(t, 0.0, pd.Fill[0].X, 1e-12)
	assert.InDelta(t, 3.0, pd.Fill[len(pd.Fill)-1].X, 1e-12)
}

// TestBuild_DisjointSupport: bounds entirely outside the finite support
// leave nothing to shade, which is not an error.
func TestBuild_DisjointSupport(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, 4, 9}

	pd, err := plotdata.Build(xs, ys, 10, 20, plotdata.DefaultOptions())
	require.NoError(t, err)

	assert.Len(t, pd.Curve, 4)
	assert.Empty(t, pd.Fill)
}

// TestBuild_SingleFiniteSample: one good sample still renders, with a
// degenerate one-point fill.
func TestBuild_SingleFiniteSample(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{math.NaN(), 4, math.Inf(-1)}

	pd, err := plotdata.Build(xs, ys, 0, 2, plotdata.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 2, pd.Masked)
	require.Len(t, pd.Curve, 1)
	require.Len(t, pd.Fill, 1)
	assert.InDelta(t, 1.0, pd.Fill[0].X, 1e-12)
	assert.InDelta(t, 4.0, pd.Fill[0].Y, 1e-12)
}
