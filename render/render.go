package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/integrix/plotdata"
)

// ErrNoData - the curve is empty; there is nothing to draw.
var ErrNoData = errors.New("render: no curve points")

// Default figure geometry.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 5 * vg.Inch
)

// Options sets the figure furniture. Zero-value strings stay empty on
// the figure; zero sizes fall back to the defaults.
type Options struct {
	// Title goes above the plot, e.g. "Integration of sin(x**2)".
	Title string
	// Legend labels the curve, e.g. "f(x) = sin(x**2)".
	Legend string
	// XLabel and YLabel name the axes.
	XLabel string
	YLabel string
	// Width and Height are the canvas size.
	Width  vg.Length
	Height vg.Length
}

// DefaultOptions returns the canonical figure configuration.
func DefaultOptions() Options {
	return Options{
		XLabel: "x",
		YLabel: "f(x)",
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// Figure is a composed plot ready to be written out.
type Figure struct {
	p    *plot.Plot
	opts Options
}

// New composes a figure from plot series: shaded fill first so the
// curve draws on top of it, then the dashed grid, labels and legend.
func New(pd plotdata.PlotData, opts Options) (*Figure, error) {
	if len(pd.Curve) == 0 {
		return nil, ErrNoData
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	grid := plotter.NewGrid()
	dashes := []vg.Length{vg.Points(2), vg.Points(2)}
	grid.Vertical.Dashes = dashes
	grid.Horizontal.Dashes = dashes
	p.Add(grid)

	if len(pd.Fill) > 0 {
		fill, err := plotter.NewLine(toXYs(pd.Fill))
		if err != nil {
			return nil, fmt.Errorf("render: fill series: %w", err)
		}
		fill.FillColor = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0x55}
		fill.LineStyle.Width = 0
		p.Add(fill)
	}

	curve, err := plotter.NewLine(toXYs(pd.Curve))
	if err != nil {
		return nil, fmt.Errorf("render: curve series: %w", err)
	}
	curve.Color = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	curve.Width = vg.Points(1.5)
	p.Add(curve)
	if opts.Legend != "" {
		p.Legend.Add(opts.Legend, curve)
		p.Legend.Top = true
	}

	return &Figure{p: p, opts: opts}, nil
}

// WriteSVG writes the figure as SVG.
func (f *Figure) WriteSVG(w io.Writer) error { return f.write(w, "svg") }

// WritePNG writes the figure as PNG.
func (f *Figure) WritePNG(w io.Writer) error { return f.write(w, "png") }

func (f *Figure) write(w io.Writer, format string) error {
	wt, err := f.p.WriterTo(f.opts.Width, f.opts.Height, format)
	if err != nil {
		return fmt.Errorf("render: %s writer: %w", format, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: write %s: %w", format, err)
	}

	return nil
}

func toXYs(points []plotdata.Point) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}

	return xys
}
