// Package render draws the engine's plot series to SVG or PNG: the
// curve, a shaded fill under it between the integration bounds, a
// dashed grid, axis labels and a legend. It consumes plotdata values
// only, so the drawing backend stays swappable.
package render
