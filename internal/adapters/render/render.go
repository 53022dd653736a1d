// Package render draws finished numeric artifacts to PNG files using hplot
// and gonum/plot. It consumes histograms, profiles, and normalized heatmap
// grids; it never computes statistics itself.
package render

import (
	"gonum.org/v1/plot/vg"
)

// Default figure geometry.
const (
	defaultWidth  = 6 * vg.Inch
	defaultHeight = 4 * vg.Inch

	// Multi-panel figures follow the fixed 3x4 layer layout.
	tileRows = 3
	tileCols = 4
)

// emptyTileSlots are the panel positions deliberately left blank so ten
// physical layers fit the 3x4 figure.
var emptyTileSlots = map[int]bool{8: true, 11: true}

// TileSlot maps the i-th layer to its panel slot, skipping the blank slots.
func TileSlot(i int) int {
	slot := 0
	for ; ; slot++ {
		if emptyTileSlots[slot] {
			continue
		}
		if i == 0 {
			return slot
		}
		i--
	}
}

// Renderer writes chart files. The zero value is not usable; call New.
type Renderer struct {
	width  vg.Length
	height vg.Length
}

// Option applies a configuration option to the Renderer.
type Option func(*Renderer)

// WithSize sets the per-figure canvas size.
func WithSize(width, height vg.Length) Option {
	return func(r *Renderer) {
		if width > 0 && height > 0 {
			r.width = width
			r.height = height
		}
	}
}

// New constructs a Renderer with default figure geometry.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		width:  defaultWidth,
		height: defaultHeight,
	}

	// Apply all options
	for _, opt := range opts {
		opt(r)
	}

	return r
}
