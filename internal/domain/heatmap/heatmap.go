// Package heatmap prepares 2D pad grids for color-mapped display: empty
// cells are masked out of the populated color gradient, the color scale is
// chosen, and the display range is clamped.
package heatmap

import (
	"github.com/okian/beamplot/internal/domain/model"
)

// Physical pad grid geometry shared by every layer.
const (
	Rows = 13
	Cols = 20
)

// EmptyCellSentinel replaces exact-zero cells so the palette's under-range
// color renders "no data" distinctly from the minimum observed value.
const EmptyCellSentinel = -1.0

// Scale selects the color scale applied to the populated cells.
type Scale int

const (
	Linear Scale = iota
	Log
)

// Display is a grid ready for the rendering adapter.
type Display struct {
	Grid     *model.FrequencyGrid
	Scale    Scale
	VMin     float64
	VMax     float64
	Sentinel float64
}

// Option applies a configuration option to Normalize.
type Option func(*Display)

// WithRange clamps the displayed color range to [vmin, vmax].
func WithRange(vmin, vmax float64) Option {
	return func(d *Display) {
		if vmax > vmin {
			d.VMin = vmin
			d.VMax = vmax
		}
	}
}

// Normalize returns a display-ready copy of the grid. Exact-zero cells are
// replaced with the sentinel; every other cell is left untouched. The scale
// is logarithmic when log is set, linear otherwise.
func Normalize(grid *model.FrequencyGrid, log bool, opts ...Option) *Display {
	masked := model.NewFrequencyGrid(grid.Rows, grid.Cols)
	vmax := 0.0
	for i, v := range grid.Cells {
		if v == 0 {
			masked.Cells[i] = EmptyCellSentinel
			continue
		}
		masked.Cells[i] = v
		if v > vmax {
			vmax = v
		}
	}
	if vmax == 0 {
		vmax = 1
	}

	d := &Display{
		Grid:     masked,
		Scale:    Linear,
		VMin:     0,
		VMax:     vmax,
		Sentinel: EmptyCellSentinel,
	}
	if log {
		d.Scale = Log
	}

	for _, opt := range opts {
		opt(d)
	}
	return d
}

// RowLabels returns the display labels for grid rows: row 0 of the matrix
// shows at the top carrying the highest label, reproducing the bottom-up
// physical coordinate convention.
func RowLabels(rows int) []int {
	labels := make([]int, rows)
	for i := range labels {
		labels[i] = rows - i - 1
	}
	return labels
}

// PadBoundaries returns the half-integer offsets where lines are drawn to
// delineate individual pads between n cells.
func PadBoundaries(n int) []float64 {
	offsets := make([]float64, n-1)
	for i := range offsets {
		offsets[i] = 0.5 + float64(i)
	}
	return offsets
}
