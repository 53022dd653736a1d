package render

import (
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/okian/beamplot/internal/domain/heatmap"
)

// paletteColors is the resolution of the rainbow gradient.
const paletteColors = 255

// HeatmapOptions carries the labels of one heatmap panel.
type HeatmapOptions struct {
	Title  string
	XLabel string
	YLabel string
}

// HeatmapPanel builds one color-mapped pad grid panel from a normalized
// display. Empty pads render in the under-range color; pad boundaries are
// drawn at half-integer offsets; row labels run bottom-up.
func (r *Renderer) HeatmapPanel(d *heatmap.Display, o HeatmapOptions) (*plot.Plot, error) {
	if d == nil || d.Grid == nil {
		return nil, ErrBadArtifact
	}

	grid := padGrid{d: d}

	// Blue-to-red gradient in the spirit of the "jet" colormap.
	pal := palette.Rainbow(paletteColors, palette.Blue, palette.Red, 1, 1, 1)
	hm := plotter.NewHeatMap(grid, pal)
	hm.Min = grid.rangeMin()
	hm.Max = grid.rangeMax()
	hm.Underflow = color.White
	hm.NaN = color.White

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	p.Add(hm)

	rows := d.Grid.Rows
	cols := d.Grid.Cols
	p.X.Tick.Marker = plot.ConstantTicks(integerTicks(cols))
	p.Y.Tick.Marker = plot.ConstantTicks(rowTicks(rows))

	addPadBoundaries(p, rows, cols)
	return p, nil
}

// padGrid adapts a normalized display to plotter.GridXYZ. Matrix row 0
// displays at the top, so plot rows are flipped.
type padGrid struct {
	d *heatmap.Display
}

func (g padGrid) Dims() (c, r int) { return g.d.Grid.Cols, g.d.Grid.Rows }
func (g padGrid) X(c int) float64  { return float64(c) }
func (g padGrid) Y(r int) float64  { return float64(r) }

func (g padGrid) Z(c, r int) float64 {
	v := g.d.Grid.At(g.d.Grid.Rows-1-r, c)
	if v == g.d.Sentinel {
		// always below Min, on any scale, so the under-range color applies
		return math.Inf(-1)
	}
	if g.d.Scale == heatmap.Log {
		if v <= 0 {
			return math.Inf(-1)
		}
		return math.Log10(v)
	}
	return v
}

func (g padGrid) rangeMin() float64 {
	if g.d.Scale != heatmap.Log {
		return g.d.VMin
	}
	return math.Log10(g.minPositive())
}

func (g padGrid) rangeMax() float64 {
	if g.d.Scale != heatmap.Log {
		return g.d.VMax
	}
	if g.d.VMax <= 0 {
		return 0
	}
	return math.Log10(g.d.VMax)
}

// minPositive finds the smallest populated cell for the log range floor.
func (g padGrid) minPositive() float64 {
	minV := math.Inf(1)
	for _, v := range g.d.Grid.Cells {
		if v > 0 && v < minV {
			minV = v
		}
	}
	if math.IsInf(minV, 1) {
		return 1
	}
	return minV
}

// rowTicks labels plot rows with the inverted physical convention: the top
// row carries the highest label.
func rowTicks(rows int) []plot.Tick {
	labels := heatmap.RowLabels(rows)
	ticks := make([]plot.Tick, rows)
	for m := 0; m < rows; m++ {
		y := rows - 1 - m // matrix row m displays at plot height y
		ticks[m] = plot.Tick{Value: float64(y), Label: strconv.Itoa(labels[m])}
	}
	return ticks
}

func integerTicks(n int) []plot.Tick {
	ticks := make([]plot.Tick, n)
	for i := 0; i < n; i++ {
		ticks[i] = plot.Tick{Value: float64(i), Label: strconv.Itoa(i)}
	}
	return ticks
}

// addPadBoundaries draws gray lines between every row and column so each
// pad reads as one cell.
func addPadBoundaries(p *plot.Plot, rows, cols int) {
	gray := color.Gray{Y: 0x80}
	style := draw.LineStyle{Color: gray, Width: 0.5 * vg.Millimeter / 2}

	xmin, xmax := -0.5, float64(cols)-0.5
	ymin, ymax := -0.5, float64(rows)-0.5

	for _, y := range heatmap.PadBoundaries(rows) {
		ln, err := plotter.NewLine(plotter.XYs{{X: xmin, Y: y}, {X: xmax, Y: y}})
		if err != nil {
			continue
		}
		ln.LineStyle = style
		p.Add(ln)
	}
	for _, x := range heatmap.PadBoundaries(cols) {
		ln, err := plotter.NewLine(plotter.XYs{{X: x, Y: ymin}, {X: x, Y: ymax}})
		if err != nil {
			continue
		}
		ln.LineStyle = style
		p.Add(ln)
	}
}
