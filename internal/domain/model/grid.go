package model

// FrequencyGrid holds per-pad values laid out on the physical pad grid.
// Cell (0,0) is the top-left pad of the stored matrix; display row labels
// run bottom-up (see the heatmap package).
type FrequencyGrid struct {
	Rows  int
	Cols  int
	Cells []float64 // row-major, len = Rows*Cols
}

// NewFrequencyGrid allocates a zeroed grid.
func NewFrequencyGrid(rows, cols int) *FrequencyGrid {
	return &FrequencyGrid{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]float64, rows*cols),
	}
}

// At returns the value of cell (row, col).
func (g *FrequencyGrid) At(row, col int) float64 {
	return g.Cells[row*g.Cols+col]
}

// Set stores v at cell (row, col).
func (g *FrequencyGrid) Set(row, col int, v float64) {
	g.Cells[row*g.Cols+col] = v
}

// Add increments cell (row, col) by v.
func (g *FrequencyGrid) Add(row, col int, v float64) {
	g.Cells[row*g.Cols+col] += v
}

// Scale multiplies every cell by f.
func (g *FrequencyGrid) Scale(f float64) {
	for i := range g.Cells {
		g.Cells[i] *= f
	}
}

// CellForChannel maps a channel id to its (row, col) pad position.
// Channels are numbered row-major across the grid.
func (g *FrequencyGrid) CellForChannel(channel int) (row, col int) {
	return channel / g.Cols, channel % g.Cols
}
