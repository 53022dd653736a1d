package render

import (
	"context"
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Tiled renders up to 12 panels onto the fixed 3x4 figure. Slots holding nil
// stay blank; callers place layer i at TileSlot(i) to reproduce the
// non-rectangular physical layer layout.
func (r *Renderer) Tiled(ctx context.Context, slots []*plot.Plot, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(slots) == 0 || len(slots) > tileRows*tileCols {
		return ErrNoPanels
	}

	plots := make([][]*plot.Plot, tileRows)
	populated := false
	for row := range plots {
		plots[row] = make([]*plot.Plot, tileCols)
		for col := range plots[row] {
			slot := row*tileCols + col
			if slot < len(slots) && slots[slot] != nil {
				plots[row][col] = slots[slot]
				populated = true
			}
		}
	}
	if !populated {
		return ErrNoPanels
	}

	img := vgimg.New(vg.Length(tileCols)*r.width, vg.Length(tileRows)*r.height)
	dc := draw.New(img)
	t := draw.Tiles{
		Rows: tileRows,
		Cols: tileCols,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}

	canvases := plot.Align(plots, t, dc)
	for row := range plots {
		for col := range plots[row] {
			if plots[row][col] != nil {
				plots[row][col].Draw(canvases[row][col])
			}
		}
	}

	path, err := prepare(path)
	if err != nil {
		return err
	}
	w, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer w.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("write tiled chart %s: %w", path, err)
	}
	return nil
}
