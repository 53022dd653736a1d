package render

import (
	"context"
	"fmt"
	"image/color"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"

	"github.com/okian/beamplot/internal/domain/model"
	"github.com/okian/beamplot/internal/domain/sigfig"
)

// HistOptions carries the labels and scale of one histogram chart.
type HistOptions struct {
	Title  string
	XLabel string
	YLabel string
	LogY   bool
}

// Histogram renders a 1D histogram artifact to path.
func (r *Renderer) Histogram(ctx context.Context, h *model.Histogram, o HistOptions, path string) error {
	p, err := r.HistogramPanel(h, o)
	if err != nil {
		return err
	}
	return r.save(ctx, p, path)
}

// HistogramPanel builds the histogram plot without writing it, for use as a
// tile in multi-panel figures.
func (r *Renderer) HistogramPanel(h *model.Histogram, o HistOptions) (*plot.Plot, error) {
	hist, err := histFromArtifact(h)
	if err != nil {
		return nil, err
	}

	hh := hplot.NewH1D(hist)
	hh.FillColor = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	hh.LineStyle.Color = color.Black
	hh.Infos.Style = hplot.HInfoNone

	p := plot.New()
	p.Add(hh, hplot.NewGrid())
	styleHistogram(p, h, o)
	return p, nil
}

// histFromArtifact rebuilds an hbook histogram from precomputed edges and
// counts, filling bin centers with the counts as weights.
func histFromArtifact(h *model.Histogram) (*hbook.H1D, error) {
	if len(h.Edges) < 2 || len(h.Counts) != len(h.Edges)-1 {
		return nil, fmt.Errorf("%w: %d edges, %d counts", ErrBadArtifact, len(h.Edges), len(h.Counts))
	}

	hist := hbook.NewH1DFromEdges(h.Edges)
	for i, c := range h.Counts {
		if c == 0 {
			continue
		}
		center := 0.5 * (h.Edges[i] + h.Edges[i+1])
		hist.Fill(center, c)
	}
	return hist, nil
}

// styleHistogram applies labels, scale, and the statistics legend.
func styleHistogram(p *plot.Plot, h *model.Histogram, o HistOptions) {
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	yLabel := o.YLabel
	if yLabel == "" {
		yLabel = "Entries"
	}

	if o.LogY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
		yLabel += " (log scale)"
	}
	p.Y.Label.Text = yLabel

	meanStr, stdStr := sigfig.Match(h.Mean, h.Std)
	p.Legend.Add(fmt.Sprintf("Entries = %d", h.Entries))
	p.Legend.Add(fmt.Sprintf("Mean Value = %s", meanStr))
	p.Legend.Add(fmt.Sprintf("Std = %s", stdStr))
	p.Legend.Top = true
	p.Legend.Left = false
}

// save writes a single-panel plot to path, creating directories as needed.
func (r *Renderer) save(ctx context.Context, p *plot.Plot, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := prepare(path)
	if err != nil {
		return err
	}
	if err := p.Save(r.width, r.height, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}
