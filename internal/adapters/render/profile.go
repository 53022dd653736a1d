package render

import (
	"context"
	"strconv"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"

	"github.com/okian/beamplot/internal/domain/model"
)

// ProfileOptions carries the labels of the longitudinal profile chart.
type ProfileOptions struct {
	Title  string
	XLabel string
	YLabel string
}

// Profile renders the longitudinal shower profile: one errorbar point per
// layer, ordered by layer index, with a tick at every layer.
func (r *Renderer) Profile(ctx context.Context, points []model.ProfilePoint, o ProfileOptions, path string) error {
	if len(points) == 0 {
		return ErrBadArtifact
	}

	pts := make([]hbook.Point2D, 0, len(points))
	ticks := make([]plot.Tick, 0, len(points))
	for _, pt := range points {
		pts = append(pts, hbook.Point2D{
			X:    float64(pt.Layer),
			Y:    pt.Mean,
			ErrY: hbook.Range{Min: pt.SEM, Max: pt.SEM},
		})
		ticks = append(ticks, plot.Tick{Value: float64(pt.Layer), Label: strconv.Itoa(pt.Layer)})
	}

	s := hplot.NewS2D(hbook.NewS2D(pts...), hplot.WithYErrBars(true))

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.Add(s, hplot.NewGrid())

	return r.save(ctx, p, path)
}
