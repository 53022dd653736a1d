// Package aggregate computes the per-layer and per-channel samples behind
// every chart: energy vectors, normalized channel-frequency grids, and the
// longitudinal shower profile.
//
// Shower energy is an event-level quantity repeated on every hit row of an
// event, so event- and channel-level aggregations deduplicate first; per-hit
// energy vectors never do.
package aggregate

import (
	"context"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/okian/beamplot/internal/domain/dedupe"
	"github.com/okian/beamplot/internal/domain/heatmap"
	"github.com/okian/beamplot/internal/domain/model"
)

// Source abstracts the hit dataset the engine reads from.
type Source interface {
	// EventCount returns the number of distinct events in the whole dataset.
	EventCount(ctx context.Context) int

	// LayerHits returns every hit row of one layer, without deduplication.
	LayerHits(ctx context.Context, layer int) []model.HitRecord

	// LayerAmplitudes returns the amplitude of every hit in one layer.
	LayerAmplitudes(ctx context.Context, layer int) []float64

	// ChannelAmplitudes returns the amplitude of every hit on one pad.
	ChannelAmplitudes(ctx context.Context, layer, channel int) []float64

	// ForEach visits every hit row.
	ForEach(ctx context.Context, fn func(model.HitRecord))
}

// Engine derives chart samples from a hit dataset.
type Engine struct {
	src        Source
	gridRows   int
	gridCols   int
	newDeduper func() dedupe.Deduper
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithGrid sets the pad grid geometry used for frequency grids.
func WithGrid(rows, cols int) Option {
	return func(e *Engine) {
		if rows > 0 && cols > 0 {
			e.gridRows = rows
			e.gridCols = cols
		}
	}
}

// WithDeduperFactory overrides how per-pass dedup trackers are created.
func WithDeduperFactory(f func() dedupe.Deduper) Option {
	return func(e *Engine) {
		if f != nil {
			e.newDeduper = f
		}
	}
}

// New constructs an Engine over the given dataset.
func New(src Source, opts ...Option) *Engine {
	e := &Engine{
		src:        src,
		gridRows:   heatmap.Rows,
		gridCols:   heatmap.Cols,
		newDeduper: dedupe.NewInMemoryDeduper,
	}

	// Apply all options
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ShowerEnergies returns exactly one shower energy per distinct event,
// regardless of the event's hit multiplicity.
func (e *Engine) ShowerEnergies(ctx context.Context) []float64 {
	seen := e.newDeduper()
	var out []float64
	e.src.ForEach(ctx, func(h model.HitRecord) {
		if seen.SeenAndRecord(ctx, dedupe.EventKey(h.EventID)) {
			return
		}
		out = append(out, h.ShowerEnergy)
	})
	return out
}

// LayerAmplitudes returns the per-hit energy vector of one layer. Each hit
// contributes once; no deduplication applies.
func (e *Engine) LayerAmplitudes(ctx context.Context, layer int) []float64 {
	return e.src.LayerAmplitudes(ctx, layer)
}

// ChannelAmplitudes returns the per-hit energy vector of one pad.
func (e *Engine) ChannelAmplitudes(ctx context.Context, layer, channel int) []float64 {
	return e.src.ChannelAmplitudes(ctx, layer, channel)
}

// FrequencyGrid tallies, for one layer, how often each pad fired. A channel
// firing multiple times within one event counts once, and every cell is
// divided by the total distinct event count of the full dataset, so the
// result is "probability this pad fires per event in this layer" and is
// comparable across layers.
func (e *Engine) FrequencyGrid(ctx context.Context, layer int) *model.FrequencyGrid {
	grid := model.NewFrequencyGrid(e.gridRows, e.gridCols)

	seen := e.newDeduper()
	for _, h := range e.src.LayerHits(ctx, layer) {
		if seen.SeenAndRecord(ctx, dedupe.EventChannelKey(h.EventID, h.Channel)) {
			continue
		}
		row, col := grid.CellForChannel(h.Channel)
		if row < 0 || row >= grid.Rows || col < 0 || col >= grid.Cols {
			continue
		}
		grid.Add(row, col, 1)
	}

	if n := e.src.EventCount(ctx); n > 0 {
		grid.Scale(1 / float64(n))
	}
	return grid
}

// Profile returns the longitudinal shower profile: mean deposited energy and
// standard error of the mean per layer, ordered by the given layer sequence.
// Layers with no hits are omitted.
func (e *Engine) Profile(ctx context.Context, layers []int) []model.ProfilePoint {
	points := make([]model.ProfilePoint, 0, len(layers))
	for _, layer := range layers {
		sample := e.src.LayerAmplitudes(ctx, layer)
		if len(sample) == 0 {
			continue
		}
		points = append(points, model.ProfilePoint{
			Layer: layer,
			Mean:  stat.Mean(sample, nil),
			SEM:   stat.PopStdDev(sample, nil) / math.Sqrt(float64(len(sample))),
		})
	}
	return points
}
