// Package simdata produces synthetic beam-test hit datasets with a roughly
// realistic shower shape, for exercising the chart pipeline without real
// detector data.
package simdata

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/okian/beamplot/internal/domain/model"
	"github.com/okian/beamplot/pkg/logger"
)

// Shower shape constants. The longitudinal deposit follows a gamma-like
// profile peaking a few layers into the detector; the transverse spread is
// a symmetric gaussian around the beam spot.
const (
	showerPeakLayer     = 3.0
	showerDecay         = 0.45
	energySpreadFrac    = 0.12
	transverseSpreadPad = 2.2
	hitsPerEnergyUnit   = 0.04
	minHitsPerLayer     = 1
	amplitudeJitterFrac = 0.25
)

// Generator produces synthetic hit records.
type Generator struct {
	cfg Config
	rng *rand.Rand

	logger logger.Logger
}

// NewGenerator creates a generator for the given configuration.
func NewGenerator(cfg Config) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)), //nolint:gosec // simulation, not crypto
		logger: logger.Get().Named("simdata"),
	}
}

// Generate simulates every event and returns the full hit list.
func (g *Generator) Generate(ctx context.Context) ([]model.HitRecord, Stats, error) {
	g.logger.Info(ctx, "generating synthetic dataset",
		logger.Int("events", g.cfg.NumEvents),
		logger.Int("layers", g.cfg.Layers),
	)

	hits := make([]model.HitRecord, 0, g.cfg.NumEvents*g.cfg.Layers*4)
	for ev := 0; ev < g.cfg.NumEvents; ev++ {
		select {
		case <-ctx.Done():
			return nil, Stats{}, ctx.Err()
		default:
		}
		hits = append(hits, g.generateEvent(int64(ev+1))...)
	}

	stats := Stats{EventsGenerated: g.cfg.NumEvents, HitsGenerated: len(hits)}
	return hits, stats, nil
}

// generateEvent simulates one shower: a total energy draw split across
// layers by the longitudinal profile, then scattered over pads.
func (g *Generator) generateEvent(eventID int64) []model.HitRecord {
	shower := g.cfg.BeamEnergy * (1 + g.rng.NormFloat64()*energySpreadFrac)
	if shower < 1 {
		shower = 1
	}

	fractions := layerFractions(g.cfg.Layers)

	var hits []model.HitRecord
	for layer := 0; layer < g.cfg.Layers; layer++ {
		layerEnergy := shower * fractions[layer]
		n := int(layerEnergy * hitsPerEnergyUnit)
		if n < minHitsPerLayer {
			n = minHitsPerLayer
		}

		perHit := layerEnergy / float64(n)
		for i := 0; i < n; i++ {
			amplitude := perHit * (1 + g.rng.NormFloat64()*amplitudeJitterFrac)
			if amplitude < 0.5 {
				amplitude = 0.5
			}
			hits = append(hits, model.HitRecord{
				EventID:      eventID,
				Layer:        layer,
				Channel:      g.beamSpotChannel(),
				Amplitude:    math.Round(amplitude),
				ShowerEnergy: math.Round(shower),
			})
		}
	}
	return hits
}

// beamSpotChannel draws a pad around the grid center with a gaussian
// transverse spread, clamped to the grid.
func (g *Generator) beamSpotChannel() int {
	row := int(math.Round(float64(g.cfg.GridRows)/2 + g.rng.NormFloat64()*transverseSpreadPad))
	col := int(math.Round(float64(g.cfg.GridCols)/2 + g.rng.NormFloat64()*transverseSpreadPad))
	row = clamp(row, 0, g.cfg.GridRows-1)
	col = clamp(col, 0, g.cfg.GridCols-1)
	return row*g.cfg.GridCols + col
}

// layerFractions returns the normalized longitudinal energy fractions,
// a gamma-like curve peaking at showerPeakLayer.
func layerFractions(layers int) []float64 {
	fractions := make([]float64, layers)
	sum := 0.0
	for i := range fractions {
		t := float64(i)
		fractions[i] = math.Pow(t+1, showerPeakLayer*showerDecay) * math.Exp(-showerDecay*t)
		sum += fractions[i]
	}
	for i := range fractions {
		fractions[i] /= sum
	}
	return fractions
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
