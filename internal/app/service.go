// Package service orchestrates a full diagnostic run over one hit dataset:
// the shower energy histogram, the longitudinal profile, the per-layer
// frequency maps and energy tiles, and the per-pad energy histograms.
//
// Chart families render in a fixed order so output trees are reproducible.
// A chart with no data is skipped with a warning; a chart that fails to
// render is logged and counted, and never aborts the remaining charts.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/plot"

	"github.com/okian/beamplot/internal/adapters/mq/queue"
	workerpool "github.com/okian/beamplot/internal/adapters/mq/worker"
	"github.com/okian/beamplot/internal/adapters/render"
	"github.com/okian/beamplot/internal/domain/aggregate"
	"github.com/okian/beamplot/internal/domain/binning"
	"github.com/okian/beamplot/internal/domain/heatmap"
	"github.com/okian/beamplot/pkg/logger"
	"github.com/okian/beamplot/pkg/metrics"
)

// Chart family labels used for logs and metrics.
const (
	familyShower    = "shower_energy"
	familyProfile   = "longitudinal_profile"
	familyFrequency = "channel_frequency"
	familyLayers    = "layer_energy"
	familyChannels  = "channel_energy"
)

// Source is the dataset view the orchestrator aggregates over.
type Source = aggregate.Source

// Service runs all chart families for one dataset.
type Service struct {
	// Output layout
	resultsDir string
	runNumber  int

	// Detector geometry
	layers   []int
	gridRows int
	gridCols int

	// Bin step widths per family
	showerStep  float64
	layerStep   float64
	channelStep float64

	// Frequency map color scale
	heatmapLog bool

	// Per-pad histogram dispatch
	workerCount int
	queueSize   int

	renderer *render.Renderer

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithResultsDir sets the root output directory.
func WithResultsDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.resultsDir = dir
		}
	}
}

// WithRunNumber labels the per-run output directory.
func WithRunNumber(n int) Option {
	return func(s *Service) {
		s.runNumber = n
	}
}

// WithLayers sets which detector layers are aggregated and plotted.
func WithLayers(layers []int) Option {
	return func(s *Service) {
		if len(layers) > 0 {
			s.layers = layers
		}
	}
}

// WithGrid sets the pad grid geometry of each layer.
func WithGrid(rows, cols int) Option {
	return func(s *Service) {
		if rows > 0 && cols > 0 {
			s.gridRows = rows
			s.gridCols = cols
		}
	}
}

// WithBinSteps sets the histogram bin widths for the shower, layer, and
// channel families.
func WithBinSteps(shower, layer, channel float64) Option {
	return func(s *Service) {
		if shower > 0 {
			s.showerStep = shower
		}
		if layer > 0 {
			s.layerStep = layer
		}
		if channel > 0 {
			s.channelStep = channel
		}
	}
}

// WithHeatmapLog switches the frequency maps to a log color scale.
func WithHeatmapLog(log bool) Option {
	return func(s *Service) {
		s.heatmapLog = log
	}
}

// WithWorkerCount sets how many per-pad histograms render concurrently.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize bounds the per-pad render job queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithRenderer sets a custom chart renderer.
func WithRenderer(r *render.Renderer) Option {
	return func(s *Service) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with the reference beam-test defaults: ten
// layers of 13x20 pads and 100/10/1 ADC bin steps.
func New(opts ...Option) *Service {
	s := &Service{
		resultsDir:  "Results",
		runNumber:   1,
		layers:      []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		gridRows:    13,
		gridCols:    20,
		showerStep:  100,
		layerStep:   10,
		channelStep: 1,
		workerCount: 1,
		queueSize:   8192,
		renderer:    render.New(),
		logger:      logger.Get().Named("service"),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run produces every chart family for one dataset. Individual chart
// failures are isolated; Run returns an error only when the run as a
// whole cannot proceed.
func (s *Service) Run(ctx context.Context, src Source) error {
	runID := uuid.New().String()
	log := s.logger

	engine := aggregate.New(src, aggregate.WithGrid(s.gridRows, s.gridCols))
	paths := render.NewPaths(s.resultsDir, s.runNumber)

	log.Info(ctx, "starting diagnostic run",
		logger.String("run_id", runID),
		logger.Int("run_number", s.runNumber),
		logger.Int("layers", len(s.layers)),
		logger.Int("events", src.EventCount(ctx)),
	)

	s.renderChart(ctx, familyShower, func() error {
		return s.renderShower(ctx, engine, paths)
	})
	s.renderChart(ctx, familyProfile, func() error {
		return s.renderProfile(ctx, engine, paths)
	})
	s.renderChart(ctx, familyFrequency, func() error {
		return s.renderFrequencyMaps(ctx, engine, paths)
	})
	s.renderChart(ctx, familyLayers, func() error {
		return s.renderLayerEnergies(ctx, engine, paths)
	})

	if err := s.renderChannelEnergies(ctx, engine, paths); err != nil {
		return err
	}

	log.Info(ctx, "diagnostic run complete", logger.String("run_id", runID))
	return nil
}

// renderChart runs one chart family, translating an empty sample into a
// skip and any other error into a counted failure.
func (s *Service) renderChart(ctx context.Context, family string, fn func() error) {
	err := fn()
	switch {
	case err == nil:
		metrics.Get().ChartRendered(family)
	case errors.Is(err, binning.ErrEmptySample), errors.Is(err, render.ErrBadArtifact), errors.Is(err, render.ErrNoPanels):
		metrics.Get().ChartSkipped(family)
		s.logger.Warn(ctx, "chart skipped, no data",
			logger.String("family", family),
		)
	default:
		metrics.Get().ChartFailed(family)
		s.logger.Error(ctx, "chart failed",
			logger.String("family", family),
			logger.Error(err),
		)
	}
}

func (s *Service) renderShower(ctx context.Context, engine *aggregate.Engine, paths render.Paths) error {
	energies := engine.ShowerEnergies(ctx)
	hist, err := binning.Histogram(energies, binning.Step(s.showerStep))
	if err != nil {
		return err
	}
	return s.renderer.Histogram(ctx, hist, render.HistOptions{
		Title:  "Total energy distribution (showers)",
		XLabel: "ADC counts",
		YLabel: "Entries",
	}, paths.ShowerEnergy())
}

func (s *Service) renderProfile(ctx context.Context, engine *aggregate.Engine, paths render.Paths) error {
	points := engine.Profile(ctx, s.layers)

	if len(points) < len(s.layers) {
		present := make(map[int]bool, len(points))
		for _, pt := range points {
			present[pt.Layer] = true
		}
		for _, layer := range s.layers {
			if !present[layer] {
				s.logger.Warn(ctx, "layer has no hits, omitted from profile",
					logger.Int("layer", layer),
				)
			}
		}
	}

	return s.renderer.Profile(ctx, points, render.ProfileOptions{
		Title:  "Average Longitudinal Profile",
		XLabel: "Layer Index",
		YLabel: "ADC Average",
	}, paths.Profile())
}

// renderFrequencyMaps tiles one normalized hit-frequency heatmap per layer
// onto the shared 3x4 figure.
func (s *Service) renderFrequencyMaps(ctx context.Context, engine *aggregate.Engine, paths render.Paths) error {
	slots := make([]*plot.Plot, 12)
	for i, layer := range s.layers {
		grid := engine.FrequencyGrid(ctx, layer)
		display := heatmap.Normalize(grid, s.heatmapLog, heatmap.WithRange(0, 1))
		panel, err := s.renderer.HeatmapPanel(display, render.HeatmapOptions{
			Title:  fmt.Sprintf("Layer %d", layer),
			XLabel: "Column",
			YLabel: "Row",
		})
		if err != nil {
			s.logger.Warn(ctx, "frequency panel skipped",
				logger.Int("layer", layer),
				logger.Error(err),
			)
			continue
		}
		if slot := render.TileSlot(i); slot < len(slots) {
			slots[slot] = panel
		} else {
			s.logger.Warn(ctx, "no tile slot for layer", logger.Int("layer", layer))
		}
	}
	return s.renderer.Tiled(ctx, slots, paths.ChannelFrequency())
}

// renderLayerEnergies tiles one amplitude histogram per layer onto the
// shared 3x4 figure.
func (s *Service) renderLayerEnergies(ctx context.Context, engine *aggregate.Engine, paths render.Paths) error {
	slots := make([]*plot.Plot, 12)
	for i, layer := range s.layers {
		amplitudes := engine.LayerAmplitudes(ctx, layer)
		hist, err := binning.Histogram(amplitudes, binning.Step(s.layerStep))
		if err != nil {
			s.logger.Warn(ctx, "layer energy panel skipped",
				logger.Int("layer", layer),
				logger.Error(err),
			)
			continue
		}
		panel, err := s.renderer.HistogramPanel(hist, render.HistOptions{
			Title:  fmt.Sprintf("Layer %d", layer),
			XLabel: "ADC counts",
			YLabel: "Entries",
		})
		if err != nil {
			return err
		}
		if slot := render.TileSlot(i); slot < len(slots) {
			slots[slot] = panel
		} else {
			s.logger.Warn(ctx, "no tile slot for layer", logger.Int("layer", layer))
		}
	}
	return s.renderer.Tiled(ctx, slots, paths.AllLayersEnergy())
}

// renderChannelEnergies dispatches one histogram job per pad through the
// render queue. With the default single worker the pads render in layer
// then channel order.
func (s *Service) renderChannelEnergies(ctx context.Context, engine *aggregate.Engine, paths render.Paths) error {
	q := queue.NewInMemoryQueue(queue.WithCapacity(s.queueSize))
	pool := workerpool.NewPool(s.workerCount, q)
	pool.Start(ctx)

	channels := s.gridRows * s.gridCols
	for _, layer := range s.layers {
		for channel := 0; channel < channels; channel++ {
			layer, channel := layer, channel
			job := queue.Job{
				Name:   fmt.Sprintf("channel %d layer %d", channel, layer),
				Family: familyChannels,
				Render: func(ctx context.Context) error {
					return s.renderChannelEnergy(ctx, engine, paths, layer, channel)
				},
			}
			if !q.Enqueue(ctx, job) {
				_ = q.Close()
				return fmt.Errorf("%w: %s", ErrQueueFull, job.Name)
			}
		}
	}

	if err := q.Close(); err != nil {
		return err
	}
	return pool.Wait(ctx)
}

func (s *Service) renderChannelEnergy(ctx context.Context, engine *aggregate.Engine, paths render.Paths, layer, channel int) error {
	amplitudes := engine.ChannelAmplitudes(ctx, layer, channel)
	hist, err := binning.Histogram(amplitudes, binning.Step(s.channelStep))
	if errors.Is(err, binning.ErrEmptySample) {
		// Pads with no hits are common; the worker counts the skip.
		return queue.ErrSkipped
	}
	if err != nil {
		return err
	}
	return s.renderer.Histogram(ctx, hist, render.HistOptions{
		Title:  fmt.Sprintf("Channel %d Layer %d", channel, layer),
		XLabel: "ADC counts",
		YLabel: "Entries",
	}, paths.ChannelEnergy(layer, channel))
}
