package simdata

import (
	"context"

	"github.com/okian/beamplot/pkg/logger"
)

// Run generates a dataset and writes it to the configured output file.
func Run(ctx context.Context, cfg Config) (Stats, error) {
	gen := NewGenerator(cfg)

	hits, stats, err := gen.Generate(ctx)
	if err != nil {
		return Stats{}, err
	}

	if err := WriteCSV(cfg.OutputFile, hits); err != nil {
		return Stats{}, err
	}

	logger.Get().Info(ctx, "dataset written",
		logger.String("path", cfg.OutputFile),
		logger.Int("events", stats.EventsGenerated),
		logger.Int("hits", stats.HitsGenerated),
	)
	return stats, nil
}
