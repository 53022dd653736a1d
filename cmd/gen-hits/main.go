package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/beamplot/internal/simdata"
	"github.com/okian/beamplot/pkg/logger"
)

// Default generation constants.
const (
	defaultNumEvents  = 1000
	defaultLayers     = 10
	defaultGridRows   = 13
	defaultGridCols   = 20
	defaultBeamEnergy = 400.0
	defaultTimeout    = 5 * time.Minute
)

func main() {
	var (
		numEvents  = flag.Int("events", defaultNumEvents, "Number of beam events to simulate")
		layers     = flag.Int("layers", defaultLayers, "Number of detector layers")
		gridRows   = flag.Int("rows", defaultGridRows, "Pad rows per layer")
		gridCols   = flag.Int("cols", defaultGridCols, "Pad columns per layer")
		beamEnergy = flag.Float64("energy", defaultBeamEnergy, "Mean shower energy in ADC counts")
		seed       = flag.Int64("seed", 0, "RNG seed (0 picks a time-based seed)")
		output     = flag.String("output", "data/hits.csv", "CSV output path")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cfg := simdata.Config{
		NumEvents:  *numEvents,
		Layers:     *layers,
		GridRows:   *gridRows,
		GridCols:   *gridCols,
		BeamEnergy: *beamEnergy,
		Seed:       *seed,
		OutputFile: *output,
	}

	if _, err := simdata.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("generation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
