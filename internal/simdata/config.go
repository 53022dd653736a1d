package simdata

// Config holds configuration for the synthetic dataset generator.
type Config struct {
	NumEvents  int     // Number of beam events to simulate
	Layers     int     // Number of detector layers
	GridRows   int     // Pad rows per layer
	GridCols   int     // Pad columns per layer
	BeamEnergy float64 // Mean shower energy in ADC counts
	Seed       int64   // RNG seed; 0 picks a time-based seed
	OutputFile string  // CSV output path
}

// Stats holds generation statistics.
type Stats struct {
	EventsGenerated int
	HitsGenerated   int
}
