// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// InputDir is scanned for hit datasets.
	InputDir string `koanf:"input_dir"`

	// InputExt filters which files in InputDir are treated as datasets.
	InputExt string `koanf:"input_ext"`

	// ResultsDir is the root directory for rendered charts.
	ResultsDir string `koanf:"results_dir"`

	// RunNumber labels the output directory, e.g. "Run 3".
	RunNumber int `koanf:"run_number"`

	// Layers lists the detector layers to aggregate and plot.
	Layers []int `koanf:"layers"`

	// GridRows and GridCols shape the per-layer channel frequency map.
	GridRows int `koanf:"grid_rows"`
	GridCols int `koanf:"grid_cols"`

	// Bin step widths per chart family, in the amplitude/energy units of
	// the input data.
	ShowerBinStep  float64 `koanf:"shower_bin_step"`
	LayerBinStep   float64 `koanf:"layer_bin_step"`
	ChannelBinStep float64 `koanf:"channel_bin_step"`

	// HeatmapLog switches the frequency maps to a log color scale.
	HeatmapLog bool `koanf:"heatmap_log"`

	// WorkerCount sets the number of concurrent chart renderers.
	WorkerCount int `koanf:"worker_count"`

	// QueueSize bounds the in-memory render job queue.
	QueueSize int `koanf:"queue_size"`

	// MetricsAddr exposes Prometheus metrics when non-empty, e.g. ":9090".
	MetricsAddr string `koanf:"metrics_addr"`
}

// New creates a Config with defaults matching the reference beam-test setup:
// a 10-layer prototype with 13x20 channel boards and 100 MIP shower bins.
func New() *Config {
	layers := make([]int, 10)
	for i := range layers {
		layers[i] = i
	}
	return &Config{
		LogLevel:       "info",
		InputDir:       "data",
		InputExt:       ".csv",
		ResultsDir:     "Results",
		RunNumber:      1,
		Layers:         layers,
		GridRows:       13,
		GridCols:       20,
		ShowerBinStep:  100,
		LayerBinStep:   10,
		ChannelBinStep: 1,
		HeatmapLog:     false,
		WorkerCount:    1,
		QueueSize:      8192,
	}
}
