package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Chart file extension appended when missing.
const chartExt = ".png"

// Paths builds the deterministic output layout for one run:
// <results_dir>/Run <run>/... with chart-specific subdirectories.
type Paths struct {
	resultsDir string
	runNumber  int
}

// NewPaths creates the path builder for one run.
func NewPaths(resultsDir string, runNumber int) Paths {
	return Paths{resultsDir: resultsDir, runNumber: runNumber}
}

// RunDir returns the per-run base directory.
func (p Paths) RunDir() string {
	return filepath.Join(p.resultsDir, fmt.Sprintf("Run %d", p.runNumber))
}

// ShowerEnergy is the shower-energy histogram file.
func (p Paths) ShowerEnergy() string {
	return filepath.Join(p.RunDir(), "Shower_energy_distribution.png")
}

// Profile is the longitudinal profile file.
func (p Paths) Profile() string {
	return filepath.Join(p.RunDir(), "Average_Longitudinal_Profile")
}

// ChannelFrequency is the all-layers frequency heatmap figure.
func (p Paths) ChannelFrequency() string {
	return filepath.Join(p.RunDir(), "Channels_frequency_all_layers")
}

// AllLayersEnergy is the all-layers energy histogram figure.
func (p Paths) AllLayersEnergy() string {
	return filepath.Join(p.RunDir(), "Energy_dist_all_layers")
}

// ChannelEnergy is the per-pad histogram file for one channel in one layer.
func (p Paths) ChannelEnergy(layer, channel int) string {
	return filepath.Join(
		p.RunDir(),
		"Energy per channel",
		fmt.Sprintf("Layer %d", layer),
		fmt.Sprintf("Channel_%d_layer_%d_energy_distribution.png", channel, layer),
	)
}

// EnsureExt appends ext when the path does not already carry it.
func EnsureExt(path, ext string) string {
	if strings.HasSuffix(path, ext) {
		return path
	}
	return path + ext
}

// prepare normalizes the output path and creates its directory.
func prepare(path string) (string, error) {
	path = EnsureExt(path, chartExt)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create chart directory: %w", err)
	}
	return path, nil
}
