package simdata

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/okian/beamplot/internal/domain/model"
)

// datasetHeader matches what the CSV loader expects.
var datasetHeader = []string{"event_id", "layer_id", "channel_id", "amplitude", "shower_energy"}

// WriteCSV writes the hit list to path in the dataset format.
func WriteCSV(path string, hits []model.HitRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(datasetHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, h := range hits {
		rec := []string{
			strconv.FormatInt(h.EventID, 10),
			strconv.Itoa(h.Layer),
			strconv.Itoa(h.Channel),
			strconv.FormatFloat(h.Amplitude, 'g', -1, 64),
			strconv.FormatFloat(h.ShowerEnergy, 'g', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush dataset: %w", err)
	}
	return nil
}
