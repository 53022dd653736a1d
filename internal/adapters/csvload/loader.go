// Package csvload reads hit datasets from CSV files into a hit store.
//
// Expected header: event_id, layer_id, channel_id, amplitude, shower_energy.
// Column order is taken from the header, so extra columns are tolerated.
package csvload

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/okian/beamplot/internal/domain/model"
	"github.com/okian/beamplot/pkg/logger"
)

// Required column names.
const (
	colEventID      = "event_id"
	colLayerID      = "layer_id"
	colChannelID    = "channel_id"
	colAmplitude    = "amplitude"
	colShowerEnergy = "shower_energy"
)

// Sink receives parsed hit records.
type Sink interface {
	Append(ctx context.Context, hit model.HitRecord)
}

// Loader parses CSV hit files.
type Loader struct {
	logger logger.Logger
}

// NewLoader creates a Loader with configuration options.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		logger: logger.Get().Named("csvload"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile opens path and streams its records into the sink. It returns
// the number of hits loaded.
func (l *Loader) LoadFile(ctx context.Context, path string, sink Sink) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	n, err := l.Load(ctx, f, sink)
	if err != nil {
		return n, fmt.Errorf("%s: %w", path, err)
	}

	l.logger.Info(ctx, "dataset loaded",
		logger.String("path", path),
		logger.Int("hits", n),
	)
	return n, nil
}

// Load streams CSV records from r into the sink.
func (l *Loader) Load(ctx context.Context, r io.Reader, sink Sink) (int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return 0, ErrEmptyDataset
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadHeader, err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return 0, err
	}

	count := 0
	for {
		select {
		case <-ctx.Done():
			return count, ctx.Err()
		default:
		}

		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("%w: %w", ErrBadRecord, err)
		}

		hit, err := parseRecord(rec, cols)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return count, fmt.Errorf("%w: line %d: %w", ErrBadRecord, line, err)
		}
		sink.Append(ctx, hit)
		count++
	}

	if count == 0 {
		return 0, ErrEmptyDataset
	}
	return count, nil
}

// columns holds the header index of each required field.
type columns struct {
	event, layer, channel, amplitude, shower int
}

func mapColumns(header []string) (columns, error) {
	idx := map[string]int{}
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}

	cols := columns{}
	for _, want := range []struct {
		name string
		dst  *int
	}{
		{colEventID, &cols.event},
		{colLayerID, &cols.layer},
		{colChannelID, &cols.channel},
		{colAmplitude, &cols.amplitude},
		{colShowerEnergy, &cols.shower},
	} {
		i, ok := idx[want.name]
		if !ok {
			return columns{}, fmt.Errorf("%w: missing column %q", ErrBadHeader, want.name)
		}
		*want.dst = i
	}
	return cols, nil
}

func parseRecord(rec []string, cols columns) (model.HitRecord, error) {
	event, err := strconv.ParseInt(strings.TrimSpace(rec[cols.event]), 10, 64)
	if err != nil {
		return model.HitRecord{}, fmt.Errorf("event_id: %w", err)
	}
	layer, err := strconv.Atoi(strings.TrimSpace(rec[cols.layer]))
	if err != nil {
		return model.HitRecord{}, fmt.Errorf("layer_id: %w", err)
	}
	channel, err := strconv.Atoi(strings.TrimSpace(rec[cols.channel]))
	if err != nil {
		return model.HitRecord{}, fmt.Errorf("channel_id: %w", err)
	}
	amplitude, err := strconv.ParseFloat(strings.TrimSpace(rec[cols.amplitude]), 64)
	if err != nil {
		return model.HitRecord{}, fmt.Errorf("amplitude: %w", err)
	}
	shower, err := strconv.ParseFloat(strings.TrimSpace(rec[cols.shower]), 64)
	if err != nil {
		return model.HitRecord{}, fmt.Errorf("shower_energy: %w", err)
	}

	return model.HitRecord{
		EventID:      event,
		Layer:        layer,
		Channel:      channel,
		Amplitude:    amplitude,
		ShowerEnergy: shower,
	}, nil
}
