// Package repository defines the indexed hit store backing aggregation.
package repository

import (
	"context"

	"github.com/okian/beamplot/internal/domain/model"
)

// Store provides read access to one run's hit rows, indexed by layer and
// channel. The dataset is append-only during loading and read-only after.
type Store interface {
	// Append adds one hit row to the store.
	Append(ctx context.Context, hit model.HitRecord)

	// Len returns the number of hit rows stored.
	Len(ctx context.Context) int

	// EventCount returns the number of distinct events across the whole dataset.
	EventCount(ctx context.Context) int

	// LayerHits returns every hit row of one layer, without deduplication.
	LayerHits(ctx context.Context, layer int) []model.HitRecord

	// LayerAmplitudes returns the amplitude of every hit in one layer.
	LayerAmplitudes(ctx context.Context, layer int) []float64

	// ChannelAmplitudes returns the amplitude of every hit on one pad.
	ChannelAmplitudes(ctx context.Context, layer, channel int) []float64

	// ForEach visits every hit row in insertion order.
	ForEach(ctx context.Context, fn func(model.HitRecord))
}
