package repository

import (
	"context"
	"sync"

	"github.com/okian/beamplot/internal/domain/model"
)

// Default store configuration constants.
const (
	defaultCapacity = 1 << 16
)

// layerChannel indexes hits of one pad.
type layerChannel struct {
	layer   int
	channel int
}

// HitStore implements Store with in-memory slices and per-layer indexes.
// Loading is single-writer; reads after loading are lock-cheap.
type HitStore struct {
	mu sync.RWMutex

	hits      []model.HitRecord
	byLayer   map[int][]int          // layer -> indices into hits
	byChannel map[layerChannel][]int // (layer, channel) -> indices into hits
	events    map[int64]struct{}
}

// NewHitStore creates an empty hit store with configuration options.
func NewHitStore(opts ...Option) *HitStore {
	s := &HitStore{
		hits:      make([]model.HitRecord, 0, defaultCapacity),
		byLayer:   make(map[int][]int),
		byChannel: make(map[layerChannel][]int),
		events:    make(map[int64]struct{}),
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Append adds one hit row and updates the layer/channel indexes.
func (s *HitStore) Append(_ context.Context, hit model.HitRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := len(s.hits)
	s.hits = append(s.hits, hit)
	s.byLayer[hit.Layer] = append(s.byLayer[hit.Layer], idx)
	key := layerChannel{layer: hit.Layer, channel: hit.Channel}
	s.byChannel[key] = append(s.byChannel[key], idx)
	s.events[hit.EventID] = struct{}{}
}

// Len returns the number of hit rows stored.
func (s *HitStore) Len(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.hits)
}

// EventCount returns the number of distinct events in the dataset.
func (s *HitStore) EventCount(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// LayerHits returns a copy of every hit row in one layer.
func (s *HitStore) LayerHits(_ context.Context, layer int) []model.HitRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idxs := s.byLayer[layer]
	out := make([]model.HitRecord, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, s.hits[i])
	}
	return out
}

// LayerAmplitudes returns the amplitude of every hit in one layer.
func (s *HitStore) LayerAmplitudes(_ context.Context, layer int) []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idxs := s.byLayer[layer]
	out := make([]float64, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, s.hits[i].Amplitude)
	}
	return out
}

// ChannelAmplitudes returns the amplitude of every hit on one pad.
func (s *HitStore) ChannelAmplitudes(_ context.Context, layer, channel int) []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idxs := s.byChannel[layerChannel{layer: layer, channel: channel}]
	out := make([]float64, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, s.hits[i].Amplitude)
	}
	return out
}

// ForEach visits every hit row in insertion order.
func (s *HitStore) ForEach(_ context.Context, fn func(model.HitRecord)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, h := range s.hits {
		fn(h)
	}
}
