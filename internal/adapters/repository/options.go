package repository

import "github.com/okian/beamplot/internal/domain/model"

// Option applies a configuration option to the HitStore.
type Option func(*HitStore)

// WithCapacity pre-sizes the store for an expected number of hit rows.
func WithCapacity(n int) Option {
	return func(s *HitStore) {
		if n > 0 && len(s.hits) == 0 {
			s.hits = make([]model.HitRecord, 0, n)
		}
	}
}
