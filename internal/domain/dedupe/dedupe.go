// Package dedupe defines the seen-key tracker used to deduplicate hit rows
// before event- or channel-level aggregation.
package dedupe

import (
	"context"
	"strconv"
	"sync"
)

// Deduper records seen keys so each (event, channel) or event-level row is
// counted at most once.
type Deduper interface {
	// SeenAndRecord atomically checks if key was seen and records it if not.
	// Returns true if key was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, key string) bool

	Size() int64
}

// EventKey builds the dedup key for event-level rows.
func EventKey(eventID int64) string {
	return strconv.FormatInt(eventID, 10)
}

// EventChannelKey builds the dedup key for one channel firing within one event.
func EventChannelKey(eventID int64, channel int) string {
	return strconv.FormatInt(eventID, 10) + ":" + strconv.Itoa(channel)
}

// inMemoryDeduper implements Deduper with a plain map. Aggregation passes
// are bounded by the dataset, so no eviction is needed.
type inMemoryDeduper struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewInMemoryDeduper creates a new in-memory deduper.
func NewInMemoryDeduper() Deduper {
	return &inMemoryDeduper{seen: make(map[string]struct{})}
}

// SeenAndRecord atomically checks if key was seen and records it if not.
func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.seen[key]; exists {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}

// Size returns the current number of recorded keys.
func (d *inMemoryDeduper) Size() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return int64(len(d.seen))
}
