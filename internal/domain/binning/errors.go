package binning

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrEmptySample signals "skip this chart": it is expected for many
	// channel/layer combinations and must never abort a batch.
	ErrEmptySample = errors.New("empty sample")

	// ErrInvalidSpec reports a bin spec with a non-positive count or step.
	ErrInvalidSpec = errors.New("invalid bin spec")
)
