package csvload

import "errors"

// Sentinel error kinds for this package.
var (
	ErrBadHeader    = errors.New("bad dataset header")
	ErrBadRecord    = errors.New("bad dataset record")
	ErrEmptyDataset = errors.New("dataset has no hits")
)
