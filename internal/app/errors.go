package service

import "errors"

// Sentinel error kinds for this package.
var (
	ErrQueueFull = errors.New("render queue full")
)
