package worker

import "github.com/okian/beamplot/pkg/logger"

// Option configures a Worker.
type Option func(*Worker)

// WithName sets the worker name used in log lines.
func WithName(name string) Option {
	return func(w *Worker) {
		if name != "" {
			w.name = name
			w.logger = logger.Get().Named(name)
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(w *Worker) {
		if l != nil {
			w.logger = l
		}
	}
}
