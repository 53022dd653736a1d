package csvload

import "github.com/okian/beamplot/pkg/logger"

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}
