package render

import "errors"

// Sentinel kinds for rendering errors.
var (
	ErrBadArtifact = errors.New("malformed chart artifact")
	ErrNoPanels    = errors.New("no panels to draw")
)
