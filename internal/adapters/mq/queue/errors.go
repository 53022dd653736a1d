package queue

import "errors"

// ErrSkipped signals that a job found nothing to render. Workers count it
// as a skip rather than a failure.
var ErrSkipped = errors.New("job skipped")
