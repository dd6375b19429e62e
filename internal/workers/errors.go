package workers

import "errors"

// ErrStopped is returned by [Debouncer.Schedule] after Stop.
var ErrStopped = errors.New("worker is stopped")
