package workers

import (
	"context"
	"errors"
)

// Workers runs lifecycle calls across a fixed set of workers in order.
type Workers struct {
	workers []Worker
}

// NewWorkers groups ws.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Flush flushes every worker and joins their errors. A failing worker does
// not prevent the rest from being flushed.
func (w *Workers) Flush(ctx context.Context) error {
	var errs []error
	for _, worker := range w.workers {
		if err := worker.Flush(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Stop stops every worker and joins their errors.
func (w *Workers) Stop(ctx context.Context) error {
	var errs []error
	for _, worker := range w.workers {
		if err := worker.Stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
