// Package workers provides the background machinery of the journal: a
// debouncer that coalesces bursts of edits into a single save, and a
// Workers aggregate that flushes and stops every worker in a unified way
// when the journal locks or the application exits.
package workers

import "context"

// Task is a unit of deferred work. The context carries the logger of the
// worker that runs it.
type Task func(ctx context.Context) error

// Worker is the interface that must be implemented by any background worker.
//
// Flush runs pending work synchronously and returns its error. Stop flushes
// and then refuses further work.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Flush(ctx context.Context) error { return nil }
//	func (w *MyWorker) Stop(ctx context.Context) error  { return nil }
type Worker interface {
	Flush(ctx context.Context) error
	Stop(ctx context.Context) error
}
