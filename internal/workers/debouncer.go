// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-mood-journal/internal/logger"
)

// DefaultDebounce is the quiet period used when NewDebouncer receives a
// non-positive delay.
const DefaultDebounce = 400 * time.Millisecond

// Debouncer defers a [Task] until no new task has been scheduled for the
// configured delay. Scheduling replaces the pending task and restarts the
// timer, so a burst of edits results in a single run of the latest task.
//
// Runs never overlap. A task that fails in the background is logged and not
// retried; callers that need the outcome keep it themselves or use Flush.
type Debouncer struct {
	ctx   context.Context
	delay time.Duration
	log   *logger.Logger

	mu      sync.Mutex
	pending Task
	gen     uint64
	timer   *time.Timer
	stopped bool

	runMu sync.Mutex
}

// NewDebouncer creates an idle Debouncer. Background runs receive ctx, which
// should carry the logger.
func NewDebouncer(ctx context.Context, delay time.Duration, log *logger.Logger) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{
		ctx:   log.WithContext(ctx),
		delay: delay,
		log:   log,
	}
}

// Schedule makes task the pending task and restarts the quiet period.
func (d *Debouncer) Schedule(task Task) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return ErrStopped
	}

	d.pending = task
	d.gen++
	gen := d.gen

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })

	return nil
}

// Pending reports whether a task is waiting for its timer.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Flush cancels the timer and runs the pending task, if any, on the calling
// goroutine. When nothing is pending it still waits for an in-flight run to
// finish. The returned error is the error of the task run by this call.
func (d *Debouncer) Flush(ctx context.Context) error {
	task := d.take()
	if task == nil {
		d.runMu.Lock()
		d.runMu.Unlock() //nolint:staticcheck // wait for an in-flight run
		return nil
	}

	return d.run(d.log.WithContext(ctx), task)
}

// Stop flushes the pending task and refuses any further scheduling.
func (d *Debouncer) Stop(ctx context.Context) error {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	return d.Flush(ctx)
}

func (d *Debouncer) take() Task {
	d.mu.Lock()
	defer d.mu.Unlock()

	task := d.pending
	d.pending = nil
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	return task
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.pending == nil {
		d.mu.Unlock()
		return
	}
	task := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	if err := d.run(d.ctx, task); err != nil {
		d.log.Err(err).Str("func", "*Debouncer.fire").Msg("background task failed")
	}
}

func (d *Debouncer) run(ctx context.Context, task Task) error {
	d.runMu.Lock()
	defer d.runMu.Unlock()

	return task(ctx)
}
