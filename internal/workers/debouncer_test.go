package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mood-journal/internal/logger"
)

func newTestDebouncer(delay time.Duration) *Debouncer {
	return NewDebouncer(context.Background(), delay, logger.Nop())
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	d := newTestDebouncer(30 * time.Millisecond)

	var runs atomic.Int32
	var last atomic.Int32
	for i := 1; i <= 5; i++ {
		v := int32(i)
		require.NoError(t, d.Schedule(func(context.Context) error {
			runs.Add(1)
			last.Store(v)
			return nil
		}))
	}

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
	assert.Equal(t, int32(5), last.Load())
	assert.False(t, d.Pending())
}

func TestDebouncer_ScheduleRestartsQuietPeriod(t *testing.T) {
	d := newTestDebouncer(80 * time.Millisecond)

	var runs atomic.Int32
	task := func(context.Context) error { runs.Add(1); return nil }

	require.NoError(t, d.Schedule(task))
	time.Sleep(40 * time.Millisecond)
	require.NoError(t, d.Schedule(task))
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, int32(0), runs.Load(), "timer must restart on every schedule")
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestDebouncer_FlushRunsPendingSynchronously(t *testing.T) {
	d := newTestDebouncer(time.Hour)

	ran := false
	require.NoError(t, d.Schedule(func(context.Context) error { ran = true; return nil }))
	require.True(t, d.Pending())

	require.NoError(t, d.Flush(context.Background()))
	assert.True(t, ran)
	assert.False(t, d.Pending())
}

func TestDebouncer_FlushReturnsTaskError(t *testing.T) {
	d := newTestDebouncer(time.Hour)
	errWrite := errors.New("write failed")

	require.NoError(t, d.Schedule(func(context.Context) error { return errWrite }))

	assert.ErrorIs(t, d.Flush(context.Background()), errWrite)
	assert.False(t, d.Pending())
}

func TestDebouncer_FlushWithoutPendingIsNoop(t *testing.T) {
	d := newTestDebouncer(time.Hour)
	assert.NoError(t, d.Flush(context.Background()))
}

func TestDebouncer_BackgroundErrorIsNotRetried(t *testing.T) {
	d := newTestDebouncer(10 * time.Millisecond)
	errWrite := errors.New("write failed")

	var runs atomic.Int32
	require.NoError(t, d.Schedule(func(context.Context) error { runs.Add(1); return errWrite }))

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.False(t, d.Pending())

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load(), "failed tasks are not retried")
}

func TestDebouncer_RunsNeverOverlap(t *testing.T) {
	d := newTestDebouncer(time.Millisecond)

	var active, maxActive atomic.Int32
	task := func(context.Context) error {
		n := active.Add(1)
		for {
			m := maxActive.Load()
			if n <= m || maxActive.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		active.Add(-1)
		return nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = d.Schedule(task)
			_ = d.Flush(context.Background())
		}()
		time.Sleep(2 * time.Millisecond)
	}
	wg.Wait()
	require.NoError(t, d.Flush(context.Background()))

	assert.Equal(t, int32(1), maxActive.Load())
}

func TestDebouncer_StopFlushesAndRefuses(t *testing.T) {
	d := newTestDebouncer(time.Hour)

	ran := false
	require.NoError(t, d.Schedule(func(context.Context) error { ran = true; return nil }))

	require.NoError(t, d.Stop(context.Background()))
	assert.True(t, ran)

	err := d.Schedule(func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrStopped)
}

func TestNewDebouncer_DefaultDelay(t *testing.T) {
	d := NewDebouncer(context.Background(), 0, logger.Nop())
	assert.Equal(t, DefaultDebounce, d.delay)
}
