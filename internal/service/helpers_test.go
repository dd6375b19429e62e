package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mood-journal/internal/config"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/store"
	"github.com/MKhiriev/go-mood-journal/internal/utils"
)

var (
	t0           = time.Date(2026, 5, 4, 8, 30, 0, 0, time.UTC)
	errDiskFull  = errors.New("disk full")
	testPassword = "correct horse battery staple"
)

func ptr[T any](v T) *T { return &v }

func testCtx() context.Context {
	return logger.Nop().WithContext(context.Background())
}

// seqIDs hands out e-1, e-2, ...
type seqIDs struct{ n atomic.Int64 }

func (s *seqIDs) Generate() string {
	return fmt.Sprintf("e-%d", s.n.Add(1))
}

// countingStore wraps a memory store, counts writes per slot and can be made
// to fail.
type countingStore struct {
	store.KeyValueStore

	mu     sync.Mutex
	writes map[string]int
	fail   bool
}

func newCountingStore() *countingStore {
	return &countingStore{KeyValueStore: store.NewMemoryStore(), writes: map[string]int{}}
}

func (s *countingStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	fail := s.fail
	s.mu.Unlock()
	if fail {
		return fmt.Errorf("%w: %w", store.ErrPersistence, errDiskFull)
	}

	if err := s.KeyValueStore.Set(ctx, key, value); err != nil {
		return err
	}
	s.mu.Lock()
	s.writes[key]++
	s.mu.Unlock()
	return nil
}

func (s *countingStore) setFail(v bool) {
	s.mu.Lock()
	s.fail = v
	s.mu.Unlock()
}

func (s *countingStore) count(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes[key]
}

// testJournal is a fully wired session over a memory store. The debounce is
// long so saves only happen on Flush unless a test says otherwise.
type testJournal struct {
	*ClientServices
	slots *countingStore
	clock *utils.ManualClock
}

func newTestJournal(t *testing.T, slots *countingStore, debounce time.Duration) *testJournal {
	t.Helper()
	if slots == nil {
		slots = newCountingStore()
	}
	if debounce == 0 {
		debounce = time.Hour
	}

	clock := utils.NewManualClock(t0)
	cfg := &config.ClientConfig{
		Crypto:  config.ClientCrypto{KDFIterations: 120_000},
		Workers: config.ClientWorkers{SaveDebounce: debounce},
	}
	deps := Deps{
		Storages: &store.ClientStorages{Slots: slots, Salts: store.NewSaltStore(slots, utils.NewCryptoRandom())},
		Random:   utils.NewCryptoRandom(),
		Clock:    clock,
		IDs:      &seqIDs{},
	}

	svc := NewClientServices(testCtx(), deps, cfg, logger.Nop())
	t.Cleanup(func() { _ = svc.Workers.Stop(context.Background()) })

	return &testJournal{ClientServices: svc, slots: slots, clock: clock}
}

func (j *testJournal) unlock(t *testing.T) {
	t.Helper()
	require.NoError(t, j.Lock.Unlock(testCtx(), testPassword))
}
