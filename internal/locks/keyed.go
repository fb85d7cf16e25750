package locks

import (
	"context"
	"sync"
	"time"

	"github.com/dockwise/dock-scheduler/internal/httperr"
)

// ReleaseFunc frees an acquired lock. Safe to call exactly once.
type ReleaseFunc func()

// Locker serializes booking admissions per facility+date+type key.
// Acquire blocks up to the configured wait and returns
// httperr.ErrLockTimeout when contention outlasts it. Different keys never
// block each other; there is no global lock.
type Locker interface {
	Acquire(ctx context.Context, key string) (ReleaseFunc, error)
}

// ======================================================
// In-process implementation
// ======================================================

// KeyedMutex is the single-instance Locker: one semaphore channel per key.
type KeyedMutex struct {
	mu   sync.Mutex
	sems map[string]chan struct{}
	wait time.Duration
}

func NewKeyedMutex(wait time.Duration) *KeyedMutex {
	return &KeyedMutex{
		sems: make(map[string]chan struct{}),
		wait: wait,
	}
}

func (m *KeyedMutex) sem(key string) chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch, ok := m.sems[key]
	if !ok {
		ch = make(chan struct{}, 1)
		m.sems[key] = ch
	}
	return ch
}

func (m *KeyedMutex) Acquire(ctx context.Context, key string) (ReleaseFunc, error) {
	ch := m.sem(key)

	timer := time.NewTimer(m.wait)
	defer timer.Stop()

	select {
	case ch <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() { <-ch })
		}, nil
	case <-timer.C:
		return nil, httperr.ErrLockTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
