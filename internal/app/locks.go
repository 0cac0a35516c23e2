package app

import (
	"context"
	"sync"
	"time"

	"github.com/matchfit/scorebox/pkg/metrics"
)

// categoryLocks serializes rank+aggregate runs per category. Two concurrent
// submissions into the same category would otherwise each rank against a
// stale result set; serializing the whole validate-upsert-rank-aggregate
// sequence keeps the final ranking deterministic.
type categoryLocks struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func newCategoryLocks() *categoryLocks {
	return &categoryLocks{slots: make(map[string]chan struct{})}
}

func (l *categoryLocks) slot(categoryID string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.slots[categoryID]
	if !ok {
		s = make(chan struct{}, 1)
		l.slots[categoryID] = s
	}
	return s
}

// acquire takes the category's slot or fails with ErrCategoryBusy after
// timeout. Context cancellation aborts the wait early.
func (l *categoryLocks) acquire(ctx context.Context, categoryID string, timeout time.Duration) error {
	start := time.Now()
	slot := l.slot(categoryID)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case slot <- struct{}{}:
		metrics.RecordLockWait(float64(time.Since(start).Milliseconds()))
		return nil
	case <-timer.C:
		metrics.RecordLockTimeout()
		return ErrCategoryBusy
	case <-ctx.Done():
		metrics.RecordLockTimeout()
		return ErrCategoryBusy
	}
}

func (l *categoryLocks) release(categoryID string) {
	<-l.slot(categoryID)
}
