// Package async includes helpers for scheduling concurrent tasks and
// bounding access to shared resources.
package async

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
)

// maxReaders bounds the number of concurrent read lock holders. The writer
// acquires the full weight, which excludes every reader.
const maxReaders = 1 << 16

// TimeoutRWMutex is a readers/writer lock whose acquisitions are bounded by a
// caller supplied timeout. An acquisition that does not succeed within the
// timeout reports failure instead of blocking forever, so a wedged lock holder
// surfaces as an internal error at the call site rather than a deadlock.
type TimeoutRWMutex struct {
	sem *semaphore.Weighted
}

// NewTimeoutRWMutex initializes the underlying weighted semaphore.
func NewTimeoutRWMutex() *TimeoutRWMutex {
	return &TimeoutRWMutex{sem: semaphore.NewWeighted(maxReaders)}
}

// RLockFor acquires the lock for reading, waiting up to timeout. It reports
// whether the acquisition succeeded.
func (m *TimeoutRWMutex) RLockFor(timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return m.sem.Acquire(ctx, 1) == nil
}

// RUnlock releases a read acquisition.
func (m *TimeoutRWMutex) RUnlock() {
	m.sem.Release(1)
}

// LockFor acquires the lock for writing, waiting up to timeout. It reports
// whether the acquisition succeeded.
func (m *TimeoutRWMutex) LockFor(timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return m.sem.Acquire(ctx, maxReaders) == nil
}

// Unlock releases a write acquisition.
func (m *TimeoutRWMutex) Unlock() {
	m.sem.Release(maxReaders)
}
