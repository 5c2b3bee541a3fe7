package async

import (
	"testing"
	"time"

	"github.com/prysmaticlabs/attestation/shared/testutil/assert"
	"github.com/prysmaticlabs/attestation/shared/testutil/require"
)

func TestTimeoutRWMutex_ReadersDoNotExclude(t *testing.T) {
	m := NewTimeoutRWMutex()
	require.Equal(t, true, m.RLockFor(time.Second))
	require.Equal(t, true, m.RLockFor(time.Second))
	m.RUnlock()
	m.RUnlock()
}

func TestTimeoutRWMutex_WriterExcludesReaders(t *testing.T) {
	m := NewTimeoutRWMutex()
	require.Equal(t, true, m.LockFor(time.Second))
	assert.Equal(t, false, m.RLockFor(10*time.Millisecond), "Read acquired while write lock held")
	m.Unlock()
	require.Equal(t, true, m.RLockFor(time.Second))
	m.RUnlock()
}

func TestTimeoutRWMutex_WriterTimesOutBehindReader(t *testing.T) {
	m := NewTimeoutRWMutex()
	require.Equal(t, true, m.RLockFor(time.Second))
	assert.Equal(t, false, m.LockFor(10*time.Millisecond), "Write acquired while read lock held")
	m.RUnlock()
	require.Equal(t, true, m.LockFor(time.Second))
	m.Unlock()
}
