// Package roughtime is a wrapper for the local clock time. The rest of the
// codebase reads the clock through this single package; Now returns
// time.Now directly and offers no override.
package roughtime

import (
	"time"
)

// Since returns the duration since t.
func Since(t time.Time) time.Duration {
	return Now().Sub(t)
}

// Until returns the duration until t.
func Until(t time.Time) time.Duration {
	return t.Sub(Now())
}

// Now returns the current local time.
func Now() time.Time {
	return time.Now()
}
