// Package util collects small helpers shared by the command-line tools:
// panic-on-error wrappers for code paths where an error can only mean a
// programmer mistake, and a ticker for reporting progress during long
// builds or benchmarks.
package util

import (
	"time"
)

// PanicIfErr panics if err is non-nil. Intended for call sites where the
// error can only indicate a bug (a closed channel write, a malformed
// constant), never a condition the caller should recover from.
func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}

// Must returns val, panicking if err is non-nil.
func Must[T any](val T, err error) T {
	PanicIfErr(err)
	return val
}

// SetInterval calls f once every interval, passing the start time and the
// current tick, until the returned stop function is called.
func SetInterval(f func(start, now time.Time), interval time.Duration) (stop func()) {
	start := time.Now()
	stopChan := make(chan struct{}, 1)
	ticker := time.NewTicker(interval)

	go func() {
	L:
		for {
			select {
			case now := <-ticker.C:
				f(start, now)
			case <-stopChan:
				break L
			}
		}
		ticker.Stop()
	}()

	return func() {
		stopChan <- struct{}{}
	}
}
