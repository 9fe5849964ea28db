package retry

import "time"

// BackoffFunc returns the wait before the next attempt, given the
// 1-based number of the attempt that just failed.
type BackoffFunc func(attempt int) time.Duration

// Linear waits attempt × step between attempts.
func Linear(step time.Duration) BackoffFunc {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * step
	}
}

// Do runs fn up to attempts times, sleeping per backoff between failed
// attempts. It returns nil on the first success, otherwise the last
// error.
func Do(attempts int, backoff BackoffFunc, fn func() error) error {
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt < attempts && backoff != nil {
			time.Sleep(backoff(attempt))
		}
	}
	return err
}
