package api

import (
	"context"
	"time"
)

// backoffCap bounds the exponential growth of the retry delay, measured
// in retry units.
const backoffCap = 60

// backoffUnits returns the number of retry units to wait after a failed
// attempt (zero-based): 2^attempt, capped at backoffCap.
func backoffUnits(attempt int) int {
	if attempt < 0 {
		return 1
	}
	// 2^6 already exceeds the cap.
	if attempt >= 6 {
		return backoffCap
	}
	return 1 << attempt
}

// backoffDelay converts the unit count for attempt into a duration.
func backoffDelay(attempt int, unit time.Duration) time.Duration {
	return time.Duration(backoffUnits(attempt)) * unit
}

// wait sleeps for d or until ctx is done, whichever comes first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
