package workflow

import (
	"context"
	"errors"
	"time"
)

// TaskHandle is the future-like placeholder the workflow engine returns for
// submitted work. Done must not block. Result blocks until the task finishes
// and returns any failure recorded during execution; the engine guarantees it
// returns immediately once Done reports true.
type TaskHandle interface {
	Done() bool
	Result(ctx context.Context) error
}

// DefaultPollInterval is used by WaitAll when no interval is given.
const DefaultPollInterval = 10 * time.Second

// WaitAll blocks until every handle reports completion, then retrieves each
// handle's result in submission order to surface failures recorded during
// execution. Failed tasks do not interrupt the wait: WaitAll returns only
// once all handles are complete, with the failures joined into one error.
//
// The engine offers no completion notification on its handles, only the
// non-blocking done check, so WaitAll polls: handles already seen done are
// not re-checked, and a completed set returns without waiting out the
// interval. Cancelling ctx aborts the wait with ctx.Err().
func WaitAll(ctx context.Context, handles []TaskHandle, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	done := make([]bool, len(handles))
	remaining := len(handles)

	for remaining > 0 {
		for i, handle := range handles {
			if !done[i] && handle.Done() {
				done[i] = true
				remaining--
			}
		}
		if remaining == 0 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	var errs []error
	for _, handle := range handles {
		if err := handle.Result(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
