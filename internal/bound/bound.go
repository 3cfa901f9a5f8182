// Package bound wraps calls into the external solver with a wall-clock
// ceiling. A timeout is not an error: it is a first-class "no result within
// deadline" outcome the caller must handle explicitly.
//
// Run is the cooperative path: the callee receives a deadline-scoped
// context and is expected to honor it, so cancellation is real. RunDetached
// exists for callees that cannot be made cooperative: the call runs on a
// worker goroutine and is abandoned at the deadline. The abandoned worker
// keeps running in the background; that resource leak is an accepted
// limitation, not something this package can eliminate.
package bound

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Run invokes fn with a context that expires after timeout. It returns
// fn's result and ok=true on normal completion, or the zero value and
// ok=false when the deadline was hit. fn's own errors pass through with
// ok=true; nothing raised by fn crosses the wrapper boundary as a panic.
func Run[T any](ctx context.Context, logger *zap.Logger, timeout time.Duration, fn func(context.Context) (T, error)) (result T, ok bool, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err = fn(callCtx)
	if callCtx.Err() != nil && (errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)) {
		logTimeout(logger, timeout)
		var zero T
		return zero, false, nil
	}
	return result, true, err
}

// RunDetached invokes fn on a worker goroutine and waits up to timeout. On
// a timeout the worker is abandoned, not stopped: it may continue running
// after the caller proceeds. A panic inside fn is converted to an error
// rather than crossing the boundary.
func RunDetached[T any](logger *zap.Logger, timeout time.Duration, fn func() (T, error)) (result T, ok bool, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	type outcome struct {
		result T
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		var out outcome
		defer func() {
			if r := recover(); r != nil {
				out.err = fmt.Errorf("bounded call panicked: %v", r)
			}
			done <- out
		}()
		out.result, out.err = fn()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case out := <-done:
		return out.result, true, out.err
	case <-timer.C:
		logTimeout(logger, timeout)
		var zero T
		return zero, false, nil
	}
}

func logTimeout(logger *zap.Logger, timeout time.Duration) {
	logger.Warn(fmt.Sprintf("TIMEOUT OF %d SECONDS EXCEEDED", int(timeout.Seconds())))
}
