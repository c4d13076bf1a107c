package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is returned when the redis backend cannot be reached.
var ErrUnavailable = errors.New("cache unavailable")

// RetryableError marks a transient backend failure.
type RetryableError struct{ Err error }

// Retryable marks err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether any error in err's chain was marked transient.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// backoffPolicy is the retry schedule for redis calls: attempts tries,
// waiting first, then twice as long after every further failure.
type backoffPolicy struct {
	attempts int
	first    time.Duration
}

var backoff = backoffPolicy{attempts: 3, first: 100 * time.Millisecond}

// wait returns the pause after the given failed attempt (zero-based).
func (p backoffPolicy) wait(attempt int) time.Duration {
	return p.first << attempt
}

// RetryWithBackoff runs fn until it succeeds, fails permanently, or the
// attempts run out. Only errors marked with [Retryable] are retried; the
// last error is returned when every attempt fails.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < backoff.attempts; attempt++ {
		if err = fn(); err == nil || !IsRetryable(err) {
			return err
		}
		if attempt == backoff.attempts-1 {
			break
		}
		timer := time.NewTimer(backoff.wait(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return err
}
