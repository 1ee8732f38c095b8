package reembed

import (
	"context"
	"errors"
	"time"

	"codeberg.org/racewiki/server/internal/logger"
)

var ErrInvalidMaxAttempts = errors.New("maxAttempts must be positive")

// retries operation with exponential backoff (baseDelay, 2x, 4x, ...)
// and returns the last error when every attempt fails.
func RetryWithBackoff(ctx context.Context, operation func() error, maxAttempts int, baseDelay time.Duration) error {
	if maxAttempts <= 0 {
		return ErrInvalidMaxAttempts
	}

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = operation()
		if lastErr == nil {
			return nil
		}

		logger.Debug("operation failed, will retry", "attempt", attempt, "max_attempts", maxAttempts, "error", lastErr)

		if attempt == maxAttempts {
			break
		}

		timer := time.NewTimer(baseDelay << (attempt - 1))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return lastErr
}
