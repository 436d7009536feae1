package persistence

import (
	"context"
	"time"

	"github.com/buccusa/buccusa-api/internal/pkg/logger"
)

// RetryUntilReady calls prepare every interval until it succeeds or ctx ends.
// It returns nil once prepare succeeds and ctx.Err() on cancellation.
func RetryUntilReady(ctx context.Context, interval time.Duration, prepare func(context.Context) error, log logger.Logger) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if err := prepare(ctx); err != nil {
			log.Warn("Database still not ready: ", err)
			continue
		}
		return nil
	}
}
