package services

import (
	"context"
	"time"
)

// RunTicker calls fn right away and then every interval until ctx is
// cancelled or fn returns an error. It returns nil on cancellation.
func RunTicker(ctx context.Context, clock Clock, interval time.Duration, fn func(now time.Time) error) error {
	if interval <= 0 {
		interval = time.Second
	}
	if err := fn(clock.Now()); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := fn(clock.Now()); err != nil {
				return err
			}
		}
	}
}
