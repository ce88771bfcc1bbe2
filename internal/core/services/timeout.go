package services

import (
	"context"
	"time"
)

// storageTimeouts bounds repository calls made by a service. A zero duration
// disables the bound.
type storageTimeouts struct {
	storageTimeout time.Duration
}

func (t storageTimeouts) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if t.storageTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, t.storageTimeout)
}
