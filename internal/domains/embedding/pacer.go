package embedding

import (
	"context"
	"time"
)

// Pacer spaces out provider calls so bulk runs stay under the embedding
// provider's rate limit. Injected so tests run without delays.
type Pacer interface {
	AfterRecord(ctx context.Context)
	AfterPage(ctx context.Context)
}

type fixedPacer struct {
	record time.Duration
	page   time.Duration
}

func (p fixedPacer) AfterRecord(ctx context.Context) { pause(ctx, p.record) }
func (p fixedPacer) AfterPage(ctx context.Context)   { pause(ctx, p.page) }

func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// NewFixedPacer returns the production pacing policy: 200ms between records,
// 1s between pages.
func NewFixedPacer() Pacer {
	return fixedPacer{record: 200 * time.Millisecond, page: time.Second}
}

// NewNopPacer returns a pacer that never waits.
func NewNopPacer() Pacer {
	return fixedPacer{}
}
