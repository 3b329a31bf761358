package repo

import (
	"context"
	"time"
)

var queryTimeout = 3 * time.Second

// SetQueryTimeout bounds every query issued by the Postgres repositories.
func SetQueryTimeout(d time.Duration) {
	if d > 0 {
		queryTimeout = d
	}
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
