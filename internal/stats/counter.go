// Package stats caches per-quiz participant counts so quiz listings do
// not hit the submissions table once per quiz per request.
package stats

import (
	"context"
	"time"
)

// CountFunc loads the authoritative count from the backing store.
type CountFunc func(ctx context.Context, quizID string) (int64, error)

// Counter answers "how many submissions does this quiz have" from a cache,
// falling back to the loader on a miss. Invalidate is called when a new
// submission arrives or a quiz is deleted.
type Counter interface {
	Participants(ctx context.Context, quizID string) (int64, error)
	Invalidate(ctx context.Context, quizID string) error
}

const defaultTTL = time.Minute
