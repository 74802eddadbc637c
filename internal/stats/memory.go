package stats

import (
	"context"
	"sync"
	"time"
)

// memoryCounter is the in-process fallback used when no redis address is
// configured.
type memoryCounter struct {
	mu      sync.Mutex
	load    CountFunc
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	count   int64
	expires time.Time
}

func NewMemoryCounter(load CountFunc, ttl time.Duration) Counter {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &memoryCounter{
		load:    load,
		ttl:     ttl,
		entries: map[string]memoryEntry{},
		now:     time.Now,
	}
}

func (c *memoryCounter) Participants(ctx context.Context, quizID string) (int64, error) {
	c.mu.Lock()
	e, ok := c.entries[quizID]
	c.mu.Unlock()
	if ok && c.now().Before(e.expires) {
		return e.count, nil
	}
	n, err := c.load(ctx, quizID)
	if err != nil {
		return 0, err
	}
	c.mu.Lock()
	c.entries[quizID] = memoryEntry{count: n, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return n, nil
}

func (c *memoryCounter) Invalidate(_ context.Context, quizID string) error {
	c.mu.Lock()
	delete(c.entries, quizID)
	c.mu.Unlock()
	return nil
}
