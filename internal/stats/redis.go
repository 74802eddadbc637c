package stats

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisCounter caches counts as plain integer strings under
// quiz:{id}:participants with a TTL.
type redisCounter struct {
	client *redis.Client
	load   CountFunc
	ttl    time.Duration
}

func NewRedisCounter(client *redis.Client, load CountFunc, ttl time.Duration) Counter {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &redisCounter{client: client, load: load, ttl: ttl}
}

func (c *redisCounter) Participants(ctx context.Context, quizID string) (int64, error) {
	key := counterKey(quizID)
	if v, err := c.client.Get(ctx, key).Result(); err == nil {
		if n, perr := strconv.ParseInt(v, 10, 64); perr == nil {
			return n, nil
		}
	}
	n, err := c.load(ctx, quizID)
	if err != nil {
		return 0, err
	}
	// Best effort: a failed SET only costs the next caller a reload.
	_ = c.client.Set(ctx, key, strconv.FormatInt(n, 10), c.ttl).Err()
	return n, nil
}

func (c *redisCounter) Invalidate(ctx context.Context, quizID string) error {
	return c.client.Del(ctx, counterKey(quizID)).Err()
}

func counterKey(quizID string) string {
	return "quiz:" + quizID + ":participants"
}
