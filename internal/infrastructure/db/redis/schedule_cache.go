package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/coffeelounge/shiftboard/internal/core/domain"
)

const defaultScheduleTTL = 5 * time.Minute

// ScheduleCache caches fully resolved week schedules, keyed by the week's
// Monday. Entries are written by the schedule read path and invalidated by
// shift creation; the short TTL covers mutations that bypass the API.
// Shifts are stored in their JSON form, which includes the denormalized
// employee, so a hit needs no further lookups.
// Key format: schedule:week:<YYYY-MM-DD>
type ScheduleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScheduleCache wraps the given Redis client. A zero ttl falls back to
// the default.
func NewScheduleCache(client *redis.Client, ttl time.Duration) *ScheduleCache {
	if ttl <= 0 {
		ttl = defaultScheduleTTL
	}
	return &ScheduleCache{client: client, ttl: ttl}
}

// Get returns the cached week and true on a hit.
func (c *ScheduleCache) Get(ctx context.Context, weekStart string) ([]domain.Shift, bool, error) {
	raw, err := c.client.Get(ctx, c.key(weekStart)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("schedule cache get: %w", err)
	}

	var shifts []domain.Shift
	if err := json.Unmarshal(raw, &shifts); err != nil {
		return nil, false, fmt.Errorf("schedule cache decode: %w", err)
	}
	return shifts, true, nil
}

// Set stores the week's shifts under the week-start key.
func (c *ScheduleCache) Set(ctx context.Context, weekStart string, shifts []domain.Shift) error {
	raw, err := json.Marshal(shifts)
	if err != nil {
		return fmt.Errorf("schedule cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(weekStart), raw, c.ttl).Err()
}

// Invalidate drops the cached entry for the week, if any.
func (c *ScheduleCache) Invalidate(ctx context.Context, weekStart string) error {
	return c.client.Del(ctx, c.key(weekStart)).Err()
}

func (c *ScheduleCache) key(weekStart string) string {
	return "schedule:week:" + weekStart
}
