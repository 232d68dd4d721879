package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker provides idempotency checks for the activity pipeline.
// Key format: activity:<actor>:<action>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact event has already been processed.
func (d *DedupChecker) IsDuplicate(ctx context.Context, actor, action string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(actor, action, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this event has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, actor, action string, ts time.Time) error {
	return d.client.Set(ctx, d.key(actor, action, ts), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(actor, action string, ts time.Time) string {
	return fmt.Sprintf("activity:%s:%s:%d", actor, action, ts.Unix())
}
