package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	syncLockKey = "sync:films:lock"
	// syncLockTTL bounds how long a crashed run can keep the lease.
	syncLockTTL = 5 * time.Minute
)

// SyncLock provides a coarse lease over catalog synchronization runs backed
// by Redis SETNX, so two concurrent sync requests do not race the same
// fetch-diff-insert sequence. The lease expires on its own if a holder dies
// without releasing it.
type SyncLock struct {
	client *redis.Client
}

// NewSyncLock creates a SyncLock wrapping the given Redis client.
func NewSyncLock(client *redis.Client) *SyncLock {
	return &SyncLock{client: client}
}

// Acquire takes the lease; false means another run currently holds it.
func (l *SyncLock) Acquire(ctx context.Context) (bool, error) {
	ok, err := l.client.SetNX(ctx, syncLockKey, "1", syncLockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("acquire sync lock: %w", err)
	}
	return ok, nil
}

// Release drops the lease so the next run can proceed immediately.
func (l *SyncLock) Release(ctx context.Context) error {
	if err := l.client.Del(ctx, syncLockKey).Err(); err != nil {
		return fmt.Errorf("release sync lock: %w", err)
	}
	return nil
}
