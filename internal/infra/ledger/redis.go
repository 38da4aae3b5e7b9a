package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/reminder"
)

type RedisLedger struct {
	client *redis.Client
}

var _ reminder.Ledger = (*RedisLedger)(nil)

func NewRedisLedger(client *redis.Client) *RedisLedger {
	return &RedisLedger{client: client}
}

func (l *RedisLedger) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("ledger claim %s: %w", key, err)
	}
	return ok, nil
}
