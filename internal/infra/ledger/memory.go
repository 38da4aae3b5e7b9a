package ledger

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/reminder"
)

// MemoryLedger serve para uma instância única sem Redis. Reiniciar o
// processo esquece as marcas.
type MemoryLedger struct {
	cache *cache.Cache
}

var _ reminder.Ledger = (*MemoryLedger)(nil)

func NewMemoryLedger(cleanup time.Duration) *MemoryLedger {
	return &MemoryLedger{cache: cache.New(cache.NoExpiration, cleanup)}
}

func (l *MemoryLedger) Claim(_ context.Context, key string, ttl time.Duration) (bool, error) {
	// Add falha se a chave já existe e ainda não expirou.
	if err := l.cache.Add(key, struct{}{}, ttl); err != nil {
		return false, nil
	}
	return true, nil
}
