package ledger

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLedgerClaimsOnce(t *testing.T) {
	l := NewMemoryLedger(time.Minute)
	ctx := context.Background()

	ok, err := l.Claim(ctx, "reminder:a:1h:1", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Claim(ctx, "reminder:a:1h:1", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Claim(ctx, "reminder:a:3h:1", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLedgerExpires(t *testing.T) {
	l := NewMemoryLedger(time.Minute)
	ctx := context.Background()

	ok, _ := l.Claim(ctx, "k", 20*time.Millisecond)
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)

	ok, _ = l.Claim(ctx, "k", time.Hour)
	assert.True(t, ok)
}

func TestMemoryLedgerConcurrentClaims(t *testing.T) {
	l := NewMemoryLedger(time.Minute)

	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.Claim(context.Background(), "same", time.Hour); ok {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
}
