package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/infra/ledger"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/metrics"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

func TestNewSchedulerRejectsBadSpec(t *testing.T) {
	s := newTestScanner(&fakeReminderRepo{}, &fakeSender{}, ledger.NewMemoryLedger(time.Minute), &spyRecorder{}, metrics.NewNop())

	_, err := NewScheduler(s, "every ten minutes", time.UTC, time.Minute, zerolog.Nop())
	assert.Error(t, err)
}

func TestSchedulerRunOnceUsesClock(t *testing.T) {
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, brt)
	u := owner(&models.UserSettings{Notif24h: true, Notif3h: true, Notif1h: true}, "https://push.example/a")
	repo := &fakeReminderRepo{appointments: []models.Appointment{pendingAt(u, now.Add(3*time.Hour))}, now: now}
	sender := &fakeSender{}

	sc, err := NewScheduler(
		newTestScanner(repo, sender, ledger.NewMemoryLedger(time.Minute), &spyRecorder{}, metrics.NewNop()),
		"*/10 * * * *", brt, time.Minute, zerolog.Nop(),
	)
	require.NoError(t, err)
	sc.now = func() time.Time { return now }

	report := sc.RunOnce(context.Background())

	assert.Equal(t, now, report.At)
	assert.Len(t, sender.sent, 1)
}

func TestSchedulerStartStop(t *testing.T) {
	s := newTestScanner(&fakeReminderRepo{}, &fakeSender{}, ledger.NewMemoryLedger(time.Minute), &spyRecorder{}, metrics.NewNop())
	sc, err := NewScheduler(s, "*/10 * * * *", time.UTC, time.Minute, zerolog.Nop())
	require.NoError(t, err)

	sc.Start()
	assert.False(t, sc.Next().IsZero())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, sc.Stop(ctx))
}
