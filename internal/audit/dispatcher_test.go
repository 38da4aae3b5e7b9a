package audit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/metrics"
)

type memWriter struct {
	mu     sync.Mutex
	events []Event
	err    error
	block  chan struct{}
}

func (w *memWriter) Write(_ context.Context, ev Event) error {
	if w.block != nil {
		<-w.block
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.events = append(w.events, ev)
	return nil
}

func (w *memWriter) all() []Event {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]Event(nil), w.events...)
}

func TestDispatcherWritesAndDrainsOnClose(t *testing.T) {
	w := &memWriter{}
	m := metrics.NewNop()
	d := NewDispatcher(w, zerolog.Nop(), m)

	id := uuid.New()
	for i := 0; i < 10; i++ {
		d.Record(StatusChange(id, "PENDENTE", "CONCLUIDO", time.Time{}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	events := w.all()
	require.Len(t, events, 10)
	assert.Equal(t, TypeStatusChange, events[0].Type)
	assert.Equal(t, ChannelAudit, events[0].Channel)
	assert.False(t, events[0].Timestamp.IsZero())
	assert.Equal(t, StatusChangePayload{OldStatus: "PENDENTE", NewStatus: "CONCLUIDO"}, events[0].Payload)
	assert.Equal(t, 10.0, testutil.ToFloat64(m.AuditEventsWritten))
}

func TestDispatcherDropsWhenQueueFull(t *testing.T) {
	w := &memWriter{block: make(chan struct{})}
	m := metrics.NewNop()
	d := NewDispatcher(w, zerolog.Nop(), m)

	// Um evento fica preso no worker, o resto enche a fila.
	for i := 0; i < defaultQueueSize+10; i++ {
		d.Record(Event{AppointmentID: uuid.New(), Type: TypeStatusChange})
	}

	assert.GreaterOrEqual(t, testutil.ToFloat64(m.AuditEventsDropped), 9.0)

	close(w.block)
	require.NoError(t, d.Close(context.Background()))
}

func TestDispatcherSurvivesWriteErrors(t *testing.T) {
	w := &memWriter{err: errors.New("db down")}
	m := metrics.NewNop()
	d := NewDispatcher(w, zerolog.Nop(), m)

	assert.NotPanics(t, func() {
		d.Record(Event{AppointmentID: uuid.New(), Type: TypeStatusChange})
	})
	require.NoError(t, d.Close(context.Background()))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuditEventsFailed))
}

func TestDispatcherRecordAfterCloseIsDropped(t *testing.T) {
	w := &memWriter{}
	m := metrics.NewNop()
	d := NewDispatcher(w, zerolog.Nop(), m)

	d.Record(Event{AppointmentID: uuid.New(), Type: TypeStatusChange})
	require.NoError(t, d.Close(context.Background()))

	assert.NotPanics(t, func() {
		d.Record(Event{AppointmentID: uuid.New(), Type: TypeStatusChange})
	})
	require.NoError(t, d.Close(context.Background()))

	assert.Len(t, w.all(), 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuditEventsDropped))
}

func TestDispatcherCloseRacesWithRecord(t *testing.T) {
	d := NewDispatcher(&memWriter{}, zerolog.Nop(), metrics.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				d.Record(Event{AppointmentID: uuid.New(), Type: TypeStatusChange})
			}
		}()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, d.Close(ctx))
	wg.Wait()
}

func TestEncodePayload(t *testing.T) {
	b, err := encodePayload(StatusChangePayload{OldStatus: "PENDENTE", NewStatus: "FALTOU"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"oldStatus":"PENDENTE","newStatus":"FALTOU"}`, string(b))

	b, err = encodePayload(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(b))
}
