package audit

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/metrics"
)

const (
	defaultQueueSize = 100
	writeTimeout     = 5 * time.Second
)

type Dispatcher struct {
	writer  Writer
	queue   chan Event
	log     zerolog.Logger
	metrics *metrics.Metrics

	// mu protege closed e o close(queue) contra um Record tardio.
	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

var _ Recorder = (*Dispatcher)(nil)

func NewDispatcher(writer Writer, log zerolog.Logger, m *metrics.Metrics) *Dispatcher {
	d := &Dispatcher{
		writer:  writer,
		queue:   make(chan Event, defaultQueueSize), // buffer seguro
		log:     log,
		metrics: m,
		done:    make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := d.writer.Write(ctx, ev)
		cancel()

		if err != nil {
			d.metrics.AuditEventsFailed.Inc()
			d.log.Error().
				Err(err).
				Str("appointment_id", ev.AppointmentID.String()).
				Str("type", ev.Type).
				Msg("audit write failed")
			continue
		}
		d.metrics.AuditEventsWritten.Inc()
	}
}

func (d *Dispatcher) Record(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.metrics.AuditEventsDropped.Inc()
		d.log.Warn().
			Str("appointment_id", ev.AppointmentID.String()).
			Str("type", ev.Type).
			Msg("audit dispatcher closed, dropping event")
		return
	}

	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		d.metrics.AuditEventsDropped.Inc()
		d.log.Warn().
			Str("appointment_id", ev.AppointmentID.String()).
			Str("type", ev.Type).
			Msg("audit queue full, dropping event")
	}
}

// Close para de aceitar eventos e espera a fila esvaziar ou ctx expirar.
// Record depois de Close descarta o evento.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
