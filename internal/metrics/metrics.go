package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "manicurestudio"

// Metrics agrupa os coletores do scanner de lembretes, do push e da auditoria.
type Metrics struct {
	ReminderScans       prometheus.Counter
	ReminderScanErrors  *prometheus.CounterVec
	ReminderScanLatency prometheus.Histogram
	RemindersSkipped    *prometheus.CounterVec
	RemindersDispatched *prometheus.CounterVec

	PushDeliveries *prometheus.CounterVec

	AuditEventsWritten prometheus.Counter
	AuditEventsDropped prometheus.Counter
	AuditEventsFailed  prometheus.Counter

	HTTPRequests *prometheus.CounterVec
}

// New registra os coletores em reg. Testes passam um registry próprio.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		ReminderScans: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reminder",
			Name:      "scans_total",
			Help:      "Total number of reminder scan ticks",
		}),
		ReminderScanErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reminder",
			Name:      "scan_errors_total",
			Help:      "Reminder window queries that failed, by lead time",
		}, []string{"lead"}),
		ReminderScanLatency: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "reminder",
			Name:      "scan_duration_seconds",
			Help:      "Time spent in a reminder scan tick",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		}),
		RemindersSkipped: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reminder",
			Name:      "skipped_total",
			Help:      "Appointments in a window that were not reminded, by reason",
		}, []string{"lead", "reason"}),
		RemindersDispatched: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reminder",
			Name:      "dispatched_total",
			Help:      "Reminders fanned out to subscriptions, by lead time",
		}, []string{"lead"}),
		PushDeliveries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "push",
			Name:      "deliveries_total",
			Help:      "Push delivery attempts by outcome",
		}, []string{"outcome"}),
		AuditEventsWritten: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "events_written_total",
			Help:      "Notification events persisted",
		}),
		AuditEventsDropped: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "events_dropped_total",
			Help:      "Notification events dropped because the queue was full",
		}),
		AuditEventsFailed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "events_failed_total",
			Help:      "Notification events that failed to persist",
		}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status class",
		}, []string{"method", "route", "status"}),
	}
}

// NewNop devolve coletores registrados num registry descartável.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
