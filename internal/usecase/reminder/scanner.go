package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/audit"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/appointment"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/push"
	domain "github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/reminder"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/metrics"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

const (
	skipNotEligible     = "not_eligible"
	skipNoSettings      = "no_settings"
	skipDisabled        = "disabled"
	skipNoSubscriptions = "no_subscriptions"
	skipAlreadySent     = "already_sent"
)

// ======================================================
// REPORT
// ======================================================

type Dispatch struct {
	AppointmentID uuid.UUID
	Results       []push.Result
}

type LeadReport struct {
	Lead       string
	Window     domain.Window
	Matched    int
	Skipped    map[string]int
	Dispatches []Dispatch
	Err        error
}

type Report struct {
	At    time.Time
	Leads []LeadReport
}

// Results achata os resultados de todas as antecedências.
func (r Report) Results() []push.Result {
	var out []push.Result
	for _, l := range r.Leads {
		for _, d := range l.Dispatches {
			out = append(out, d.Results...)
		}
	}
	return out
}

// ======================================================
// SCANNER
// ======================================================

type ScannerConfig struct {
	Tolerance time.Duration
	LedgerTTL time.Duration
	Location  *time.Location
}

type Scanner struct {
	repo    domain.Repository
	sender  push.Sender
	ledger  domain.Ledger
	audit   audit.Recorder
	cfg     ScannerConfig
	log     zerolog.Logger
	metrics *metrics.Metrics
}

func NewScanner(
	repo domain.Repository,
	sender push.Sender,
	ledger domain.Ledger,
	recorder audit.Recorder,
	cfg ScannerConfig,
	log zerolog.Logger,
	m *metrics.Metrics,
) *Scanner {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Scanner{
		repo:    repo,
		sender:  sender,
		ledger:  ledger,
		audit:   recorder,
		cfg:     cfg,
		log:     log,
		metrics: m,
	}
}

// Scan processa as antecedências em ordem. A falha de uma não impede as demais.
func (s *Scanner) Scan(ctx context.Context, now time.Time) Report {
	started := time.Now()
	s.metrics.ReminderScans.Inc()
	defer func() {
		s.metrics.ReminderScanLatency.Observe(time.Since(started).Seconds())
	}()

	report := Report{At: now}
	for _, lead := range domain.LeadTimes {
		if ctx.Err() != nil {
			s.log.Warn().Err(ctx.Err()).Str("lead", lead.Name).Msg("reminder scan interrupted")
			break
		}
		report.Leads = append(report.Leads, s.scanLead(ctx, now, lead))
	}
	return report
}

func (s *Scanner) scanLead(ctx context.Context, now time.Time, lead domain.LeadTime) LeadReport {
	window := domain.ComputeTriggerWindow(now, lead.Duration, s.cfg.Tolerance)
	lr := LeadReport{
		Lead:    lead.Name,
		Window:  window,
		Skipped: map[string]int{},
	}

	appointments, err := s.repo.ListPendingStartingBetween(ctx, window.From, window.To)
	if err != nil {
		lr.Err = fmt.Errorf("list reminders %s: %w", lead.Name, err)
		s.metrics.ReminderScanErrors.WithLabelValues(lead.Name).Inc()
		s.log.Error().Err(err).Str("lead", lead.Name).Msg("reminder window query failed")
		sentry.CaptureException(lr.Err)
		return lr
	}
	lr.Matched = len(appointments)

	for i := range appointments {
		if ctx.Err() != nil {
			break
		}

		ap := &appointments[i]
		if reason := s.skipReason(ctx, ap, lead, window); reason != "" {
			lr.Skipped[reason]++
			s.metrics.RemindersSkipped.WithLabelValues(lead.Name, reason).Inc()
			continue
		}

		lr.Dispatches = append(lr.Dispatches, s.dispatch(ctx, ap, lead))
	}

	s.log.Info().
		Str("lead", lead.Name).
		Time("from", window.From).
		Time("to", window.To).
		Int("matched", lr.Matched).
		Int("dispatched", len(lr.Dispatches)).
		Msg("reminder window processed")

	return lr
}

func (s *Scanner) skipReason(ctx context.Context, ap *models.Appointment, lead domain.LeadTime, window domain.Window) string {
	// A consulta já filtra, mas o envio só acontece para PENDENTE dentro da janela.
	if ap.Status != string(appointment.StatusPending) || !window.Contains(ap.StartTime) {
		return skipNotEligible
	}

	settings := ap.User.Settings
	if settings == nil {
		return skipNoSettings
	}
	if !lead.Enabled(settings) {
		return skipDisabled
	}
	if len(ap.User.PushSubscriptions) == 0 {
		return skipNoSubscriptions
	}

	key := domain.LedgerKey(ap.ID, lead, ap.StartTime)
	claimed, err := s.ledger.Claim(ctx, key, s.cfg.LedgerTTL)
	if err != nil {
		// Sem o ledger, melhor arriscar um lembrete duplicado do que nenhum.
		s.log.Warn().Err(err).Str("key", key).Msg("reminder ledger unavailable, sending anyway")
		return ""
	}
	if !claimed {
		return skipAlreadySent
	}
	return ""
}

func (s *Scanner) dispatch(ctx context.Context, ap *models.Appointment, lead domain.LeadTime) Dispatch {
	payload := domain.BuildPayload(ap.Client.Name, ap.Service.Name, ap.StartTime, s.cfg.Location)

	d := Dispatch{AppointmentID: ap.ID}
	counts := map[push.Outcome]int{}
	for _, sub := range ap.User.PushSubscriptions {
		res := s.sender.Send(ctx, sub, payload)
		counts[res.Outcome]++
		d.Results = append(d.Results, res)
	}

	s.metrics.RemindersDispatched.WithLabelValues(lead.Name).Inc()
	s.audit.Record(audit.Event{
		AppointmentID: ap.ID,
		Type:          lead.EventType(),
		Channel:       audit.ChannelPush,
		Payload: map[string]any{
			"body":      payload.Body,
			"delivered": counts[push.OutcomeDelivered],
			"gone":      counts[push.OutcomeGone],
			"failed":    counts[push.OutcomeFailed],
		},
	})

	return d
}
