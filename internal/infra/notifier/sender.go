package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/config"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/push"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/metrics"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

// Remover apaga inscrições que o serviço de push declarou expiradas.
type Remover interface {
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type Sender struct {
	opts    webpush.Options
	remover Remover
	log     zerolog.Logger
	metrics *metrics.Metrics
}

var _ push.Sender = (*Sender)(nil)

func NewSender(
	cfg config.PushConfig,
	remover Remover,
	log zerolog.Logger,
	m *metrics.Metrics,
) *Sender {
	return &Sender{
		opts: webpush.Options{
			Subscriber:      cfg.Subscriber,
			VAPIDPublicKey:  cfg.VAPIDPublicKey,
			VAPIDPrivateKey: cfg.VAPIDPrivateKey,
			TTL:             cfg.TTLSeconds,
			Urgency:         webpush.UrgencyHigh,
			HTTPClient:      &http.Client{Timeout: 15 * time.Second},
		},
		remover: remover,
		log:     log,
		metrics: m,
	}
}

func (s *Sender) Send(
	ctx context.Context,
	sub models.PushSubscription,
	payload push.Payload,
) (res push.Result) {

	res = push.Result{
		SubscriptionID: sub.ID,
		Endpoint:       sub.Endpoint,
	}

	defer func() {
		if r := recover(); r != nil {
			res.Outcome = push.OutcomeFailed
			res.Err = fmt.Errorf("push send panic: %v", r)
		}
		s.metrics.PushDeliveries.WithLabelValues(string(res.Outcome)).Inc()
		s.logResult(res)
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		res.Outcome = push.OutcomeFailed
		res.Err = fmt.Errorf("encode push payload: %w", err)
		return res
	}

	opts := s.opts
	resp, err := webpush.SendNotificationWithContext(ctx, body, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &opts)
	if err != nil {
		res.Outcome = push.OutcomeFailed
		res.Err = fmt.Errorf("push send: %w", err)
		return res
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	res.StatusCode = resp.StatusCode

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		res.Outcome = push.OutcomeDelivered

	case resp.StatusCode == http.StatusGone || resp.StatusCode == http.StatusNotFound:
		res.Outcome = push.OutcomeGone
		if err := s.remover.DeleteByID(ctx, sub.ID); err != nil {
			s.log.Error().
				Err(err).
				Str("subscription_id", sub.ID.String()).
				Msg("failed to delete expired push subscription")
		}

	default:
		res.Outcome = push.OutcomeFailed
		res.Err = fmt.Errorf("push service responded %d", resp.StatusCode)
	}

	return res
}

func (s *Sender) logResult(res push.Result) {
	ev := s.log.Debug()
	switch res.Outcome {
	case push.OutcomeGone:
		ev = s.log.Info()
	case push.OutcomeFailed:
		ev = s.log.Warn().Err(res.Err)
	}

	ev.Str("subscription_id", res.SubscriptionID.String()).
		Str("outcome", string(res.Outcome)).
		Int("status", res.StatusCode).
		Msg("push delivery")
}
