package push

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

var ErrNotFound = errors.New("push subscription not found")

// Payload é o JSON entregue ao service worker.
type Payload struct {
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data,omitempty"`
}

type Outcome string

const (
	OutcomeDelivered Outcome = "delivered"
	OutcomeGone      Outcome = "gone"
	OutcomeFailed    Outcome = "failed"
)

// Result descreve uma tentativa de entrega para uma única inscrição.
type Result struct {
	SubscriptionID uuid.UUID
	Endpoint       string
	Outcome        Outcome
	StatusCode     int
	Err            error
}

// Sender nunca devolve erro nem entra em pânico: tudo vai para o Result.
type Sender interface {
	Send(ctx context.Context, sub models.PushSubscription, payload Payload) Result
}

type Repository interface {
	FindByEndpoint(
		ctx context.Context,
		endpoint string,
	) (*models.PushSubscription, error)

	Create(
		ctx context.Context,
		sub *models.PushSubscription,
	) error

	DeleteByEndpoint(
		ctx context.Context,
		userID uuid.UUID,
		endpoint string,
	) error

	DeleteByID(
		ctx context.Context,
		id uuid.UUID,
	) error
}
