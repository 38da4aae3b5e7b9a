package push

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	domain "github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/push"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/httperr"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

type SubscribeInput struct {
	UserID   uuid.UUID
	Endpoint string
	P256dh   string
	Auth     string
}

type Subscribe struct {
	repo domain.Repository
}

func NewSubscribe(repo domain.Repository) *Subscribe {
	return &Subscribe{repo: repo}
}

// Execute é idempotente pelo endpoint: uma inscrição existente volta inalterada.
func (uc *Subscribe) Execute(
	ctx context.Context,
	in SubscribeInput,
) (*models.PushSubscription, error) {

	in.Endpoint = strings.TrimSpace(in.Endpoint)
	if in.Endpoint == "" || in.P256dh == "" || in.Auth == "" {
		return nil, httperr.ErrInvalid("invalid_subscription")
	}

	existing, err := uc.repo.FindByEndpoint(ctx, in.Endpoint)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	sub := &models.PushSubscription{
		UserID:   in.UserID,
		Endpoint: in.Endpoint,
		P256dh:   in.P256dh,
		Auth:     in.Auth,
	}
	if err := uc.repo.Create(ctx, sub); err != nil {
		// Outra requisição criou o mesmo endpoint entre a leitura e a escrita.
		if httperr.IsUniqueViolation(err) {
			return uc.repo.FindByEndpoint(ctx, in.Endpoint)
		}
		return nil, err
	}

	return sub, nil
}
