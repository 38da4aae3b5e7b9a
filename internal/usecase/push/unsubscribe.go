package push

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/push"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/httperr"
)

type Unsubscribe struct {
	repo domain.Repository
}

func NewUnsubscribe(repo domain.Repository) *Unsubscribe {
	return &Unsubscribe{repo: repo}
}

// Execute remove só inscrições da própria usuária; endpoint desconhecido não é erro.
func (uc *Unsubscribe) Execute(
	ctx context.Context,
	userID uuid.UUID,
	endpoint string,
) error {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return httperr.ErrInvalid("missing_endpoint")
	}
	return uc.repo.DeleteByEndpoint(ctx, userID, endpoint)
}
