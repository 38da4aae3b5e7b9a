package settings

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/settings"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/httperr"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

// ======================================================
// GET
// ======================================================

type GetSettings struct {
	repo domain.Repository
}

func NewGetSettings(repo domain.Repository) *GetSettings {
	return &GetSettings{repo: repo}
}

func (uc *GetSettings) Execute(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error) {
	return uc.repo.GetOrCreate(ctx, userID)
}

// ======================================================
// UPDATE (parcial)
// ======================================================

type UpdateSettingsInput struct {
	UserID   uuid.UUID
	Notif24h *bool
	Notif3h  *bool
	Notif1h  *bool
	Theme    *string
}

type UpdateSettings struct {
	repo domain.Repository
}

func NewUpdateSettings(repo domain.Repository) *UpdateSettings {
	return &UpdateSettings{repo: repo}
}

func (uc *UpdateSettings) Execute(ctx context.Context, in UpdateSettingsInput) (*models.UserSettings, error) {
	if in.Theme != nil && !domain.IsValidTheme(*in.Theme) {
		return nil, httperr.ErrInvalid("invalid_theme")
	}

	s, err := uc.repo.GetOrCreate(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Notif24h != nil {
		s.Notif24h = *in.Notif24h
	}
	if in.Notif3h != nil {
		s.Notif3h = *in.Notif3h
	}
	if in.Notif1h != nil {
		s.Notif1h = *in.Notif1h
	}
	if in.Theme != nil {
		s.Theme = *in.Theme
	}

	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
