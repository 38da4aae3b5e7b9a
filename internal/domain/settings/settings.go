package settings

import (
	"context"

	"github.com/google/uuid"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

type Repository interface {
	// GetOrCreate devolve as preferências, criando as padrão na primeira leitura.
	GetOrCreate(
		ctx context.Context,
		userID uuid.UUID,
	) (*models.UserSettings, error)

	Save(
		ctx context.Context,
		s *models.UserSettings,
	) error
}

func IsValidTheme(theme string) bool {
	switch theme {
	case models.ThemeLight, models.ThemeDark, models.ThemeSystem:
		return true
	}
	return false
}
