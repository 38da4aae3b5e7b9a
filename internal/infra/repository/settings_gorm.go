package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/settings"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

type SettingsGormRepository struct {
	db *gorm.DB
}

var _ settings.Repository = (*SettingsGormRepository)(nil)

func NewSettingsGormRepository(db *gorm.DB) *SettingsGormRepository {
	return &SettingsGormRepository{db: db}
}

func (r *SettingsGormRepository) GetOrCreate(
	ctx context.Context,
	userID uuid.UUID,
) (*models.UserSettings, error) {

	var s models.UserSettings
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&s).Error
	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	s = models.DefaultSettings(userID)
	// Duas leituras simultâneas podem tentar criar; a segunda só relê.
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(&s).Error; err != nil {
		return nil, err
	}

	var stored models.UserSettings
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *SettingsGormRepository) Save(
	ctx context.Context,
	s *models.UserSettings,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}
