package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/push"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

type SubscriptionGormRepository struct {
	db *gorm.DB
}

var _ push.Repository = (*SubscriptionGormRepository)(nil)

func NewSubscriptionGormRepository(db *gorm.DB) *SubscriptionGormRepository {
	return &SubscriptionGormRepository{db: db}
}

func (r *SubscriptionGormRepository) FindByEndpoint(
	ctx context.Context,
	endpoint string,
) (*models.PushSubscription, error) {

	var sub models.PushSubscription
	if err := r.db.WithContext(ctx).
		Where("endpoint = ?", endpoint).
		First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, push.ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionGormRepository) Create(
	ctx context.Context,
	sub *models.PushSubscription,
) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *SubscriptionGormRepository) DeleteByEndpoint(
	ctx context.Context,
	userID uuid.UUID,
	endpoint string,
) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND endpoint = ?", userID, endpoint).
		Delete(&models.PushSubscription{}).Error
}

func (r *SubscriptionGormRepository) DeleteByID(
	ctx context.Context,
	id uuid.UUID,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.PushSubscription{}, "id = ?", id).Error
}
