package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/appointment"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/reminder"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

type ReminderGormRepository struct {
	db *gorm.DB
}

var _ reminder.Repository = (*ReminderGormRepository)(nil)

func NewReminderGormRepository(db *gorm.DB) *ReminderGormRepository {
	return &ReminderGormRepository{db: db}
}

func (r *ReminderGormRepository) ListPendingStartingBetween(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var out []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("User").
		Preload("User.Settings").
		Preload("User.PushSubscriptions").
		Where("status = ? AND start_time BETWEEN ? AND ?", string(domain.StatusPending), from, to).
		Order("start_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
