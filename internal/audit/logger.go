package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

// Writer persiste um evento. O Logger com gorm é a implementação de produção.
type Writer interface {
	Write(ctx context.Context, ev Event) error
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Write(ctx context.Context, ev Event) error {
	payload, err := encodePayload(ev.Payload)
	if err != nil {
		return err
	}

	row := models.NotificationEvent{
		AppointmentID: ev.AppointmentID,
		Type:          ev.Type,
		Channel:       ev.Channel,
		Payload:       payload,
	}
	if !ev.Timestamp.IsZero() {
		row.CreatedAt = ev.Timestamp
	}

	return l.db.WithContext(ctx).Create(&row).Error
}

func encodePayload(v any) (datatypes.JSON, error) {
	if v == nil {
		return datatypes.JSON("{}"), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode audit payload: %w", err)
	}
	return datatypes.JSON(b), nil
}
