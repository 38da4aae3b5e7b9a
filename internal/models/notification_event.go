package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationEvent é append-only: nunca é atualizado nem lido pelo core.
type NotificationEvent struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	AppointmentID uuid.UUID      `gorm:"type:uuid;index;not null" json:"appointmentId"`
	Type          string         `gorm:"size:40;not null" json:"type"`
	Channel       string         `gorm:"size:20;not null" json:"channel"`
	Payload       datatypes.JSON `json:"payload"`
	CreatedAt     time.Time      `gorm:"index" json:"timestamp"`
}
