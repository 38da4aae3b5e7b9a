package models

import (
	"time"

	"github.com/google/uuid"
)

type PushSubscription struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	Endpoint string `gorm:"type:text;uniqueIndex;not null" json:"endpoint"`
	P256dh   string `gorm:"size:255;not null" json:"p256dh"`
	Auth     string `gorm:"size:255;not null" json:"auth"`

	CreatedAt time.Time `json:"createdAt"`
}
