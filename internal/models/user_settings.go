package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

type UserSettings struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`

	Notif24h bool   `gorm:"not null;default:true" json:"notif24h"`
	Notif3h  bool   `gorm:"not null;default:true" json:"notif3h"`
	Notif1h  bool   `gorm:"not null;default:true" json:"notif1h"`
	Theme    string `gorm:"size:10;not null;default:'system'" json:"theme"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func DefaultSettings(userID uuid.UUID) UserSettings {
	return UserSettings{
		UserID:   userID,
		Notif24h: true,
		Notif3h:  true,
		Notif1h:  true,
		Theme:    ThemeSystem,
	}
}
