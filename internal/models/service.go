package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	Name            string `gorm:"size:100;not null" json:"name"`
	PriceCents      int64  `gorm:"not null" json:"priceCents"`
	DurationMinutes int    `gorm:"not null" json:"durationMinutes"`
	Active          bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BasePrice devolve o preço em reais.
func (s Service) BasePrice() decimal.Decimal {
	return decimal.New(s.PriceCents, -2)
}
