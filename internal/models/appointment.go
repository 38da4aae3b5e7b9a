package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	User   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClientID uuid.UUID `gorm:"type:uuid;not null" json:"clientId"`
	Client   Client    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client"`

	ServiceID uuid.UUID `gorm:"type:uuid;not null" json:"serviceId"`
	Service   Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	StartTime time.Time `gorm:"index;not null" json:"startTime"`
	EndTime   time.Time `gorm:"not null" json:"endTime"`

	// Price is nullable: an appointment may be left unpriced.
	Price      decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"price"`
	PaidAmount decimal.Decimal     `gorm:"type:numeric(10,2);not null;default:0" json:"paidAmount"`

	Status string `gorm:"size:20;index;not null;default:'PENDENTE'" json:"status"`
	Notes  string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
