package models

import (
	"time"

	"github.com/google/uuid"
)

// User é a profissional dona dos dados. O cadastro e as credenciais
// ficam em outro serviço; aqui só precisamos da identidade.
type User struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string    `gorm:"size:100;not null" json:"name"`
	Email string    `gorm:"size:100;uniqueIndex;not null" json:"email"`

	Settings          *UserSettings      `gorm:"constraint:OnDelete:CASCADE;" json:"settings,omitempty"`
	PushSubscriptions []PushSubscription `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
