package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newIDIfEmpty(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (a *Appointment) BeforeCreate(_ *gorm.DB) error {
	newIDIfEmpty(&a.ID)
	return nil
}

func (c *Client) BeforeCreate(_ *gorm.DB) error {
	newIDIfEmpty(&c.ID)
	return nil
}

func (s *Service) BeforeCreate(_ *gorm.DB) error {
	newIDIfEmpty(&s.ID)
	return nil
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	newIDIfEmpty(&u.ID)
	return nil
}

func (s *UserSettings) BeforeCreate(_ *gorm.DB) error {
	newIDIfEmpty(&s.ID)
	return nil
}

func (p *PushSubscription) BeforeCreate(_ *gorm.DB) error {
	newIDIfEmpty(&p.ID)
	return nil
}

func (e *NotificationEvent) BeforeCreate(_ *gorm.DB) error {
	newIDIfEmpty(&e.ID)
	return nil
}
