package reminder

import (
	"time"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

// LeadTime é uma antecedência de lembrete ligada a uma preferência da usuária.
type LeadTime struct {
	Name     string
	Duration time.Duration
	Enabled  func(s *models.UserSettings) bool
}

// EventType é o tipo gravado no NotificationEvent ao disparar o lembrete.
func (l LeadTime) EventType() string {
	return "reminder_" + l.Name
}

// LeadTimes na ordem em que o scanner processa.
var LeadTimes = []LeadTime{
	{
		Name:     "24h",
		Duration: 24 * time.Hour,
		Enabled:  func(s *models.UserSettings) bool { return s.Notif24h },
	},
	{
		Name:     "3h",
		Duration: 3 * time.Hour,
		Enabled:  func(s *models.UserSettings) bool { return s.Notif3h },
	},
	{
		Name:     "1h",
		Duration: time.Hour,
		Enabled:  func(s *models.UserSettings) bool { return s.Notif1h },
	},
}
