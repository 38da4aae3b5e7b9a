package reminder

import (
	"fmt"
	"time"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/push"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/timezone"
)

const (
	PayloadTitle = "Lembrete de Agendamento"
	PayloadURL   = "/agenda"
)

func BuildPayload(clientName, serviceName string, start time.Time, loc *time.Location) push.Payload {
	return push.Payload{
		Title: PayloadTitle,
		Body:  fmt.Sprintf("%s - %s às %s", clientName, serviceName, timezone.ClockIn(start, loc)),
		Data:  map[string]any{"url": PayloadURL},
	}
}
