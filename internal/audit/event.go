package audit

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeStatusChange = "status_change"

	ChannelAudit = "audit"
	ChannelPush  = "push"
)

type Event struct {
	AppointmentID uuid.UUID
	Type          string
	Channel       string
	Payload       any
	Timestamp     time.Time
}

// Recorder é o que os casos de uso enxergam: registrar nunca falha nem bloqueia.
type Recorder interface {
	Record(ev Event)
}

type StatusChangePayload struct {
	OldStatus string `json:"oldStatus"`
	NewStatus string `json:"newStatus"`
}

func StatusChange(appointmentID uuid.UUID, oldStatus, newStatus string, at time.Time) Event {
	return Event{
		AppointmentID: appointmentID,
		Type:          TypeStatusChange,
		Channel:       ChannelAudit,
		Payload:       StatusChangePayload{OldStatus: oldStatus, NewStatus: newStatus},
		Timestamp:     at,
	}
}
