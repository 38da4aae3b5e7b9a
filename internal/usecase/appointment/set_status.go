package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/audit"
	domain "github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/appointment"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

type SetAppointmentStatus struct {
	repo  domain.Repository
	audit audit.Recorder
	now   func() time.Time
}

func NewSetAppointmentStatus(
	repo domain.Repository,
	recorder audit.Recorder,
) *SetAppointmentStatus {
	return &SetAppointmentStatus{
		repo:  repo,
		audit: recorder,
		now:   time.Now,
	}
}

func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	userID uuid.UUID,
	appointmentID uuid.UUID,
	rawStatus string,
) (*models.Appointment, error) {

	// Status inválido não toca no banco nem gera evento.
	next, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, userID, appointmentID)
	if err != nil {
		return nil, asNotFound(err, "appointment_not_found")
	}

	// A leitura serve só para o status anterior do evento. A escrita toca
	// apenas a coluna status: uma edição concorrente não é desfeita.
	old, err := domain.ChangeStatus(ap, next)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateStatus(ctx, userID, ap.ID, next); err != nil {
		return nil, asNotFound(err, "appointment_not_found")
	}

	uc.audit.Record(audit.StatusChange(ap.ID, string(old), string(next), uc.now().UTC()))

	fresh, err := uc.repo.GetAppointment(ctx, userID, appointmentID)
	if err != nil {
		return nil, asNotFound(err, "appointment_not_found")
	}
	return fresh, nil
}
