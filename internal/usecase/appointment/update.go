package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/appointment"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

// UpdateAppointmentInput: campos nil não são alterados.
type UpdateAppointmentInput struct {
	UserID        uuid.UUID
	AppointmentID uuid.UUID

	ClientID   *uuid.UUID
	ServiceID  *uuid.UUID
	StartTime  *time.Time
	Price      *decimal.Decimal
	PaidAmount *decimal.Decimal
	Notes      *string
}

type UpdateAppointment struct {
	repo domain.Repository
}

func NewUpdateAppointment(repo domain.Repository) *UpdateAppointment {
	return &UpdateAppointment{repo: repo}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.UserID, in.AppointmentID)
	if err != nil {
		return nil, asNotFound(err, "appointment_not_found")
	}

	// --------------------------------------------------
	// 1️⃣ Resolve tudo que foi referenciado antes de mexer no registro
	// --------------------------------------------------
	var client *models.Client
	if in.ClientID != nil {
		client, err = uc.repo.GetClient(ctx, in.UserID, *in.ClientID)
		if err != nil {
			return nil, asNotFound(err, "client_not_found")
		}
	}

	// O serviço é sempre relido quando o horário muda: a duração pode ter
	// sido editada desde a criação do agendamento.
	var svc *models.Service
	switch {
	case in.ServiceID != nil:
		svc, err = uc.repo.GetService(ctx, in.UserID, *in.ServiceID)
		if err != nil {
			return nil, asNotFound(err, "service_not_found")
		}
	case in.StartTime != nil:
		svc, err = uc.repo.GetService(ctx, in.UserID, ap.ServiceID)
		if err != nil {
			return nil, asNotFound(err, "service_not_found")
		}
	}

	if in.PaidAmount != nil {
		if err := domain.ValidatePaidAmount(*in.PaidAmount); err != nil {
			return nil, err
		}
	}
	if in.Price != nil {
		if err := domain.ValidatePrice(*in.Price); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 2️⃣ Aplica
	// --------------------------------------------------
	if client != nil {
		ap.ClientID = client.ID
		ap.Client = *client
	}
	if in.StartTime != nil {
		ap.StartTime = *in.StartTime
	}
	if svc != nil {
		ap.ServiceID = svc.ID
		ap.Service = *svc
		ap.EndTime = domain.ComputeEndTime(ap.StartTime, svc.DurationMinutes)
	}
	if in.Price != nil {
		ap.Price = decimal.NewNullDecimal(*in.Price)
	}
	if in.PaidAmount != nil {
		ap.PaidAmount = *in.PaidAmount
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
