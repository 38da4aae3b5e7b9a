package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/appointment"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/httperr"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID    uuid.UUID
	ClientID  uuid.UUID
	ServiceID uuid.UUID
	StartTime time.Time

	Price      *decimal.Decimal
	PaidAmount *decimal.Decimal
	Notes      string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo domain.Repository
}

func NewCreateAppointment(repo domain.Repository) *CreateAppointment {
	return &CreateAppointment{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if in.ClientID == uuid.Nil || in.ServiceID == uuid.Nil || in.StartTime.IsZero() {
		return nil, httperr.ErrInvalid("missing_fields")
	}

	// --------------------------------------------------
	// 1️⃣ Serviço e cliente precisam existir antes de qualquer escrita
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.UserID, in.ServiceID)
	if err != nil {
		return nil, asNotFound(err, "service_not_found")
	}

	client, err := uc.repo.GetClient(ctx, in.UserID, in.ClientID)
	if err != nil {
		return nil, asNotFound(err, "client_not_found")
	}

	// --------------------------------------------------
	// 2️⃣ Valores
	// --------------------------------------------------
	price, err := domain.ResolvePrice(in.Price, svc)
	if err != nil {
		return nil, err
	}

	paid := decimal.Zero
	if in.PaidAmount != nil {
		paid = *in.PaidAmount
	}
	if err := domain.ValidatePaidAmount(paid); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Criação (status inicial centralizado no domínio)
	// --------------------------------------------------
	ap := &models.Appointment{
		UserID:     in.UserID,
		ClientID:   client.ID,
		ServiceID:  svc.ID,
		StartTime:  in.StartTime,
		EndTime:    domain.ComputeEndTime(in.StartTime, svc.DurationMinutes),
		Price:      price,
		PaidAmount: paid,
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	ap.Client = *client
	ap.Service = *svc
	return ap, nil
}
