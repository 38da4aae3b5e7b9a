package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/appointment"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/httperr"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

type ListAppointmentsInput struct {
	UserID uuid.UUID
	From   *time.Time
	To     *time.Time
	Status string
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]models.Appointment, error) {

	filter := domain.ListFilter{From: in.From, To: in.To}

	if in.Status != "" {
		st, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &st
	}

	if in.From != nil && in.To != nil && in.To.Before(*in.From) {
		return nil, httperr.ErrInvalid("invalid_date")
	}

	out, err := uc.repo.ListAppointments(ctx, in.UserID, filter)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Appointment{}
	}
	return out, nil
}
