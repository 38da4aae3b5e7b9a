package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo domain.Repository
}

func NewDeleteAppointment(repo domain.Repository) *DeleteAppointment {
	return &DeleteAppointment{repo: repo}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	userID uuid.UUID,
	appointmentID uuid.UUID,
) error {
	if err := uc.repo.DeleteAppointment(ctx, userID, appointmentID); err != nil {
		return asNotFound(err, "appointment_not_found")
	}
	return nil
}
