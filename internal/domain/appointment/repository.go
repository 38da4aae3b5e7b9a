package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

// ErrNotFound é devolvido pelos repositórios quando a linha não existe
// ou pertence a outra usuária.
var ErrNotFound = errors.New("record not found")

type ListFilter struct {
	From   *time.Time
	To     *time.Time
	Status *Status
}

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		userID uuid.UUID,
		serviceID uuid.UUID,
	) (*models.Service, error)

	// -------- Client --------
	GetClient(
		ctx context.Context,
		userID uuid.UUID,
		clientID uuid.UUID,
	) (*models.Client, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// GetAppointment carrega o agendamento já com cliente e serviço.
	GetAppointment(
		ctx context.Context,
		userID uuid.UUID,
		appointmentID uuid.UUID,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// UpdateStatus grava só a coluna status, sem regravar o restante da
	// linha lida antes. Devolve ErrNotFound quando nada foi alterado.
	UpdateStatus(
		ctx context.Context,
		userID uuid.UUID,
		appointmentID uuid.UUID,
		status Status,
	) error

	DeleteAppointment(
		ctx context.Context,
		userID uuid.UUID,
		appointmentID uuid.UUID,
	) error

	ListAppointments(
		ctx context.Context,
		userID uuid.UUID,
		filter ListFilter,
	) ([]models.Appointment, error)
}
