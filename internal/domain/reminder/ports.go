package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

type Repository interface {
	// ListPendingStartingBetween devolve agendamentos PENDENTE com início em
	// [from, to], carregando cliente, serviço, preferências e inscrições da dona.
	ListPendingStartingBetween(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)
}

// Ledger marca lembretes já disparados para que janelas sobrepostas
// não repitam o envio.
type Ledger interface {
	// Claim devolve true apenas para o primeiro chamador de key dentro do ttl.
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// LedgerKey inclui o início para que um reagendamento volte a ser lembrado.
func LedgerKey(appointmentID uuid.UUID, lead LeadTime, start time.Time) string {
	return fmt.Sprintf("reminder:%s:%s:%d", appointmentID, lead.Name, start.Unix())
}
