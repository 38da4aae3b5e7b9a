package appointment

import "github.com/manicurestudiolite-bot/manicurestudiolite/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDENTE"
	StatusPrepaid   Status = "PREPAGO"
	StatusCompleted Status = "CONCLUIDO"
	StatusCancelled Status = "CANCELADO"
	StatusNoShow    Status = "FALTOU"
)

var allStatuses = []Status{
	StatusPending,
	StatusPrepaid,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

func (s Status) IsValid() bool {
	for _, v := range allStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ===============================
// Validations
// ===============================

// ParseStatus aceita apenas os valores exatos do enum.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", httperr.ErrInvalid("invalid_status")
	}
	return s, nil
}

func InitialStatus() Status {
	return StatusPending
}
