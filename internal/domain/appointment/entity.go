package appointment

import (
	"github.com/shopspring/decimal"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/httperr"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ChangeStatus aplica o novo status e devolve o anterior. Qualquer
// transição entre valores válidos é permitida.
func ChangeStatus(ap *models.Appointment, next Status) (Status, error) {
	if !next.IsValid() {
		return "", httperr.ErrInvalid("invalid_status")
	}

	old := Status(ap.Status)
	ap.Status = string(next)
	return old, nil
}

// ResolvePrice usa o preço informado ou, na falta dele, o preço base do serviço.
func ResolvePrice(explicit *decimal.Decimal, svc *models.Service) (decimal.NullDecimal, error) {
	if explicit != nil {
		if err := ValidatePrice(*explicit); err != nil {
			return decimal.NullDecimal{}, err
		}
		return decimal.NewNullDecimal(*explicit), nil
	}
	return decimal.NewNullDecimal(svc.BasePrice()), nil
}

func ValidatePrice(v decimal.Decimal) error {
	if v.IsNegative() {
		return httperr.ErrInvalid("invalid_price")
	}
	return nil
}

func ValidatePaidAmount(v decimal.Decimal) error {
	if v.IsNegative() {
		return httperr.ErrInvalid("invalid_paid_amount")
	}
	return nil
}
