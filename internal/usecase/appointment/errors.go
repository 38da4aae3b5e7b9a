package appointment

import (
	"errors"

	domain "github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/appointment"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/httperr"
)

// asNotFound troca o ErrNotFound do repositório pelo erro de negócio com code;
// qualquer outro erro sobe como está (vira 500 no handler).
func asNotFound(err error, code string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrNotFound(code)
	}
	return err
}
