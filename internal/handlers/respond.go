package handlers

import (
	"errors"
	"net/http"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/httperr"
)

// respondError traduz erros de negócio em 400/404/401. O resto vira 500
// genérico: o detalhe vai para o log e para o Sentry, nunca para o corpo.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	status := httperr.StatusOf(err)
	if status != http.StatusInternalServerError {
		httperr.Abort(c, status, httperr.CodeOf(err))
		return
	}

	_ = c.Error(err)
	log.Error().
		Err(err).
		Str("path", c.FullPath()).
		Msg("request failed")
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
	httperr.Abort(c, status, "internal_error")
}

func badRequest(c *gin.Context, code string) {
	httperr.BadRequest(c, code)
}

// notFoundOr responde 404 quando o gorm não achou a linha.
func notFoundOr(c *gin.Context, log zerolog.Logger, err error, code string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, code)
		return
	}
	respondError(c, log, err)
}
