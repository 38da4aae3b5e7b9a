package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/timezone"
)

// optionalInstant devolve nil para query vazia.
func optionalInstant(raw string, loc *time.Location, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := timezone.ParseInstant(raw, loc, endOfDay)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid_id")
		return uuid.Nil, false
	}
	return id, true
}
