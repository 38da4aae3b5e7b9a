package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/httpresp"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/middleware"
	ucSettings "github.com/manicurestudiolite-bot/manicurestudiolite/internal/usecase/settings"
)

type SettingsHandler struct {
	get    *ucSettings.GetSettings
	update *ucSettings.UpdateSettings
	log    zerolog.Logger
}

func NewSettingsHandler(
	get *ucSettings.GetSettings,
	update *ucSettings.UpdateSettings,
	log zerolog.Logger,
) *SettingsHandler {
	return &SettingsHandler{get: get, update: update, log: log}
}

type UpdateSettingsRequest struct {
	Notif24h *bool   `json:"notif24h"`
	Notif3h  *bool   `json:"notif3h"`
	Notif1h  *bool   `json:"notif1h"`
	Theme    *string `json:"theme"`
}

func (h *SettingsHandler) GetMe(c *gin.Context) {
	s, err := h.get.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Wrap(c, http.StatusOK, "settings", s)
}

func (h *SettingsHandler) UpdateMe(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	s, err := h.update.Execute(c.Request.Context(), ucSettings.UpdateSettingsInput{
		UserID:   middleware.UserID(c),
		Notif24h: req.Notif24h,
		Notif3h:  req.Notif3h,
		Notif1h:  req.Notif1h,
		Theme:    req.Theme,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Wrap(c, http.StatusOK, "settings", s)
}
