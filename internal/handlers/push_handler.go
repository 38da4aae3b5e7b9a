package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/httpresp"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/middleware"
	ucPush "github.com/manicurestudiolite-bot/manicurestudiolite/internal/usecase/push"
)

type PushHandler struct {
	subscribe   *ucPush.Subscribe
	unsubscribe *ucPush.Unsubscribe
	publicKey   string
	log         zerolog.Logger
}

func NewPushHandler(
	subscribe *ucPush.Subscribe,
	unsubscribe *ucPush.Unsubscribe,
	publicKey string,
	log zerolog.Logger,
) *PushHandler {
	return &PushHandler{
		subscribe:   subscribe,
		unsubscribe: unsubscribe,
		publicKey:   publicKey,
		log:         log,
	}
}

// Formato do PushSubscription.toJSON() do navegador.
type SubscribeRequest struct {
	Endpoint string `json:"endpoint"`
	Keys     struct {
		P256dh string `json:"p256dh"`
		Auth   string `json:"auth"`
	} `json:"keys"`
}

type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint"`
}

func (h *PushHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_subscription")
		return
	}

	sub, err := h.subscribe.Execute(c.Request.Context(), ucPush.SubscribeInput{
		UserID:   middleware.UserID(c),
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Wrap(c, http.StatusOK, "subscription", sub)
}

func (h *PushHandler) Unsubscribe(c *gin.Context) {
	var req UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "missing_endpoint")
		return
	}

	if err := h.unsubscribe.Execute(c.Request.Context(), middleware.UserID(c), req.Endpoint); err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Success(c)
}

func (h *PushHandler) VapidKey(c *gin.Context) {
	httpresp.OK(c, gin.H{"publicKey": h.publicKey})
}
