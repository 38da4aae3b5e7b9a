package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/httpresp"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/middleware"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

type ServiceHandler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewServiceHandler(db *gorm.DB, log zerolog.Logger) *ServiceHandler {
	return &ServiceHandler{db: db, log: log}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	PriceCents      *int64 `json:"priceCents" binding:"required,min=0"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,min=1,max=1440"`
}

type UpdateServiceRequest struct {
	Name            *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	PriceCents      *int64  `json:"priceCents,omitempty" binding:"omitempty,min=0"`
	DurationMinutes *int    `json:"durationMinutes,omitempty" binding:"omitempty,min=1,max=1440"`
	Active          *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------
func (h *ServiceHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	activeStr := strings.TrimSpace(c.Query("active")) // "true", "false" ou vazio

	q := h.db.WithContext(c.Request.Context()).Where("user_id = ?", userID)

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	var services []models.Service
	if err := q.
		Order("name ASC").
		Find(&services).Error; err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Wrap(c, http.StatusOK, "services", services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	svc := models.Service{
		UserID:          userID,
		Name:            strings.TrimSpace(req.Name),
		PriceCents:      *req.PriceCents,
		DurationMinutes: req.DurationMinutes,
		Active:          true,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&svc).Error; err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Wrap(c, http.StatusCreated, "service", svc)
}

// Update é parcial. Mudar a duração não reescreve agendamentos existentes;
// ela só vale quando o horário de um agendamento for alterado.
func (h *ServiceHandler) Update(c *gin.Context) {
	userID := middleware.UserID(c)

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	var svc models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND user_id = ?", id, userID).
		First(&svc).Error; err != nil {
		notFoundOr(c, h.log, err, "service_not_found")
		return
	}

	if req.Name != nil {
		svc.Name = strings.TrimSpace(*req.Name)
	}
	if req.PriceCents != nil {
		svc.PriceCents = *req.PriceCents
	}
	if req.DurationMinutes != nil {
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&svc).Error; err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Wrap(c, http.StatusOK, "service", svc)
}
