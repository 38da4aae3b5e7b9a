package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/httperr"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/httpresp"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/middleware"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/validators"
)

type ClientHandler struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewClientHandler(db *gorm.DB, log zerolog.Logger) *ClientHandler {
	return &ClientHandler{db: db, log: log}
}

// --------- Requests ---------

type ClientRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Phone     string `json:"phone" binding:"required,max=20"`
	Instagram string `json:"instagram" binding:"max=100"`
	Notes     string `json:"notes" binding:"max=500"`
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context()).Where("user_id = ?", userID)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(instagram) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("name ASC").
		Find(&clients).Error; err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Wrap(c, http.StatusOK, "clients", clients)
}

// ======================================================
// CREATE
// ======================================================
func (h *ClientHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}
	if !validators.IsValidPhone(req.Phone) {
		badRequest(c, "invalid_phone")
		return
	}

	client := models.Client{
		UserID:    userID,
		Name:      strings.TrimSpace(req.Name),
		Phone:     strings.TrimSpace(req.Phone),
		Instagram: strings.TrimSpace(req.Instagram),
		Notes:     req.Notes,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&client).Error; err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Wrap(c, http.StatusCreated, "client", client)
}

// ======================================================
// UPDATE
// ======================================================
func (h *ClientHandler) Update(c *gin.Context) {
	userID := middleware.UserID(c)

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}
	if !validators.IsValidPhone(req.Phone) {
		badRequest(c, "invalid_phone")
		return
	}

	var client models.Client
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND user_id = ?", id, userID).
		First(&client).Error; err != nil {
		notFoundOr(c, h.log, err, "client_not_found")
		return
	}

	client.Name = strings.TrimSpace(req.Name)
	client.Phone = strings.TrimSpace(req.Phone)
	client.Instagram = strings.TrimSpace(req.Instagram)
	client.Notes = req.Notes

	if err := h.db.WithContext(c.Request.Context()).Save(&client).Error; err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Wrap(c, http.StatusOK, "client", client)
}

// ======================================================
// DELETE
// ======================================================
func (h *ClientHandler) Delete(c *gin.Context) {
	userID := middleware.UserID(c)

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	var count int64
	if err := h.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("client_id = ? AND user_id = ?", id, userID).
		Count(&count).Error; err != nil {
		respondError(c, h.log, err)
		return
	}
	if count > 0 {
		badRequest(c, "client_has_appointments")
		return
	}

	res := h.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Client{})
	if res.Error != nil {
		respondError(c, h.log, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "client_not_found")
		return
	}

	httpresp.Success(c)
}
