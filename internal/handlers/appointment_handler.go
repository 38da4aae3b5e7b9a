package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/dto"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/httpresp"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/middleware"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/timezone"
	ucAppointment "github.com/manicurestudiolite-bot/manicurestudiolite/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create    *ucAppointment.CreateAppointment
	update    *ucAppointment.UpdateAppointment
	setStatus *ucAppointment.SetAppointmentStatus
	delete    *ucAppointment.DeleteAppointment
	list      *ucAppointment.ListAppointments
	whatsapp  *ucAppointment.WhatsAppLink

	loc *time.Location
	log zerolog.Logger
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	setStatus *ucAppointment.SetAppointmentStatus,
	del *ucAppointment.DeleteAppointment,
	list *ucAppointment.ListAppointments,
	whatsapp *ucAppointment.WhatsAppLink,
	loc *time.Location,
	log zerolog.Logger,
) *AppointmentHandler {
	RegisterValidators()

	return &AppointmentHandler{
		create:    create,
		update:    update,
		setStatus: setStatus,
		delete:    del,
		list:      list,
		whatsapp:  whatsapp,
		loc:       loc,
		log:       log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID   string           `json:"clientId"`
	ServiceID  string           `json:"serviceId"`
	StartTime  string           `json:"startTime"`
	Price      *decimal.Decimal `json:"price"`
	PaidAmount *decimal.Decimal `json:"paidAmount"`
	Notes      string           `json:"notes" binding:"max=500"`
}

type UpdateAppointmentRequest struct {
	ClientID   *string          `json:"clientId"`
	ServiceID  *string          `json:"serviceId"`
	StartTime  *string          `json:"startTime"`
	Price      *decimal.Decimal `json:"price"`
	PaidAmount *decimal.Decimal `json:"paidAmount"`
	Notes      *string          `json:"notes" binding:"omitempty,max=500"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,appointment_status"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	if req.ClientID == "" || req.ServiceID == "" || req.StartTime == "" {
		badRequest(c, "missing_fields")
		return
	}

	clientID, err1 := uuid.Parse(req.ClientID)
	serviceID, err2 := uuid.Parse(req.ServiceID)
	if err1 != nil || err2 != nil {
		badRequest(c, "invalid_id")
		return
	}

	start, err := timezone.ParseInstant(req.StartTime, h.loc, false)
	if err != nil {
		badRequest(c, "invalid_start_time")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		UserID:     userID,
		ClientID:   clientID,
		ServiceID:  serviceID,
		StartTime:  start,
		Price:      req.Price,
		PaidAmount: req.PaidAmount,
		Notes:      req.Notes,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Wrap(c, http.StatusCreated, "appointment", dto.FromAppointment(ap))
}

// ======================================================
// UPDATE (parcial)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := middleware.UserID(c)

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request")
		return
	}

	in := ucAppointment.UpdateAppointmentInput{
		UserID:        userID,
		AppointmentID: id,
		Price:         req.Price,
		PaidAmount:    req.PaidAmount,
		Notes:         req.Notes,
	}

	if req.ClientID != nil {
		v, err := uuid.Parse(*req.ClientID)
		if err != nil {
			badRequest(c, "invalid_id")
			return
		}
		in.ClientID = &v
	}
	if req.ServiceID != nil {
		v, err := uuid.Parse(*req.ServiceID)
		if err != nil {
			badRequest(c, "invalid_id")
			return
		}
		in.ServiceID = &v
	}
	if req.StartTime != nil {
		v, err := timezone.ParseInstant(*req.StartTime, h.loc, false)
		if err != nil {
			badRequest(c, "invalid_start_time")
			return
		}
		in.StartTime = &v
	}

	ap, err := h.update.Execute(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Wrap(c, http.StatusOK, "appointment", dto.FromAppointment(ap))
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	userID := middleware.UserID(c)

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_status")
		return
	}

	ap, err := h.setStatus.Execute(c.Request.Context(), userID, id, req.Status)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Wrap(c, http.StatusOK, "appointment", dto.FromAppointment(ap))
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := middleware.UserID(c)

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), userID, id); err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Success(c)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	from, err := optionalInstant(c.Query("startDate"), h.loc, false)
	if err != nil {
		badRequest(c, "invalid_date")
		return
	}
	to, err := optionalInstant(c.Query("endDate"), h.loc, true)
	if err != nil {
		badRequest(c, "invalid_date")
		return
	}

	list, err := h.list.Execute(c.Request.Context(), ucAppointment.ListAppointmentsInput{
		UserID: userID,
		From:   from,
		To:     to,
		Status: c.Query("status"),
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Wrap(c, http.StatusOK, "appointments", dto.FromAppointments(list))
}

// ======================================================
// WHATSAPP
// ======================================================

func (h *AppointmentHandler) WhatsApp(c *gin.Context) {
	userID := middleware.UserID(c)

	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	link, err := h.whatsapp.Execute(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, link)
}
