package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

type ClientSummaryDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}

type ServiceSummaryDTO struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	PriceCents      int64     `json:"priceCents"`
	DurationMinutes int       `json:"durationMinutes"`
}

type AppointmentDTO struct {
	ID         uuid.UUID           `json:"id"`
	ClientID   uuid.UUID           `json:"clientId"`
	ServiceID  uuid.UUID           `json:"serviceId"`
	StartTime  time.Time           `json:"startTime"`
	EndTime    time.Time           `json:"endTime"`
	Price      decimal.NullDecimal `json:"price"`
	PaidAmount decimal.Decimal     `json:"paidAmount"`
	Status     string              `json:"status"`
	Notes      string              `json:"notes"`
	Client     ClientSummaryDTO    `json:"client"`
	Service    ServiceSummaryDTO   `json:"service"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

func FromAppointment(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:         ap.ID,
		ClientID:   ap.ClientID,
		ServiceID:  ap.ServiceID,
		StartTime:  ap.StartTime,
		EndTime:    ap.EndTime,
		Price:      ap.Price,
		PaidAmount: ap.PaidAmount,
		Status:     ap.Status,
		Notes:      ap.Notes,
		Client: ClientSummaryDTO{
			ID:    ap.Client.ID,
			Name:  ap.Client.Name,
			Phone: ap.Client.Phone,
		},
		Service: ServiceSummaryDTO{
			ID:              ap.Service.ID,
			Name:            ap.Service.Name,
			PriceCents:      ap.Service.PriceCents,
			DurationMinutes: ap.Service.DurationMinutes,
		},
		CreatedAt: ap.CreatedAt,
		UpdatedAt: ap.UpdatedAt,
	}
}

func FromAppointments(list []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(list))
	for i := range list {
		out = append(out, FromAppointment(&list[i]))
	}
	return out
}

type WhatsAppLinkDTO struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
	URL     string `json:"url"`
}
