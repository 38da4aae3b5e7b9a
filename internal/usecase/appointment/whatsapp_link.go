package appointment

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/appointment"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/dto"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/httperr"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/timezone"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/validators"
)

// WhatsAppLink monta o link wa.me com a confirmação do agendamento.
type WhatsAppLink struct {
	repo domain.Repository
	loc  *time.Location
}

func NewWhatsAppLink(repo domain.Repository, loc *time.Location) *WhatsAppLink {
	return &WhatsAppLink{repo: repo, loc: loc}
}

func (uc *WhatsAppLink) Execute(
	ctx context.Context,
	userID uuid.UUID,
	appointmentID uuid.UUID,
) (*dto.WhatsAppLinkDTO, error) {

	ap, err := uc.repo.GetAppointment(ctx, userID, appointmentID)
	if err != nil {
		return nil, asNotFound(err, "appointment_not_found")
	}

	phone, err := validators.NormalizePhone(ap.Client.Phone)
	if err != nil {
		return nil, httperr.ErrInvalid("invalid_phone")
	}

	msg := ConfirmationMessage(
		ap.Client.Name,
		timezone.DateIn(ap.StartTime, uc.loc),
		timezone.ClockIn(ap.StartTime, uc.loc),
		ap.Service.Name,
	)

	return &dto.WhatsAppLinkDTO{
		Phone:   phone,
		Message: msg,
		URL:     fmt.Sprintf("https://wa.me/%s?text=%s", strings.TrimPrefix(phone, "+"), encodeText(msg)),
	}, nil
}

func ConfirmationMessage(clientName, date, clock, serviceName string) string {
	return fmt.Sprintf(
		"Olá, %s! 👋\n\nSeu agendamento está confirmado:\n📅 Data: %s\n⏰ Horário: %s\n💅 Serviço: %s\n\nQualquer dúvida, estamos à disposição!",
		clientName, date, clock, serviceName,
	)
}

// encodeText segue encodeURIComponent: espaço vira %20, não +.
func encodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
