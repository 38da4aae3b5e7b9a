package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/appointment"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/httperr"
)

func TestCreateAppointmentComputesEndTime(t *testing.T) {
	repo := newFakeRepo()
	owner := uuid.New()
	svc := repo.addService(owner, "Alongamento", 90, 12000)
	client := repo.addClient(owner, "Ana", "11987654321")
	start := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)

	ap, err := NewCreateAppointment(repo).Execute(context.Background(), CreateAppointmentInput{
		UserID:    owner,
		ClientID:  client.ID,
		ServiceID: svc.ID,
		StartTime: start,
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC), ap.EndTime)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.True(t, ap.Price.Valid)
	assert.True(t, decimal.NewFromInt(120).Equal(ap.Price.Decimal))
	assert.True(t, ap.PaidAmount.IsZero())
	assert.Equal(t, "Ana", ap.Client.Name)
	assert.Equal(t, "Alongamento", ap.Service.Name)

	stored := repo.stored(ap.ID)
	assert.Equal(t, ap.EndTime, stored.EndTime)
}

func TestCreateAppointmentUsesExplicitValues(t *testing.T) {
	repo := newFakeRepo()
	owner := uuid.New()
	svc := repo.addService(owner, "Manicure", 45, 3500)
	client := repo.addClient(owner, "Bia", "")
	price := decimal.RequireFromString("30.00")
	paid := decimal.RequireFromString("10.50")

	ap, err := NewCreateAppointment(repo).Execute(context.Background(), CreateAppointmentInput{
		UserID:     owner,
		ClientID:   client.ID,
		ServiceID:  svc.ID,
		StartTime:  time.Now(),
		Price:      &price,
		PaidAmount: &paid,
		Notes:      "francesinha",
	})
	require.NoError(t, err)

	assert.True(t, price.Equal(ap.Price.Decimal))
	assert.True(t, paid.Equal(ap.PaidAmount))
	assert.Equal(t, "francesinha", ap.Notes)
}

func TestCreateAppointmentValidation(t *testing.T) {
	repo := newFakeRepo()
	owner := uuid.New()
	svc := repo.addService(owner, "Manicure", 45, 3500)
	client := repo.addClient(owner, "Bia", "")
	otherOwnerSvc := repo.addService(uuid.New(), "Pedicure", 30, 3000)
	negative := decimal.NewFromInt(-1)
	start := time.Now()

	cases := []struct {
		name string
		in   CreateAppointmentInput
		kind httperr.Kind
		code string
	}{
		{"missing client", CreateAppointmentInput{UserID: owner, ServiceID: svc.ID, StartTime: start}, httperr.KindInvalidArgument, "missing_fields"},
		{"missing service", CreateAppointmentInput{UserID: owner, ClientID: client.ID, StartTime: start}, httperr.KindInvalidArgument, "missing_fields"},
		{"missing start", CreateAppointmentInput{UserID: owner, ClientID: client.ID, ServiceID: svc.ID}, httperr.KindInvalidArgument, "missing_fields"},
		{"unknown service", CreateAppointmentInput{UserID: owner, ClientID: client.ID, ServiceID: uuid.New(), StartTime: start}, httperr.KindNotFound, "service_not_found"},
		{"foreign service", CreateAppointmentInput{UserID: owner, ClientID: client.ID, ServiceID: otherOwnerSvc.ID, StartTime: start}, httperr.KindNotFound, "service_not_found"},
		{"unknown client", CreateAppointmentInput{UserID: owner, ClientID: uuid.New(), ServiceID: svc.ID, StartTime: start}, httperr.KindNotFound, "client_not_found"},
		{"negative paid", CreateAppointmentInput{UserID: owner, ClientID: client.ID, ServiceID: svc.ID, StartTime: start, PaidAmount: &negative}, httperr.KindInvalidArgument, "invalid_paid_amount"},
		{"negative price", CreateAppointmentInput{UserID: owner, ClientID: client.ID, ServiceID: svc.ID, StartTime: start, Price: &negative}, httperr.KindInvalidArgument, "invalid_price"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCreateAppointment(repo).Execute(context.Background(), tc.in)
			require.Error(t, err)
			assert.Equal(t, tc.kind, httperr.KindOf(err))
			assert.Equal(t, tc.code, httperr.CodeOf(err))
		})
	}

	assert.Zero(t, repo.writes)
}
