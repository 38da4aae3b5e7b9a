package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	domain "github.com/manicurestudiolite-bot/manicurestudiolite/internal/domain/appointment"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

// ======================================================
// SETUP
// ======================================================

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// Cada conexão de ":memory:" é um banco novo.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserSettings{},
		&models.PushSubscription{},
		&models.Client{},
		&models.Service{},
		&models.Appointment{},
	))
	return db
}

type seed struct {
	user    models.User
	client  models.Client
	service models.Service
}

func seedOwner(t *testing.T, db *gorm.DB) seed {
	t.Helper()

	u := models.User{Name: "Bia", Email: uuid.NewString() + "@studio.test"}
	require.NoError(t, db.Create(&u).Error)

	settings := models.DefaultSettings(u.ID)
	require.NoError(t, db.Create(&settings).Error)
	// false em coluna com default:true só persiste via update
	settings.Notif3h = false
	require.NoError(t, db.Save(&settings).Error)

	for _, ep := range []string{"https://push.example/a", "https://push.example/b"} {
		require.NoError(t, db.Create(&models.PushSubscription{UserID: u.ID, Endpoint: ep, P256dh: "k", Auth: "a"}).Error)
	}

	c := models.Client{UserID: u.ID, Name: "Ana", Phone: "11987654321"}
	require.NoError(t, db.Create(&c).Error)

	s := models.Service{UserID: u.ID, Name: "Manicure", PriceCents: 4000, DurationMinutes: 60, Active: true}
	require.NoError(t, db.Create(&s).Error)

	return seed{user: u, client: c, service: s}
}

func (s seed) appointment(start time.Time, status domain.Status) *models.Appointment {
	return &models.Appointment{
		UserID:    s.user.ID,
		ClientID:  s.client.ID,
		ServiceID: s.service.ID,
		StartTime: start,
		EndTime:   domain.ComputeEndTime(start, s.service.DurationMinutes),
		Status:    string(status),
	}
}

// ======================================================
// REMINDER QUERY
// ======================================================

func TestListPendingStartingBetween(t *testing.T) {
	db := newTestDB(t)
	s := seedOwner(t, db)
	appointments := NewAppointmentGormRepository(db)
	ctx := context.Background()

	from := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 9, 20, 0, 0, time.UTC)

	atFrom := s.appointment(from, domain.StatusPending)
	atTo := s.appointment(to, domain.StatusPending)
	inside := s.appointment(from.Add(10*time.Minute), domain.StatusPending)

	for _, ap := range []*models.Appointment{
		atTo,
		atFrom,
		inside,
		s.appointment(from.Add(5*time.Minute), domain.StatusCancelled),
		s.appointment(from.Add(5*time.Minute), domain.StatusPrepaid),
		s.appointment(from.Add(-time.Second), domain.StatusPending),
		s.appointment(to.Add(time.Second), domain.StatusPending),
	} {
		require.NoError(t, appointments.CreateAppointment(ctx, ap))
	}

	got, err := NewReminderGormRepository(db).ListPendingStartingBetween(ctx, from, to)
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, []uuid.UUID{atFrom.ID, inside.ID, atTo.ID}, []uuid.UUID{got[0].ID, got[1].ID, got[2].ID})

	for _, ap := range got {
		assert.Equal(t, string(domain.StatusPending), ap.Status)
		assert.Equal(t, "Ana", ap.Client.Name)
		assert.Equal(t, "Manicure", ap.Service.Name)
		assert.Equal(t, s.user.ID, ap.User.ID)

		require.NotNil(t, ap.User.Settings)
		assert.True(t, ap.User.Settings.Notif1h)
		assert.False(t, ap.User.Settings.Notif3h)

		assert.Len(t, ap.User.PushSubscriptions, 2)
	}
}

func TestListPendingStartingBetweenWithoutSettings(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u := models.User{Name: "Carla", Email: "carla@studio.test"}
	require.NoError(t, db.Create(&u).Error)
	c := models.Client{UserID: u.ID, Name: "Duda"}
	require.NoError(t, db.Create(&c).Error)
	svc := models.Service{UserID: u.ID, Name: "Pé", PriceCents: 3000, DurationMinutes: 45}
	require.NoError(t, db.Create(&svc).Error)

	start := time.Date(2025, 1, 1, 9, 5, 0, 0, time.UTC)
	ap := seed{user: u, client: c, service: svc}.appointment(start, domain.StatusPending)
	require.NoError(t, NewAppointmentGormRepository(db).CreateAppointment(ctx, ap))

	got, err := NewReminderGormRepository(db).ListPendingStartingBetween(ctx, start.Add(-10*time.Minute), start.Add(10*time.Minute))
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Nil(t, got[0].User.Settings)
	assert.Empty(t, got[0].User.PushSubscriptions)
}

// ======================================================
// STATUS
// ======================================================

func TestUpdateStatusWritesOnlyStatus(t *testing.T) {
	db := newTestDB(t)
	s := seedOwner(t, db)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	start := time.Date(2025, 1, 1, 14, 0, 0, 0, time.UTC)
	ap := s.appointment(start, domain.StatusPending)
	require.NoError(t, repo.CreateAppointment(ctx, ap))

	// leitura antiga, depois uma remarcação gravada por outra request
	stale, err := repo.GetAppointment(ctx, s.user.ID, ap.ID)
	require.NoError(t, err)

	moved := start.Add(2 * time.Hour)
	rescheduled := *stale
	rescheduled.StartTime = moved
	rescheduled.EndTime = moved.Add(time.Hour)
	require.NoError(t, repo.UpdateAppointment(ctx, &rescheduled))

	require.NoError(t, repo.UpdateStatus(ctx, s.user.ID, stale.ID, domain.StatusPrepaid))

	got, err := repo.GetAppointment(ctx, s.user.ID, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPrepaid), got.Status)
	assert.True(t, got.StartTime.Equal(moved))
	assert.True(t, got.EndTime.Equal(moved.Add(time.Hour)))
}

func TestUpdateStatusIsOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	s := seedOwner(t, db)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	ap := s.appointment(time.Date(2025, 1, 1, 14, 0, 0, 0, time.UTC), domain.StatusPending)
	require.NoError(t, repo.CreateAppointment(ctx, ap))

	assert.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), ap.ID, domain.StatusNoShow), domain.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateStatus(ctx, s.user.ID, uuid.New(), domain.StatusNoShow), domain.ErrNotFound)

	got, err := repo.GetAppointment(ctx, s.user.ID, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), got.Status)
}
