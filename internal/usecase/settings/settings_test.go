package settings

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/httperr"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/models"
)

type fakeSettingsRepo struct {
	rows    map[uuid.UUID]models.UserSettings
	creates int
	saves   int
}

func (f *fakeSettingsRepo) GetOrCreate(_ context.Context, userID uuid.UUID) (*models.UserSettings, error) {
	s, ok := f.rows[userID]
	if !ok {
		s = models.DefaultSettings(userID)
		s.ID = uuid.New()
		f.rows[userID] = s
		f.creates++
	}
	return &s, nil
}

func (f *fakeSettingsRepo) Save(_ context.Context, s *models.UserSettings) error {
	f.saves++
	f.rows[s.UserID] = *s
	return nil
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestGetSettingsCreatesDefaultsOnce(t *testing.T) {
	repo := &fakeSettingsRepo{rows: map[uuid.UUID]models.UserSettings{}}
	uc := NewGetSettings(repo)
	user := uuid.New()

	s, err := uc.Execute(context.Background(), user)
	require.NoError(t, err)
	assert.True(t, s.Notif24h)
	assert.True(t, s.Notif3h)
	assert.True(t, s.Notif1h)
	assert.Equal(t, models.ThemeSystem, s.Theme)

	again, err := uc.Execute(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, s.ID, again.ID)
	assert.Equal(t, 1, repo.creates)
}

func TestUpdateSettingsIsPartial(t *testing.T) {
	repo := &fakeSettingsRepo{rows: map[uuid.UUID]models.UserSettings{}}
	user := uuid.New()

	s, err := NewUpdateSettings(repo).Execute(context.Background(), UpdateSettingsInput{
		UserID:  user,
		Notif3h: boolPtr(false),
		Theme:   strPtr(models.ThemeDark),
	})
	require.NoError(t, err)

	assert.True(t, s.Notif24h)
	assert.False(t, s.Notif3h)
	assert.True(t, s.Notif1h)
	assert.Equal(t, models.ThemeDark, s.Theme)
	assert.False(t, repo.rows[user].Notif3h)
}

func TestUpdateSettingsRejectsUnknownTheme(t *testing.T) {
	repo := &fakeSettingsRepo{rows: map[uuid.UUID]models.UserSettings{}}

	_, err := NewUpdateSettings(repo).Execute(context.Background(), UpdateSettingsInput{
		UserID: uuid.New(),
		Theme:  strPtr("sepia"),
	})

	assert.Equal(t, "invalid_theme", httperr.CodeOf(err))
	assert.Zero(t, repo.saves)
	assert.Zero(t, repo.creates)
}
