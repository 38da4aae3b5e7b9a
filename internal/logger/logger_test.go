package logger

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/config"
)

func TestNewParsesLevel(t *testing.T) {
	l := New(&config.Config{LogLevel: "debug", AppEnv: "production"})
	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())

	l = New(&config.Config{LogLevel: "nonsense", AppEnv: "production"})
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

func TestNewWritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := New(&config.Config{LogLevel: "info", AppEnv: "production", LogFile: path})

	l.Info().Msg("hello")

	assert.FileExists(t, path)
}
