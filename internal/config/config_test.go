package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DSN", "user:pass@tcp(127.0.0.1:3306)/bizvistar?parseTime=true")
	t.Setenv("ADMIN_KEY_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("SYNC_SCHEDULE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "@every 5m", cfg.SyncSchedule)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DSN", "user:pass@tcp(db:3306)/bizvistar?parseTime=true")
	t.Setenv("ADMIN_KEY_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("HTTP_ADDR", "0.0.0.0:9090")
	t.Setenv("SYNC_SCHEDULE", "@hourly")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.HTTPAddr)
	assert.Equal(t, "@hourly", cfg.SyncSchedule)
}

func TestLoad_MissingDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("ADMIN_KEY_HASH", "$2a$10$abcdefghijklmnopqrstuv")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MissingAdminKeyHash(t *testing.T) {
	t.Setenv("DB_DSN", "user:pass@tcp(127.0.0.1:3306)/bizvistar?parseTime=true")
	t.Setenv("ADMIN_KEY_HASH", "")

	_, err := Load()
	assert.Error(t, err)
}
