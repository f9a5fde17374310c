package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "admaxify-admin-service", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	assert.True(t, cfg.Postgres.RunMigrations)
	assert.Equal(t, 12*time.Hour, cfg.Auth.SessionTTL())
	assert.Equal(t, time.Minute, cfg.Auth.WatchInterval())
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "administrator", cfg.Seed.AdminRole)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_SESSION_TTL_MINUTES", "60")
	t.Setenv("AUTH_SESSION_WATCH_INTERVAL_SECONDS", "15")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")
	t.Setenv("SEED_ADMIN_EMAIL", "root@admaxify.com")
	t.Setenv("SEED_ADMIN_ROLE", "editor")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.App.Addr())
	assert.Equal(t, time.Hour, cfg.Auth.SessionTTL())
	assert.Equal(t, 15*time.Second, cfg.Auth.WatchInterval())
	assert.False(t, cfg.Postgres.RunMigrations)
	assert.Equal(t, "root@admaxify.com", cfg.Seed.AdminEmail)
	assert.Equal(t, "editor", cfg.Seed.AdminRole)
}

func TestLoadInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestInvalidIntFallsBack(t *testing.T) {
	t.Setenv("AUTH_SESSION_TTL_MINUTES", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 720, cfg.Auth.SessionTTLMinutes)
}
