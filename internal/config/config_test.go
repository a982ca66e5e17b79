package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "Abc123!Abc123!Abc123!Abc123!Abc123!"

func TestLoad(t *testing.T) {
	t.Setenv("PRESSROOM_SESSION_SECRET", testSecret)
	t.Setenv("PRESSROOM_SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "localhost:9090", cfg.ServerAddr())
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 15, cfg.EditLockTimeoutMinutes)
	assert.Empty(t, cfg.SweepSchedule)
	assert.False(t, cfg.UseRedisCache())
	assert.Equal(t, "./data/pressroom.db", cfg.DBPath)
	assert.Equal(t, "pressroom:", cfg.CachePrefix)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("PRESSROOM_SESSION_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("PRESSROOM_SESSION_SECRET", "short")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_WeakSecret(t *testing.T) {
	t.Setenv("PRESSROOM_SESSION_SECRET", "change-me-to-32-byte-secret-key!")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidLockTimeout(t *testing.T) {
	t.Setenv("PRESSROOM_SESSION_SECRET", testSecret)
	t.Setenv("PRESSROOM_EDIT_LOCK_TIMEOUT_MINUTES", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RedisConfigured(t *testing.T) {
	t.Setenv("PRESSROOM_SESSION_SECRET", testSecret)
	t.Setenv("PRESSROOM_REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.UseRedisCache())
}
