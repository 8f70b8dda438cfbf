package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRemote(t *testing.T) {
	t.Setenv("IDENTITY_STRATEGY", "remote")
	t.Setenv("SUPABASE_URL", "https://demo.supabase.co/")
	t.Setenv("SUPABASE_ANON_KEY", "anon")
}

func TestLoad_Defaults(t *testing.T) {
	setRemote(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "America/Lima", cfg.ClinicTimezone)
	assert.Equal(t, "https://demo.supabase.co", cfg.SupabaseURL)
	assert.Equal(t, 20, cfg.RateLimitMax)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 25_000_000, cfg.PhotoMaxPixels)
	assert.False(t, cfg.UploadsEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	setRemote(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PUBLIC_RATE_WINDOW", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.pe, https://b.pe ,")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, []string{"https://a.pe", "https://b.pe"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 10, cfg.DBMaxOpen)
}

func TestLoad_LocalStrategyNeedsSecret(t *testing.T) {
	t.Setenv("IDENTITY_STRATEGY", "local")
	t.Setenv("SUPABASE_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUPABASE_JWT_SECRET")
}

func TestLoad_RejectsUnknownStrategyAndTimezone(t *testing.T) {
	t.Setenv("IDENTITY_STRATEGY", "decode")
	t.Setenv("CLINIC_TIMEZONE", "Mars/Olympus")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IDENTITY_STRATEGY")
	assert.Contains(t, err.Error(), "CLINIC_TIMEZONE")
}

func TestLoad_StorageNeedsCredentials(t *testing.T) {
	setRemote(t)
	t.Setenv("STORAGE_BUCKET", "fotos")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_ACCESS_KEY")
}
