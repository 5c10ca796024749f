package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/quickcourt_test")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessTokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 300.0, cfg.CoachingRatePerHour)
	assert.Equal(t, 200.0, cfg.CleaningFlatFee)
	assert.Equal(t, 18, cfg.PeakStartHour)
	assert.Equal(t, 22, cfg.PeakEndHour)
}

func TestLoadRequiresDSNAndSecret(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_DSN", "postgres://localhost/quickcourt_test")
	t.Setenv("JWT_SECRET", "")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/quickcourt_test")
	t.Setenv("JWT_SECRET", "test-secret")

	t.Setenv("BCRYPT_COST", "not-a-number")
	_, err := Load()
	assert.Error(t, err)
	t.Setenv("BCRYPT_COST", "")

	t.Setenv("PEAK_START_HOUR", "23")
	t.Setenv("PEAK_END_HOUR", "6")
	_, err = Load()
	assert.Error(t, err)
}
