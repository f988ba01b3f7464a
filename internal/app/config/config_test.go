package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "signing-key")
}

func TestNewConfigDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.ServicePort)
	assert.Equal(t, "admin", cfg.AdminUsername)
}

func TestNewConfigCustomPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8080")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.ServicePort)
}

func TestNewConfigInvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "not-a-number")

	_, err := NewConfig()
	assert.Error(t, err)
}

// Без учётных данных администратора сервис стартовать не должен
func TestNewConfigMissingRequired(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("JWT_SECRET", "")

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_USERNAME")
	assert.Contains(t, err.Error(), "ADMIN_PASSWORD")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}
