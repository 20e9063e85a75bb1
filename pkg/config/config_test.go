package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DOCUMENT_STORE", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dynamodb", cfg.Store.Driver)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 3001, cfg.HTTP.RelayPort)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DOCUMENT_STORE", "Memory")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "yes")
	t.Setenv("TABLE_PREFIX", "dev_")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 465, cfg.SMTP.Port)
	assert.True(t, cfg.Payments.Mock)
	assert.Equal(t, "dev_", cfg.Store.TablePrefix)
}

func TestLoad_RejectsUnknownStore(t *testing.T) {
	t.Setenv("DOCUMENT_STORE", "firestore")

	_, err := Load()
	assert.Error(t, err)
}
