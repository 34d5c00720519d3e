package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "https://oldenfyre-inventory.vercel.app", cfg.Inventory.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Inventory.Timeout)
	assert.Equal(t, 0, cfg.Checkout.ShippingCost)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SHIPPING_COST", "120")
	t.Setenv("INVENTORY_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 120, cfg.Checkout.ShippingCost)
	assert.Equal(t, 3*time.Second, cfg.Inventory.Timeout)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("INVENTORY_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
