package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	cfg, err := loadEnv()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "configs", cfg.ConfigDir)
	assert.Equal(t, 5*time.Second, cfg.ReloadInterval)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)

	t.Setenv("PORT", "9090")
	t.Setenv("RELOAD_INTERVAL", "250ms")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	cfg, err = loadEnv()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.ReloadInterval)
	assert.Len(t, cfg.CORSOrigins, 2)

	t.Setenv("SLATE_WORKERS", "many")
	_, err = loadEnv()
	assert.ErrorContains(t, err, "parse env")
}
