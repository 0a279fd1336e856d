package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 8720, cfg.Server.Port)
	assert.Equal(t, "data", cfg.Data.DataDir)
	assert.Equal(t, 0.4, cfg.Ingest.MinConfidence)
	assert.Empty(t, cfg.SimBridge.BaseURL)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SIMPILOT_PORT", "9100")
	t.Setenv("SIMPILOT_DEV_MODE", "true")
	t.Setenv("SIMPILOT_DATA_DIR", "/var/lib/simpilot")
	t.Setenv("SIMPILOT_SIMBRIDGE_URL", "http://bridge:9000")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.True(t, cfg.Server.DevMode)
	assert.Equal(t, "/var/lib/simpilot", cfg.Data.DataDir)
	assert.Equal(t, "http://bridge:9000", cfg.SimBridge.BaseURL)
}

func TestEnvOverrides_BadPortIgnored(t *testing.T) {
	t.Setenv("SIMPILOT_PORT", "not-a-port")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	assert.Equal(t, 8720, cfg.Server.Port)
}
