package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("VISION_BACKEND", "")
	t.Setenv("THRESHOLDS_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, "std", cfg.VisionBackend)
	require.Empty(t, cfg.TelegramToken)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token-123")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("VISION_BACKEND", "gocv")
	t.Setenv("THRESHOLDS_FILE", "thresholds.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "token-123", cfg.TelegramToken)
	require.Equal(t, ":9090", cfg.HTTPAddr)
	require.Equal(t, "gocv", cfg.VisionBackend)
	require.Equal(t, "thresholds.yaml", cfg.ThresholdsFile)
}
