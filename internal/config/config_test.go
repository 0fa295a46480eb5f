package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_TOKEN_KEY", "0123456789abcdef0123456789abcdef")

	cf, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "8080", cf.ServerPort)
	require.Equal(t, "uploads", cf.UploadDir)
	require.Equal(t, 5, cf.LowStockThreshold)
	require.Equal(t, 24*time.Hour, cf.AccessTokenDuration)
}

func TestLoadTokenDurationOverride(t *testing.T) {
	t.Setenv("AUTH_TOKEN_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("ACCESS_TOKEN_DURATION", "1h")

	cf, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, time.Hour, cf.AccessTokenDuration)
}

func TestLoadRequiresTokenKey(t *testing.T) {
	t.Setenv("AUTH_TOKEN_KEY", "")

	_, err := Load(t.TempDir())
	require.Error(t, err)
}
