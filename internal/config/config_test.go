package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "development", cfg.Server.Env)
	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.Equal(t, "kyc_system.db", cfg.Database.Path)
	require.Equal(t, 30*time.Minute, cfg.JWT.Expiry)
	require.Len(t, cfg.Security.FieldEncryptionKey, 64)
	require.Equal(t, int64(16<<20), cfg.Storage.MaxUploadSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("JWT_EXPIRY", "1h")
	t.Setenv("MAX_UPLOAD_SIZE", "1024")

	cfg := Load()
	require.Equal(t, "9999", cfg.Server.Port)
	require.Equal(t, "postgres", cfg.Database.Driver)
	require.Equal(t, time.Hour, cfg.JWT.Expiry)
	require.Equal(t, int64(1024), cfg.Storage.MaxUploadSize)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "soon")
	t.Setenv("MAX_UPLOAD_SIZE", "lots")

	cfg := Load()
	require.Equal(t, 30*time.Minute, cfg.JWT.Expiry)
	require.Equal(t, int64(16<<20), cfg.Storage.MaxUploadSize)
}
