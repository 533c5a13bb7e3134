package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, StoragePostgres, cfg.App.Storage)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiry)
	assert.Equal(t, 10, cfg.DB.MaxIdleConns)
	assert.False(t, cfg.Donor.EnforceAgeRange)
	assert.Equal(t, []string{"*"}, cfg.App.AllowedOrigins)
}

func TestLoadFromFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=9090\nJWT_SECRET=file-secret\nJWT_ACCESS_EXPIRY=30m\nDONOR_ENFORCE_AGE_RANGE=true\nDB_NAME=banco\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("DB_NAME", "from_env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessExpiry)
	assert.True(t, cfg.Donor.EnforceAgeRange)
	assert.Equal(t, "from_env", cfg.DB.Name, "environment wins over the file")
}

func TestLoadAllowedOrigins(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://admin.banco.mx, http://localhost:5173,")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, []string{"https://admin.banco.mx", "http://localhost:5173"}, cfg.App.AllowedOrigins)
}

func TestLoadInvalidExpiryFallsBack(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_REFRESH_EXPIRY", "a week")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiry)
}

func TestValidate(t *testing.T) {
	cfg := &Config{App: AppConfig{Storage: StorageMemory}, JWT: JWTConfig{Secret: "s"}}
	assert.NoError(t, cfg.Validate())

	cfg.App.Storage = "sqlite"
	assert.Error(t, cfg.Validate())

	cfg.App.Storage = StoragePostgres
	cfg.JWT.Secret = ""
	assert.EqualError(t, cfg.Validate(), "JWT_SECRET is required")
}
