package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeEnv(t, "JWT_SECRET=s3cret\nDB_NAME=umkm\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "umkm", cfg.Database.Name)
	assert.Equal(t, time.Hour, cfg.JWT.TTL())
	assert.Equal(t, time.Hour, cfg.Token.VerificationTTL())
	assert.Equal(t, 15*time.Minute, cfg.Token.ResetTTL())
	assert.Equal(t, 10, cfg.Security.BcryptCost)
	assert.Equal(t, 5, cfg.Security.UsernameAttempts)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.App.AllowedOrigins)
	assert.False(t, cfg.App.IsProduction())
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeEnv(t, "JWT_SECRET=s3cret\nAPP_ENV=development\n")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.AllowedOrigins)
}

func TestLoadConfigMissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	path := writeEnv(t, "DB_NAME=umkm\n")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", d.DSN())
}
