package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
jwt:
  access_secret: test-access
  refresh_secret: test-refresh
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 10, cfg.JWT.BcryptCost)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Sweeper.Enabled)
	assert.Equal(t, "@every 1h", cfg.Sweeper.Schedule)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
jwt:
  access_secret: test-access
  refresh_secret: test-refresh
  access_expiry: 1h
log:
  level: debug
  pretty: true
sweeper:
  enabled: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.JWT.AccessExpiry)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
	assert.False(t, cfg.Sweeper.Enabled)
}

func TestLoad_EnvOnlySecrets(t *testing.T) {
	t.Setenv("HOMELIB_JWT_ACCESS_SECRET", "env-access")
	t.Setenv("HOMELIB_JWT_REFRESH_SECRET", "env-refresh")

	// No config file at all: the secrets must come through from env.
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-access", cfg.JWT.AccessSecret)
	assert.Equal(t, "env-refresh", cfg.JWT.RefreshSecret)
	assert.Equal(t, 4000, cfg.Server.Port)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("HOMELIB_JWT_ACCESS_SECRET", "env-access")
	path := writeConfig(t, `
jwt:
  access_secret: file-access
  refresh_secret: file-refresh
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-access", cfg.JWT.AccessSecret)
	assert.Equal(t, "file-refresh", cfg.JWT.RefreshSecret)
}

func TestLoad_MissingSecrets(t *testing.T) {
	path := writeConfig(t, `
jwt:
  access_secret: only-one
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "refresh_secret")
}

func TestLoad_EqualSecrets(t *testing.T) {
	path := writeConfig(t, `
jwt:
  access_secret: same
  refresh_secret: same
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "must differ")
}

func TestLoad_InvalidPort(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 99999
jwt:
  access_secret: test-access
  refresh_secret: test-refresh
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "port")
}

func TestDSN(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "homelib",
		Password: "pw",
		Database: "library",
		SSLMode:  "require",
	}

	assert.Equal(t, "postgres://homelib:pw@db.internal:5433/library?sslmode=require", cfg.DSN())
}
