package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
app:
  name: members
  http:
    host: 127.0.0.1
    port: 9090
  admin:
    port: 9091
    writetimeoutsec: 30
log:
  level: debug
  json: true
  file:
    filename: logs/app.log
db:
  driver: postgres
  dsn: host=localhost user=member dbname=members sslmode=disable
  maxopenconns: 5
  automigrate: false
limits:
  rps: 50
  periprps: 5
  peripburst: 10
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_FromFile(t *testing.T) {
	c, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "members", c.App.Name)
	assert.Equal(t, "127.0.0.1", c.App.HTTP.Host)
	assert.Equal(t, 9090, c.App.HTTP.Port)
	assert.Equal(t, 9091, c.App.Admin.Port)
	assert.Equal(t, "127.0.0.1", c.App.Admin.Host)
	assert.Equal(t, 5, c.App.Admin.ReadTimeoutSec)
	assert.Equal(t, 30, c.App.Admin.WriteTimeoutSec)
	assert.Equal(t, 60, c.App.Admin.IdleTimeoutSec)
	assert.Equal(t, "debug", c.Log.Level)
	assert.True(t, c.Log.JSON)
	assert.Equal(t, "logs/app.log", c.Log.File.Filename)
	assert.Equal(t, 100, c.Log.File.MaxSizeMB)
	assert.Equal(t, "postgres", c.DB.Driver)
	assert.Equal(t, 5, c.DB.MaxOpenConns)
	assert.False(t, c.DB.AutoMigrate)
	assert.Equal(t, 50.0, c.Limits.RPS)
	assert.Equal(t, 400, c.Limits.Burst)
	assert.Equal(t, 5.0, c.Limits.PerIPRPS)
	assert.Equal(t, 10, c.Limits.PerIPBurst)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("APP_DB_DSN", "file:override.db")
	t.Setenv("APP_APP_HTTP_PORT", "7070")

	c, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "file:override.db", c.DB.DSN)
	assert.Equal(t, 7070, c.App.HTTP.Port)
}

func TestLoad_DefaultsWhenDefaultPathMissing(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", c.DB.Driver)
	assert.True(t, c.DB.AutoMigrate)
	assert.Equal(t, 8080, c.App.HTTP.Port)
	assert.Equal(t, int64(16<<20), c.Limits.MaxBodyBytes)
	assert.Equal(t, 10, c.Limits.RequestTimeout)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
