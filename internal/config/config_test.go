package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
server:
  host: "127.0.0.1"
  port: 8080
database:
  host: "localhost"
  port: 5432
  user: "equiprent"
  password: "pw"
  database: "equiprent_test"
  ssl_mode: "disable"
jwt:
  secret: "0123456789abcdef0123456789abcdef"
log:
  level: "debug"
  format: "json"
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.GetServerAddress())
	assert.Equal(t, "postgres://equiprent:pw@localhost:5432/equiprent_test?sslmode=disable", cfg.GetDatabaseConnectionString())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, 10, cfg.ERPNext.TimeoutSeconds)
	assert.Equal(t, 0.15, cfg.Billing.DefaultTaxRate)
	assert.Equal(t, 30, cfg.Billing.QuotationValidityDays)
	assert.Equal(t, 2, cfg.Notify.Workers)
	assert.Equal(t, 100, cfg.Notify.QueueSize)
	assert.Equal(t, 3, cfg.Notify.MaxRetries)
	assert.Equal(t, []int{30, 60, 120}, cfg.Notify.BackoffSeconds)
	assert.Equal(t, "0 0 2 * * *", cfg.Scheduler.MarkOverdueRentals)
	assert.Equal(t, "0 30 2 * * *", cfg.Scheduler.ExpireQuotations)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_SECRET", "fedcba9876543210fedcba9876543210")

	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "fedcba9876543210fedcba9876543210", cfg.JWT.Secret)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("Short JWT secret", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
server:
  port: 8080
database:
  host: "localhost"
  user: "u"
  database: "d"
jwt:
  secret: "short"
`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret")
	})

	t.Run("Missing database host", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
server:
  port: 8080
database:
  user: "u"
  database: "d"
jwt:
  secret: "0123456789abcdef0123456789abcdef"
`))
		assert.Error(t, err)
	})
}
