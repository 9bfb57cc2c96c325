package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_PORT", "DB_DRIVER", "DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
		"SQLITE_PATH", "REDIS_ADDR", "REDIS_PASS", "REDIS_DB", "SESSION_SECRET", "SESSION_TTL",
		"SESSION_COOKIE", "COOKIE_SECURE", "LOG_LEVEL", "IS_PROD",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg := LoadConfig()
	assert.Equal(t, "5555", cfg.AppPort)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "recipes.db", cfg.SQLitePath)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "session", cfg.SessionCookie)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.IsProd)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, "recipes.db?_foreign_keys=on", cfg.DSN())
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_USER", "chef")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "recipes")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("IS_PROD", "true")

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.CookieSecure)
	assert.True(t, cfg.IsProd)
	assert.Equal(t, "chef:secret@tcp(db:3306)/recipes?parseTime=true", cfg.DSN())
}

func TestLoadConfigBadTTL(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_TTL", "forever")

	cfg := LoadConfig()
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestValidate(t *testing.T) {
	base := Config{DBDriver: DriverSQLite, RedisAddr: "localhost:6379"}

	require.NoError(t, base.Validate())

	bad := base
	bad.DBDriver = "postgres"
	assert.Error(t, bad.Validate())

	noRedis := base
	noRedis.RedisAddr = ""
	assert.Error(t, noRedis.Validate())

	prod := base
	prod.IsProd = true
	assert.Error(t, prod.Validate())
	prod.SessionSecret = "s3cret"
	assert.NoError(t, prod.Validate())
}
