package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "mailto-go", cfg.ServiceName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.False(t, cfg.Obfuscate)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "none", cfg.Cache.Store)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "log", cfg.Mail.Mailer)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "sqlite", cfg.Database.Connection)
	assert.Equal(t, "mailto_links", cfg.Database.Table)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"MAILTO_OBFUSCATE":   "true",
		"MAILTO_CACHE_STORE": "redis",
		"MAILTO_CACHE_TTL":   "1h",
		"REDIS_DB":           "3",
		"MAIL_MAILER":        "smtp",
		"MAIL_HOST":          "smtp.example.com",
		"MAIL_PORT":          "465",
	})
	require.NoError(t, err)

	assert.True(t, cfg.Obfuscate)
	assert.Equal(t, "redis", cfg.Cache.Store)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "smtp", cfg.Mail.Mailer)
	assert.Equal(t, "smtp.example.com", cfg.Mail.Host)
	assert.Equal(t, "465", cfg.Mail.Port)
}

func TestLoadFrom_Invalid(t *testing.T) {
	_, err := LoadFrom(map[string]string{"REDIS_DB": "not-a-number"})
	assert.Error(t, err)
}
