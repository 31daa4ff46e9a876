package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	LoadConfig()

	assert.Equal(t, "3000", AppConfig.AppPort)
	assert.Equal(t, 100, AppConfig.RateLimitMax)
	assert.Equal(t, 15*time.Minute, AppConfig.RateLimitWindow)
	assert.Equal(t, 24*time.Hour, AppConfig.JWTTTL)
	assert.Equal(t, "@daily", AppConfig.BackupSchedule)
	assert.False(t, IsProduction())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8081")
	t.Setenv("ENV", "production")
	t.Setenv("RATE_LIMIT_MAX", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "1m")

	LoadConfig()

	assert.Equal(t, "8081", AppConfig.AppPort)
	assert.Equal(t, 5, AppConfig.RateLimitMax)
	assert.Equal(t, time.Minute, AppConfig.RateLimitWindow)
	assert.True(t, IsProduction())
}

func TestOrigins(t *testing.T) {
	cfg := Config{AllowedOrigins: " http://a.test , ,https://b.test"}
	assert.Equal(t, []string{"http://a.test", "https://b.test"}, cfg.Origins())
	assert.Empty(t, Config{}.Origins())
}

func TestTrustedProxyList(t *testing.T) {
	cfg := Config{TrustedProxies: "10.0.0.1, 172.16.0.0/12"}
	assert.Equal(t, []string{"10.0.0.1", "172.16.0.0/12"}, cfg.TrustedProxyList())
	assert.Nil(t, Config{}.TrustedProxyList())
}
