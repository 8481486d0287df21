package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaultsAndEnv(t *testing.T) {
	t.Setenv("EMAIL_OTP_TTL", "90s")
	t.Setenv("REDIS_OTP_DB", "7")
	t.Setenv("ENV", "production")

	LoadConfig()

	assert.Equal(t, 90*time.Second, AppConfig.EmailOTPTTL)
	assert.Equal(t, 7, AppConfig.RedisOTPDB)
	assert.Equal(t, 3, AppConfig.RedisQueueDB)
	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.True(t, IsProduction())
}
