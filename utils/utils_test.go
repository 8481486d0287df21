package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	token, err := GenerateAdminToken("s3cret", "ops-1", time.Hour)
	require.NoError(t, err)

	sub, err := ExtractAdminFromToken("s3cret", token)
	require.NoError(t, err)
	assert.Equal(t, "ops-1", sub)

	_, err = ExtractAdminFromToken("other", token)
	assert.Error(t, err)

	_, err = GenerateAdminToken("", "ops-1", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestAdminTokenExpired(t *testing.T) {
	token, err := GenerateAdminToken("s3cret", "ops-1", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractAdminFromToken("s3cret", token)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn", false))
	assert.Equal(t, zapcore.DebugLevel, parseLevel("", false))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("", true))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("loud", false))
}

func TestCheckHealth(t *testing.T) {
	mr := miniredis.RunT(t)
	up := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	down := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = up.Close(); _ = down.Close() })

	status := CheckHealth(context.Background(), []*redis.Client{up, down}, nil)
	assert.Equal(t, []bool{true, false}, status.Redis)
	assert.False(t, status.Mongo)
	assert.False(t, status.Healthy())
	assert.Equal(t, status, GetHealthStatus())
}
