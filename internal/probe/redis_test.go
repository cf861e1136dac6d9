package probe

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_RoundTrip(t *testing.T) {
	addr := os.Getenv("MUXSHAPE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("MUXSHAPE_TEST_REDIS_ADDR not set")
	}

	rc, err := NewRedisCache(RedisConfig{Addr: addr, TTL: time.Minute})
	require.NoError(t, err)
	defer rc.Close()

	key := "test|" + t.Name() + "|" + time.Now().Format(time.RFC3339Nano)
	_, ok, err := rc.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)

	want := &ProbeResult{
		Format:       FormatInfo{FormatName: "matroska,webm"},
		PrimaryVideo: &VideoStream{Codec: "h264", Width: 1280, Height: 720, AvgFrameRate: "25/1"},
	}
	require.NoError(t, rc.Set(key, want))

	got, ok, err := rc.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	_, err := NewRedisCache(RedisConfig{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond})
	assert.Error(t, err)
}
