package remote

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noobtrump/dcache/pkg/errors"
)

// newRedisBackend 从REDIS_ADDR环境变量构造后端，未设置时跳过测试
func newRedisBackend(t *testing.T) *RedisBackend {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping Redis integration test")
	}
	b := NewRedisBackend(addr, "", 15) // use a scratch DB / 使用临时数据库
	t.Cleanup(func() {
		b.Clear(context.Background())
		b.Close()
	})
	return b
}

// TestRedisBackendRoundTrip verifies the basic contract against a live
// server.
//
// TestRedisBackendRoundTrip 针对真实服务器验证基本契约。
func TestRedisBackendRoundTrip(t *testing.T) {
	b := newRedisBackend(t)
	ctx := context.Background()

	require.NoError(t, b.Set(ctx, "a", "1", 0))
	value, found, err := b.Get(ctx, "a")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "1", value)

	_, found, err = b.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found, "redis.Nil must map to a boolean miss")

	require.NoError(t, b.Delete(ctx, "a"))
	require.NoError(t, b.Delete(ctx, "a"), "deleting an absent key is not an error")
}

// TestRedisBackendTTL verifies server-side expiry.
//
// TestRedisBackendTTL 验证服务端过期。
func TestRedisBackendTTL(t *testing.T) {
	b := newRedisBackend(t)
	ctx := context.Background()

	require.NoError(t, b.Set(ctx, "short", "v", time.Second))
	time.Sleep(1500 * time.Millisecond)

	_, found, err := b.Get(ctx, "short")
	require.NoError(t, err)
	assert.False(t, found)
}

// TestRedisBackendUnavailable verifies an unreachable server surfaces as
// ErrBackendUnavailable. No server listens on the reserved TEST-NET-1
// address, so the dial fails fast.
//
// TestRedisBackendUnavailable 验证服务器不可达时以ErrBackendUnavailable
// 上报。保留的TEST-NET-1地址上没有任何服务监听，连接会快速失败。
func TestRedisBackendUnavailable(t *testing.T) {
	b := NewRedisBackend("192.0.2.1:6379", "", 0, WithOpTimeout(500*time.Millisecond))
	defer b.Close()

	ctx := context.Background()
	_, _, err := b.Get(ctx, "a")
	require.Error(t, err)
	assert.True(t, errors.IsBackendUnavailable(err))

	err = b.Set(ctx, "a", "1", 0)
	require.Error(t, err)
	assert.True(t, errors.IsBackendUnavailable(err))
}
