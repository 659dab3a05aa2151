package remote

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/noobtrump/dcache/pkg/errors"
)

// defaultOpTimeout 单次Redis调用的默认超时
const defaultOpTimeout = 3 * time.Second

// RedisBackend implements Backend against a Redis server. Each call runs
// under a per-operation timeout; a timeout or connection failure is
// surfaced as errors.ErrBackendUnavailable and never retried here —
// retry policy belongs to the caller.
//
// RedisBackend 基于Redis服务器实现Backend。每次调用都在单次操作
// 超时内执行；超时或连接失败以errors.ErrBackendUnavailable形式上报，
// 且这里绝不重试——重试策略属于调用方。
type RedisBackend struct {
	client    *redis.Client
	opTimeout time.Duration
}

// RedisOption configures a RedisBackend.
//
// RedisOption 配置RedisBackend。
type RedisOption func(*RedisBackend)

// WithOpTimeout sets the per-call timeout for backend operations.
//
// WithOpTimeout 设置后端操作的单次调用超时。
func WithOpTimeout(d time.Duration) RedisOption {
	return func(b *RedisBackend) {
		if d > 0 {
			b.opTimeout = d
		}
	}
}

// NewRedisBackend creates a RedisBackend for the given address
// ("host:port"), password and database index.
//
// NewRedisBackend 为给定地址（"host:port"）、密码和数据库索引创建
// RedisBackend。
func NewRedisBackend(addr, password string, db int, opts ...RedisOption) *RedisBackend {
	b := &RedisBackend{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		opTimeout: defaultOpTimeout,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewRedisBackendFromClient wraps an existing go-redis client. The caller
// keeps ownership of the client's lifecycle if it is shared.
//
// NewRedisBackendFromClient 包装一个已有的go-redis客户端。
// 如果客户端是共享的，其生命周期仍由调用方管理。
func NewRedisBackendFromClient(client *redis.Client, opts ...RedisOption) *RedisBackend {
	b := &RedisBackend{client: client, opTimeout: defaultOpTimeout}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Get retrieves the raw value stored under key.
//
// Get 检索键下存储的原始值。
func (b *RedisBackend) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, b.opTimeout)
	defer cancel()

	value, err := b.client.Get(ctx, key).Result()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, wrapNetErr(key, err)
	}
	return value, true, nil
}

// Set stores a raw value under key. A ttl of zero means no expiry.
//
// Set 在键下存储原始值。ttl为零表示不过期。
func (b *RedisBackend) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, b.opTimeout)
	defer cancel()

	if err := b.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return wrapNetErr(key, err)
	}
	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
//
// Delete 删除键。删除不存在的键不是错误。
func (b *RedisBackend) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, b.opTimeout)
	defer cancel()

	if err := b.client.Del(ctx, key).Err(); err != nil {
		return wrapNetErr(key, err)
	}
	return nil
}

// Clear removes all keys in the backend's database via FLUSHDB.
//
// Clear 通过FLUSHDB删除后端数据库中的所有键。
func (b *RedisBackend) Clear(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, b.opTimeout)
	defer cancel()

	if err := b.client.FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrBackendUnavailable, err)
	}
	return nil
}

// Close closes the underlying client connection pool.
//
// Close 关闭底层客户端连接池。
func (b *RedisBackend) Close() error {
	return b.client.Close()
}

// wrapNetErr 将网络层错误包装为 ErrBackendUnavailable，并附带键信息
func wrapNetErr(key string, err error) error {
	return errors.NewKeyError(key, fmt.Errorf("%w: %v", errors.ErrBackendUnavailable, err))
}
