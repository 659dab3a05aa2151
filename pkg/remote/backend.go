// Package remote provides the distributed half of the cache: a pluggable
// key/value backend abstraction, a Redis-backed implementation, an
// embedded in-memory implementation, a namespaced serializing cache over
// one backend, and a cluster router spreading keys over several backends.
//
// Package remote 提供缓存的分布式部分：可插拔的键值后端抽象、
// 基于Redis的实现、内嵌的内存实现、在单个后端之上带命名空间和
// 序列化的缓存，以及将键分散到多个后端的集群路由器。
package remote

import (
	"context"
	"time"
)

// Backend abstracts a remote key/value store. Every call is a potentially
// blocking, potentially failing network operation; implementations report
// an unreachable or timed-out store by wrapping
// errors.ErrBackendUnavailable. A missing key is reported through the
// boolean, never as an error.
//
// Backend 抽象远程键值存储。每次调用都是可能阻塞、可能失败的网络
// 操作；当存储不可达或超时时，实现通过包装errors.ErrBackendUnavailable
// 来报告。键不存在通过布尔值报告，绝不作为错误。
type Backend interface {
	// Get retrieves the raw value stored under key.
	//
	// Get 检索键下存储的原始值。
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a raw value under key. A ttl of zero means no expiry.
	//
	// Set 在键下存储原始值。ttl为零表示不过期。
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	//
	// Delete 删除键。删除不存在的键不是错误。
	Delete(ctx context.Context, key string) error

	// Clear removes all keys in the backend's namespace.
	//
	// Clear 删除后端命名空间中的所有键。
	Clear(ctx context.Context) error

	// Close releases the backend's resources.
	//
	// Close 释放后端资源。
	Close() error
}
