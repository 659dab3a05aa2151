package remote

import (
	"context"
	"time"

	"github.com/noobtrump/dcache/pkg/codec"
	"github.com/noobtrump/dcache/pkg/errors"
)

// DistributedCache layers a key namespace and a serialization contract on
// top of one Backend. Every backend call uses the derived key
// "namespace:key", so two instances with different namespaces never
// collide on a shared backend. Values are marshaled through a Codec
// before storage; decode failures surface as reported errors, never
// panics.
//
// DistributedCache 在单个Backend之上叠加键命名空间和序列化契约。
// 每次后端调用都使用派生键"namespace:key"，因此共享同一后端的两个
// 不同命名空间实例绝不会冲突。值在存储前通过Codec序列化；解码失败
// 以错误形式上报，绝不引发panic。
type DistributedCache struct {
	backend   Backend
	namespace string
	codec     codec.Codec
}

// DistributedOption configures a DistributedCache.
//
// DistributedOption 配置DistributedCache。
type DistributedOption func(*DistributedCache)

// WithCodec replaces the default JSON codec.
//
// WithCodec 替换默认的JSON编解码器。
func WithCodec(c codec.Codec) DistributedOption {
	return func(d *DistributedCache) {
		if c != nil {
			d.codec = c
		}
	}
}

// NewDistributedCache creates a DistributedCache over backend, keyed
// under namespace. An empty namespace defaults to "cache".
//
// NewDistributedCache 在backend之上创建以namespace为前缀的
// DistributedCache。空命名空间默认为"cache"。
func NewDistributedCache(backend Backend, namespace string, opts ...DistributedOption) *DistributedCache {
	if namespace == "" {
		namespace = "cache"
	}
	d := &DistributedCache{
		backend:   backend,
		namespace: namespace,
		codec:     codec.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Namespace returns the cache's key prefix.
//
// Namespace 返回缓存的键前缀。
func (d *DistributedCache) Namespace() string { return d.namespace }

// makeKey 派生带命名空间的后端键
func (d *DistributedCache) makeKey(key string) string {
	return d.namespace + ":" + key
}

// Get fetches and deserializes the value stored under key. The value
// parameter must be a pointer to the target type. Stored bytes that
// cannot be decoded surface as an error satisfying
// errors.IsSerializationError.
//
// Get 获取并反序列化键下存储的值。value参数必须是目标类型的指针。
// 无法解码的存储字节以满足errors.IsSerializationError的错误形式上报。
func (d *DistributedCache) Get(ctx context.Context, key string, value interface{}) (bool, error) {
	raw, found, err := d.backend.Get(ctx, d.makeKey(key))
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if err := d.codec.Unmarshal([]byte(raw), value); err != nil {
		return false, errors.NewKeyError(key, err)
	}
	return true, nil
}

// Set serializes a value and forwards it to the backend with the given
// TTL. A ttl of zero means no expiry.
//
// Set 序列化值并以给定TTL转发到后端。ttl为零表示不过期。
func (d *DistributedCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := d.codec.Marshal(value)
	if err != nil {
		return errors.NewKeyError(key, err)
	}
	return d.backend.Set(ctx, d.makeKey(key), string(data), ttl)
}

// Delete removes the value stored under key.
//
// Delete 删除键下存储的值。
func (d *DistributedCache) Delete(ctx context.Context, key string) error {
	return d.backend.Delete(ctx, d.makeKey(key))
}

// Clear removes all values from the backend. Note that this clears the
// whole backend, not only this cache's namespace; namespaced sweeps need
// backend-specific key scans, which the Backend contract does not carry.
//
// Clear 删除后端中的所有值。注意这会清空整个后端，而不仅是本缓存的
// 命名空间；按命名空间清理需要后端特定的键扫描，Backend契约不包含
// 该能力。
func (d *DistributedCache) Clear(ctx context.Context) error {
	return d.backend.Clear(ctx)
}
