package remote

import (
	"context"
	"sync"
	"time"

	"github.com/noobtrump/dcache/pkg/errors"
)

// MemoryBackend is an embedded Backend backed by a map. It honors the
// same contract as the network implementations, including per-key TTL,
// and serves both tests and single-process deployments that want the
// distributed API without a server.
//
// MemoryBackend 是由映射支撑的内嵌Backend。它遵守与网络实现相同的
// 契约，包括按键TTL，既服务于测试，也服务于希望使用分布式API但
// 不部署服务器的单进程场景。
type MemoryBackend struct {
	mu     sync.RWMutex
	items  map[string]memoryItem
	now    func() time.Time
	closed bool
}

// memoryItem 原始值及其过期时刻，expireAt为零值表示永不过期
type memoryItem struct {
	value    string
	expireAt time.Time
}

// NewMemoryBackend creates an empty MemoryBackend.
//
// NewMemoryBackend 创建一个空的MemoryBackend。
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		items: make(map[string]memoryItem),
		now:   time.Now,
	}
}

// Get retrieves the raw value stored under key. Expired entries are
// removed lazily and reported as absent.
//
// Get 检索键下存储的原始值。过期条目被惰性移除并报告为不存在。
func (b *MemoryBackend) Get(ctx context.Context, key string) (string, bool, error) {
	if err := b.check(ctx); err != nil {
		return "", false, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	item, ok := b.items[key]
	if !ok {
		return "", false, nil
	}
	if !item.expireAt.IsZero() && !b.now().Before(item.expireAt) {
		delete(b.items, key)
		return "", false, nil
	}
	return item.value, true, nil
}

// Set stores a raw value under key. A ttl of zero means no expiry.
//
// Set 在键下存储原始值。ttl为零表示不过期。
func (b *MemoryBackend) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := b.check(ctx); err != nil {
		return err
	}

	item := memoryItem{value: value}
	if ttl > 0 {
		item.expireAt = b.now().Add(ttl)
	}

	b.mu.Lock()
	b.items[key] = item
	b.mu.Unlock()
	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
//
// Delete 删除键。删除不存在的键不是错误。
func (b *MemoryBackend) Delete(ctx context.Context, key string) error {
	if err := b.check(ctx); err != nil {
		return err
	}

	b.mu.Lock()
	delete(b.items, key)
	b.mu.Unlock()
	return nil
}

// Clear removes all keys.
//
// Clear 删除所有键。
func (b *MemoryBackend) Clear(ctx context.Context) error {
	if err := b.check(ctx); err != nil {
		return err
	}

	b.mu.Lock()
	b.items = make(map[string]memoryItem)
	b.mu.Unlock()
	return nil
}

// Close marks the backend as closed; further calls return ErrClosed.
//
// Close 将后端标记为已关闭；后续调用返回ErrClosed。
func (b *MemoryBackend) Close() error {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	return nil
}

// Len returns the number of stored keys, expired ones included until
// their lazy removal.
//
// Len 返回存储的键数量，过期键在被惰性移除前也计入。
func (b *MemoryBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items)
}

// check 统一校验关闭状态和上下文取消
func (b *MemoryBackend) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.RLock()
	closed := b.closed
	b.mu.RUnlock()
	if closed {
		return errors.ErrClosed
	}
	return nil
}
