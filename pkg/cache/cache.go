// Package cache provides thread-safe, bounded in-memory caches with a
// choice of eviction policies: recency-based (LRU), frequency-based (LFU),
// time-based (TTL) and non-owning (caller-managed liveness). Every cache
// tracks hit/miss/eviction statistics.
//
// Package cache 提供线程安全、有界的内存缓存，支持多种淘汰策略：
// 基于最近使用（LRU）、基于使用频率（LFU）、基于时间（TTL）以及
// 非持有型（调用方管理值的存活）。每个缓存都记录命中/未命中/淘汰统计。
package cache

// Cache is the interface shared by the in-memory eviction policies.
// All methods are safe for concurrent use.
//
// Cache 是各内存淘汰策略共享的接口。
// 所有方法都可以并发调用。
type Cache interface {
	// Get retrieves a value from the cache.
	// The boolean reports whether the key was found; a miss is not an error.
	//
	// Get 从缓存中检索值。
	// 布尔值报告是否找到了键；未命中不是错误。
	Get(key string) (interface{}, bool)

	// Put adds a value to the cache, evicting another entry if the cache
	// is at capacity. If the key already exists, its value and policy
	// metadata are refreshed.
	//
	// Put 将值添加到缓存中，如果缓存已满则淘汰其他条目。
	// 如果键已存在，则刷新其值和策略元数据。
	Put(key string, value interface{})

	// Delete removes a key from the cache.
	// Returns true if the key was present.
	//
	// Delete 从缓存中删除键。
	// 如果键存在则返回true。
	Delete(key string) bool

	// Len returns the number of entries currently stored.
	//
	// Len 返回当前存储的条目数量。
	Len() int

	// Stats returns a point-in-time copy of the cache statistics.
	//
	// Stats 返回缓存统计信息的即时副本。
	Stats() StatsSnapshot
}
