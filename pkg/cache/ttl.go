package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/noobtrump/dcache/pkg/errors"
)

// ExpiringCache stores entries with a per-entry time-to-live. Expiry is
// lazy: an expired entry is removed and counted as a miss on the next
// access, and never returned stale. The cache may optionally be bounded;
// when the table is full of live entries the oldest-inserted one is
// evicted.
//
// Expiry uses the wall clock. A backwards clock step can shorten or
// extend a TTL; the tests inject a fake Clock instead of sleeping.
//
// ExpiringCache 为每个条目存储独立的生存时间。过期是惰性的：
// 过期条目在下次访问时被删除并计为未命中，绝不会返回陈旧值。
// 缓存可选择设置上限；当表中全是未过期条目且已满时，淘汰最早插入的条目。
//
// 过期基于系统时钟。时钟回拨可能缩短或延长TTL；测试通过注入假Clock
// 来代替真实等待。
type ExpiringCache struct {
	mu       sync.Mutex
	capacity int // 0 = unbounded / 0表示无上限
	clock    Clock
	items    map[string]*ttlEntry
	order    *list.List // insertion order, front = oldest / 插入顺序，头部最旧
	stats    Stats
}

// ttlEntry 条目本体及其插入时间与生存时间
type ttlEntry struct {
	key        string
	value      interface{}
	insertedAt time.Time
	ttl        time.Duration
	elem       *list.Element
}

// expiredAt 判断条目在now时刻是否已过期；ttl<=0表示永不过期
func (e *ttlEntry) expiredAt(now time.Time) bool {
	if e.ttl <= 0 {
		return false
	}
	return !now.Before(e.insertedAt.Add(e.ttl))
}

// ExpiringOption configures an ExpiringCache.
//
// ExpiringOption 配置ExpiringCache。
type ExpiringOption func(*ExpiringCache)

// WithCapacity bounds the cache to at most n live entries.
//
// WithCapacity 将缓存限制为最多n个未过期条目。
func WithCapacity(n int) ExpiringOption {
	return func(c *ExpiringCache) {
		c.capacity = n
	}
}

// WithClock replaces the clock used for expiry decisions.
//
// WithClock 替换用于过期判断的时钟。
func WithClock(clock Clock) ExpiringOption {
	return func(c *ExpiringCache) {
		c.clock = clock
	}
}

// NewExpiringCache creates an ExpiringCache. Without WithCapacity the
// cache is unbounded; with it, capacity must be at least 1.
//
// NewExpiringCache 创建ExpiringCache。未使用WithCapacity时缓存无上限；
// 使用时容量必须至少为1。
func NewExpiringCache(opts ...ExpiringOption) (*ExpiringCache, error) {
	c := &ExpiringCache{
		clock: realClock{},
		items: make(map[string]*ttlEntry),
		order: list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.capacity < 0 {
		return nil, errors.ErrInvalidCapacity
	}
	return c, nil
}

// Get retrieves a value. An entry past its TTL is deleted, counted as a
// miss and reported as not found.
//
// Get 检索值。超过TTL的条目会被删除、计为未命中并报告为未找到。
func (c *ExpiringCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		c.stats.miss()
		return nil, false
	}
	if entry.expiredAt(c.clock.Now()) {
		c.remove(entry)
		c.stats.miss()
		return nil, false
	}

	c.stats.hit()
	return entry.value, true
}

// Set stores a value with the given TTL. A TTL of zero or less means the
// entry never expires. Overwriting a key refreshes both value and
// insertion time. When the cache is bounded and full of live entries, the
// oldest-inserted entry is evicted first.
//
// Set 以给定TTL存储值。TTL小于等于零表示条目永不过期。
// 覆盖写会同时刷新值和插入时间。当缓存有上限且全是未过期条目时，
// 先淘汰最早插入的条目。
func (c *ExpiringCache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.insertedAt = now
		entry.ttl = ttl
		c.order.MoveToBack(entry.elem)
		return
	}

	if c.capacity > 0 && len(c.items) >= c.capacity {
		// 过期条目不占用容量，先清理
		c.purgeExpired(now)
		if len(c.items) >= c.capacity {
			c.evictOldest()
		}
	}

	entry := &ttlEntry{key: key, value: value, insertedAt: now, ttl: ttl}
	entry.elem = c.order.PushBack(entry)
	c.items[key] = entry
}

// Delete removes a key. Returns true if a live entry was present.
//
// Delete 删除键。如果存在未过期条目则返回true。
func (c *ExpiringCache) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		return false
	}
	expired := entry.expiredAt(c.clock.Now())
	c.remove(entry)
	return !expired
}

// Len returns the number of live entries. Expired entries found during
// the count are removed.
//
// Len 返回未过期条目的数量。计数过程中发现的过期条目会被移除。
func (c *ExpiringCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.purgeExpired(c.clock.Now())
	return len(c.items)
}

// Stats returns a point-in-time copy of the cache statistics.
//
// Stats 返回缓存统计信息的即时副本。
func (c *ExpiringCache) Stats() StatsSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats.snapshot()
}

// remove 删除条目，调用方需持有锁
func (c *ExpiringCache) remove(entry *ttlEntry) {
	c.order.Remove(entry.elem)
	delete(c.items, entry.key)
}

// purgeExpired 移除所有已过期条目，调用方需持有锁
func (c *ExpiringCache) purgeExpired(now time.Time) {
	for elem := c.order.Front(); elem != nil; {
		next := elem.Next()
		entry := elem.Value.(*ttlEntry)
		if entry.expiredAt(now) {
			c.remove(entry)
		}
		elem = next
	}
}

// evictOldest 淘汰最早插入的条目，调用方需持有锁
func (c *ExpiringCache) evictOldest() {
	front := c.order.Front()
	if front == nil {
		return
	}
	c.remove(front.Value.(*ttlEntry))
	c.stats.evict()
}
