package cache

import "sync"

// Handle is a caller-managed reference to a value. The owner keeps the
// handle while the value is alive and calls Release when it drops the
// value; a released handle makes every cache entry pointing at it vanish
// on the next access.
//
// Handle 是由调用方管理的值引用。只要值存活，持有者就保留该句柄，
// 并在放弃值时调用Release；已释放的句柄会使指向它的所有缓存条目
// 在下次访问时消失。
type Handle struct {
	mu       sync.Mutex
	value    interface{}
	released bool
}

// NewHandle wraps a value in a live handle.
//
// NewHandle 将值包装为一个存活的句柄。
func NewHandle(value interface{}) *Handle {
	return &Handle{value: value}
}

// Release marks the value as gone. Idempotent. The value reference is
// dropped so the handle itself does not keep it alive.
//
// Release 标记值已不存在。可重复调用。值引用会被丢弃，
// 因此句柄本身不会使值保持存活。
func (h *Handle) Release() {
	h.mu.Lock()
	h.released = true
	h.value = nil
	h.mu.Unlock()
}

// load 返回值及句柄是否仍然存活
func (h *Handle) load() (interface{}, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.value, !h.released
}

// NonOwningCache maps keys to handles without owning the values behind
// them. The cache never keeps a value alive: once the owner releases the
// handle, a Get for that key reports not found and removes the dead
// entry, rather than returning a stale or invalid value.
//
// NonOwningCache 将键映射到句柄，但不持有句柄背后的值。
// 缓存绝不延长值的生命周期：持有者释放句柄后，对该键的Get会报告
// 未找到并移除失效条目，而不会返回陈旧或无效的值。
type NonOwningCache struct {
	mu    sync.Mutex
	items map[string]*Handle
	stats Stats
}

// NewNonOwningCache creates an empty NonOwningCache.
//
// NewNonOwningCache 创建一个空的NonOwningCache。
func NewNonOwningCache() *NonOwningCache {
	return &NonOwningCache{items: make(map[string]*Handle)}
}

// Get retrieves the value behind a live handle. A released handle counts
// as a miss and its entry is removed.
//
// Get 检索存活句柄背后的值。已释放的句柄计为未命中，其条目会被移除。
func (c *NonOwningCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	handle, ok := c.items[key]
	if !ok {
		c.stats.miss()
		return nil, false
	}
	value, alive := handle.load()
	if !alive {
		delete(c.items, key)
		c.stats.miss()
		return nil, false
	}

	c.stats.hit()
	return value, true
}

// Put associates a key with a handle. Overwriting replaces the handle.
//
// Put 将键与句柄关联。覆盖写会替换句柄。
func (c *NonOwningCache) Put(key string, handle *Handle) {
	c.mu.Lock()
	c.items[key] = handle
	c.mu.Unlock()
}

// Delete removes a key. Returns true if a live entry was present.
//
// Delete 删除键。如果存在存活条目则返回true。
func (c *NonOwningCache) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	handle, ok := c.items[key]
	if !ok {
		return false
	}
	delete(c.items, key)
	_, alive := handle.load()
	return alive
}

// Len returns the number of live entries. Entries whose handles have been
// released are removed during the count.
//
// Len 返回存活条目的数量。句柄已释放的条目会在计数过程中被移除。
func (c *NonOwningCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, handle := range c.items {
		if _, alive := handle.load(); !alive {
			delete(c.items, key)
		}
	}
	return len(c.items)
}

// Stats returns a point-in-time copy of the cache statistics.
//
// Stats 返回缓存统计信息的即时副本。
func (c *NonOwningCache) Stats() StatsSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats.snapshot()
}
