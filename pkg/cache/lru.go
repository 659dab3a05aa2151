package cache

import (
	"container/list"
	"sync"

	"github.com/noobtrump/dcache/pkg/errors"
)

// RecencyCache is a bounded cache that evicts the least-recently-used
// entry when full. Get and Put run in O(1) amortized time using a lookup
// map combined with a recency-ordered doubly linked list.
//
// RecencyCache 是一个有界缓存，在已满时淘汰最久未使用的条目。
// 通过查找映射与按最近使用顺序排列的双向链表组合，Get和Put的
// 摊销时间复杂度为O(1)。
type RecencyCache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List // front = most recently used / 头部为最近使用
	stats    Stats
}

// lruEntry 链表中携带的条目
type lruEntry struct {
	key   string
	value interface{}
}

var _ Cache = (*RecencyCache)(nil)

// NewRecencyCache creates a RecencyCache with the given capacity.
// Returns ErrInvalidCapacity if capacity is below 1.
//
// NewRecencyCache 创建指定容量的RecencyCache。
// 如果容量小于1则返回ErrInvalidCapacity。
func NewRecencyCache(capacity int) (*RecencyCache, error) {
	if capacity < 1 {
		return nil, errors.ErrInvalidCapacity
	}
	return &RecencyCache{
		capacity: capacity,
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
	}, nil
}

// Get retrieves a value and marks it as most recently used.
//
// Get 检索值并将其标记为最近使用。
func (c *RecencyCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		c.stats.miss()
		return nil, false
	}

	c.stats.hit()
	c.order.MoveToFront(elem)
	return elem.Value.(*lruEntry).value, true
}

// Put inserts or updates a value. When inserting into a full cache, the
// least-recently-used entry is evicted first.
//
// Put 插入或更新值。向已满的缓存插入时，会先淘汰最久未使用的条目。
func (c *RecencyCache) Put(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		// 覆盖写：更新值并刷新为最近使用
		elem.Value.(*lruEntry).value = value
		c.order.MoveToFront(elem)
		return
	}

	if len(c.items) >= c.capacity {
		c.evictOldest()
	}

	c.items[key] = c.order.PushFront(&lruEntry{key: key, value: value})
}

// Delete removes a key. Returns true if the key was present.
//
// Delete 删除键。如果键存在则返回true。
func (c *RecencyCache) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return false
	}
	c.order.Remove(elem)
	delete(c.items, key)
	return true
}

// Len returns the number of entries currently stored.
//
// Len 返回当前存储的条目数量。
func (c *RecencyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stats returns a point-in-time copy of the cache statistics.
//
// Stats 返回缓存统计信息的即时副本。
func (c *RecencyCache) Stats() StatsSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats.snapshot()
}

// evictOldest 淘汰链表尾部（最久未使用）的条目，调用方需持有锁
func (c *RecencyCache) evictOldest() {
	back := c.order.Back()
	if back == nil {
		return
	}
	c.order.Remove(back)
	delete(c.items, back.Value.(*lruEntry).key)
	c.stats.evict()
}
