package cache

import (
	"container/list"
	"sync"

	"github.com/noobtrump/dcache/pkg/errors"
)

// FrequencyCache is a bounded cache that evicts the least-frequently-used
// entry when full. Each key carries an access count starting at 1 on
// insertion; keys sharing a count live in the same frequency bucket.
// Eviction removes the key added least recently to the minimum-count
// bucket, so ties break in stable FIFO order.
//
// FrequencyCache 是一个有界缓存，在已满时淘汰使用频率最低的条目。
// 每个键携带一个访问计数，插入时从1开始；计数相同的键位于同一个
// 频率桶中。淘汰时移除最小计数桶中最早加入该桶的键，
// 因此相同频率按稳定的先进先出顺序打破平局。
type FrequencyCache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*lfuEntry
	buckets  map[uint64]*list.List // frequency -> keys in arrival order / 频率 -> 按到达顺序排列的键
	minFreq  uint64                // smallest non-empty bucket / 最小的非空桶
	stats    Stats
}

// lfuEntry 缓存条目及其所在频率桶中的位置
type lfuEntry struct {
	key   string
	value interface{}
	freq  uint64
	elem  *list.Element // position inside buckets[freq] / 在buckets[freq]中的位置
}

var _ Cache = (*FrequencyCache)(nil)

// NewFrequencyCache creates a FrequencyCache with the given capacity.
// Returns ErrInvalidCapacity if capacity is below 1.
//
// NewFrequencyCache 创建指定容量的FrequencyCache。
// 如果容量小于1则返回ErrInvalidCapacity。
func NewFrequencyCache(capacity int) (*FrequencyCache, error) {
	if capacity < 1 {
		return nil, errors.ErrInvalidCapacity
	}
	return &FrequencyCache{
		capacity: capacity,
		items:    make(map[string]*lfuEntry, capacity),
		buckets:  make(map[uint64]*list.List),
	}, nil
}

// Get retrieves a value and increments the key's access count, moving it
// into the next frequency bucket.
//
// Get 检索值并递增键的访问计数，将其移入下一个频率桶。
func (c *FrequencyCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		c.stats.miss()
		return nil, false
	}

	c.stats.hit()
	c.promote(entry)
	return entry.value, true
}

// Put inserts or updates a value. Updating an existing key behaves like a
// hit plus value update. Inserting into a full cache evicts from the
// minimum-count bucket first.
//
// Put 插入或更新值。更新已存在的键等同于一次命中加值更新。
// 向已满的缓存插入时，先从最小计数桶中淘汰。
func (c *FrequencyCache) Put(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		c.promote(entry)
		return
	}

	if len(c.items) >= c.capacity {
		c.evictLeastFrequent()
	}

	entry := &lfuEntry{key: key, value: value, freq: 1}
	entry.elem = c.bucket(1).PushBack(entry)
	c.items[key] = entry
	c.minFreq = 1
}

// Delete removes a key. Returns true if the key was present.
//
// Delete 删除键。如果键存在则返回true。
func (c *FrequencyCache) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		return false
	}
	c.removeFromBucket(entry)
	delete(c.items, key)
	return true
}

// Len returns the number of entries currently stored.
//
// Len 返回当前存储的条目数量。
func (c *FrequencyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stats returns a point-in-time copy of the cache statistics.
//
// Stats 返回缓存统计信息的即时副本。
func (c *FrequencyCache) Stats() StatsSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats.snapshot()
}

// promote 将条目从当前频率桶移入下一个频率桶，并维护minFreq
func (c *FrequencyCache) promote(entry *lfuEntry) {
	oldFreq := entry.freq
	c.removeFromBucket(entry)

	// 原桶清空且恰好是最小桶时，最小频率上移
	if _, ok := c.buckets[oldFreq]; !ok && oldFreq == c.minFreq {
		c.minFreq = oldFreq + 1
	}

	entry.freq = oldFreq + 1
	entry.elem = c.bucket(entry.freq).PushBack(entry)
}

// evictLeastFrequent 淘汰最小计数桶中最早加入的键，调用方需持有锁
func (c *FrequencyCache) evictLeastFrequent() {
	bucket, ok := c.buckets[c.minFreq]
	if !ok {
		// Delete可能清空了最小桶而未更新minFreq，重新扫描一次
		for freq := range c.buckets {
			if !ok || freq < c.minFreq {
				c.minFreq = freq
				ok = true
			}
		}
		if !ok {
			return
		}
		bucket = c.buckets[c.minFreq]
	}
	victim := bucket.Front().Value.(*lfuEntry)
	c.removeFromBucket(victim)
	delete(c.items, victim.key)
	c.stats.evict()
}

// removeFromBucket 从所在频率桶中移除条目，桶空则删除桶
func (c *FrequencyCache) removeFromBucket(entry *lfuEntry) {
	bucket := c.buckets[entry.freq]
	if bucket == nil {
		return
	}
	bucket.Remove(entry.elem)
	if bucket.Len() == 0 {
		delete(c.buckets, entry.freq)
	}
}

// bucket 获取或创建指定频率的桶
func (c *FrequencyCache) bucket(freq uint64) *list.List {
	if b, ok := c.buckets[freq]; ok {
		return b
	}
	b := list.New()
	c.buckets[freq] = b
	return b
}
