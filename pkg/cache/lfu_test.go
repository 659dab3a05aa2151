package cache

import (
	"fmt"
	"testing"

	"github.com/noobtrump/dcache/pkg/errors"
)

// TestFrequencyCacheInvalidCapacity verifies fail-fast construction.
//
// TestFrequencyCacheInvalidCapacity 验证构造时的快速失败。
func TestFrequencyCacheInvalidCapacity(t *testing.T) {
	if _, err := NewFrequencyCache(0); !errors.IsInvalidCapacity(err) {
		t.Errorf("expected ErrInvalidCapacity, got %v", err)
	}
}

// TestFrequencyCacheEvictsLeastFrequent replays the canonical scenario:
// capacity 2, insert A, insert B, get A twice, insert C -> B is evicted.
//
// TestFrequencyCacheEvictsLeastFrequent 重放典型场景：容量为2，
// 插入A、插入B、访问A两次、插入C后，B被淘汰。
func TestFrequencyCacheEvictsLeastFrequent(t *testing.T) {
	c, err := NewFrequencyCache(2)
	if err != nil {
		t.Fatalf("NewFrequencyCache: %v", err)
	}

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")
	c.Get("a")
	c.Put("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("expected 'b' (lower frequency) to be evicted")
	}
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("expected 'a' == 1, got %v (found=%v)", v, ok)
	}
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Errorf("expected 'c' == 3, got %v (found=%v)", v, ok)
	}
}

// TestFrequencyCacheTieBreak verifies that within the minimum-count
// bucket, the key added to that bucket least recently is evicted.
//
// TestFrequencyCacheTieBreak 验证在最小计数桶内，
// 最早加入该桶的键先被淘汰。
func TestFrequencyCacheTieBreak(t *testing.T) {
	c, err := NewFrequencyCache(3)
	if err != nil {
		t.Fatalf("NewFrequencyCache: %v", err)
	}

	// a、b、c都处于频率1，按加入顺序a最早
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	c.Put("d", 4)

	if _, ok := c.Get("a"); ok {
		t.Error("expected 'a', first into the min bucket, to be evicted")
	}
	for _, key := range []string{"b", "c", "d"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("expected %q to survive", key)
		}
	}
}

// TestFrequencyCacheTieBreakAfterPromotion verifies the tie-break after
// keys have moved between buckets: promotion re-enters the higher bucket
// at the back of its arrival order.
//
// TestFrequencyCacheTieBreakAfterPromotion 验证键在桶间移动后的平局
// 处理：提升后按到达顺序排到更高桶的末尾。
func TestFrequencyCacheTieBreakAfterPromotion(t *testing.T) {
	c, err := NewFrequencyCache(2)
	if err != nil {
		t.Fatalf("NewFrequencyCache: %v", err)
	}

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a") // a -> freq 2 / a升至频率2
	c.Get("b") // b -> freq 2, after a / b升至频率2，排在a之后
	c.Put("c", 3)

	if _, ok := c.Get("a"); ok {
		t.Error("expected 'a', first into the freq-2 bucket, to be evicted")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("expected 'b' to survive")
	}
}

// TestFrequencyCachePutExistingCountsAsAccess verifies that put on an
// existing key updates the value and increments its count.
//
// TestFrequencyCachePutExistingCountsAsAccess 验证对已存在键的put
// 会更新值并递增其计数。
func TestFrequencyCachePutExistingCountsAsAccess(t *testing.T) {
	c, err := NewFrequencyCache(2)
	if err != nil {
		t.Fatalf("NewFrequencyCache: %v", err)
	}

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("a", 10) // a -> freq 2, value refreshed / a升至频率2，值被刷新
	c.Put("c", 3)  // evicts b / 淘汰b

	if _, ok := c.Get("b"); ok {
		t.Error("expected 'b' to be evicted")
	}
	if v, ok := c.Get("a"); !ok || v != 10 {
		t.Errorf("expected 'a' == 10, got %v (found=%v)", v, ok)
	}
}

// TestFrequencyCacheBoundedSize verifies size() <= capacity after every put.
//
// TestFrequencyCacheBoundedSize 验证每次put之后size()都不超过容量。
func TestFrequencyCacheBoundedSize(t *testing.T) {
	const capacity = 8
	c, err := NewFrequencyCache(capacity)
	if err != nil {
		t.Fatalf("NewFrequencyCache: %v", err)
	}

	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("key-%d", i%20)
		c.Put(key, i)
		if i%3 == 0 {
			c.Get(key)
		}
		if got := c.Len(); got > capacity {
			t.Fatalf("size %d exceeds capacity %d after put %d", got, capacity, i)
		}
	}
}

// TestFrequencyCacheDeleteThenEvict verifies eviction still picks the
// right victim after deletes have emptied the tracked minimum bucket.
//
// TestFrequencyCacheDeleteThenEvict 验证删除清空所维护的最小桶之后，
// 淘汰仍能选中正确的键。
func TestFrequencyCacheDeleteThenEvict(t *testing.T) {
	c, err := NewFrequencyCache(2)
	if err != nil {
		t.Fatalf("NewFrequencyCache: %v", err)
	}

	c.Put("a", 1)
	c.Get("a") // a -> freq 2
	c.Put("b", 2)
	if !c.Delete("b") {
		t.Fatal("expected Delete('b') to report presence")
	}

	c.Put("c", 3) // freq 1
	c.Put("d", 4) // full: c (freq 1) is the victim / 已满，c（频率1）被淘汰

	if _, ok := c.Get("c"); ok {
		t.Error("expected 'c' to be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("expected 'a' to survive")
	}
	if _, ok := c.Get("d"); !ok {
		t.Error("expected 'd' to survive")
	}
}

// TestFrequencyCacheStats verifies hit/miss/eviction counting.
//
// TestFrequencyCacheStats 验证命中/未命中/淘汰计数。
func TestFrequencyCacheStats(t *testing.T) {
	c, err := NewFrequencyCache(2)
	if err != nil {
		t.Fatalf("NewFrequencyCache: %v", err)
	}

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")    // hit
	c.Get("x")    // miss
	c.Put("c", 3) // evicts b

	stats := c.Stats()
	if stats.Hits != 1 {
		t.Errorf("expected 1 hit, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("expected 1 miss, got %d", stats.Misses)
	}
	if stats.Evictions != 1 {
		t.Errorf("expected 1 eviction, got %d", stats.Evictions)
	}
}
