package cache

import "testing"

// TestNonOwningCacheLiveHandle verifies that a live handle's value is
// served.
//
// TestNonOwningCacheLiveHandle 验证存活句柄的值可以被命中。
func TestNonOwningCacheLiveHandle(t *testing.T) {
	c := NewNonOwningCache()

	handle := NewHandle("payload")
	c.Put("a", handle)

	if v, ok := c.Get("a"); !ok || v != "payload" {
		t.Errorf("expected live handle hit with 'payload', got %v (found=%v)", v, ok)
	}
}

// TestNonOwningCacheReleasedHandle verifies that once the owner releases
// the handle, the entry reports not found and is removed — never a stale
// value.
//
// TestNonOwningCacheReleasedHandle 验证持有者释放句柄后，
// 该条目报告未找到并被移除——绝不返回陈旧值。
func TestNonOwningCacheReleasedHandle(t *testing.T) {
	c := NewNonOwningCache()

	handle := NewHandle("payload")
	c.Put("a", handle)
	handle.Release()

	if v, ok := c.Get("a"); ok {
		t.Errorf("expected released handle to miss, got %v", v)
	}
	if got := c.Len(); got != 0 {
		t.Errorf("expected dead entry to be removed, len = %d", got)
	}

	stats := c.Stats()
	if stats.Misses != 1 {
		t.Errorf("expected the dead read to count as a miss, got %d misses", stats.Misses)
	}
}

// TestNonOwningCacheReleaseIdempotent verifies Release can be called
// more than once.
//
// TestNonOwningCacheReleaseIdempotent 验证Release可以被多次调用。
func TestNonOwningCacheReleaseIdempotent(t *testing.T) {
	handle := NewHandle(42)
	handle.Release()
	handle.Release()

	if _, alive := handle.load(); alive {
		t.Error("expected handle to stay released")
	}
}

// TestNonOwningCacheOverwrite verifies that putting a new handle under
// an existing key replaces the old one.
//
// TestNonOwningCacheOverwrite 验证对已存在的键放入新句柄会替换旧句柄。
func TestNonOwningCacheOverwrite(t *testing.T) {
	c := NewNonOwningCache()

	old := NewHandle("old")
	c.Put("a", old)
	c.Put("a", NewHandle("new"))
	old.Release() // releasing the replaced handle must not affect the entry / 释放被替换的句柄不应影响该条目

	if v, ok := c.Get("a"); !ok || v != "new" {
		t.Errorf("expected 'new', got %v (found=%v)", v, ok)
	}
}

// TestNonOwningCacheDelete verifies delete semantics for live and
// released entries.
//
// TestNonOwningCacheDelete 验证对存活和已释放条目的删除语义。
func TestNonOwningCacheDelete(t *testing.T) {
	c := NewNonOwningCache()

	live := NewHandle(1)
	dead := NewHandle(2)
	c.Put("live", live)
	c.Put("dead", dead)
	dead.Release()

	if !c.Delete("live") {
		t.Error("expected Delete of a live entry to report presence")
	}
	if c.Delete("dead") {
		t.Error("expected Delete of a released entry to report absence")
	}
	if c.Delete("never") {
		t.Error("expected Delete of an unknown key to report absence")
	}
}
