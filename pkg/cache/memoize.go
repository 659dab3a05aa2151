package cache

import (
	"context"
	"time"
)

// Loader retrieves the value for a key from the underlying source.
// It is invoked by a Memoizer on cache misses.
//
// Loader 从底层数据源检索键对应的值。
// Memoizer在缓存未命中时调用它。
type Loader func(ctx context.Context, key string) (interface{}, error)

// Memoizer caches the results of an expensive operation with a
// time-to-live, composing an ExpiringCache with a Loader. It implements
// the same call contract as the wrapped operation: Do(ctx, key) either
// returns a still-fresh cached result or invokes the loader and caches
// what it returns.
//
// Memoizer 以生存时间缓存昂贵操作的结果，由ExpiringCache与Loader组合
// 而成。它实现与被包装操作相同的调用契约：Do(ctx, key)要么返回仍然
// 新鲜的缓存结果，要么调用加载器并缓存其返回值。
type Memoizer struct {
	cache  *ExpiringCache
	loader Loader
	ttl    time.Duration
}

// MemoizerOption configures a Memoizer.
//
// MemoizerOption 配置Memoizer。
type MemoizerOption func(*memoizerConfig)

type memoizerConfig struct {
	capacity int
	clock    Clock
}

// WithMemoizerCapacity bounds the result cache to n entries; the
// oldest-computed result is evicted when the bound is exceeded.
//
// WithMemoizerCapacity 将结果缓存限制为n个条目；超出上限时淘汰最早
// 计算出的结果。
func WithMemoizerCapacity(n int) MemoizerOption {
	return func(c *memoizerConfig) {
		c.capacity = n
	}
}

// WithMemoizerClock replaces the clock used for TTL decisions.
//
// WithMemoizerClock 替换用于TTL判断的时钟。
func WithMemoizerClock(clock Clock) MemoizerOption {
	return func(c *memoizerConfig) {
		c.clock = clock
	}
}

// NewMemoizer creates a Memoizer that keeps loader results for ttl.
// A ttl of zero or less keeps results forever.
//
// NewMemoizer 创建一个将加载结果保留ttl时长的Memoizer。
// ttl小于等于零表示结果永久保留。
func NewMemoizer(loader Loader, ttl time.Duration, opts ...MemoizerOption) (*Memoizer, error) {
	cfg := &memoizerConfig{clock: realClock{}}
	for _, opt := range opts {
		opt(cfg)
	}

	cacheOpts := []ExpiringOption{WithClock(cfg.clock)}
	if cfg.capacity > 0 {
		cacheOpts = append(cacheOpts, WithCapacity(cfg.capacity))
	}
	inner, err := NewExpiringCache(cacheOpts...)
	if err != nil {
		return nil, err
	}

	return &Memoizer{cache: inner, loader: loader, ttl: ttl}, nil
}

// Do returns the cached result for key if it is still inside its TTL,
// otherwise invokes the loader, caches the result and returns it.
// Loader errors are returned as-is and nothing is cached.
//
// Do 在键的缓存结果仍在TTL内时直接返回它，否则调用加载器、
// 缓存结果并返回。加载器的错误原样返回，且不会缓存任何内容。
func (m *Memoizer) Do(ctx context.Context, key string) (interface{}, error) {
	if value, ok := m.cache.Get(key); ok {
		return value, nil
	}

	value, err := m.loader(ctx, key)
	if err != nil {
		return nil, err
	}
	m.cache.Set(key, value, m.ttl)
	return value, nil
}

// Invalidate drops the cached result for key, forcing the next Do to
// reload.
//
// Invalidate 丢弃键的缓存结果，使下一次Do重新加载。
func (m *Memoizer) Invalidate(key string) {
	m.cache.Delete(key)
}

// Stats returns the statistics of the underlying result cache.
//
// Stats 返回底层结果缓存的统计信息。
func (m *Memoizer) Stats() StatsSnapshot {
	return m.cache.Stats()
}
