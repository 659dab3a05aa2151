package cache

import "time"

// Clock supplies the current time to the TTL-based caches.
// The default implementation reads the wall clock; tests substitute a
// fake clock for deterministic expiry.
//
// Clock 为基于TTL的缓存提供当前时间。
// 默认实现读取系统时钟；测试中可替换为假时钟以获得确定性的过期行为。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
