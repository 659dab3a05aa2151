package cache

// Stats tracks cache statistics. Counters only ever increase; they are
// updated under the owning cache's lock so that an eviction and its
// counter bump are observed as one unit.
//
// Stats 记录缓存统计信息。计数器只会增加；它们在所属缓存的锁内更新，
// 因此一次淘汰和它的计数增加会被作为一个整体观察到。
type Stats struct {
	hits      uint64
	misses    uint64
	evictions uint64
}

func (s *Stats) hit()   { s.hits++ }
func (s *Stats) miss()  { s.misses++ }
func (s *Stats) evict() { s.evictions++ }

// snapshot copies the counters. Callers must hold the cache lock.
// snapshot 复制计数器。调用方必须持有缓存锁。
func (s *Stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Hits:      s.hits,
		Misses:    s.misses,
		Evictions: s.evictions,
	}
}

// StatsSnapshot is a point-in-time, read-only copy of cache statistics.
//
// StatsSnapshot 是缓存统计信息的即时只读副本。
type StatsSnapshot struct {
	// Hits is the number of successful retrievals.
	// Hits 是成功检索的次数。
	Hits uint64

	// Misses is the number of retrievals where the key was absent or expired.
	// Misses 是键不存在或已过期的检索次数。
	Misses uint64

	// Evictions is the number of entries removed by the eviction policy.
	// Evictions 是被淘汰策略移除的条目数。
	Evictions uint64
}

// Total returns the total number of accesses.
//
// Total 返回总访问次数。
func (s StatsSnapshot) Total() uint64 {
	return s.Hits + s.Misses
}

// HitRate returns the hit rate between 0 and 1.
// Returns 0 if there have been no accesses.
//
// HitRate 返回0到1之间的命中率。
// 如果没有任何访问则返回0。
func (s StatsSnapshot) HitRate() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
