// Package hashring 实作带虚拟节点的一致性哈希环
//
// 相比取模路由 hash(key) % N，节点增减时平均只有约 1/N 的键需要
// 重新映射。每个实体节点对应 replicas 个虚拟节点，虚拟节点越多
// 分布越均匀，内存开销也越大。
package hashring

import (
	"hash/crc32"
	"sort"
	"strconv"
	"sync"
)

// Hash 是哈希函数类型，默认使用CRC32
type Hash func(data []byte) uint32

// Ring 是一致性哈希环
// 环空间为 0 到 2^32-1，已排序的虚拟节点哈希值用于二分查找
type Ring struct {
	mu       sync.RWMutex
	hash     Hash
	replicas int            // 每个节点的虚拟节点数
	keys     []int          // 已排序的虚拟节点哈希值
	hashMap  map[int]string // 虚拟节点哈希值 -> 实体节点名称
}

// New 创建一致性哈希环
// replicas 为每个节点的虚拟节点数，fn 为nil时使用CRC32
func New(replicas int, fn Hash) *Ring {
	if replicas < 1 {
		replicas = 1
	}
	if fn == nil {
		fn = crc32.ChecksumIEEE
	}
	return &Ring{
		hash:     fn,
		replicas: replicas,
		hashMap:  make(map[int]string),
	}
}

// Add 将节点加入哈希环
// 为每个节点生成 replicas 个虚拟节点（命名为 node-i）并重新排序
func (r *Ring) Add(nodes ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, node := range nodes {
		for i := 0; i < r.replicas; i++ {
			h := int(r.hash([]byte(node + "-" + strconv.Itoa(i))))
			r.keys = append(r.keys, h)
			r.hashMap[h] = node
		}
	}
	sort.Ints(r.keys)
}

// Remove 从哈希环中移除节点及其全部虚拟节点
func (r *Ring) Remove(node string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := 0; i < r.replicas; i++ {
		h := int(r.hash([]byte(node + "-" + strconv.Itoa(i))))
		delete(r.hashMap, h)
		for j, key := range r.keys {
			if key == h {
				r.keys = append(r.keys[:j], r.keys[j+1:]...)
				break
			}
		}
	}
}

// Get 返回键顺时针方向命中的第一个实体节点
// 环为空时返回空字符串
func (r *Ring) Get(key string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.keys) == 0 {
		return ""
	}

	h := int(r.hash([]byte(key)))

	// 二分查找第一个 >= h 的虚拟节点，超出末尾则回绕到起点
	idx := sort.Search(len(r.keys), func(i int) bool {
		return r.keys[i] >= h
	})
	if idx == len(r.keys) {
		idx = 0
	}

	return r.hashMap[r.keys[idx]]
}

// Nodes 返回环上去重后的实体节点数量
func (r *Ring) Nodes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, node := range r.hashMap {
		seen[node] = struct{}{}
	}
	return len(seen)
}
