package remote

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/noobtrump/dcache/internal/hashring"
	"github.com/noobtrump/dcache/internal/utils"
)

// Cluster routes each key deterministically to one of an ordered list of
// backends, giving a single logical cache over several physical nodes.
// The default router is plain modulo hashing: node(key) = fnv1a(key) % N,
// a pure function of the key and the node count, stable across calls and
// across processes.
//
// Modulo routing remaps nearly every key when the node count changes.
// WithRing switches the cluster to a virtual-node consistent hash ring,
// which remaps only about 1/N of the keys instead. Node membership is
// fixed at construction either way; resizing at runtime is out of scope.
//
// Cluster 将每个键确定性地路由到有序后端列表中的一个，使多个物理
// 节点构成单一逻辑缓存。默认路由为简单取模哈希：
// node(key) = fnv1a(key) % N，它是键和节点数量的纯函数，在多次调用
// 和多个进程之间都保持稳定。
//
// 取模路由在节点数量变化时几乎重映射所有键。WithRing将集群切换为
// 带虚拟节点的一致性哈希环，只重映射约1/N的键。两种方式下节点
// 成员都在构造时固定；运行时扩缩容不在范围内。
type Cluster struct {
	backends []Backend
	ring     *hashring.Ring // nil = modulo routing / nil表示取模路由
}

// ClusterOption configures a Cluster.
//
// ClusterOption 配置Cluster。
type ClusterOption func(*Cluster)

// WithRing routes keys over a consistent hash ring with the given number
// of virtual nodes per backend instead of modulo hashing.
//
// WithRing 使用每个后端对应给定数量虚拟节点的一致性哈希环来路由键，
// 代替取模哈希。
func WithRing(replicas int) ClusterOption {
	return func(c *Cluster) {
		ring := hashring.New(replicas, nil)
		for i := range c.backends {
			ring.Add(nodeName(i))
		}
		c.ring = ring
	}
}

// nodeName 环上实体节点的名称，由后端在列表中的序号派生
func nodeName(i int) string {
	return "node-" + strconv.Itoa(i)
}

// NewCluster creates a Cluster over the given backends. At least one
// backend is required.
//
// NewCluster 在给定后端之上创建Cluster。至少需要一个后端。
func NewCluster(backends []Backend, opts ...ClusterOption) (*Cluster, error) {
	if len(backends) == 0 {
		return nil, fmt.Errorf("cluster: at least one backend is required")
	}
	c := &Cluster{backends: backends}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Node returns the index of the backend responsible for key. For a fixed
// backend list the result is stable across calls and processes.
//
// Node 返回负责该键的后端索引。对于固定的后端列表，结果在多次调用
// 和多个进程之间保持稳定。
func (c *Cluster) Node(key string) int {
	if c.ring != nil {
		name := c.ring.Get(key)
		for i := range c.backends {
			if nodeName(i) == name {
				return i
			}
		}
	}
	return int(utils.Hash64(key) % uint64(len(c.backends)))
}

// Get retrieves the raw value for key from its node.
//
// Get 从键所属的节点检索原始值。
func (c *Cluster) Get(ctx context.Context, key string) (string, bool, error) {
	return c.backends[c.Node(key)].Get(ctx, key)
}

// Set stores a raw value on the node responsible for key. A ttl of zero
// means no expiry.
//
// Set 将原始值存储到负责该键的节点上。ttl为零表示不过期。
func (c *Cluster) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return c.backends[c.Node(key)].Set(ctx, key, value, ttl)
}

// Delete removes key from its node.
//
// Delete 从键所属的节点删除该键。
func (c *Cluster) Delete(ctx context.Context, key string) error {
	return c.backends[c.Node(key)].Delete(ctx, key)
}

// Clear clears every node in the cluster, not just one. The first
// failure is returned after the remaining nodes have been attempted.
//
// Clear 清空集群中的每个节点，而不只是一个。所有节点都尝试过后，
// 返回遇到的第一个失败。
func (c *Cluster) Clear(ctx context.Context) error {
	var firstErr error
	for _, backend := range c.backends {
		if err := backend.Clear(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Close closes every backend. The first failure is returned after all
// backends have been closed.
//
// Close 关闭每个后端。所有后端都关闭后，返回遇到的第一个失败。
func (c *Cluster) Close() error {
	var firstErr error
	for _, backend := range c.backends {
		if err := backend.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Size returns the number of backends in the cluster.
//
// Size 返回集群中的后端数量。
func (c *Cluster) Size() int { return len(c.backends) }

var _ Backend = (*Cluster)(nil)
