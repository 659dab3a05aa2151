// Package configs provides configuration structures and utilities for the
// cache library. It offers mechanisms for loading, validating and saving
// configuration from JSON and YAML files, plus Viper-based hot reloading.
//
// Package configs 提供缓存库的配置结构和工具。
// 它提供从JSON和YAML文件加载、验证和保存配置的机制，
// 以及基于Viper的热重载。
package configs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for the cache system,
// organized by component.
//
// Config 表示缓存系统的完整配置，按组件组织。
type Config struct {
	// Local contains settings for the in-process eviction caches.
	// Local 包含进程内淘汰缓存的设置。
	Local LocalConfig `json:"local" yaml:"local" mapstructure:"local"`

	// Redis contains connection settings for the Redis backend.
	// Redis 包含Redis后端的连接设置。
	Redis RedisConfig `json:"redis" yaml:"redis" mapstructure:"redis"`

	// Distributed contains namespace and serialization settings.
	// Distributed 包含命名空间和序列化设置。
	Distributed DistributedConfig `json:"distributed" yaml:"distributed" mapstructure:"distributed"`

	// Cluster contains the backend node list and routing settings.
	// Cluster 包含后端节点列表和路由设置。
	Cluster ClusterConfig `json:"cluster" yaml:"cluster" mapstructure:"cluster"`
}

// LocalConfig contains settings for the in-process caches.
// LocalConfig 包含进程内缓存的设置。
type LocalConfig struct {
	// Policy selects the eviction policy: "lru", "lfu" or "ttl".
	// Policy 选择淘汰策略："lru"、"lfu"或"ttl"。
	Policy string `json:"policy" yaml:"policy" mapstructure:"policy"`

	// Capacity is the maximum number of entries (must be at least 1).
	// Capacity 是最大条目数（必须至少为1）。
	Capacity int `json:"capacity" yaml:"capacity" mapstructure:"capacity"`

	// DefaultTTL is the default time-to-live for TTL-based caches.
	// DefaultTTL 是基于TTL的缓存的默认生存时间。
	DefaultTTL time.Duration `json:"default_ttl" yaml:"default_ttl" mapstructure:"default_ttl"`
}

// RedisConfig contains connection settings for the Redis backend.
// RedisConfig 包含Redis后端的连接设置。
type RedisConfig struct {
	// Addr is the server address as "host:port".
	// Addr 是"host:port"形式的服务器地址。
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// Password is the server password, empty for none.
	// Password 是服务器密码，为空表示无密码。
	Password string `json:"password" yaml:"password" mapstructure:"password"`

	// DB is the database index.
	// DB 是数据库索引。
	DB int `json:"db" yaml:"db" mapstructure:"db"`

	// OpTimeout is the per-call timeout for backend operations.
	// OpTimeout 是后端操作的单次调用超时。
	OpTimeout time.Duration `json:"op_timeout" yaml:"op_timeout" mapstructure:"op_timeout"`
}

// DistributedConfig contains settings for the namespaced cache.
// DistributedConfig 包含带命名空间缓存的设置。
type DistributedConfig struct {
	// Namespace is the key prefix partitioning this cache on a shared backend.
	// Namespace 是在共享后端上划分此缓存的键前缀。
	Namespace string `json:"namespace" yaml:"namespace" mapstructure:"namespace"`

	// Codec selects the value serialization: "json", "gob" or "string".
	// Codec 选择值序列化方式："json"、"gob"或"string"。
	Codec string `json:"codec" yaml:"codec" mapstructure:"codec"`
}

// ClusterConfig contains the node list and routing settings.
// ClusterConfig 包含节点列表和路由设置。
type ClusterConfig struct {
	// Nodes lists the backend addresses in routing order.
	// Nodes 按路由顺序列出后端地址。
	Nodes []string `json:"nodes" yaml:"nodes" mapstructure:"nodes"`

	// UseRing switches routing from modulo hashing to a consistent hash ring.
	// UseRing 将路由从取模哈希切换为一致性哈希环。
	UseRing bool `json:"use_ring" yaml:"use_ring" mapstructure:"use_ring"`

	// RingReplicas is the number of virtual nodes per backend on the ring.
	// RingReplicas 是环上每个后端对应的虚拟节点数。
	RingReplicas int `json:"ring_replicas" yaml:"ring_replicas" mapstructure:"ring_replicas"`
}

// DefaultConfig returns a configuration with sensible defaults.
//
// DefaultConfig 返回带有合理默认值的配置。
func DefaultConfig() *Config {
	return &Config{
		Local: LocalConfig{
			Policy:     "lru",
			Capacity:   1024,
			DefaultTTL: 5 * time.Minute,
		},
		Redis: RedisConfig{
			Addr:      "localhost:6379",
			DB:        0,
			OpTimeout: 3 * time.Second,
		},
		Distributed: DistributedConfig{
			Namespace: "cache",
			Codec:     "json",
		},
		Cluster: ClusterConfig{
			UseRing:      false,
			RingReplicas: 150,
		},
	}
}

// Validate checks the configuration for invalid values. Programmer
// errors like a capacity below 1 fail fast here rather than at first use.
//
// Validate 检查配置中的无效值。容量小于1之类的程序错误在此快速失败，
// 而不是等到首次使用时。
func (c *Config) Validate() error {
	switch c.Local.Policy {
	case "lru", "lfu", "ttl":
	default:
		return fmt.Errorf("invalid eviction policy: %s", c.Local.Policy)
	}
	if c.Local.Capacity < 1 {
		return fmt.Errorf("capacity must be at least 1, got %d", c.Local.Capacity)
	}
	if c.Local.DefaultTTL < 0 {
		return fmt.Errorf("default TTL must not be negative, got %v", c.Local.DefaultTTL)
	}
	switch c.Distributed.Codec {
	case "json", "gob", "string":
	default:
		return fmt.Errorf("invalid codec: %s", c.Distributed.Codec)
	}
	if c.Redis.OpTimeout < 0 {
		return fmt.Errorf("op timeout must not be negative, got %v", c.Redis.OpTimeout)
	}
	if c.Cluster.UseRing && c.Cluster.RingReplicas < 1 {
		return fmt.Errorf("ring replicas must be at least 1, got %d", c.Cluster.RingReplicas)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML or JSON file, determined
// by the file extension.
//
// LoadFromFile 从YAML或JSON文件加载配置，格式由文件扩展名决定。
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(filename))
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// SaveToFile writes the configuration to a YAML or JSON file, determined
// by the file extension.
//
// SaveToFile 将配置写入YAML或JSON文件，格式由文件扩展名决定。
func (c *Config) SaveToFile(filename string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	case ".json":
		data, err = json.MarshalIndent(c, "", "  ")
	default:
		return fmt.Errorf("unsupported config format: %s", filepath.Ext(filename))
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
