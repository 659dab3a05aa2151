// Package configs provides configuration structures and utilities for the
// cache library. This file implements Viper-based configuration
// management with hot reloading support.
//
// Package configs 提供缓存库的配置结构和工具。
// 本文件实现基于Viper的配置管理，支持热重载。
package configs

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// ViperConfig wraps a Config with Viper functionality for hot reloading.
// It provides thread-safe access to the configuration and notifies
// subscribers when the underlying file changes.
//
// ViperConfig 使用Viper功能包装Config以支持热重载。
// 它提供对配置的线程安全访问，并在底层文件更改时通知订阅者。
type ViperConfig struct {
	*Config                     // Embedded configuration / 嵌入的配置
	viper       *viper.Viper    // Viper instance / Viper实例
	configFile  string          // Path to the configuration file / 配置文件路径
	mu          sync.RWMutex    // Guards Config and subscribers / 保护Config和订阅者列表
	subscribers []func(*Config) // Notified on config changes / 配置更改时被通知
}

// NewViperConfig loads and validates configuration from the given file.
//
// NewViperConfig 从给定文件加载并验证配置。
func NewViperConfig(configFile string) (*ViperConfig, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType(strings.TrimPrefix(filepath.Ext(configFile), "."))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &ViperConfig{
		Config:     config,
		viper:      v,
		configFile: configFile,
	}, nil
}

// EnableHotReload enables hot reloading of the configuration file.
// When the file changes, the configuration is reloaded, validated and,
// if valid, swapped in; all subscribers are then notified. An invalid
// reload keeps the previous configuration.
//
// EnableHotReload 启用配置文件的热重载。
// 文件更改时会重新加载并验证配置，有效则替换当前配置，
// 然后通知所有订阅者。无效的重载会保留之前的配置。
func (vc *ViperConfig) EnableHotReload() {
	vc.viper.WatchConfig()
	vc.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Printf("Config file changed: %s", e.Name)

		newConfig := DefaultConfig()
		if err := vc.viper.Unmarshal(newConfig); err != nil {
			log.Printf("Failed to unmarshal config: %v", err)
			return
		}
		if err := newConfig.Validate(); err != nil {
			log.Printf("Invalid configuration: %v", err)
			return
		}

		vc.mu.Lock()
		vc.Config = newConfig
		subscribers := make([]func(*Config), len(vc.subscribers))
		copy(subscribers, vc.subscribers)
		vc.mu.Unlock()

		// 在锁外通知订阅者
		for _, subscriber := range subscribers {
			subscriber(newConfig)
		}
	})
}

// Subscribe adds a subscriber notified with the new configuration on
// every successful reload.
//
// Subscribe 添加一个订阅者，在每次成功重载时以新配置通知它。
func (vc *ViperConfig) Subscribe(subscriber func(*Config)) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.subscribers = append(vc.subscribers, subscriber)
}

// Get returns the current configuration. Thread-safe.
//
// Get 返回当前配置。线程安全。
func (vc *ViperConfig) Get() *Config {
	vc.mu.RLock()
	defer vc.mu.RUnlock()
	return vc.Config
}

// LoadViperConfig loads configuration from a file, optionally enabling
// hot reloading.
//
// LoadViperConfig 从文件加载配置，并可选启用热重载。
func LoadViperConfig(configFile string, enableHotReload bool) (*ViperConfig, error) {
	vc, err := NewViperConfig(configFile)
	if err != nil {
		return nil, err
	}
	if enableHotReload {
		vc.EnableHotReload()
	}
	return vc, nil
}
