// Package utils 提供dcache内部使用的通用工具函数
// 这些函数无业务含义，可被任何内部模块安全使用
package utils

import "hash/fnv"

// Hash64 使用FNV-1a算法计算字符串的64位哈希值
// 纯函数：相同输入在任何进程中都产生相同结果
func Hash64(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// Hash64Bytes 使用FNV-1a算法计算字节切片的64位哈希值
func Hash64Bytes(b []byte) uint64 {
	h := fnv.New64a()
	h.Write(b)
	return h.Sum64()
}
