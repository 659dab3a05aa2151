// Package errors provides standardized error types for the cache.
// It defines the sentinel errors shared by the local policies and the
// remote layer, plus helper functions for error checking.
//
// Package errors 提供缓存的标准化错误类型。
// 它定义了本地策略和远程层共享的哨兵错误，以及用于错误检查的辅助函数。
//
// A key that is simply absent is never an error: every Get reports
// presence through a boolean. The errors below describe real failures.
//
// 键不存在本身不是错误：每个Get都通过布尔值报告是否命中。
// 以下错误描述的是真正的失败。
package errors

import (
	"errors"
	"fmt"
)

// Standard errors that can be returned by the cache.
// 缓存可能返回的标准错误。
var (
	// ErrInvalidCapacity is returned when a cache is constructed with a capacity below 1.
	// 当使用小于1的容量构造缓存时返回ErrInvalidCapacity。
	ErrInvalidCapacity = errors.New("cache: capacity must be at least 1")

	// ErrInvalidTTL is returned when an invalid TTL is provided.
	// 当提供无效的TTL时返回ErrInvalidTTL。
	ErrInvalidTTL = errors.New("cache: invalid TTL")

	// ErrBackendUnavailable is returned when the remote backend cannot be
	// reached or a call against it times out.
	// 当无法连接远程后端或调用超时时返回ErrBackendUnavailable。
	ErrBackendUnavailable = errors.New("cache: backend unavailable")

	// ErrSerializationFailed is returned when a value cannot be encoded.
	// 当值无法编码时返回ErrSerializationFailed。
	ErrSerializationFailed = errors.New("cache: serialization failed")

	// ErrDeserializationFailed is returned when stored bytes cannot be
	// decoded back into a value.
	// 当存储的字节无法解码回值时返回ErrDeserializationFailed。
	ErrDeserializationFailed = errors.New("cache: deserialization failed")

	// ErrClosed is returned when an operation is performed on a closed backend.
	// 当对已关闭的后端执行操作时返回ErrClosed。
	ErrClosed = errors.New("cache: backend is closed")
)

// KeyError represents an error related to a specific key.
// It wraps an underlying error with the key that caused it.
//
// KeyError 表示与特定键相关的错误。
// 它用导致错误的键包装底层错误。
type KeyError struct {
	Key string // The key that caused the error / 导致错误的键
	Err error  // The underlying error / 底层错误
}

// Error returns the error message, including the key.
//
// Error 返回包含键的错误消息。
func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.Key)
}

// Unwrap returns the underlying error so that errors.Is and errors.As
// work through the wrapper.
//
// Unwrap 返回底层错误，使errors.Is和errors.As可以穿透包装。
func (e *KeyError) Unwrap() error {
	return e.Err
}

// NewKeyError associates a key with an error.
//
// NewKeyError 将键与错误关联起来。
func NewKeyError(key string, err error) *KeyError {
	return &KeyError{Key: key, Err: err}
}

// IsBackendUnavailable returns true if the error indicates that the
// remote backend could not be reached or timed out.
//
// IsBackendUnavailable 如果错误表示无法连接远程后端或超时，则返回true。
func IsBackendUnavailable(err error) bool {
	return errors.Is(err, ErrBackendUnavailable)
}

// IsSerializationError returns true if the error is related to encoding
// or decoding a cached value.
//
// IsSerializationError 如果错误与缓存值的编码或解码相关，则返回true。
func IsSerializationError(err error) bool {
	return errors.Is(err, ErrSerializationFailed) || errors.Is(err, ErrDeserializationFailed)
}

// IsInvalidCapacity returns true if the error indicates a capacity below 1.
//
// IsInvalidCapacity 如果错误表示容量小于1，则返回true。
func IsInvalidCapacity(err error) bool {
	return errors.Is(err, ErrInvalidCapacity)
}

// IsClosed returns true if the error indicates that the backend is closed.
//
// IsClosed 如果错误表示后端已关闭，则返回true。
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}
