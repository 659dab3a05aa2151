// Package codec provides the serialization contract used by the
// distributed cache to store values as raw bytes on a backend. It offers
// JSON (the default), Gob and plain string codecs.
//
// Package codec 提供分布式缓存用于将值以原始字节形式存储到后端的
// 序列化契约。它提供JSON（默认）、Gob和纯字符串编解码器。
package codec

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"

	"github.com/noobtrump/dcache/pkg/errors"
)

// Codec encodes and decodes cache values. Failures wrap
// errors.ErrSerializationFailed or errors.ErrDeserializationFailed, so
// callers can classify them without knowing the concrete codec.
//
// Codec 编码和解码缓存值。失败时会包装errors.ErrSerializationFailed
// 或errors.ErrDeserializationFailed，使调用方无需了解具体编解码器
// 即可对错误分类。
type Codec interface {
	// Marshal serializes a value into bytes.
	//
	// Marshal 将值序列化为字节。
	Marshal(value interface{}) ([]byte, error)

	// Unmarshal deserializes bytes into value, which must be a pointer
	// to the target type.
	//
	// Unmarshal 将字节反序列化到value中，value必须是目标类型的指针。
	Unmarshal(data []byte, value interface{}) error

	// Name returns the codec's registered name.
	//
	// Name 返回编解码器的注册名称。
	Name() string
}

// JSONCodec implements Codec using encoding/json. It matches the
// structured-data round trip of the distributed cache's storage format.
//
// JSONCodec 使用encoding/json实现Codec。它对应分布式缓存存储格式的
// 结构化数据往返。
type JSONCodec struct{}

// Marshal serializes a value into JSON bytes.
//
// Marshal 将值序列化为JSON字节。
func (c *JSONCodec) Marshal(value interface{}) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrSerializationFailed, err)
	}
	return data, nil
}

// Unmarshal deserializes JSON bytes into value.
//
// Unmarshal 将JSON字节反序列化到value中。
func (c *JSONCodec) Unmarshal(data []byte, value interface{}) error {
	if err := json.Unmarshal(data, value); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrDeserializationFailed, err)
	}
	return nil
}

// Name returns "json".
//
// Name 返回"json"。
func (c *JSONCodec) Name() string { return "json" }

// NewJSONCodec creates a JSONCodec.
//
// NewJSONCodec 创建JSONCodec。
func NewJSONCodec() *JSONCodec { return &JSONCodec{} }

// GobCodec implements Codec using encoding/gob, a binary format
// optimized for Go types.
//
// GobCodec 使用encoding/gob实现Codec，这是为Go类型优化的二进制格式。
type GobCodec struct{}

// Marshal serializes a value into Gob bytes.
//
// Marshal 将值序列化为Gob字节。
func (c *GobCodec) Marshal(value interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrSerializationFailed, err)
	}
	return buf.Bytes(), nil
}

// Unmarshal deserializes Gob bytes into value.
//
// Unmarshal 将Gob字节反序列化到value中。
func (c *GobCodec) Unmarshal(data []byte, value interface{}) error {
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(value); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrDeserializationFailed, err)
	}
	return nil
}

// Name returns "gob".
//
// Name 返回"gob"。
func (c *GobCodec) Name() string { return "gob" }

// NewGobCodec creates a GobCodec.
//
// NewGobCodec 创建GobCodec。
func NewGobCodec() *GobCodec { return &GobCodec{} }

// StringCodec implements Codec for string and []byte values without any
// transformation.
//
// StringCodec 为字符串和[]byte值实现Codec，不做任何转换。
type StringCodec struct{}

// Marshal converts a string or []byte to bytes.
//
// Marshal 将字符串或[]byte转换为字节。
func (c *StringCodec) Marshal(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: stringcodec cannot marshal %T", errors.ErrSerializationFailed, value)
	}
}

// Unmarshal converts bytes into *string or *[]byte.
//
// Unmarshal 将字节转换为*string或*[]byte。
func (c *StringCodec) Unmarshal(data []byte, value interface{}) error {
	switch v := value.(type) {
	case *string:
		*v = string(data)
		return nil
	case *[]byte:
		*v = data
		return nil
	default:
		return fmt.Errorf("%w: stringcodec cannot unmarshal into %T", errors.ErrDeserializationFailed, value)
	}
}

// Name returns "string".
//
// Name 返回"string"。
func (c *StringCodec) Name() string { return "string" }

// NewStringCodec creates a StringCodec.
//
// NewStringCodec 创建StringCodec。
func NewStringCodec() *StringCodec { return &StringCodec{} }

// Default returns the default codec (JSON).
//
// Default 返回默认编解码器（JSON）。
func Default() Codec { return NewJSONCodec() }

// Get returns a codec by name. Supported names: "json", "gob", "string".
//
// Get 通过名称返回编解码器。支持的名称："json"、"gob"、"string"。
func Get(name string) (Codec, error) {
	switch name {
	case "json":
		return NewJSONCodec(), nil
	case "gob":
		return NewGobCodec(), nil
	case "string":
		return NewStringCodec(), nil
	default:
		return nil, fmt.Errorf("unknown codec: %s", name)
	}
}
