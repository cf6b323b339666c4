// Package jsoncodec 提供 Connect 使用的 JSON 编解码器，消息为普通 Go 结构体而非 Protobuf。
package jsoncodec

import (
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
)

// Name 与 Connect 内置 JSON 编解码器同名，注册后会替换默认的 protojson
const Name = "json"

var _ connect.Codec = Codec{}

// Codec 基于 encoding/json 的 connect.Codec 实现
type Codec struct{}

func (Codec) Name() string { return Name }

func (Codec) Marshal(message any) ([]byte, error) {
	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", message, err)
	}
	return data, nil
}

func (Codec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, message); err != nil {
		return fmt.Errorf("unmarshal %T: %w", message, err)
	}
	return nil
}

// WithCodec 返回同时适用于客户端与处理器的选项
func WithCodec() connect.Option {
	return connect.WithCodec(Codec{})
}
