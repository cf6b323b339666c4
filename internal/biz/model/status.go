package model

import "errors"

// ErrNetwork 远端调用在传输层失败（连接失败、超时、服务不可达等）
var ErrNetwork = errors.New("network error")

// EndpointStatus 远端接口返回的状态
type EndpointStatus string

const (
	EndpointSuccess      EndpointStatus = "SUCCESS"
	EndpointGeneralError EndpointStatus = "GENERAL_ERROR"
	EndpointAuthError    EndpointStatus = "AUTH_ERROR"
	EndpointServerError  EndpointStatus = "SERVER_ERROR"
)

// ParseEndpointStatus 未知状态按 GENERAL_ERROR 处理
func ParseEndpointStatus(s string) EndpointStatus {
	switch st := EndpointStatus(s); st {
	case EndpointSuccess, EndpointGeneralError, EndpointAuthError, EndpointServerError:
		return st
	default:
		return EndpointGeneralError
	}
}

// EndpointResult 远端接口结果，Payload 仅在 Status 为 SUCCESS 时有效
type EndpointResult[P any] struct {
	Status  EndpointStatus
	Payload P
}

// Status 用例层面的结果分类
type Status int

const (
	StatusSuccess Status = iota + 1
	StatusFailure
	StatusNetworkError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusFailure:
		return "FAILURE"
	case StatusNetworkError:
		return "NETWORK_ERROR"
	default:
		return "UNKNOWN"
	}
}

// Result 用例结果。
// Entity 仅在 StatusSuccess 时有效；EndpointStatus 保留远端的原始状态，
// 命中本地缓存或网络错误时为空。
type Result[E any] struct {
	Status         Status
	EndpointStatus EndpointStatus
	Entity         E
}

func (r Result[E]) IsSuccess() bool { return r.Status == StatusSuccess }
