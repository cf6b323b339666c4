// Package checkv1 定义 check.v1.CheckService 的消息结构。
package checkv1

type ReadyCheckReq struct{}

type ReadyCheckReply struct {
	Status  string            `json:"status"`
	Details map[string]string `json:"details,omitempty"`
}
