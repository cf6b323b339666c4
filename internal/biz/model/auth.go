package model

import "context"

// AuthToken 登录令牌实体，按用户名缓存
type AuthToken struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// LoginPayload 远端登录接口返回的数据
type LoginPayload struct {
	AuthToken string
}

// LoginUseCase 登录用例接口
type LoginUseCase interface {
	LoginSync(ctx context.Context, username, password string) Result[AuthToken]
}
