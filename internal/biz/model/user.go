package model

import "context"

// User 用户缓存实体
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// UserPayload 远端返回的用户数据
type UserPayload struct {
	UserID   string
	Username string
}

// UserProfile 用户资料实体
type UserProfile struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	ImageURL string `json:"image_url"`
}

// ProfilePayload 远端返回的用户资料
type ProfilePayload struct {
	UserID   string
	FullName string
	ImageURL string
}

// FetchUserUseCase 获取用户，优先读取本地缓存
type FetchUserUseCase interface {
	FetchUserSync(ctx context.Context, userID string) Result[User]
}

// FetchUserProfileUseCase 获取用户资料并写入缓存
type FetchUserProfileUseCase interface {
	FetchUserProfileSync(ctx context.Context, userID string) Result[UserProfile]
}

// UpdateUsernameUseCase 修改用户名
type UpdateUsernameUseCase interface {
	UpdateUsernameSync(ctx context.Context, userID, username string) Result[User]
}
