package data

import (
	"context"

	"usecase-sync/internal/biz/model"
)

//go:generate mockgen -destination=../mocks/mock_port.go -package=mocks usecase-sync/internal/data LoginEndpoint,FetchUserEndpoint,UpdateUsernameEndpoint,ReputationEndpoint,ContactsEndpoint,UsersCache,EventPoster

// 远端接口。返回的 error 非空即表示网络错误（包装 model.ErrNetwork），
// 业务错误通过 EndpointResult.Status 表达。

type LoginEndpoint interface {
	LoginSync(ctx context.Context, username, password string) (model.EndpointResult[model.LoginPayload], error)
}

type FetchUserEndpoint interface {
	FetchUserSync(ctx context.Context, userID string) (model.EndpointResult[model.UserPayload], error)
}

type UserProfileEndpoint interface {
	GetUserProfile(ctx context.Context, userID string) (model.EndpointResult[model.ProfilePayload], error)
}

type UpdateUsernameEndpoint interface {
	UpdateUsername(ctx context.Context, userID, username string) (model.EndpointResult[model.UserPayload], error)
}

type ReputationEndpoint interface {
	GetReputationSync(ctx context.Context) (model.EndpointResult[model.ReputationPayload], error)
}

type ContactsEndpoint interface {
	GetContacts(ctx context.Context, filter string) (model.EndpointResult[[]model.ContactSchema], error)
}

// 本地缓存。未命中时返回 nil, nil。

type UsersCache interface {
	GetUser(ctx context.Context, userID string) (*model.User, error)
	CacheUser(ctx context.Context, user model.User) error
}

type AuthTokenCache interface {
	GetAuthToken(ctx context.Context, username string) (*model.AuthToken, error)
	CacheAuthToken(ctx context.Context, token model.AuthToken) error
}

type ProfilesCache interface {
	GetProfile(ctx context.Context, userID string) (*model.UserProfile, error)
	CacheProfile(ctx context.Context, profile model.UserProfile) error
}

// EventPoster 发布领域事件，不保证送达
type EventPoster interface {
	PostEvent(ctx context.Context, event model.Event) error
}
