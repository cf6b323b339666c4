package biz

import (
	"context"
	"errors"

	"usecase-sync/internal/biz/model"
	"usecase-sync/internal/data"

	"go.uber.org/zap"
)

// FetchUserUseCase 优先读取本地缓存，未命中时调用远端并写回缓存
type FetchUserUseCase struct {
	sync *SyncUseCase[string, model.UserPayload, model.User]
}

func NewFetchUserUseCase(endpoint data.FetchUserEndpoint, cache data.UsersCache, poster data.EventPoster, logger *zap.Logger) (model.FetchUserUseCase, error) {
	if endpoint == nil || cache == nil {
		return nil, errors.New("fetch user use case: endpoint and users cache are required")
	}
	steps := SyncSteps[string, model.UserPayload, model.User]{
		Lookup: cache.GetUser,
		Call:   endpoint.FetchUserSync,
		Build:  userFromPayload,
		Store:  cache.CacheUser,
		Event:  func(model.User) model.Event { return model.UserFetchedEvent{} },
	}
	return &FetchUserUseCase{sync: NewSyncUseCase("fetch_user", steps, poster, logger)}, nil
}

func (uc *FetchUserUseCase) FetchUserSync(ctx context.Context, userID string) model.Result[model.User] {
	return uc.sync.Execute(ctx, userID)
}

type rename struct {
	userID   string
	username string
}

// UpdateUsernameUseCase 修改用户名，成功后更新缓存并发布 UserDetailsChangedEvent
type UpdateUsernameUseCase struct {
	sync *SyncUseCase[rename, model.UserPayload, model.User]
}

func NewUpdateUsernameUseCase(endpoint data.UpdateUsernameEndpoint, cache data.UsersCache, poster data.EventPoster, logger *zap.Logger) (model.UpdateUsernameUseCase, error) {
	if endpoint == nil || cache == nil {
		return nil, errors.New("update username use case: endpoint and users cache are required")
	}
	steps := SyncSteps[rename, model.UserPayload, model.User]{
		Call: func(ctx context.Context, r rename) (model.EndpointResult[model.UserPayload], error) {
			return endpoint.UpdateUsername(ctx, r.userID, r.username)
		},
		Build: func(_ rename, p model.UserPayload) model.User { return userFromPayload("", p) },
		Store: cache.CacheUser,
		Event: func(model.User) model.Event { return model.UserDetailsChangedEvent{} },
	}
	return &UpdateUsernameUseCase{sync: NewSyncUseCase("update_username", steps, poster, logger)}, nil
}

func (uc *UpdateUsernameUseCase) UpdateUsernameSync(ctx context.Context, userID, username string) model.Result[model.User] {
	return uc.sync.Execute(ctx, rename{userID: userID, username: username})
}

func userFromPayload(_ string, p model.UserPayload) model.User {
	return model.User{UserID: p.UserID, Username: p.Username}
}
