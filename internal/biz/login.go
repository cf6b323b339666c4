package biz

import (
	"context"
	"errors"

	"usecase-sync/internal/biz/model"
	"usecase-sync/internal/data"

	"go.uber.org/zap"
)

type credentials struct {
	username string
	password string
}

// LoginUseCase 登录并缓存令牌，成功后发布 LoggedInEvent
type LoginUseCase struct {
	sync *SyncUseCase[credentials, model.LoginPayload, model.AuthToken]
}

func NewLoginUseCase(endpoint data.LoginEndpoint, cache data.AuthTokenCache, poster data.EventPoster, logger *zap.Logger) (model.LoginUseCase, error) {
	if endpoint == nil || cache == nil {
		return nil, errors.New("login use case: endpoint and auth token cache are required")
	}
	steps := SyncSteps[credentials, model.LoginPayload, model.AuthToken]{
		Call: func(ctx context.Context, c credentials) (model.EndpointResult[model.LoginPayload], error) {
			return endpoint.LoginSync(ctx, c.username, c.password)
		},
		Build: func(c credentials, p model.LoginPayload) model.AuthToken {
			return model.AuthToken{Username: c.username, Token: p.AuthToken}
		},
		Store: cache.CacheAuthToken,
		Event: func(model.AuthToken) model.Event { return model.LoggedInEvent{} },
	}
	return &LoginUseCase{sync: NewSyncUseCase("login", steps, poster, logger)}, nil
}

func (uc *LoginUseCase) LoginSync(ctx context.Context, username, password string) model.Result[model.AuthToken] {
	return uc.sync.Execute(ctx, credentials{username: username, password: password})
}
