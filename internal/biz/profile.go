package biz

import (
	"context"
	"errors"

	"usecase-sync/internal/biz/model"
	"usecase-sync/internal/data"

	"go.uber.org/zap"
)

// FetchUserProfileUseCase 拉取用户资料并写入缓存
type FetchUserProfileUseCase struct {
	sync *SyncUseCase[string, model.ProfilePayload, model.UserProfile]
}

func NewFetchUserProfileUseCase(endpoint data.UserProfileEndpoint, cache data.ProfilesCache, logger *zap.Logger) (model.FetchUserProfileUseCase, error) {
	if endpoint == nil || cache == nil {
		return nil, errors.New("fetch user profile use case: endpoint and profiles cache are required")
	}
	steps := SyncSteps[string, model.ProfilePayload, model.UserProfile]{
		Call: endpoint.GetUserProfile,
		Build: func(_ string, p model.ProfilePayload) model.UserProfile {
			return model.UserProfile{UserID: p.UserID, FullName: p.FullName, ImageURL: p.ImageURL}
		},
		Store: cache.CacheProfile,
	}
	return &FetchUserProfileUseCase{sync: NewSyncUseCase("fetch_user_profile", steps, nil, logger)}, nil
}

func (uc *FetchUserProfileUseCase) FetchUserProfileSync(ctx context.Context, userID string) model.Result[model.UserProfile] {
	return uc.sync.Execute(ctx, userID)
}
