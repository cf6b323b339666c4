package biz

import (
	"usecase-sync/internal/biz/model"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("biz",
	fx.Provide(
		NewLoginUseCase,
		NewFetchUserUseCase,
		NewFetchUserProfileUseCase,
		NewUpdateUsernameUseCase,
		NewFetchReputationUseCase,
		NewFetchContactsUseCase,
		func(uc *FetchContactsUseCase) model.FetchContactsUseCase { return uc },
		NewCheckUseCase,
	),
	fx.Invoke(func(uc *FetchContactsUseCase, logger *zap.Logger) {
		uc.RegisterListener(NewLoggingContactsListener(logger))
	}),
)
