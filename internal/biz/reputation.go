package biz

import (
	"context"
	"errors"

	"usecase-sync/internal/biz/model"
	"usecase-sync/internal/data"

	"go.uber.org/zap"
)

// FetchReputationUseCase 查询声望。GENERAL_ERROR 与网络错误都返回默认声望值。
type FetchReputationUseCase struct {
	endpoint data.ReputationEndpoint
	logger   *zap.Logger
}

func NewFetchReputationUseCase(endpoint data.ReputationEndpoint, logger *zap.Logger) (model.FetchReputationUseCase, error) {
	if endpoint == nil {
		return nil, errors.New("fetch reputation use case: endpoint is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FetchReputationUseCase{endpoint: endpoint, logger: logger.With(zap.String("usecase", "fetch_reputation"))}, nil
}

func (uc *FetchReputationUseCase) FetchReputationSync(ctx context.Context) model.ReputationResult {
	result, err := uc.endpoint.GetReputationSync(ctx)
	if err != nil {
		uc.logger.Debug("Endpoint call failed", zap.Error(err))
		return model.ReputationResult{Status: model.ReputationNetworkError, Reputation: model.DefaultReputation}
	}

	switch result.Status {
	case model.EndpointSuccess:
		return model.ReputationResult{Status: model.ReputationSuccess, Reputation: result.Payload.Reputation}
	default:
		// 远端在出错时也可能返回声望值，这里统一重置
		return model.ReputationResult{Status: model.ReputationGeneralError, Reputation: model.DefaultReputation}
	}
}
