package biz

import (
	"context"
	"errors"

	"usecase-sync/internal/biz/model"
	"usecase-sync/internal/data"

	"go.uber.org/zap"
)

// CheckUseCase 就绪检查，探测缓存与事件后端是否可用
type CheckUseCase struct {
	repo   data.CheckRepo
	logger *zap.Logger
}

func NewCheckUseCase(repo data.CheckRepo, logger *zap.Logger) (model.CheckUseCase, error) {
	if repo == nil {
		return nil, errors.New("check use case: repo is required")
	}
	return &CheckUseCase{
		repo:   repo,
		logger: logger,
	}, nil
}

func (c *CheckUseCase) Ready(ctx context.Context, req model.HealthCheckReq) (model.HealthCheckReply, error) {
	reply, err := c.repo.Ready(ctx, req)
	if err != nil {
		c.logger.Warn("Readiness check failed", zap.Any("details", reply.Details), zap.Error(err))
		return model.HealthCheckReply{}, err
	}
	return model.HealthCheckReply{
		Status:  reply.Status,
		Details: reply.Details,
	}, nil
}
