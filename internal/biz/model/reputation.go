package model

import "context"

// DefaultReputation 出错时返回的声望值
const DefaultReputation = 0

// ReputationStatus 声望查询结果状态
type ReputationStatus string

const (
	ReputationSuccess      ReputationStatus = "SUCCESS"
	ReputationGeneralError ReputationStatus = "GENERAL_ERROR"
	ReputationNetworkError ReputationStatus = "NETWORK_ERROR"
)

type ReputationResult struct {
	Status     ReputationStatus
	Reputation int
}

// ReputationPayload 远端返回的声望值，出错时也可能带值
type ReputationPayload struct {
	Reputation int
}

type FetchReputationUseCase interface {
	FetchReputationSync(ctx context.Context) ReputationResult
}
