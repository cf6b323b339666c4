package model

import "context"

const (
	HealthReady     = "Ready"
	HealthUnhealthy = "Unhealthy"
)

type CheckUseCase interface {
	Ready(ctx context.Context, req HealthCheckReq) (HealthCheckReply, error)
}

type (
	HealthCheckReq   struct{}
	HealthCheckReply struct {
		Status  string
		Details map[string]string
	}
)
