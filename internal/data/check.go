package data

import (
	"context"

	"usecase-sync/internal/biz/model"

	"connectrpc.com/connect"
	"go.uber.org/zap"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type component struct {
	name string
	p    pinger
}

type checkRepo struct {
	components []component
	l          *zap.Logger
}

type CheckRepo interface {
	Ready(context.Context, model.HealthCheckReq) (model.HealthCheckReply, error)
}

// NewCheckRepo 只探测已配置的数据源
func NewCheckRepo(data *Data, l *zap.Logger) CheckRepo {
	var components []component
	if data.db != nil {
		components = append(components, component{name: "Postgres", p: data.db})
	}
	if data.rdb != nil {
		rdb := data.rdb
		components = append(components, component{name: "Redis", p: pingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})})
	}
	return &checkRepo{
		components: components,
		l:          l,
	}
}

func (c checkRepo) Ready(ctx context.Context, _ model.HealthCheckReq) (model.HealthCheckReply, error) {
	for _, comp := range c.components {
		if err := comp.p.Ping(ctx); err != nil {
			c.l.Warn("Component ping failed", zap.String("component", comp.name), zap.Error(err))
			return model.HealthCheckReply{
				Status: model.HealthUnhealthy,
				Details: map[string]string{
					"Components": comp.name,
					"Message":    err.Error(),
				},
			}, connect.NewError(connect.CodeUnavailable, err)
		}
	}
	return model.HealthCheckReply{
		Status:  model.HealthReady,
		Details: nil,
	}, nil
}
