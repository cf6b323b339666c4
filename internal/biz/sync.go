package biz

import (
	"context"

	"usecase-sync/internal/biz/model"
	"usecase-sync/internal/data"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const instrumentationName = "usecase-sync/internal/biz"

// SyncSteps 描述一个同步用例的各个步骤。
// Call 与 Build 必填；Lookup、Store、Event 可为空，为空时跳过对应步骤。
type SyncSteps[A, P, E any] struct {
	// Lookup 查询本地缓存，未命中返回 nil, nil
	Lookup func(ctx context.Context, args A) (*E, error)
	// Call 同步调用远端接口，error 非空即网络错误
	Call func(ctx context.Context, args A) (model.EndpointResult[P], error)
	// Build 由远端数据构造实体
	Build func(args A, payload P) E
	// Store 写入本地缓存
	Store func(ctx context.Context, entity E) error
	// Event 成功后发布的领域事件
	Event func(entity E) model.Event
}

// SyncUseCase 通用的同步用例编排：查缓存 -> 调远端 -> 映射状态 -> 写缓存 -> 发事件。
// 每次调用相互独立，不产生任何跨调用状态。
type SyncUseCase[A, P, E any] struct {
	name     string
	steps    SyncSteps[A, P, E]
	poster   data.EventPoster
	logger   *zap.Logger
	outcomes metric.Int64Counter
}

// NewSyncUseCase 创建通用同步用例，poster 为空时不发布事件
func NewSyncUseCase[A, P, E any](name string, steps SyncSteps[A, P, E], poster data.EventPoster, logger *zap.Logger) *SyncUseCase[A, P, E] {
	if logger == nil {
		logger = zap.NewNop()
	}
	outcomes, err := otel.Meter(instrumentationName).Int64Counter(
		"usecase.outcome.count",
		metric.WithDescription("用例执行结果计数"),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		logger.Warn("Failed to create outcome counter", zap.String("usecase", name), zap.Error(err))
	}
	return &SyncUseCase[A, P, E]{
		name:     name,
		steps:    steps,
		poster:   poster,
		logger:   logger.With(zap.String("usecase", name)),
		outcomes: outcomes,
	}
}

// Execute 在调用方的 goroutine 上同步执行，所有错误都被转换为 model.Result
func (uc *SyncUseCase[A, P, E]) Execute(ctx context.Context, args A) model.Result[E] {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, uc.name)
	defer span.End()

	result := uc.execute(ctx, args)

	attrs := []attribute.KeyValue{
		attribute.String("usecase.name", uc.name),
		attribute.String("usecase.status", result.Status.String()),
		attribute.String("usecase.endpoint_status", string(result.EndpointStatus)),
	}
	span.SetAttributes(attrs...)
	if uc.outcomes != nil {
		uc.outcomes.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
	return result
}

func (uc *SyncUseCase[A, P, E]) execute(ctx context.Context, args A) model.Result[E] {
	if uc.steps.Lookup != nil {
		cached, err := uc.steps.Lookup(ctx, args)
		switch {
		case err != nil:
			// 缓存读取失败按未命中处理
			uc.logger.Warn("Cache lookup failed", zap.Error(err))
		case cached != nil:
			uc.logger.Debug("Cache hit")
			return model.Result[E]{Status: model.StatusSuccess, Entity: *cached}
		}
	}

	endpointResult, err := uc.steps.Call(ctx, args)
	if err != nil {
		uc.logger.Debug("Endpoint call failed", zap.Error(err))
		return model.Result[E]{Status: model.StatusNetworkError}
	}

	if endpointResult.Status != model.EndpointSuccess {
		uc.logger.Debug("Endpoint reported failure", zap.String("endpoint_status", string(endpointResult.Status)))
		return model.Result[E]{Status: model.StatusFailure, EndpointStatus: endpointResult.Status}
	}

	entity := uc.steps.Build(args, endpointResult.Payload)

	if uc.steps.Store != nil {
		if err := uc.steps.Store(ctx, entity); err != nil {
			uc.logger.Warn("Failed to cache entity", zap.Error(err))
		}
	}

	if uc.steps.Event != nil && uc.poster != nil {
		event := uc.steps.Event(entity)
		if err := uc.poster.PostEvent(ctx, event); err != nil {
			uc.logger.Warn("Failed to post event", zap.String("event", event.EventName()), zap.Error(err))
		}
	}

	return model.Result[E]{Status: model.StatusSuccess, EndpointStatus: model.EndpointSuccess, Entity: entity}
}
