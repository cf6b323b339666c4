package data

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"usecase-sync/internal/biz/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultEventStream = "usecase:events"

// EventListener 进程内事件订阅者
type EventListener interface {
	OnEvent(ctx context.Context, event model.Event)
}

// EventBus 进程内同步分发事件
type EventBus struct {
	mu        sync.RWMutex
	listeners []EventListener
	logger    *zap.Logger
}

func NewEventBus(logger *zap.Logger) *EventBus {
	return &EventBus{logger: logger}
}

func (b *EventBus) Register(listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !slices.Contains(b.listeners, listener) {
		b.listeners = append(b.listeners, listener)
	}
}

func (b *EventBus) Unregister(listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = slices.DeleteFunc(b.listeners, func(l EventListener) bool { return l == listener })
}

func (b *EventBus) PostEvent(ctx context.Context, event model.Event) error {
	b.mu.RLock()
	listeners := slices.Clone(b.listeners)
	b.mu.RUnlock()

	b.logger.Debug("Event posted", zap.String("event", event.EventName()), zap.Int("listeners", len(listeners)))
	for _, l := range listeners {
		l.OnEvent(ctx, event)
	}
	return nil
}

// RedisStreamPoster 把事件追加到 redis stream
type RedisStreamPoster struct {
	rdb    *redis.Client
	stream string
	maxLen int64
	now    func() time.Time
}

func NewRedisStreamPoster(rdb *redis.Client, stream string, maxLen int64) *RedisStreamPoster {
	if stream == "" {
		stream = defaultEventStream
	}
	return &RedisStreamPoster{rdb: rdb, stream: stream, maxLen: maxLen, now: time.Now}
}

func (p *RedisStreamPoster) PostEvent(ctx context.Context, event model.Event) error {
	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"event_id":    uuid.NewString(),
			"event_name":  event.EventName(),
			"occurred_at": p.now().UTC().Format(time.RFC3339Nano),
		},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	if err := p.rdb.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("xadd %s to %s: %w", event.EventName(), p.stream, err)
	}
	return nil
}
