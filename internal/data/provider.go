package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"usecase-sync/internal/biz/model"
	conf "usecase-sync/internal/conf/v1"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const cleanupInterval = time.Minute

// EndpointsOut 以接口形式分别导出各个远端接口
type EndpointsOut struct {
	fx.Out

	Login          LoginEndpoint
	FetchUser      FetchUserEndpoint
	UserProfile    UserProfileEndpoint
	UpdateUsername UpdateUsernameEndpoint
	Reputation     ReputationEndpoint
	Contacts       ContactsEndpoint
}

func provideEndpoints(e *AccountEndpoints) EndpointsOut {
	return EndpointsOut{
		Login:          e,
		FetchUser:      e,
		UserProfile:    e,
		UpdateUsername: e,
		Reputation:     e,
		Contacts:       e,
	}
}

// startCleanup 在应用生命周期内周期清理内存缓存
func startCleanup[V any](lc fx.Lifecycle, store *memoryStore[V]) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go store.run(ctx, cleanupInterval)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

// newStore 依据配置选择 redis 或内存存储，rdb 为空时回落到内存
func newStore[V any](lc fx.Lifecycle, cfg *conf.Bootstrap, rdb *redis.Client, name string) kvStore[V] {
	if rdb != nil && cacheDriver(cfg) != conf.DriverMemory {
		return newRedisStore[V](rdb, fmt.Sprintf("%s:%s", cacheKeyPrefix(cfg), name), cacheTTL(cfg))
	}
	store := newMemoryStore[V](cacheTTL(cfg))
	startCleanup(lc, store)
	return store
}

func NewUsersCache(lc fx.Lifecycle, cfg *conf.Bootstrap, db *pgxpool.Pool, rdb *redis.Client, logger *zap.Logger) (UsersCache, error) {
	driver := cacheDriver(cfg)
	logger.Info("Users cache configured", zap.String("driver", driver))
	switch driver {
	case conf.DriverPostgres:
		if db == nil {
			return nil, errors.New("users cache: database is not configured")
		}
		return newPgUsersCache(db, cacheTTL(cfg)), nil
	case conf.DriverRedis, conf.DriverMemory:
		return &usersCache{store: newStore[model.User](lc, cfg, rdb, "users")}, nil
	default:
		return nil, fmt.Errorf("users cache: unknown driver %q", driver)
	}
}

func NewAuthTokenCache(lc fx.Lifecycle, cfg *conf.Bootstrap, rdb *redis.Client) AuthTokenCache {
	return &authTokenCache{store: newStore[model.AuthToken](lc, cfg, rdb, "auth_tokens")}
}

func NewProfilesCache(lc fx.Lifecycle, cfg *conf.Bootstrap, rdb *redis.Client) ProfilesCache {
	return &profilesCache{store: newStore[model.UserProfile](lc, cfg, rdb, "profiles")}
}

// NewEventPoster redis 驱动写入 stream，否则在进程内分发
func NewEventPoster(cfg *conf.Bootstrap, rdb *redis.Client, bus *EventBus, logger *zap.Logger) (EventPoster, error) {
	driver := eventsDriver(cfg)
	logger.Info("Event poster configured", zap.String("driver", driver))
	switch driver {
	case conf.DriverRedis:
		if rdb == nil {
			return nil, errors.New("event poster: redis is not configured")
		}
		events := cfg.Data.Events
		return NewRedisStreamPoster(rdb, events.Stream, events.MaxLen), nil
	case conf.DriverMemory:
		return bus, nil
	default:
		return nil, fmt.Errorf("event poster: unknown driver %q", driver)
	}
}

// eventLogger 把进程内事件写入日志
type eventLogger struct {
	logger *zap.Logger
}

func (l *eventLogger) OnEvent(_ context.Context, event model.Event) {
	l.logger.Info("Domain event", zap.String("event", event.EventName()))
}

func registerEventLogger(bus *EventBus, logger *zap.Logger) {
	bus.Register(&eventLogger{logger: logger})
}
