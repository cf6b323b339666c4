package data

import (
	"context"
	"fmt"
	"time"

	conf "usecase-sync/internal/conf/v1"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module 导出给 FX 的 Provider
var Module = fx.Module("data",
	fx.Provide(
		NewData,
		NewDB,
		NewRedis,
		NewAccountClient,
		NewAccountEndpoints,
		provideEndpoints,
		NewUsersCache,
		NewAuthTokenCache,
		NewProfilesCache,
		NewEventBus,
		NewEventPoster,
		NewCheckRepo,
	),
	fx.Invoke(registerEventLogger),
)

const defaultCacheTTL = 10 * time.Minute

// Data 包含所有数据源的客户端，未配置的数据源为 nil
type Data struct {
	db  *pgxpool.Pool
	rdb *redis.Client
}

// NewData 是 Data 的构造函数
func NewData(db *pgxpool.Pool, rdb *redis.Client) *Data {
	return &Data{
		db:  db,
		rdb: rdb,
	}
}

// NewDB 创建数据库连接池，仅在用户缓存使用 postgres 时连接
func NewDB(lc fx.Lifecycle, cfg *conf.Bootstrap, logger *zap.Logger) (*pgxpool.Pool, error) {
	if cacheDriver(cfg) != conf.DriverPostgres {
		return nil, nil
	}
	dbCfg := cfg.Data.Database
	if dbCfg == nil {
		return nil, fmt.Errorf("database configuration is required for cache driver %q", conf.DriverPostgres)
	}

	connString := fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=%s&timezone=%s",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.DbName,
		dbCfg.SslMode,
		dbCfg.Timezone,
	)

	poolCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse database config failed: %w", err)
	}

	// 链路追踪配置
	poolCfg.ConnConfig.Tracer = otelpgx.NewTracer()

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database failed: %w", err)
	}

	if err := otelpgx.RecordStats(pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to record database stats: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	logger.Info("Database connected", zap.String("host", dbCfg.Host), zap.String("db", dbCfg.DbName))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing database connection...")
			pool.Close()
			return nil
		},
	})

	return pool, nil
}

// NewRedis 创建 Redis 客户端，缓存与事件都不使用 redis 时返回 nil
func NewRedis(lc fx.Lifecycle, cfg *conf.Bootstrap, logger *zap.Logger) (*redis.Client, error) {
	if !needsRedis(cfg) {
		return nil, nil
	}
	redisCfg := cfg.Data.Redis
	if redisCfg == nil {
		return nil, fmt.Errorf("redis configuration is required")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisCfg.Host, redisCfg.Port),
		Username:     redisCfg.Username,
		Password:     redisCfg.Password,
		DB:           int(redisCfg.Db),
		DialTimeout:  time.Duration(redisCfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(redisCfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(redisCfg.WriteTimeout) * time.Second,
		PoolSize:     int(redisCfg.PoolSize),
		MinIdleConns: int(redisCfg.MinIdleConns),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		// 关闭连接以避免资源泄漏
		if closeErr := rdb.Close(); closeErr != nil {
			logger.Warn("Failed to close redis client", zap.Error(closeErr))
		}
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	logger.Info("Redis connected", zap.String("addr", rdb.Options().Addr))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Redis connection...")
			return rdb.Close()
		},
	})

	return rdb, nil
}

func cacheDriver(cfg *conf.Bootstrap) string {
	if cfg == nil || cfg.Data == nil || cfg.Data.Cache == nil || cfg.Data.Cache.Driver == "" {
		return conf.DriverMemory
	}
	return cfg.Data.Cache.Driver
}

func eventsDriver(cfg *conf.Bootstrap) string {
	if cfg == nil || cfg.Data == nil || cfg.Data.Events == nil || cfg.Data.Events.Driver == "" {
		return conf.DriverMemory
	}
	return cfg.Data.Events.Driver
}

// postgres 驱动下令牌与资料缓存也落在 redis，前提是配置了 redis
func needsRedis(cfg *conf.Bootstrap) bool {
	if cacheDriver(cfg) == conf.DriverRedis || eventsDriver(cfg) == conf.DriverRedis {
		return true
	}
	return cacheDriver(cfg) == conf.DriverPostgres && cfg.Data.Redis != nil
}

func cacheTTL(cfg *conf.Bootstrap) time.Duration {
	if cfg == nil || cfg.Data == nil || cfg.Data.Cache == nil || cfg.Data.Cache.TtlSeconds <= 0 {
		return defaultCacheTTL
	}
	return time.Duration(cfg.Data.Cache.TtlSeconds) * time.Second
}

func cacheKeyPrefix(cfg *conf.Bootstrap) string {
	if cfg == nil || cfg.Data == nil || cfg.Data.Cache == nil || cfg.Data.Cache.KeyPrefix == "" {
		return "usecase"
	}
	return cfg.Data.Cache.KeyPrefix
}
