package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"usecase-sync/internal/biz/model"
	"usecase-sync/internal/data/models"

	"github.com/jackc/pgx/v5"
)

// pgUsersCache 将用户缓存在 postgres 的 cached_users 表中，过期条目视为未命中
type pgUsersCache struct {
	queries *models.Queries
	ttl     time.Duration
}

func newPgUsersCache(db models.DBTX, ttl time.Duration) *pgUsersCache {
	return &pgUsersCache{
		queries: models.New(db),
		ttl:     ttl,
	}
}

func (c *pgUsersCache) GetUser(ctx context.Context, userID string) (*model.User, error) {
	row, err := c.queries.GetCachedUser(ctx, models.GetCachedUserParams{
		UserID:     userID,
		TtlSeconds: int64(c.ttl / time.Second),
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached user %s: %w", userID, err)
	}

	return &model.User{
		UserID:   row.UserID,
		Username: row.Username,
	}, nil
}

func (c *pgUsersCache) CacheUser(ctx context.Context, user model.User) error {
	err := c.queries.UpsertCachedUser(ctx, models.UpsertCachedUserParams{
		UserID:   user.UserID,
		Username: user.Username,
	})
	if err != nil {
		return fmt.Errorf("upsert cached user %s: %w", user.UserID, err)
	}
	return nil
}
