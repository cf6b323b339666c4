package data

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"usecase-sync/internal/biz/model"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgUsersCache_GetUser_Hit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"user_id", "username", "cached_at"}).
		AddRow("user_id", "username", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, username, cached_at FROM cached_users")).
		WithArgs("user_id", int64(600)).
		WillReturnRows(rows)

	cache := newPgUsersCache(mock, 10*time.Minute)
	user, err := cache.GetUser(context.Background(), "user_id")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, model.User{UserID: "user_id", Username: "username"}, *user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgUsersCache_GetUser_Miss(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM cached_users")).
		WithArgs("missing", int64(60)).
		WillReturnError(pgx.ErrNoRows)

	cache := newPgUsersCache(mock, time.Minute)
	user, err := cache.GetUser(context.Background(), "missing")

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgUsersCache_GetUser_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	dbErr := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta("FROM cached_users")).
		WithArgs("user_id", int64(60)).
		WillReturnError(dbErr)

	cache := newPgUsersCache(mock, time.Minute)
	user, err := cache.GetUser(context.Background(), "user_id")

	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, user)
}

func TestPgUsersCache_CacheUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cached_users (user_id, username, cached_at)")).
		WithArgs("user_id", "username").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	cache := newPgUsersCache(mock, time.Minute)
	err = cache.CacheUser(context.Background(), model.User{UserID: "user_id", Username: "username"})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgUsersCache_CacheUser_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cached_users")).
		WithArgs("user_id", "username").
		WillReturnError(errors.New("disk full"))

	cache := newPgUsersCache(mock, time.Minute)
	err = cache.CacheUser(context.Background(), model.User{UserID: "user_id", Username: "username"})

	assert.Error(t, err)
}
