package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtbook/internal/logger"
)

type refItem struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

func newMockCache(t *testing.T) (*Cache, redismock.ClientMock) {
	t.Helper()
	logger.Init()
	client, mock := redismock.NewClientMock()
	c := NewWithClient(client, 30*time.Second)
	t.Cleanup(func() { c.Close() })
	return c, mock
}

func TestFetch_Hit(t *testing.T) {
	c, mock := newMockCache(t)

	cached := []refItem{{Name: "Court 1", Price: 2000}}
	encoded, err := json.Marshal(cached)
	require.NoError(t, err)

	mock.ExpectGet("refdata:courts").SetVal(string(encoded))

	loaderCalled := false
	var dest []refItem
	err = c.Fetch(context.Background(), "refdata:courts", &dest, func(ctx context.Context) (interface{}, error) {
		loaderCalled = true
		return nil, errors.New("loader should not run on a hit")
	})

	assert.NoError(t, err)
	assert.False(t, loaderCalled)
	assert.Equal(t, cached, dest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetch_MissLoadsAndStores(t *testing.T) {
	c, mock := newMockCache(t)

	loaded := []refItem{{Name: "Court 2", Price: 1500}}
	encoded, err := json.Marshal(loaded)
	require.NoError(t, err)

	mock.ExpectGet("refdata:courts").RedisNil()
	mock.ExpectSet("refdata:courts", encoded, 30*time.Second).SetVal("OK")

	var dest []refItem
	err = c.Fetch(context.Background(), "refdata:courts", &dest, func(ctx context.Context) (interface{}, error) {
		return loaded, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, loaded, dest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetch_CorruptEntryTreatedAsMiss(t *testing.T) {
	c, mock := newMockCache(t)

	loaded := []refItem{{Name: "Court 1", Price: 2000}}
	encoded, err := json.Marshal(loaded)
	require.NoError(t, err)

	mock.ExpectGet("refdata:courts").SetVal("not-json")
	mock.ExpectSet("refdata:courts", encoded, 30*time.Second).SetVal("OK")

	var dest []refItem
	err = c.Fetch(context.Background(), "refdata:courts", &dest, func(ctx context.Context) (interface{}, error) {
		return loaded, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, loaded, dest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetch_RedisDownDegradesToLoader(t *testing.T) {
	c, mock := newMockCache(t)

	loaded := []refItem{{Name: "Court 1", Price: 2000}}
	encoded, err := json.Marshal(loaded)
	require.NoError(t, err)

	mock.ExpectGet("refdata:courts").SetErr(errors.New("connection refused"))
	mock.ExpectSet("refdata:courts", encoded, 30*time.Second).SetErr(errors.New("connection refused"))

	var dest []refItem
	err = c.Fetch(context.Background(), "refdata:courts", &dest, func(ctx context.Context) (interface{}, error) {
		return loaded, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, loaded, dest)
}

func TestFetch_LoaderError(t *testing.T) {
	c, mock := newMockCache(t)

	mock.ExpectGet("refdata:courts").RedisNil()

	var dest []refItem
	err := c.Fetch(context.Background(), "refdata:courts", &dest, func(ctx context.Context) (interface{}, error) {
		return nil, errors.New("db down")
	})

	assert.EqualError(t, err, "db down")
}

func TestInvalidate(t *testing.T) {
	c, mock := newMockCache(t)

	mock.ExpectDel("refdata:courts", "refdata:coaches").SetVal(2)

	c.Invalidate(context.Background(), "refdata:courts", "refdata:coaches")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidate_NoKeys(t *testing.T) {
	c, mock := newMockCache(t)

	c.Invalidate(context.Background())

	assert.NoError(t, mock.ExpectationsWereMet())
}
