package db

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// setupTestDB starts an in-process store and returns a client connected to
// it. The store honors the same atomicity contracts as the real one (LPUSH
// returns the new length, HINCRBYFLOAT is atomic, ZADD replaces scores).
func setupTestDB(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
	})

	return rdb
}

func TestInitDBReusesClient(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("REDIS_ADDR", mr.Addr())

	first, err := InitDB("test")
	require.NoError(t, err)
	require.NotNil(t, first)
	defer CloseDBConnection()

	second, err := InitDB("test")
	require.NoError(t, err)
	require.Same(t, first, second)
	require.Same(t, first, GetDB())
}

func TestResetTestDatabase(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("REDIS_ADDR", mr.Addr())

	client, err := InitDB("test")
	require.NoError(t, err)
	defer CloseDBConnection()

	ctx := context.Background()
	require.NoError(t, client.Set(ctx, "bites:restaurants:some-id", "x", 0).Err())

	err = ResetTestDatabase(ctx)
	require.NoError(t, err)

	count, err := client.Exists(ctx, "bites:restaurants:some-id").Result()
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestResetTestDatabaseWrongMode(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("REDIS_ADDR", mr.Addr())

	_, err := InitDB("real")
	require.NoError(t, err)
	defer CloseDBConnection()

	err = ResetTestDatabase(context.Background())
	require.Error(t, err)
}
