package data

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offertrack/track-ui-api/internal/testutil"
)

func TestRedisCacheRepo_SetGetDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	defer client.Close()

	repo := NewRedisCacheRepo(client)
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		key := "test:key:1"
		value := []byte("test value")
		ttl := 5 * time.Minute

		require.NoError(t, repo.Set(ctx, key, value, ttl))

		result, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, value, result)

		actualTTL := client.TTL(ctx, key).Val()
		assert.True(t, actualTTL > 0 && actualTTL <= ttl)
	})

	t.Run("get non-existent key", func(t *testing.T) {
		result, err := repo.Get(ctx, "non:existent:key")
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("delete", func(t *testing.T) {
		key := "test:key:2"
		require.NoError(t, repo.Set(ctx, key, []byte("x"), time.Minute))

		deleted, err := repo.Delete(ctx, key)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, key)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		assert.Error(t, repo.Set(ctx, "", []byte("x"), time.Minute))
		_, err := repo.Get(ctx, "")
		assert.Error(t, err)
	})
}

func TestRedisCacheRepo_DeleteByPrefix(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	defer client.Close()

	repo := NewRedisCacheRepo(client)
	ctx := context.Background()

	for i := range 150 {
		key := fmt.Sprintf("user:u1:process:%d", i)
		require.NoError(t, repo.Set(ctx, key, []byte("v"), time.Minute))
	}
	require.NoError(t, repo.Set(ctx, "user:u2:processes", []byte("v"), time.Minute))

	deleted, err := repo.DeleteByPrefix(ctx, "user:u1:")
	require.NoError(t, err)
	assert.Equal(t, 150, deleted)

	exists, err := repo.Exists(ctx, "user:u2:processes")
	require.NoError(t, err)
	assert.True(t, exists, "other users' keys must survive")
}

func TestRedisCacheRepo_SetIfNotExists(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	defer client.Close()

	repo := NewRedisCacheRepo(client)
	ctx := context.Background()

	set, err := repo.SetIfNotExists(ctx, "nx:key", []byte("first"), time.Minute)
	require.NoError(t, err)
	assert.True(t, set)

	set, err = repo.SetIfNotExists(ctx, "nx:key", []byte("second"), time.Minute)
	require.NoError(t, err)
	assert.False(t, set)

	value, err := repo.Get(ctx, "nx:key")
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), value)
}
