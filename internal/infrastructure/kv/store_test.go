package kv

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStore(client), mr
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestStore_SetAndGetJSON(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	in := payload{Name: "denim jacket", Count: 3}
	require.NoError(t, store.Set(ctx, "thing:1", in))

	var out payload
	found, err := GetJSON(ctx, store, "thing:1", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestStore_GetJSON_Missing(t *testing.T) {
	store, _ := setupTestStore(t)

	var out payload
	found, err := GetJSON(context.Background(), store, "thing:nope", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_GetByPrefix(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "thing:1", payload{Name: "a"}))
	require.NoError(t, store.Set(ctx, "thing:2", payload{Name: "b"}))
	require.NoError(t, store.Set(ctx, "other:1", payload{Name: "c"}))

	raws, err := store.GetByPrefix(ctx, "thing:")
	require.NoError(t, err)
	require.Len(t, raws, 2)

	names := map[string]bool{}
	for _, raw := range raws {
		var p payload
		require.NoError(t, json.Unmarshal(raw, &p))
		names[p.Name] = true
	}
	assert.True(t, names["a"])
	assert.True(t, names["b"])
}

func TestStore_GetByPrefix_Empty(t *testing.T) {
	store, _ := setupTestStore(t)

	raws, err := store.GetByPrefix(context.Background(), "thing:")
	require.NoError(t, err)
	assert.Empty(t, raws)
}

func TestStore_GetMany_SkipsMissing(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "thing:1", payload{Name: "a"}))

	raws, err := store.GetMany(ctx, []string{"thing:1", "thing:gone"})
	require.NoError(t, err)
	assert.Len(t, raws, 1)
}

func TestStore_Del(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "thing:1", payload{Name: "a"}))
	require.NoError(t, store.Del(ctx, "thing:1"))

	var out payload
	found, err := GetJSON(ctx, store, "thing:1", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_WithLock_RunsAndReleases(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	ran := false
	err := store.WithLock(ctx, "lock:test", time.Second, func() error {
		ran = true
		assert.True(t, mr.Exists("lock:test"))
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
	assert.False(t, mr.Exists("lock:test"))
}

func TestStore_WithLock_HeldByOther_StillRuns(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	// Someone else holds the lock for longer than the retry budget.
	require.NoError(t, mr.Set("lock:test", "other-token"))

	ran := false
	err := store.WithLock(ctx, "lock:test", time.Second, func() error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
	// Foreign lock must not be released by us.
	got, err := mr.Get("lock:test")
	require.NoError(t, err)
	assert.Equal(t, "other-token", got)
}
