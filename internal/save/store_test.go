package save

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "saves", "maze.txt")
	store := NewFileStore(path)

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSave)

	require.NoError(t, store.Save(ctx, []byte("first")))
	require.NoError(t, store.Save(ctx, []byte("second")))

	data, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data), "only one slot exists")
}

func TestFileStoreDefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath, NewFileStore("").Path())
}

func TestRedisStoreRoundTrip(t *testing.T) {
	addr := os.Getenv("MAZE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("MAZE_TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	store := NewRedisStore(client, "mazecrawl:test:"+t.Name())
	defer store.Close()
	defer client.Del(ctx, store.key)

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSave)

	require.NoError(t, store.Save(ctx, []byte("slot")))
	data, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "slot", string(data))
}
