package save

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultPath is the save file name used when none is configured.
	DefaultPath = "maze.txt"
	// DefaultRedisKey is the key used by RedisStore when none is configured.
	DefaultRedisKey = "mazecrawl:save"
)

// ErrNoSave is returned by Load when the slot is empty.
var ErrNoSave = errors.New("no saved game")

// Store holds the single save slot.
type Store interface {
	Save(ctx context.Context, data []byte) error
	Load(ctx context.Context) ([]byte, error)
}

// FileStore keeps the save slot in a file on disk.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to path.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{path: path}
}

// Path returns the save file path.
func (f *FileStore) Path() string {
	return f.path
}

// Save writes the slot, replacing any previous save.
func (f *FileStore) Save(_ context.Context, data []byte) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create save dir: %w", err)
		}
	}
	return os.WriteFile(f.path, data, 0644)
}

// Load reads the slot.
func (f *FileStore) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("read save %s: %w", f.path, err)
	}
	return data, nil
}

// RedisStore keeps the save slot under a single Redis key.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a store on an existing client.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

// Save writes the slot without expiry.
func (r *RedisStore) Save(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis save %s: %w", r.key, err)
	}
	return nil
}

// Load reads the slot.
func (r *RedisStore) Load(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("redis load %s: %w", r.key, err)
	}
	return data, nil
}

// Close releases the client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
