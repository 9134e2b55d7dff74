package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazecrawl/internal/gamedata"
	"github.com/samdwyer/mazecrawl/internal/save"
)

var mazeVars = []string{
	"MAZE_SEED", "MAZE_SAVE_PATH", "MAZE_REDIS_ADDR", "MAZE_REDIS_KEY",
	"MAZE_LEVELING", "MAZE_MAX_LEVEL", "MAZE_LOG_FILE",
	"MAZE_LOCALE_DIR", "MAZE_LANG",
	"HONEYCOMB_MAZECRAWL_API_KEY", "HONEYCOMB_MAZECRAWL_DATASET",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range mazeVars {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, save.DefaultPath, cfg.SavePath)
	assert.Equal(t, save.DefaultRedisKey, cfg.RedisKey)
	assert.True(t, cfg.Leveling)
	assert.Equal(t, 0, cfg.MaxLevel)
	assert.False(t, cfg.UsesRedis())
	assert.Equal(t, "mazecrawl", cfg.HoneycombDataset)
	assert.Equal(t, "locales", cfg.LocaleDir)
	assert.Equal(t, "en", cfg.Lang)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAZE_SEED", "42")
	t.Setenv("MAZE_SAVE_PATH", "/tmp/slot.txt")
	t.Setenv("MAZE_REDIS_ADDR", "localhost:6379")
	t.Setenv("MAZE_REDIS_KEY", "slot")
	t.Setenv("MAZE_LEVELING", "false")
	t.Setenv("MAZE_MAX_LEVEL", "3")
	t.Setenv("MAZE_LOG_FILE", "maze.log")
	t.Setenv("MAZE_LOCALE_DIR", "/usr/share/mazecrawl/locales")
	t.Setenv("MAZE_LANG", "es")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "/tmp/slot.txt", cfg.SavePath)
	assert.True(t, cfg.UsesRedis())
	assert.Equal(t, "slot", cfg.RedisKey)
	assert.False(t, cfg.Leveling)
	assert.Equal(t, 3, cfg.MaxLevel)
	assert.Equal(t, "maze.log", cfg.LogFile)
	assert.Equal(t, "/usr/share/mazecrawl/locales", cfg.LocaleDir)
	assert.Equal(t, "es", cfg.Lang)
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"MAZE_SEED", "abc"},
		{"MAZE_LEVELING", "sometimes"},
		{"MAZE_MAX_LEVEL", "two"},
		{"MAZE_MAX_LEVEL", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			assert.ErrorContains(t, err, tt.key)
		})
	}
}

func TestGameConfig(t *testing.T) {
	rules := gamedata.MustLoadRules()
	cfg := Config{Seed: 7, Leveling: false, MaxLevel: 2}

	gc := cfg.Game(rules)
	assert.Equal(t, int64(7), gc.Seed)
	assert.False(t, gc.Leveling)
	assert.Equal(t, 2, gc.MaxLevel)
	assert.Equal(t, rules, gc.Rules)
}
