// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/samdwyer/mazecrawl/internal/game"
	"github.com/samdwyer/mazecrawl/internal/gamedata"
	"github.com/samdwyer/mazecrawl/internal/save"
)

// Config holds the values read from MAZE_* and HONEYCOMB_MAZECRAWL_* variables.
type Config struct {
	Seed      int64  // 0 picks a seed from the clock
	SavePath  string // save file used when RedisAddr is empty
	RedisAddr string
	RedisKey  string
	Leveling  bool
	MaxLevel  int    // 0 means no final level
	LogFile   string // log destination while the screen is active; empty discards
	LocaleDir string // gettext catalogs, laid out as <dir>/<lang>/LC_MESSAGES/default.po
	Lang      string

	HoneycombAPIKey  string
	HoneycombDataset string
}

// Load reads .env if present, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv reads the configuration from the current environment only.
func FromEnv() (Config, error) {
	seed, err := getEnvAsInt64("MAZE_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	leveling, err := getEnvAsBool("MAZE_LEVELING", true)
	if err != nil {
		return Config{}, err
	}
	maxLevel, err := getEnvAsInt64("MAZE_MAX_LEVEL", 0)
	if err != nil {
		return Config{}, err
	}
	if maxLevel < 0 {
		return Config{}, fmt.Errorf("MAZE_MAX_LEVEL must not be negative, got %d", maxLevel)
	}

	return Config{
		Seed:             seed,
		SavePath:         getEnvWithDefault("MAZE_SAVE_PATH", save.DefaultPath),
		RedisAddr:        os.Getenv("MAZE_REDIS_ADDR"),
		RedisKey:         getEnvWithDefault("MAZE_REDIS_KEY", save.DefaultRedisKey),
		Leveling:         leveling,
		MaxLevel:         int(maxLevel),
		LogFile:          os.Getenv("MAZE_LOG_FILE"),
		LocaleDir:        getEnvWithDefault("MAZE_LOCALE_DIR", "locales"),
		Lang:             getEnvWithDefault("MAZE_LANG", "en"),
		HoneycombAPIKey:  os.Getenv("HONEYCOMB_MAZECRAWL_API_KEY"),
		HoneycombDataset: getEnvWithDefault("HONEYCOMB_MAZECRAWL_DATASET", "mazecrawl"),
	}, nil
}

// Game builds the game configuration with the given rules.
func (c Config) Game(rules gamedata.Rules) game.Config {
	return game.Config{
		Seed:     c.Seed,
		Leveling: c.Leveling,
		MaxLevel: c.MaxLevel,
		Rules:    rules,
	}
}

// UsesRedis reports whether the save slot lives in Redis.
func (c Config) UsesRedis() bool {
	return c.RedisAddr != ""
}

// getEnvWithDefault returns the variable's value, or defaultValue if unset or empty.
func getEnvWithDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	raw := getEnvWithDefault(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	raw := getEnvWithDefault(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return value, nil
}
