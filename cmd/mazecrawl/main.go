// Package main is the entry point for mazecrawl.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
	"golang.org/x/term"

	"github.com/samdwyer/mazecrawl/internal/config"
	"github.com/samdwyer/mazecrawl/internal/game"
	"github.com/samdwyer/mazecrawl/internal/gamedata"
	"github.com/samdwyer/mazecrawl/internal/save"
	"github.com/samdwyer/mazecrawl/internal/telemetry"
	"github.com/samdwyer/mazecrawl/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setupOTelEnv(cfg)
	ui.ConfigureLocale(cfg.LocaleDir, cfg.Lang)

	ctx := context.Background()

	if cfg.HoneycombAPIKey == "" {
		telemetry.Disable()
	} else {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	store, closeStore := openStore(cfg)
	defer closeStore()

	gameCfg := cfg.Game(gamedata.MustLoadRules())
	g, err := game.New(gameCfg, gameCfg.NewRand(), store)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	resumed, err := g.Resume(ctx)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	if resumed {
		log.Printf("Resumed saved game")
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		if err := ui.RunText(ctx, g, os.Stdin, os.Stdout); err != nil {
			log.Fatalf("Game error: %v", err)
		}
		return
	}

	if err := runScreen(ctx, cfg, g, gameCfg.Rules.Palette); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// runScreen plays on the full-screen terminal UI. Log output would corrupt
// the screen, so it goes to the configured log file or nowhere.
func runScreen(ctx context.Context, cfg config.Config, g *game.Game, palette gamedata.Palette) error {
	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	log.SetOutput(logOut)
	defer log.SetOutput(os.Stderr)

	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	app := ui.NewApp(screen, ui.NewRenderer(screen, palette), g)
	return app.Run(ctx)
}

// openStore picks the save slot: Redis when an address is configured,
// otherwise the save file.
func openStore(cfg config.Config) (save.Store, func()) {
	if !cfg.UsesRedis() {
		return save.NewFileStore(cfg.SavePath), func() {}
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	store := save.NewRedisStore(client, cfg.RedisKey)
	return store, func() {
		if err := store.Close(); err != nil {
			log.Printf("Error closing redis client: %v", err)
		}
	}
}

// setupOTelEnv points the OTLP exporter at Honeycomb using our API key.
func setupOTelEnv(cfg config.Config) {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// The .env file may hold an unexpanded reference, so build the header here
	if cfg.HoneycombAPIKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", cfg.HoneycombAPIKey, cfg.HoneycombDataset))
	}
}
