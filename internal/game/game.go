package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazecrawl/internal/movement"
	"github.com/samdwyer/mazecrawl/internal/save"
	"github.com/samdwyer/mazecrawl/internal/state"
	"github.com/samdwyer/mazecrawl/internal/telemetry"
	"github.com/samdwyer/mazecrawl/internal/world"
)

var (
	// ErrSessionOver is returned by Step once the session is won or lost.
	ErrSessionOver = errors.New("session is over")
	// ErrNotStarted is returned by Step before Start or Resume.
	ErrNotStarted = errors.New("session not started")
)

// Game owns exactly one session and advances it one turn at a time.
type Game struct {
	cfg      Config
	rng      *rand.Rand
	store    save.Store
	resolver *movement.Resolver
	session  *state.Session
}

// New creates a game. rng drives both generation and enemy movement.
func New(cfg Config, rng *rand.Rand, store save.Store) (*Game, error) {
	if err := cfg.Rules.Validate(); err != nil {
		return nil, err
	}
	return &Game{
		cfg:      cfg,
		rng:      rng,
		store:    store,
		resolver: movement.NewResolver(rng, cfg.Rules.Reward),
	}, nil
}

// Start begins a fresh session on level 1.
func (g *Game) Start(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.start")
	defer span.End()

	layout, err := g.generate(ctx, 1)
	if err != nil {
		return fmt.Errorf("generate level 1: %w", err)
	}
	g.session = state.New(layout, 1)

	span.SetAttributes(
		attribute.String("session.id", g.session.ID.String()),
		attribute.Int("maze.size", layout.Grid.Size),
		attribute.Int("maze.enemy_count", len(layout.Enemies)),
	)
	return nil
}

// Resume continues the saved session. A missing, unreadable or finished save
// starts a fresh session instead. It returns true if the save was resumed.
func (g *Game) Resume(ctx context.Context) (bool, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "save.load")
	defer span.End()

	data, err := g.store.Load(ctx)
	switch {
	case errors.Is(err, save.ErrNoSave):
		span.SetAttributes(attribute.String("outcome", "no_save"))
		return false, g.Start(ctx)
	case err != nil:
		log.Printf("Could not read saved game, starting fresh: %v", err)
		span.SetAttributes(attribute.String("outcome", "unreadable"))
		return false, g.Start(ctx)
	}

	session, err := save.Decode(data, g.cfg.Rules.Size)
	if err != nil {
		log.Printf("Saved game is corrupt, starting fresh: %v", err)
		span.SetAttributes(attribute.String("outcome", "corrupt"))
		return false, g.Start(ctx)
	}
	if session.Status.IsTerminal() {
		span.SetAttributes(attribute.String("outcome", "finished"))
		return false, g.Start(ctx)
	}

	g.session = session
	span.SetAttributes(
		attribute.String("outcome", "resumed"),
		attribute.String("session.id", session.ID.String()),
		attribute.Int("score", session.Score),
	)
	return true, nil
}

// Session returns the live session. Callers must treat it as read-only.
func (g *Game) Session() *state.Session {
	return g.session
}

// Snapshot returns a copy of the renderable state.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}
	return newSnapshot(g.session)
}

// generate builds a maze for a level. When enemy placement runs out of
// attempts it retries with half the collectible density.
func (g *Game) generate(ctx context.Context, level int) (*world.Layout, error) {
	params := g.paramsFor(level)

	operation := func() (*world.Layout, error) {
		layout, err := world.Generate(ctx, g.rng, params)
		if errors.Is(err, world.ErrGenerationExhausted) {
			params.CollectibleOdds *= 2
			return nil, err
		}
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		return layout, nil
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(&backoff.ZeroBackOff{}),
		backoff.WithMaxTries(g.cfg.Rules.GenerationRetries),
	)
}

// paramsFor maps the rules onto generator parameters for a level.
func (g *Game) paramsFor(level int) world.GenParams {
	r := g.cfg.Rules
	return world.GenParams{
		Size:                 r.Size,
		Level:                level,
		CollectibleOdds:      r.CollectibleOdds,
		BaseEnemies:          r.BaseEnemies,
		EnemiesPerLevel:      r.EnemiesPerLevel,
		FixedEnemies:         r.FixedEnemies,
		MaxPlacementAttempts: r.MaxPlacementAttempts,
	}
}

// persist writes the session to the save slot.
func (g *Game) persist(ctx context.Context, reason string) error {
	tracer := telemetry.Tracer("save")
	ctx, span := tracer.Start(ctx, "save.write")
	defer span.End()

	data := save.Encode(g.session)
	span.SetAttributes(
		attribute.String("reason", reason),
		attribute.String("status", g.session.Status.String()),
		attribute.Int("bytes", len(data)),
	)

	if err := g.store.Save(ctx, data); err != nil {
		span.SetAttributes(attribute.Bool("failed", true))
		return fmt.Errorf("save on %s: %w", reason, err)
	}
	return nil
}
