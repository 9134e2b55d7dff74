package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazecrawl/internal/movement"
	"github.com/samdwyer/mazecrawl/internal/state"
	"github.com/samdwyer/mazecrawl/internal/telemetry"
)

// StepResult describes what a single turn did.
type StepResult struct {
	Command      Command
	Player       movement.Result // Blocked when the command was not a move
	EnemiesMoved int
	LevelUp      bool
	Quit         bool // the caller should end the session
	Saved        bool
	Snapshot     Snapshot
}

// Step plays one turn: the player's move, then every enemy in registry order.
func (g *Game) Step(ctx context.Context, cmd Command) (StepResult, error) {
	if g.session == nil {
		return StepResult{}, ErrNotStarted
	}
	if g.session.Status.IsTerminal() {
		return StepResult{}, ErrSessionOver
	}

	result := StepResult{Command: cmd, Player: movement.Blocked}

	// CmdNone and unknown values do not consume a turn
	dir, isMove := cmd.Direction()
	if !isMove && cmd != CmdSaveQuit {
		result.Snapshot = g.Snapshot()
		return result, nil
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.step")
	span.SetAttributes(
		attribute.String("session.id", g.session.ID.String()),
		attribute.String("command", cmd.String()),
		attribute.Int("level", g.session.Level),
	)
	defer span.End()

	if cmd == CmdSaveQuit {
		if err := g.persist(ctx, "quit"); err != nil {
			return result, err
		}
		result.Quit = true
		result.Saved = true
		result.Snapshot = g.Snapshot()
		return result, nil
	}

	outcome := g.resolver.Resolve(g.session, movement.Move{Kind: movement.KindPlayer, Dir: dir})
	result.Player = outcome.Result
	span.SetAttributes(attribute.String("player.result", outcome.Result.String()))

	switch outcome.Result {
	case movement.MovedAndCollided:
		// The player does not move; the saved grid is the pre-move grid
		g.session.Status = state.StatusLost
		result.Snapshot = g.Snapshot()
		if err := g.persist(ctx, "lost"); err != nil {
			return result, err
		}
		result.Saved = true
		result.Quit = true
		return result, nil

	case movement.MovedAndWon:
		return g.finishLevel(ctx, outcome, result)

	default:
		g.resolver.Apply(g.session, outcome)
	}

	result.EnemiesMoved = g.moveEnemies()
	span.SetAttributes(
		attribute.Int("enemies_moved", result.EnemiesMoved),
		attribute.Int("score", g.session.Score),
	)

	result.Snapshot = g.Snapshot()
	return result, nil
}

// moveEnemies gives every enemy one random step, in registry order.
// Enemy moves never end the game.
func (g *Game) moveEnemies() int {
	moved := 0
	for i := 0; i < g.session.Registry.EnemyCount(); i++ {
		move := movement.Move{
			Kind:  movement.KindEnemy,
			Index: i,
			Dir:   g.resolver.RandomDirection(),
		}
		if g.resolver.Apply(g.session, g.resolver.Resolve(g.session, move)) {
			moved++
		}
	}
	return moved
}

// finishLevel handles the player reaching the exit. In the leveling variant
// the next maze is generated and the turn ends; otherwise the game is won.
func (g *Game) finishLevel(ctx context.Context, outcome movement.Outcome, result StepResult) (StepResult, error) {
	level := g.session.Level
	final := !g.cfg.Leveling || (g.cfg.MaxLevel > 0 && level >= g.cfg.MaxLevel)

	if final {
		g.session.Registry.MovePlayerTo(outcome.To)
		g.session.Status = state.StatusWon
		result.Snapshot = g.Snapshot()
		if err := g.persist(ctx, "won"); err != nil {
			return result, err
		}
		result.Saved = true
		result.Quit = true
		return result, nil
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.level_up")
	span.SetAttributes(
		attribute.Int("level.cleared", level),
		attribute.Int("score", g.session.Score),
	)
	defer span.End()

	layout, err := g.generate(ctx, level+1)
	if err != nil {
		return result, fmt.Errorf("generate level %d: %w", level+1, err)
	}
	g.session.Advance(layout)

	// The level-up ends the turn: the new maze's enemies first move next turn
	result.LevelUp = true
	result.Snapshot = g.Snapshot()
	return result, nil
}
