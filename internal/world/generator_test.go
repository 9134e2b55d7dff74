package world

import (
	"context"
	"errors"
	"math/rand"
	"testing"
)

func TestGenerateReproducibility(t *testing.T) {
	// Generate two mazes with the same seed
	seed := int64(12345)

	rng1 := rand.New(rand.NewSource(seed))
	rng2 := rand.New(rand.NewSource(seed))

	ctx := context.Background()
	l1, err := Generate(ctx, rng1, DefaultGenParams(1))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	l2, err := Generate(ctx, rng2, DefaultGenParams(1))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if !l1.Grid.Equal(l2.Grid) {
		t.Errorf("Grids differ for the same seed:\n%v\n%v", l1.Grid.Rows(), l2.Grid.Rows())
	}

	if len(l1.Enemies) != len(l2.Enemies) {
		t.Fatalf("Enemy count mismatch: %d != %d", len(l1.Enemies), len(l2.Enemies))
	}
	for i := range l1.Enemies {
		if l1.Enemies[i] != l2.Enemies[i] {
			t.Errorf("Enemy %d mismatch: %v != %v", i, l1.Enemies[i], l2.Enemies[i])
		}
	}
}

func TestGenerateDifferentSeeds(t *testing.T) {
	ctx := context.Background()
	params := DefaultGenParams(1)
	params.Size = 30

	l1, err := Generate(ctx, rand.New(rand.NewSource(12345)), params)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	l2, err := Generate(ctx, rand.New(rand.NewSource(54321)), params)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if l1.Grid.Equal(l2.Grid) {
		t.Error("Mazes with different seeds should not be identical")
	}
}

func TestGenerateBorderIsWall(t *testing.T) {
	ctx := context.Background()
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		params := DefaultGenParams(1 + int(seed%4))
		params.Size = 8 + int(seed%5)

		layout, err := Generate(ctx, rng, params)
		if err != nil {
			t.Fatalf("seed %d: Generate() error = %v", seed, err)
		}

		size := layout.Grid.Size
		for r := 0; r < size; r++ {
			for c := 0; c < size; c++ {
				pos := Coord{Row: r, Col: c}
				if layout.Grid.IsBorder(pos) && layout.Grid.At(pos) != CellWall {
					t.Errorf("seed %d: border cell %v = %v, want wall", seed, pos, layout.Grid.At(pos))
				}
			}
		}
	}
}

func TestGeneratePlacement(t *testing.T) {
	ctx := context.Background()
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		params := DefaultGenParams(2)

		layout, err := Generate(ctx, rng, params)
		if err != nil {
			t.Fatalf("seed %d: Generate() error = %v", seed, err)
		}

		if layout.Player != (Coord{Row: 1, Col: 1}) {
			t.Errorf("seed %d: player at %v, want 1,1", seed, layout.Player)
		}
		if layout.Exit != (Coord{Row: params.Size - 2, Col: params.Size - 2}) {
			t.Errorf("seed %d: exit at %v", seed, layout.Exit)
		}
		if got := layout.Grid.At(layout.Player); got != CellPlayer {
			t.Errorf("seed %d: player cell = %v", seed, got)
		}
		if got := layout.Grid.At(layout.Exit); got != CellExit {
			t.Errorf("seed %d: exit cell = %v", seed, got)
		}

		// 3 + 2*2 enemies, each on its own marker cell
		if len(layout.Enemies) != 7 {
			t.Errorf("seed %d: %d enemies, want 7", seed, len(layout.Enemies))
		}
		seen := map[Coord]bool{layout.Player: true, layout.Exit: true}
		for _, e := range layout.Enemies {
			if seen[e] {
				t.Errorf("seed %d: enemy at %v overlaps another marker", seed, e)
			}
			seen[e] = true
			if layout.Grid.At(e) != CellEnemy {
				t.Errorf("seed %d: enemy cell %v = %v", seed, e, layout.Grid.At(e))
			}
		}
		if got := len(layout.Grid.Find(CellEnemy)); got != len(layout.Enemies) {
			t.Errorf("seed %d: %d enemy cells, want %d", seed, got, len(layout.Enemies))
		}
	}
}

func TestGenerateFixedEnemyCount(t *testing.T) {
	params := DefaultGenParams(5)
	params.FixedEnemies = 4

	layout, err := Generate(context.Background(), rand.New(rand.NewSource(1)), params)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(layout.Enemies) != 4 {
		t.Errorf("enemies = %d, want 4", len(layout.Enemies))
	}
}

func TestGenerateExhausted(t *testing.T) {
	// Every interior cell is a collectible, so no enemy can be placed
	params := DefaultGenParams(1)
	params.CollectibleOdds = 1
	params.MaxPlacementAttempts = 50

	_, err := Generate(context.Background(), rand.New(rand.NewSource(1)), params)
	if !errors.Is(err, ErrGenerationExhausted) {
		t.Errorf("Generate() error = %v, want ErrGenerationExhausted", err)
	}
}

func TestGenerateInvalidParams(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		level int
	}{
		{"tiny grid", 3, 1},
		{"level zero", 10, 0},
	}

	for _, tt := range tests {
		params := DefaultGenParams(tt.level)
		params.Size = tt.size
		_, err := Generate(context.Background(), rand.New(rand.NewSource(1)), params)
		if !errors.Is(err, ErrInvalidParams) {
			t.Errorf("%s: error = %v, want ErrInvalidParams", tt.name, err)
		}
	}
}

func TestEnemyCount(t *testing.T) {
	tests := []struct {
		level, fixed, expected int
	}{
		{1, 0, 5},
		{2, 0, 7},
		{10, 0, 23},
		{3, 4, 4},
	}

	for _, tt := range tests {
		p := DefaultGenParams(tt.level)
		p.FixedEnemies = tt.fixed
		if got := p.EnemyCount(); got != tt.expected {
			t.Errorf("EnemyCount(level=%d, fixed=%d) = %d, want %d", tt.level, tt.fixed, got, tt.expected)
		}
	}
}
