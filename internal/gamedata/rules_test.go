package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadRules(t *testing.T) {
	rules, err := LoadRules()
	if err != nil {
		t.Fatalf("Failed to load rules: %v", err)
	}

	if rules.Size != 10 {
		t.Errorf("Expected size 10, got %d", rules.Size)
	}
	if rules.Reward != 10 {
		t.Errorf("Expected reward 10, got %d", rules.Reward)
	}
	if rules.CollectibleOdds != 8 {
		t.Errorf("Expected collectible odds 8, got %d", rules.CollectibleOdds)
	}
	if rules.BaseEnemies != 3 || rules.EnemiesPerLevel != 2 {
		t.Errorf("Expected enemies 3 + 2/level, got %d + %d/level", rules.BaseEnemies, rules.EnemiesPerLevel)
	}
	if rules.Palette.Wall == "" {
		t.Error("Palette wall color missing")
	}
}

func TestRulesValidate(t *testing.T) {
	valid := MustLoadRules()

	tests := []struct {
		name   string
		mutate func(r *Rules)
		valid  bool
	}{
		{"embedded", func(r *Rules) {}, true},
		{"tiny grid", func(r *Rules) { r.Size = 3 }, false},
		{"negative reward", func(r *Rules) { r.Reward = -1 }, false},
		{"zero odds", func(r *Rules) { r.CollectibleOdds = 0 }, false},
		{"zero attempts", func(r *Rules) { r.MaxPlacementAttempts = 0 }, false},
		{"zero retries", func(r *Rules) { r.GenerationRetries = 0 }, false},
	}

	for _, tt := range tests {
		r := valid
		tt.mutate(&r)
		err := r.Validate()
		if tt.valid && err != nil {
			t.Errorf("%s: should be valid, got error: %v", tt.name, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("%s: should be invalid, got no error", tt.name)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestPaletteColorFallback(t *testing.T) {
	p := Palette{Wall: "bogus", Enemy: "#FF0000"}

	if got := p.Color(p.Wall, tcell.ColorGray); got != tcell.ColorGray {
		t.Errorf("Color(bogus) = %v, want fallback", got)
	}
	if got := p.Color(p.Enemy, tcell.ColorGray); got != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Color(#FF0000) = %v, want red", got)
	}
}
