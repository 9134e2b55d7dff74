package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Palette holds hex colors per cell kind, as loaded from rules.json.
type Palette struct {
	Wall        string `json:"wall"`
	Empty       string `json:"empty"`
	Collectible string `json:"collectible"`
	Player      string `json:"player"`
	Exit        string `json:"exit"`
	Enemy       string `json:"enemy"`
}

// Color returns the tcell color for a palette entry, or fallback if the entry
// is not a valid hex color.
func (p Palette) Color(hex string, fallback tcell.Color) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return color
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	var rgb [3]int32
	for i := range rgb {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid component %d in %s: %w", i, hex, err)
		}
		rgb[i] = int32(v)
	}

	return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2]), nil
}
