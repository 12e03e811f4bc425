package display

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var (
	// ErrBadColor is returned by ParseColor for input it cannot read.
	ErrBadColor = errors.New("bad color")
	// ErrBadBrightness is returned by ParseBrightness for unknown presets
	// and levels outside 0..100.
	ErrBadBrightness = errors.New("bad brightness")
)

// DefaultColor is the lit-letter colour before any is configured.
const DefaultColor = "#ffffff"

// ParseColor accepts "#rrggbb", CSS "rgb(r, g, b)" as posted by the web
// UI, and the colour names tcell knows.
func ParseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		parts := strings.Split(s[len("rgb("):len(s)-1], ",")
		if len(parts) != 3 {
			return tcell.ColorDefault, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		var rgb [3]int32
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || v < 0 || v > 255 {
				return tcell.ColorDefault, fmt.Errorf("%w: %q", ErrBadColor, s)
			}
			rgb[i] = int32(v)
		}
		return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2]), nil
	}

	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return c, nil
}

// ---- Brightness

// Brightness is the lit-cell intensity in percent, 0 to 100.
type Brightness int

const (
	MinBrightness     Brightness = 0
	MaxBrightness     Brightness = 100
	DefaultBrightness Brightness = 60

	// BrightnessStep is the change per Up/Down key press.
	BrightnessStep Brightness = 10
)

// BrightnessPresets maps the web UI's preset names to their level.
var BrightnessPresets = map[string]Brightness{
	"low":    25,
	"medium": DefaultBrightness,
	"high":   MaxBrightness,
}

// ParseBrightness accepts a preset name or a percentage.
func ParseBrightness(s string) (Brightness, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if b, ok := BrightnessPresets[s]; ok {
		return b, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || Brightness(v) < MinBrightness || Brightness(v) > MaxBrightness {
		return 0, fmt.Errorf("%w: %q", ErrBadBrightness, s)
	}
	return Brightness(v), nil
}

// Clamp limits b to the valid range.
func (b Brightness) Clamp() Brightness {
	return min(max(b, MinBrightness), MaxBrightness)
}

// Scale dims c to brightness b.
func Scale(c tcell.Color, b Brightness) tcell.Color {
	r, g, bl := c.RGB()
	if r < 0 {
		return c
	}
	p := int32(b.Clamp())
	return tcell.NewRGBColor(r*p/100, g*p/100, bl*p/100)
}
