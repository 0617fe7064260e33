package config

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an unpremultiplied RGBA color with components in [0, 1]
type Color struct {
	R, G, B, A float64
}

func rgba(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// ParseColor accepts #rgb, #rgba, #rrggbb and #rrggbbaa
func ParseColor(s string) (Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Color{}, fmt.Errorf("invalid color %q, expected a hex color like \"#7fc8ff\"", s)
	}

	switch len(hex) {
	case 3, 4:
		var sb strings.Builder
		for _, c := range hex {
			sb.WriteRune(c)
			sb.WriteRune(c)
		}
		hex = sb.String()
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("invalid color %q", s)
	}

	alpha := 1.0
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q", s)
		}
		alpha = float64(a) / 255
		hex = hex[:6]
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// Hex renders the color as #rrggbb, or #rrggbbaa when not opaque
func (c Color) Hex() string {
	out := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
	if c.A < 1 {
		out += fmt.Sprintf("%02x", uint8(c.A*255+0.5))
	}
	return out
}

func (c Color) String() string { return c.Hex() }

func (c Color) MarshalYAML() (any, error) { return c.Hex(), nil }
