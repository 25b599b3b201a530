package sfoglia

import (
	"fmt"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
)

// HexToColor converts a 0xRRGGBB value to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// namedColors maps the color names accepted in theme files.
var namedColors = map[string]sdl.Color{
	"black":   {R: 0, G: 0, B: 0, A: 255},
	"white":   {R: 255, G: 255, B: 255, A: 255},
	"red":     {R: 255, G: 0, B: 0, A: 255},
	"green":   {R: 0, G: 255, B: 0, A: 255},
	"blue":    {R: 0, G: 0, B: 255, A: 255},
	"yellow":  {R: 255, G: 255, B: 0, A: 255},
	"cyan":    {R: 0, G: 255, B: 255, A: 255},
	"magenta": {R: 255, G: 0, B: 255, A: 255},
	"gray":    {R: 128, G: 128, B: 128, A: 255},
	"grey":    {R: 128, G: 128, B: 128, A: 255},
	"orange":  {R: 255, G: 165, B: 0, A: 255},
	"purple":  {R: 128, G: 0, B: 128, A: 255},
	"brown":   {R: 165, G: 42, B: 42, A: 255},
	"pink":    {R: 255, G: 192, B: 203, A: 255},
	"teal":    {R: 0, G: 128, B: 128, A: 255},
	"navy":    {R: 0, G: 0, B: 128, A: 255},
	"silver":  {R: 192, G: 192, B: 192, A: 255},
}

// ParseColor parses a color from a "#RRGGBB" or "#RRGGBBAA" hex string or a
// known color name.
func ParseColor(value string) (sdl.Color, error) {
	value = strings.TrimSpace(value)

	if strings.HasPrefix(value, "#") {
		hex := strings.TrimPrefix(value, "#")
		switch len(hex) {
		case 6, 8:
			var parts [4]uint8
			parts[3] = 255
			for i := 0; i < len(hex)/2; i++ {
				var b uint8
				if _, err := fmt.Sscanf(hex[i*2:i*2+2], "%02x", &b); err != nil {
					return sdl.Color{}, fmt.Errorf("invalid hex color %q", value)
				}
				parts[i] = b
			}
			return sdl.Color{R: parts[0], G: parts[1], B: parts[2], A: parts[3]}, nil
		default:
			return sdl.Color{}, fmt.Errorf("invalid hex color %q", value)
		}
	}

	if c, ok := namedColors[strings.ToLower(value)]; ok {
		return c, nil
	}

	return sdl.Color{}, fmt.Errorf("unknown color name %q", value)
}
