package sfoglia

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/mvalenti/sfoglia/pkg/sfoglia/internal"
)

// cornerUnset marks a per-corner radius that falls back to BorderRadius.
const cornerUnset int32 = -1

// Style is an immutable bag of visual attributes. Styles are plain values:
// deriving a variant never mutates the original, and two Styles with equal
// attributes are interchangeable.
//
// The secondary attribute set styles sub-regions such as popup caption bars.
type Style struct {
	BackgroundColor          sdl.Color
	BorderColor              sdl.Color
	BorderWidth              int32
	BorderRadius             int32
	BorderTopLeftRadius      int32 // cornerUnset falls back to BorderRadius
	BorderTopRightRadius     int32
	BorderBottomLeftRadius   int32
	BorderBottomRightRadius  int32
	CaptionHeight            int32
	ForegroundColor          sdl.Color
	FontName                 string
	FontSize                 int
	SecondaryBackgroundColor sdl.Color
	SecondaryBorderColor     sdl.Color
	SecondaryBorderWidth     int32
	SecondaryFontName        string
	SecondaryFontSize        int
	SecondaryForegroundColor sdl.Color
	ShadowColor              sdl.Color
	ShadowOffset             sdl.Point
}

// DefaultStyle returns the engine default Style, used as the base of every
// cascade and as the last-resort fallback when a theme has no root style.
func DefaultStyle() Style {
	lightGray := sdl.Color{R: 248, G: 248, B: 248, A: 255}
	black := sdl.Color{R: 0, G: 0, B: 0, A: 255}

	return Style{
		BackgroundColor:          lightGray,
		BorderColor:              black,
		BorderWidth:              1,
		BorderRadius:             0,
		BorderTopLeftRadius:      cornerUnset,
		BorderTopRightRadius:     cornerUnset,
		BorderBottomLeftRadius:   cornerUnset,
		BorderBottomRightRadius:  cornerUnset,
		CaptionHeight:            30,
		ForegroundColor:          black,
		FontName:                 "Arial",
		FontSize:                 14,
		SecondaryBackgroundColor: lightGray,
		SecondaryBorderColor:     black,
		SecondaryBorderWidth:     1,
		SecondaryFontName:        "Arial",
		SecondaryFontSize:        14,
		SecondaryForegroundColor: black,
		ShadowColor:              sdl.Color{R: 0, G: 0, B: 0, A: 100},
		ShadowOffset:             sdl.Point{X: 0, Y: 0},
	}
}

// TopLeftRadius returns the effective top-left corner radius.
func (s Style) TopLeftRadius() int32 {
	if s.BorderTopLeftRadius == cornerUnset {
		return s.BorderRadius
	}
	return s.BorderTopLeftRadius
}

// TopRightRadius returns the effective top-right corner radius.
func (s Style) TopRightRadius() int32 {
	if s.BorderTopRightRadius == cornerUnset {
		return s.BorderRadius
	}
	return s.BorderTopRightRadius
}

// BottomLeftRadius returns the effective bottom-left corner radius.
func (s Style) BottomLeftRadius() int32 {
	if s.BorderBottomLeftRadius == cornerUnset {
		return s.BorderRadius
	}
	return s.BorderBottomLeftRadius
}

// BottomRightRadius returns the effective bottom-right corner radius.
func (s Style) BottomRightRadius() int32 {
	if s.BorderBottomRightRadius == cornerUnset {
		return s.BorderRadius
	}
	return s.BorderBottomRightRadius
}

// Font resolves a font handle for the style's primary (or secondary) font
// family and size. This is a boundary call into the SDL_ttf backend; the
// returned handle is owned by the framework font cache and must not be closed
// by the caller.
func (s Style) Font(secondary bool) (*ttf.Font, error) {
	if secondary {
		return internal.OpenFont(s.SecondaryFontName, s.SecondaryFontSize)
	}
	return internal.OpenFont(s.FontName, s.FontSize)
}

// Overrides is a sparse set of style attributes keyed by attribute name, as
// they appear in theme files ("background_color", "border_width", ...).
type Overrides map[string]any

// Merged returns a new override set with other's entries winning over o's.
func (o Overrides) Merged(other Overrides) Overrides {
	merged := make(Overrides, len(o)+len(other))
	for k, v := range o {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// WithOverrides returns a new Style combining s's attributes with the
// overrides winning. s is never mutated. An unknown attribute name or a
// type-mismatched value returns an InvalidStyleAttributeError.
func (s Style) WithOverrides(overrides Overrides) (Style, error) {
	out := s
	for name, value := range overrides {
		if err := applyAttribute(&out, name, value); err != nil {
			return Style{}, err
		}
	}
	return out, nil
}

func applyAttribute(s *Style, name string, value any) error {
	fail := func(err error) error {
		return &InvalidStyleAttributeError{Attribute: name, Err: err}
	}

	switch name {
	case "background_color":
		return assignColor(&s.BackgroundColor, value, fail)
	case "border_color":
		return assignColor(&s.BorderColor, value, fail)
	case "border_width":
		return assignInt32(&s.BorderWidth, value, fail)
	case "border_radius":
		return assignInt32(&s.BorderRadius, value, fail)
	case "border_top_left_radius":
		return assignInt32(&s.BorderTopLeftRadius, value, fail)
	case "border_top_right_radius":
		return assignInt32(&s.BorderTopRightRadius, value, fail)
	case "border_bottom_left_radius":
		return assignInt32(&s.BorderBottomLeftRadius, value, fail)
	case "border_bottom_right_radius":
		return assignInt32(&s.BorderBottomRightRadius, value, fail)
	case "caption_height":
		return assignInt32(&s.CaptionHeight, value, fail)
	case "foreground_color":
		return assignColor(&s.ForegroundColor, value, fail)
	case "font_name":
		return assignString(&s.FontName, value, fail)
	case "font_size":
		return assignInt(&s.FontSize, value, fail)
	case "secondary_background_color":
		return assignColor(&s.SecondaryBackgroundColor, value, fail)
	case "secondary_border_color":
		return assignColor(&s.SecondaryBorderColor, value, fail)
	case "secondary_border_width":
		return assignInt32(&s.SecondaryBorderWidth, value, fail)
	case "secondary_font_name":
		return assignString(&s.SecondaryFontName, value, fail)
	case "secondary_font_size":
		return assignInt(&s.SecondaryFontSize, value, fail)
	case "secondary_foreground_color":
		return assignColor(&s.SecondaryForegroundColor, value, fail)
	case "shadow_color":
		return assignColor(&s.ShadowColor, value, fail)
	case "shadow_offset":
		return assignPoint(&s.ShadowOffset, value, fail)
	default:
		return &InvalidStyleAttributeError{Attribute: name, Err: fmt.Errorf("unknown attribute")}
	}
}

func assignColor(dst *sdl.Color, value any, fail func(error) error) error {
	switch v := value.(type) {
	case sdl.Color:
		*dst = v
		return nil
	case string:
		c, err := ParseColor(v)
		if err != nil {
			return fail(err)
		}
		*dst = c
		return nil
	case []any:
		if len(v) != 3 && len(v) != 4 {
			return fail(fmt.Errorf("color needs 3 or 4 components, got %d", len(v)))
		}
		parts := [4]uint8{0, 0, 0, 255}
		for i, comp := range v {
			n, ok := asInt(comp)
			if !ok || n < 0 || n > 255 {
				return fail(fmt.Errorf("invalid color component %v", comp))
			}
			parts[i] = uint8(n)
		}
		*dst = sdl.Color{R: parts[0], G: parts[1], B: parts[2], A: parts[3]}
		return nil
	default:
		return fail(fmt.Errorf("expected color, got %T", value))
	}
}

func assignInt32(dst *int32, value any, fail func(error) error) error {
	n, ok := asInt(value)
	if !ok {
		return fail(fmt.Errorf("expected integer, got %T", value))
	}
	*dst = int32(n)
	return nil
}

func assignInt(dst *int, value any, fail func(error) error) error {
	n, ok := asInt(value)
	if !ok {
		return fail(fmt.Errorf("expected integer, got %T", value))
	}
	*dst = int(n)
	return nil
}

func assignString(dst *string, value any, fail func(error) error) error {
	str, ok := value.(string)
	if !ok {
		return fail(fmt.Errorf("expected string, got %T", value))
	}
	*dst = str
	return nil
}

func assignPoint(dst *sdl.Point, value any, fail func(error) error) error {
	switch v := value.(type) {
	case sdl.Point:
		*dst = v
		return nil
	case []any:
		if len(v) != 2 {
			return fail(fmt.Errorf("offset needs 2 components, got %d", len(v)))
		}
		x, okX := asInt(v[0])
		y, okY := asInt(v[1])
		if !okX || !okY {
			return fail(fmt.Errorf("invalid offset components %v", v))
		}
		*dst = sdl.Point{X: int32(x), Y: int32(y)}
		return nil
	default:
		return fail(fmt.Errorf("expected offset pair, got %T", value))
	}
}

// asInt normalizes the integer representations the TOML decoder and
// programmatic overrides may produce.
func asInt(value any) (int64, bool) {
	switch n := value.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}
