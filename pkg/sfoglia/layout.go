package sfoglia

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/mvalenti/sfoglia/pkg/sfoglia/constants"
)

// Constraints describe how a layout may size and place a widget.
type Constraints struct {
	MinW, MinH   int32
	MaxW, MaxH   int32
	PrefW, PrefH int32 // 0 means no preference; falls back to the minimum
	HAlign       constants.Align
	VAlign       constants.Align
	HPolicy      constants.SizePolicy
	VPolicy      constants.SizePolicy
	Margin       Padding
	Padding      Padding
}

// DefaultConstraints returns unconstrained, start-aligned, fixed-policy
// constraints.
func DefaultConstraints() Constraints {
	return Constraints{
		MaxW: math.MaxInt32,
		MaxH: math.MaxInt32,
	}
}

// PreferredSize returns the preferred width and height, falling back to the
// minimum where no preference is set.
func (c Constraints) PreferredSize() (int32, int32) {
	w, h := c.PrefW, c.PrefH
	if w == 0 {
		w = c.MinW
	}
	if h == 0 {
		h = c.MinH
	}
	return w, h
}

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Layout arranges widgets within a container's area. Layouts only define the
// placement algorithm; the container owns the widgets.
type Layout interface {
	Apply(widgets []Widget, area sdl.Rect)
}

// FixedLayout leaves every widget at its explicitly assigned geometry.
type FixedLayout struct{}

// Apply does nothing: fixed-layout widgets keep the geometry they were
// constructed with or assigned via SetGeometry.
func (FixedLayout) Apply(widgets []Widget, area sdl.Rect) {}
