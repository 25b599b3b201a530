package sfoglia

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/mvalenti/sfoglia/pkg/sfoglia/constants"
)

// Widget is the contract for everything placed inside a window or container.
// Coordinates are relative to the parent; parentPos carries the parent's
// absolute position down the tree.
type Widget interface {
	Draw(renderer *sdl.Renderer, parentPos sdl.Point)
	HandleEvent(event Event) bool
	Update(dt float64)
	Rect() sdl.Rect
	SetGeometry(rect sdl.Rect)
	Constraints() Constraints
}

// BaseWidget carries the state every widget shares: geometry, layout
// constraints, and a style binding. Concrete widgets embed it and override
// Draw, HandleEvent, and the rebuild hook as needed.
type BaseWidget struct {
	binding      StyleBinding
	rect         sdl.Rect
	constraints  Constraints
	onSizeChange func(oldSize, newSize sdl.Point)
}

// NewBaseWidget creates widget state bound to a theme selector. A zero rect
// with constraints set sizes the widget to its preferred size; the layout
// manager may reassign geometry later.
func NewBaseWidget(store *ThemeStore, selectorName string, rect sdl.Rect, constraints Constraints) BaseWidget {
	if rect.W == 0 && rect.H == 0 {
		rect.W, rect.H = constraints.PreferredSize()
	}
	return BaseWidget{
		binding:     NewStyleBinding(store, selectorName, nil),
		rect:        rect,
		constraints: constraints,
	}
}

// Binding exposes the widget's style binding so embedding types can wire
// their rebuild hook and implement Stylable by delegation.
func (w *BaseWidget) Binding() *StyleBinding {
	return &w.binding
}

// Draw is a no-op; concrete widgets override it.
func (w *BaseWidget) Draw(renderer *sdl.Renderer, parentPos sdl.Point) {}

// HandleEvent reacts to theme-change broadcasts via the style binding and
// leaves everything else unconsumed. Concrete widgets call this first, then
// handle their own input.
func (w *BaseWidget) HandleEvent(event Event) bool {
	w.binding.HandleEvent(event)
	return false
}

// Update is a no-op; animated widgets override it.
func (w *BaseWidget) Update(dt float64) {}

// Rect returns the widget's geometry relative to its parent.
func (w *BaseWidget) Rect() sdl.Rect {
	return w.rect
}

// SetGeometry assigns the widget's geometry, usually from a layout. A size
// change triggers the size-change hook so cached visuals can be rebuilt.
func (w *BaseWidget) SetGeometry(rect sdl.Rect) {
	oldW, oldH := w.rect.W, w.rect.H
	w.rect = rect
	if (oldW != rect.W || oldH != rect.H) && w.onSizeChange != nil {
		w.onSizeChange(sdl.Point{X: oldW, Y: oldH}, sdl.Point{X: rect.W, Y: rect.H})
	}
}

// SetOnSizeChange wires the hook invoked when SetGeometry changes the size.
func (w *BaseWidget) SetOnSizeChange(fn func(oldSize, newSize sdl.Point)) {
	w.onSizeChange = fn
}

// Constraints returns the widget's layout constraints.
func (w *BaseWidget) Constraints() Constraints {
	return w.constraints
}

// EffectiveStyle implements Stylable.
func (w *BaseWidget) EffectiveStyle() Style {
	return w.binding.EffectiveStyle()
}

// EffectiveStyleForState implements Stylable.
func (w *BaseWidget) EffectiveStyleForState(state constants.WidgetState) Style {
	return w.binding.EffectiveStyleForState(state)
}

// SelectorName implements Stylable.
func (w *BaseWidget) SelectorName() string {
	return w.binding.SelectorName()
}

// SetSelectorName implements Stylable.
func (w *BaseWidget) SetSelectorName(name string) {
	w.binding.SetSelectorName(name)
}

// Override implements Stylable.
func (w *BaseWidget) Override() *Style {
	return w.binding.Override()
}

// SetOverride implements Stylable.
func (w *BaseWidget) SetOverride(style *Style) {
	w.binding.SetOverride(style)
}
