package sfoglia

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/mvalenti/sfoglia/pkg/sfoglia/constants"
)

// BaseWindow is a styled container for widgets managed by a WindowStack. It
// can be fullscreen (sized to the screen by the stack) or hold a fixed
// rectangle. Embed it to build custom window types.
type BaseWindow struct {
	binding    StyleBinding
	rect       sdl.Rect
	fullscreen bool
	visible    bool
	widgets    []Widget
	dirty      bool
}

// NewWindow creates a window bound to the "window" theme selector. A
// fullscreen window ignores rect: the stack forces it to the screen
// rectangle on Add and on display resizes.
func NewWindow(store *ThemeStore, fullscreen bool, rect sdl.Rect) *BaseWindow {
	w := &BaseWindow{
		rect:       rect,
		fullscreen: fullscreen,
		visible:    true,
		dirty:      true,
	}
	w.binding = NewStyleBinding(store, "window", w.markDirty)
	return w
}

// markDirty is the style-change hook: cached visuals are rebuilt on the next
// draw.
func (w *BaseWindow) markDirty() {
	w.dirty = true
}

// Dirty reports whether cached visuals need rebuilding. Embedding types
// check and clear it in their Draw.
func (w *BaseWindow) Dirty() bool {
	return w.dirty
}

// ClearDirty marks cached visuals as current.
func (w *BaseWindow) ClearDirty() {
	w.dirty = false
}

// AddWidget appends a widget to the window.
func (w *BaseWindow) AddWidget(widget Widget) Widget {
	w.widgets = append(w.widgets, widget)
	return widget
}

// Widgets returns the window's widgets in insertion order.
func (w *BaseWindow) Widgets() []Widget {
	return w.widgets
}

// Draw fills the window rectangle with the effective background color and
// then paints the widgets.
func (w *BaseWindow) Draw(renderer *sdl.Renderer) {
	if !w.visible {
		return
	}
	w.dirty = false

	style := w.binding.EffectiveStyle()
	bg := style.BackgroundColor
	renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	renderer.FillRect(&w.rect)

	pos := sdl.Point{X: w.rect.X, Y: w.rect.Y}
	for i := len(w.widgets) - 1; i >= 0; i-- {
		w.widgets[i].Draw(renderer, pos)
	}
}

// HandleEvent lets the style binding react first (theme-change broadcasts),
// then forwards the event to widgets front-to-back. Theme changes are never
// consumed, so the broadcast reaches every window in the stack; a hidden
// window still refreshes its binding but receives no input.
func (w *BaseWindow) HandleEvent(event Event) bool {
	w.binding.HandleEvent(event)

	if !w.visible {
		return false
	}

	for i := len(w.widgets) - 1; i >= 0; i-- {
		if w.widgets[i].HandleEvent(event) {
			return true
		}
	}
	return false
}

// Update advances the window's widgets.
func (w *BaseWindow) Update(dt float64) {
	for _, widget := range w.widgets {
		widget.Update(dt)
	}
}

// Fullscreen reports whether the stack sizes this window to the screen.
func (w *BaseWindow) Fullscreen() bool {
	return w.fullscreen
}

// Visible reports whether the window is drawn and receives input.
func (w *BaseWindow) Visible() bool {
	return w.visible
}

// SetVisible shows or hides the window.
func (w *BaseWindow) SetVisible(visible bool) {
	w.visible = visible
}

// Rect returns the window rectangle in screen coordinates.
func (w *BaseWindow) Rect() sdl.Rect {
	return w.rect
}

// SetRect assigns the window rectangle and schedules a rebuild of cached
// visuals.
func (w *BaseWindow) SetRect(rect sdl.Rect) {
	w.rect = rect
	w.markDirty()
}

// Move repositions the window without resizing it.
func (w *BaseWindow) Move(x, y int32) {
	w.rect.X, w.rect.Y = x, y
}

// Resize changes the window size in place.
func (w *BaseWindow) Resize(width, height int32) {
	w.rect.W, w.rect.H = width, height
	w.markDirty()
}

// Binding exposes the window's style binding.
func (w *BaseWindow) Binding() *StyleBinding {
	return &w.binding
}

// EffectiveStyle implements Stylable.
func (w *BaseWindow) EffectiveStyle() Style {
	return w.binding.EffectiveStyle()
}

// EffectiveStyleForState implements Stylable.
func (w *BaseWindow) EffectiveStyleForState(state constants.WidgetState) Style {
	return w.binding.EffectiveStyleForState(state)
}

// SelectorName implements Stylable.
func (w *BaseWindow) SelectorName() string {
	return w.binding.SelectorName()
}

// SetSelectorName implements Stylable.
func (w *BaseWindow) SetSelectorName(name string) {
	w.binding.SetSelectorName(name)
}

// Override implements Stylable.
func (w *BaseWindow) Override() *Style {
	return w.binding.Override()
}

// SetOverride implements Stylable.
func (w *BaseWindow) SetOverride(style *Style) {
	w.binding.SetOverride(style)
}
