package sfoglia

import "github.com/mvalenti/sfoglia/pkg/sfoglia/constants"

// Stylable is the capability every themed widget or window exposes. Widget
// types embed a StyleBinding and delegate to it.
type Stylable interface {
	EffectiveStyle() Style
	EffectiveStyleForState(state constants.WidgetState) Style
	SelectorName() string
	SetSelectorName(name string)
	Override() *Style
	SetOverride(style *Style)
}

// StyleBinding resolves a widget's effective style from its selector name,
// an optional local override, and the store's active theme. It is owned
// exclusively by the widget it is attached to.
//
//	binding := NewStyleBinding(store, "button", widget.rebuild)
//
//	// Use another selector from the active theme
//	binding.SetSelectorName("toolbar_button")
//
//	// Override the themed style entirely
//	custom := DefaultStyle()
//	custom.BackgroundColor = HexToColor(0xC86464)
//	binding.SetOverride(&custom)
//
//	// Revert to the themed style
//	binding.SetOverride(nil)
type StyleBinding struct {
	store        *ThemeStore
	selectorName string
	override     *Style
	onChange     func()
}

// NewStyleBinding creates a binding against a theme store. onChange is
// invoked synchronously whenever the effective style may have changed; pass
// nil if the owner has no cached visuals to rebuild.
func NewStyleBinding(store *ThemeStore, selectorName string, onChange func()) StyleBinding {
	return StyleBinding{
		store:        store,
		selectorName: selectorName,
		onChange:     onChange,
	}
}

// SetOnChange replaces the change-notification callback. Widget types use
// this to point the binding at their own rebuild hook after construction.
func (b *StyleBinding) SetOnChange(fn func()) {
	b.onChange = fn
}

// EffectiveStyle returns the style currently in effect: the local override
// when one is set, otherwise the active theme's entry for the selector name,
// falling back to the theme's root style and finally the engine default.
func (b *StyleBinding) EffectiveStyle() Style {
	if b.override != nil {
		return *b.override
	}
	if theme := b.store.Current(); theme != nil {
		if style, ok := theme.Get(b.selectorName); ok {
			return style
		}
	}
	return DefaultStyle()
}

// EffectiveStyleForState returns the style for an interaction state, looking
// up "<selector>:<state>" in the active theme and falling back to
// EffectiveStyle when the theme does not specialize that state.
func (b *StyleBinding) EffectiveStyleForState(state constants.WidgetState) Style {
	if state == constants.StateNone {
		return b.EffectiveStyle()
	}
	if theme := b.store.Current(); theme != nil {
		if style, ok := theme.Style(b.selectorName + ":" + state.String()); ok {
			return style
		}
	}
	return b.EffectiveStyle()
}

// SelectorName returns the theme selector this binding consults.
func (b *StyleBinding) SelectorName() string {
	return b.selectorName
}

// SetSelectorName changes which theme entry is consulted and notifies the
// owner synchronously.
func (b *StyleBinding) SetSelectorName(name string) {
	b.selectorName = name
	b.notify()
}

// Override returns the local override style, or nil when the theme applies.
func (b *StyleBinding) Override() *Style {
	return b.override
}

// SetOverride sets or clears (nil) the local override, which takes precedence
// over the theme, and notifies the owner synchronously.
func (b *StyleBinding) SetOverride(style *Style) {
	b.override = style
	b.notify()
}

// HandleEvent reacts to the synthetic theme-changed broadcast by notifying
// the owner so cached visuals are rebuilt. It reports true for events the
// binding handled; owners still propagate theme-changed to their children so
// every live binding sees it.
func (b *StyleBinding) HandleEvent(event Event) bool {
	if event.Kind == EventThemeChanged {
		b.notify()
		return true
	}
	return false
}

func (b *StyleBinding) notify() {
	if b.onChange != nil {
		b.onChange()
	}
}
