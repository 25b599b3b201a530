package sfoglia

import "github.com/veandco/go-sdl2/sdl"

// EventKind identifies a toolkit event.
type EventKind int

const (
	EventNone EventKind = iota
	EventQuit
	EventMouseButtonDown
	EventMouseButtonUp
	EventMouseMotion
	EventKeyDown
	EventKeyUp
	EventTextInput
	EventDisplayResized // Size carries the new display size
	EventThemeChanged   // Synthetic, emitted once per frame after a theme switch
)

// Event is the toolkit's input/notification event. SDL events are translated
// into this shape before dispatch so windows and widgets never handle raw
// backend events; synthetic events (theme change) use the same path.
type Event struct {
	Kind   EventKind
	Pos    sdl.Point   // Mouse events
	Button uint8       // Mouse button events
	Key    sdl.Keycode // Key events
	Text   string      // Text input events
	Size   sdl.Point   // Display resize events
}

// ThemeChangedEvent builds the synthetic broadcast event that tells every
// live style binding to rebuild cached visuals.
func ThemeChangedEvent() Event {
	return Event{Kind: EventThemeChanged}
}

// TranslateSDLEvent converts a raw SDL event into a toolkit Event. The second
// return is false for SDL events the toolkit does not dispatch.
func TranslateSDLEvent(raw sdl.Event) (Event, bool) {
	switch e := raw.(type) {
	case *sdl.QuitEvent:
		return Event{Kind: EventQuit}, true
	case *sdl.MouseButtonEvent:
		kind := EventMouseButtonUp
		if e.State == sdl.PRESSED {
			kind = EventMouseButtonDown
		}
		return Event{Kind: kind, Pos: sdl.Point{X: e.X, Y: e.Y}, Button: e.Button}, true
	case *sdl.MouseMotionEvent:
		return Event{Kind: EventMouseMotion, Pos: sdl.Point{X: e.X, Y: e.Y}}, true
	case *sdl.KeyboardEvent:
		kind := EventKeyUp
		if e.Type == sdl.KEYDOWN {
			kind = EventKeyDown
		}
		return Event{Kind: kind, Key: e.Keysym.Sym}, true
	case *sdl.TextInputEvent:
		return Event{Kind: EventTextInput, Text: e.GetText()}, true
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Kind: EventDisplayResized, Size: sdl.Point{X: e.Data1, Y: e.Data2}}, true
		}
		return Event{}, false
	default:
		return Event{}, false
	}
}
