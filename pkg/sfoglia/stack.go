package sfoglia

import (
	"sort"

	"github.com/veandco/go-sdl2/sdl"
)

// Window is what the stack manages. BaseWindow implements it; applications
// embed BaseWindow rather than implementing Window from scratch.
//
// Window identity in the stack is reference identity: removing a window and
// adding an attribute-equal one yields two distinct stack entries.
type Window interface {
	Draw(renderer *sdl.Renderer)
	HandleEvent(event Event) bool
	Update(dt float64)
	Fullscreen() bool
	Visible() bool
	Rect() sdl.Rect
	SetRect(rect sdl.Rect)
}

type stackEntry struct {
	z      int
	window Window
}

// WindowStack is a z-ordered window collection. It owns insertion ordering,
// reordering, occlusion-aware draw traversal, and reverse-order event
// dispatch. Higher z is more in front; ties keep insertion order.
type WindowStack struct {
	screen  sdl.Rect
	entries []stackEntry
}

// NewWindowStack creates a stack for a screen rectangle. Fullscreen windows
// are sized to this rectangle on Add and on display-resize events.
func NewWindowStack(screen sdl.Rect) *WindowStack {
	return &WindowStack{screen: screen}
}

// Add inserts a window above everything currently on top.
func (ws *WindowStack) Add(window Window) {
	ws.AddAt(window, -1)
}

// AddAt inserts a window at an explicit z-index. A negative zIndex assigns
// TopZ()+1. A fullscreen window's rectangle is forced to the screen
// rectangle before insertion.
func (ws *WindowStack) AddAt(window Window, zIndex int) {
	if window.Fullscreen() {
		window.SetRect(ws.screen)
	}
	if zIndex < 0 {
		zIndex = ws.TopZ() + 1
	}
	ws.entries = append(ws.entries, stackEntry{z: zIndex, window: window})
	ws.sortEntries()
}

// BringToFront reassigns the window's z-index to TopZ()+1, making it the
// unique topmost entry while preserving the relative order of all others.
// Returns ErrWindowNotFound if the stack does not hold the window.
func (ws *WindowStack) BringToFront(window Window) error {
	maxZ := ws.TopZ()
	for i := range ws.entries {
		if ws.entries[i].window == window {
			ws.entries[i].z = maxZ + 1
			ws.sortEntries()
			return nil
		}
	}
	return ErrWindowNotFound
}

// Remove deletes every entry holding the window reference. Removing an
// absent window is a no-op.
func (ws *WindowStack) Remove(window Window) {
	kept := ws.entries[:0]
	for _, e := range ws.entries {
		if e.window != window {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(ws.entries); i++ {
		ws.entries[i] = stackEntry{}
	}
	ws.entries = kept
}

// Draw paints visible windows bottom-to-top. Windows below the topmost
// visible fullscreen window are fully occluded by it and are skipped; when
// no such window exists everything is drawn. This assumes fullscreen windows
// are opaque.
func (ws *WindowStack) Draw(renderer *sdl.Renderer) {
	floor := 0
	for i := len(ws.entries) - 1; i >= 0; i-- {
		if ws.entries[i].window.Fullscreen() && ws.entries[i].window.Visible() {
			floor = i
			break
		}
	}

	for _, e := range ws.entries[floor:] {
		if e.window.Visible() {
			e.window.Draw(renderer)
		}
	}
}

// HandleEvent dispatches an event to windows from topmost to bottommost,
// stopping at the first window that consumes it. On a display-resize event
// every fullscreen window's rectangle is updated to the new screen rectangle
// before any dispatch; non-fullscreen windows never receive an implicit
// resize.
func (ws *WindowStack) HandleEvent(event Event) bool {
	if event.Kind == EventDisplayResized {
		ws.screen = sdl.Rect{X: 0, Y: 0, W: event.Size.X, H: event.Size.Y}
		for _, e := range ws.entries {
			if e.window.Fullscreen() {
				e.window.SetRect(ws.screen)
			}
		}
	}

	for i := len(ws.entries) - 1; i >= 0; i-- {
		if ws.entries[i].window.HandleEvent(event) {
			return true
		}
	}
	return false
}

// Update advances every window, bottom-to-top. Within a frame the embedding
// application dispatches all events before Update and draws after it.
func (ws *WindowStack) Update(dt float64) {
	for _, e := range ws.entries {
		e.window.Update(dt)
	}
}

// TopWindow returns the highest-z window, or nil if there is none. With
// onlyVisible set, hidden windows are skipped.
func (ws *WindowStack) TopWindow(onlyVisible bool) Window {
	for i := len(ws.entries) - 1; i >= 0; i-- {
		if !onlyVisible || ws.entries[i].window.Visible() {
			return ws.entries[i].window
		}
	}
	return nil
}

// TopZ returns the z-index of the topmost entry, or 0 for an empty stack.
func (ws *WindowStack) TopZ() int {
	if len(ws.entries) == 0 {
		return 0
	}
	return ws.entries[len(ws.entries)-1].z
}

// Windows returns a bottom-to-top snapshot of the stacked windows.
func (ws *WindowStack) Windows() []Window {
	windows := make([]Window, len(ws.entries))
	for i, e := range ws.entries {
		windows[i] = e.window
	}
	return windows
}

// Len returns the number of stacked windows.
func (ws *WindowStack) Len() int {
	return len(ws.entries)
}

// ScreenRect returns the screen rectangle fullscreen windows are sized to.
func (ws *WindowStack) ScreenRect() sdl.Rect {
	return ws.screen
}

func (ws *WindowStack) sortEntries() {
	sort.SliceStable(ws.entries, func(i, j int) bool {
		return ws.entries[i].z < ws.entries[j].z
	})
}
