package sfoglia

import (
	"errors"
	"reflect"
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

// fakeWindow records stack interactions without touching the SDL backend.
type fakeWindow struct {
	name       string
	fullscreen bool
	visible    bool
	rect       sdl.Rect
	consume    bool

	drawLog        *[]string
	eventLog       *[]string
	rectAtDispatch sdl.Rect
}

func (f *fakeWindow) Draw(renderer *sdl.Renderer) {
	if f.drawLog != nil {
		*f.drawLog = append(*f.drawLog, f.name)
	}
}

func (f *fakeWindow) HandleEvent(event Event) bool {
	f.rectAtDispatch = f.rect
	if f.eventLog != nil {
		*f.eventLog = append(*f.eventLog, f.name)
	}
	return f.consume
}

func (f *fakeWindow) Update(dt float64)     {}
func (f *fakeWindow) Fullscreen() bool      { return f.fullscreen }
func (f *fakeWindow) Visible() bool         { return f.visible }
func (f *fakeWindow) Rect() sdl.Rect        { return f.rect }
func (f *fakeWindow) SetRect(rect sdl.Rect) { f.rect = rect }

func testScreen() sdl.Rect {
	return sdl.Rect{X: 0, Y: 0, W: 640, H: 480}
}

func names(windows []Window) []string {
	out := make([]string, len(windows))
	for i, w := range windows {
		out[i] = w.(*fakeWindow).name
	}
	return out
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	stack := NewWindowStack(testScreen())
	for _, name := range []string{"a", "b", "c", "d"} {
		stack.Add(&fakeWindow{name: name, visible: true})
	}

	if got := names(stack.Windows()); !reflect.DeepEqual(got, []string{"a", "b", "c", "d"}) {
		t.Fatalf("Windows() = %v, want insertion order", got)
	}
	if stack.TopZ() != 4 {
		t.Fatalf("TopZ() = %d, want 4", stack.TopZ())
	}
}

func TestAddAtExplicitZAndTies(t *testing.T) {
	t.Parallel()

	stack := NewWindowStack(testScreen())
	stack.AddAt(&fakeWindow{name: "late", visible: true}, 5)
	stack.AddAt(&fakeWindow{name: "early", visible: true}, 1)
	stack.AddAt(&fakeWindow{name: "tie1", visible: true}, 3)
	stack.AddAt(&fakeWindow{name: "tie2", visible: true}, 3)

	if got := names(stack.Windows()); !reflect.DeepEqual(got, []string{"early", "tie1", "tie2", "late"}) {
		t.Fatalf("Windows() = %v, want z order with stable ties", got)
	}
}

func TestAddForcesFullscreenRect(t *testing.T) {
	t.Parallel()

	stack := NewWindowStack(testScreen())
	fs := &fakeWindow{name: "fs", fullscreen: true, visible: true, rect: sdl.Rect{X: 9, Y: 9, W: 10, H: 10}}
	fixed := &fakeWindow{name: "fixed", visible: true, rect: sdl.Rect{X: 9, Y: 9, W: 10, H: 10}}
	stack.Add(fs)
	stack.Add(fixed)

	if fs.rect != testScreen() {
		t.Fatalf("fullscreen rect = %+v, want screen rect", fs.rect)
	}
	if fixed.rect != (sdl.Rect{X: 9, Y: 9, W: 10, H: 10}) {
		t.Fatalf("fixed rect changed: %+v", fixed.rect)
	}
}

func TestBringToFront(t *testing.T) {
	t.Parallel()

	stack := NewWindowStack(testScreen())
	a := &fakeWindow{name: "a", visible: true}
	b := &fakeWindow{name: "b", visible: true}
	c := &fakeWindow{name: "c", visible: true}
	stack.Add(a)
	stack.Add(b)
	stack.Add(c)

	topZ := stack.TopZ()
	if err := stack.BringToFront(a); err != nil {
		t.Fatalf("BringToFront() unexpected error: %v", err)
	}

	if got := names(stack.Windows()); !reflect.DeepEqual(got, []string{"b", "c", "a"}) {
		t.Fatalf("Windows() = %v, want others in relative order with a on top", got)
	}
	if stack.TopWindow(false) != Window(a) {
		t.Fatal("TopWindow() != a after BringToFront")
	}
	if stack.TopZ() != topZ+1 {
		t.Fatalf("TopZ() = %d, want %d", stack.TopZ(), topZ+1)
	}

	orphan := &fakeWindow{name: "never added", visible: true}
	if err := stack.BringToFront(orphan); !errors.Is(err, ErrWindowNotFound) {
		t.Fatalf("BringToFront(absent) error = %v, want ErrWindowNotFound", err)
	}
}

func TestRemoveUsesReferenceIdentity(t *testing.T) {
	t.Parallel()

	stack := NewWindowStack(testScreen())
	first := &fakeWindow{name: "twin", visible: true}
	second := &fakeWindow{name: "twin", visible: true} // attribute-equal, distinct reference
	stack.Add(first)
	stack.Add(second)

	stack.Remove(first)
	if stack.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", stack.Len())
	}
	if err := stack.BringToFront(second); err != nil {
		t.Fatalf("BringToFront(second) unexpected error: %v", err)
	}
	if err := stack.BringToFront(first); !errors.Is(err, ErrWindowNotFound) {
		t.Fatalf("BringToFront(removed) error = %v, want ErrWindowNotFound", err)
	}

	// Removing an absent window is a no-op, not an error.
	stack.Remove(first)
	if stack.Len() != 1 {
		t.Fatalf("Len() after no-op remove = %d, want 1", stack.Len())
	}
}

func TestDrawOcclusionCulling(t *testing.T) {
	t.Parallel()

	var drawLog []string
	stack := NewWindowStack(testScreen())
	a := &fakeWindow{name: "A", fullscreen: true, visible: true, drawLog: &drawLog}
	b := &fakeWindow{name: "B", fullscreen: true, visible: false, drawLog: &drawLog}
	c := &fakeWindow{name: "C", fullscreen: false, visible: true, drawLog: &drawLog}
	stack.AddAt(a, 0)
	stack.AddAt(b, 1)
	stack.AddAt(c, 2)

	stack.Draw(nil)
	if !reflect.DeepEqual(drawLog, []string{"A", "C"}) {
		t.Fatalf("draw order = %v, want [A C] (hidden B skipped, A is the floor)", drawLog)
	}

	// Once B is visible it becomes the occlusion floor and A is culled.
	drawLog = drawLog[:0]
	b.visible = true
	stack.Draw(nil)
	if !reflect.DeepEqual(drawLog, []string{"B", "C"}) {
		t.Fatalf("draw order = %v, want [B C]", drawLog)
	}
}

func TestDrawWithoutFullscreenDrawsEverything(t *testing.T) {
	t.Parallel()

	var drawLog []string
	stack := NewWindowStack(testScreen())
	stack.Add(&fakeWindow{name: "a", visible: true, drawLog: &drawLog})
	stack.Add(&fakeWindow{name: "b", visible: true, drawLog: &drawLog})

	stack.Draw(nil)
	if !reflect.DeepEqual(drawLog, []string{"a", "b"}) {
		t.Fatalf("draw order = %v, want [a b]", drawLog)
	}
}

func TestHandleEventShortCircuits(t *testing.T) {
	t.Parallel()

	var eventLog []string
	stack := NewWindowStack(testScreen())
	bottom := &fakeWindow{name: "bottom", visible: true, eventLog: &eventLog}
	top := &fakeWindow{name: "top", visible: true, consume: true, eventLog: &eventLog}
	stack.Add(bottom)
	stack.Add(top)

	if !stack.HandleEvent(Event{Kind: EventMouseButtonDown}) {
		t.Fatal("HandleEvent() = false, want consumed")
	}
	if !reflect.DeepEqual(eventLog, []string{"top"}) {
		t.Fatalf("event log = %v, want only the topmost consumer", eventLog)
	}

	eventLog = eventLog[:0]
	top.consume = false
	if stack.HandleEvent(Event{Kind: EventMouseButtonDown}) {
		t.Fatal("HandleEvent() = true, want not consumed")
	}
	if !reflect.DeepEqual(eventLog, []string{"top", "bottom"}) {
		t.Fatalf("event log = %v, want top-to-bottom traversal", eventLog)
	}
}

func TestHandleEventResizesFullscreenBeforeDispatch(t *testing.T) {
	t.Parallel()

	stack := NewWindowStack(testScreen())
	fs := &fakeWindow{name: "fs", fullscreen: true, visible: true}
	fixed := &fakeWindow{name: "fixed", visible: true, rect: sdl.Rect{X: 5, Y: 5, W: 50, H: 50}}
	stack.Add(fs)
	stack.Add(fixed)

	resized := sdl.Rect{X: 0, Y: 0, W: 1024, H: 768}
	stack.HandleEvent(Event{Kind: EventDisplayResized, Size: sdl.Point{X: 1024, Y: 768}})

	if fs.rectAtDispatch != resized {
		t.Fatalf("fullscreen rect at dispatch = %+v, want %+v (geometry before dispatch)", fs.rectAtDispatch, resized)
	}
	if fixed.rect != (sdl.Rect{X: 5, Y: 5, W: 50, H: 50}) {
		t.Fatalf("non-fullscreen rect changed on resize: %+v", fixed.rect)
	}
	if stack.ScreenRect() != resized {
		t.Fatalf("ScreenRect() = %+v, want %+v", stack.ScreenRect(), resized)
	}
}

func TestTopWindowVisibility(t *testing.T) {
	t.Parallel()

	stack := NewWindowStack(testScreen())
	if stack.TopWindow(true) != nil {
		t.Fatal("TopWindow() on empty stack should be nil")
	}

	bottom := &fakeWindow{name: "bottom", visible: true}
	hidden := &fakeWindow{name: "hidden", visible: false}
	stack.Add(bottom)
	stack.Add(hidden)

	if got := stack.TopWindow(true); got != Window(bottom) {
		t.Fatalf("TopWindow(onlyVisible) = %v, want bottom", got)
	}
	if got := stack.TopWindow(false); got != Window(hidden) {
		t.Fatalf("TopWindow(all) = %v, want hidden", got)
	}
}

func TestThemeChangeBroadcastReachesEveryWindow(t *testing.T) {
	t.Parallel()

	store := bindingTestStore(t)
	stack := NewWindowStack(testScreen())

	front := NewWindow(store, false, sdl.Rect{W: 10, H: 10})
	back := NewWindow(store, false, sdl.Rect{W: 10, H: 10})
	hidden := NewWindow(store, false, sdl.Rect{W: 10, H: 10})
	hidden.SetVisible(false)
	stack.Add(back)
	stack.Add(hidden)
	stack.Add(front)
	for _, w := range []*BaseWindow{front, back, hidden} {
		w.ClearDirty()
	}

	if stack.HandleEvent(ThemeChangedEvent()) {
		t.Fatal("theme change must not be consumed, or lower windows would miss it")
	}
	for _, w := range []*BaseWindow{front, back, hidden} {
		if !w.Dirty() {
			t.Fatal("a window missed the theme-change broadcast")
		}
	}
}
