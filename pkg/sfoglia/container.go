package sfoglia

import "github.com/veandco/go-sdl2/sdl"

// Container is a widget that groups child widgets and positions them with a
// Layout strategy.
type Container struct {
	BaseWidget

	children []Widget
	layout   Layout
}

// NewContainer creates a container using the given layout. A nil layout
// defaults to FixedLayout.
func NewContainer(store *ThemeStore, layout Layout, rect sdl.Rect, constraints Constraints) *Container {
	if layout == nil {
		layout = FixedLayout{}
	}
	c := &Container{
		BaseWidget: NewBaseWidget(store, "container", rect, constraints),
		layout:     layout,
	}
	c.Binding().SetOnChange(c.ApplyLayout)
	return c
}

// Add appends a child widget and reapplies the layout.
func (c *Container) Add(widget Widget) Widget {
	c.children = append(c.children, widget)
	c.ApplyLayout()
	return widget
}

// Children returns the contained widgets in insertion order.
func (c *Container) Children() []Widget {
	return c.children
}

// Layout returns the container's layout strategy.
func (c *Container) Layout() Layout {
	return c.layout
}

// SetLayout replaces the layout strategy and reapplies it.
func (c *Container) SetLayout(layout Layout) {
	c.layout = layout
	c.ApplyLayout()
}

// ApplyLayout repositions the children within the container's rectangle.
func (c *Container) ApplyLayout() {
	c.layout.Apply(c.children, c.Rect())
}

// Draw paints the children, offset by the container's position.
func (c *Container) Draw(renderer *sdl.Renderer, parentPos sdl.Point) {
	rect := c.Rect()
	pos := sdl.Point{X: parentPos.X + rect.X, Y: parentPos.Y + rect.Y}
	for _, child := range c.children {
		child.Draw(renderer, pos)
	}
}

// HandleEvent rebases mouse positions into the container's local space and
// forwards the event to the children, stopping at the first consumer. The
// container itself never consumes input; theme-change broadcasts still reach
// every child because no framework widget consumes them.
func (c *Container) HandleEvent(event Event) bool {
	c.BaseWidget.HandleEvent(event)

	local := event
	switch event.Kind {
	case EventMouseButtonDown, EventMouseButtonUp, EventMouseMotion:
		rect := c.Rect()
		local.Pos.X -= rect.X
		local.Pos.Y -= rect.Y
	}

	for _, child := range c.children {
		if child.HandleEvent(local) {
			return true
		}
	}
	return false
}

// Update advances every child.
func (c *Container) Update(dt float64) {
	for _, child := range c.children {
		child.Update(dt)
	}
}

// SetGeometry assigns geometry and reapplies the layout.
func (c *Container) SetGeometry(rect sdl.Rect) {
	c.BaseWidget.SetGeometry(rect)
	c.ApplyLayout()
}
