package sfoglia

import (
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/mvalenti/sfoglia/pkg/sfoglia/internal"
)

// PopupWindow is a non-fullscreen window with an optional caption bar and a
// drop shadow, used for dialogs and menus. The caption bar uses the style's
// secondary attribute set; the window body is pre-rendered to a texture and
// rebuilt only when the style or geometry changes.
type PopupWindow struct {
	BaseWindow

	title       string
	showCaption bool
	texture     *sdl.Texture
}

// NewPopupWindow creates a popup at the given rectangle. The caption bar is
// shown when title is non-empty. Popups consult the "popup" theme selector.
func NewPopupWindow(store *ThemeStore, rect sdl.Rect, title string) *PopupWindow {
	p := &PopupWindow{
		BaseWindow:  *NewWindow(store, false, rect),
		title:       title,
		showCaption: title != "",
	}
	p.Binding().SetOnChange(p.markDirty)
	p.SetSelectorName("popup")
	return p
}

// Title returns the caption text.
func (p *PopupWindow) Title() string {
	return p.title
}

// SetTitle changes the caption text and schedules a rebuild.
func (p *PopupWindow) SetTitle(title string) {
	p.title = title
	p.showCaption = title != ""
	p.markDirty()
}

// Draw paints the shadow, the pre-rendered window body, and the widgets.
func (p *PopupWindow) Draw(renderer *sdl.Renderer) {
	if !p.Visible() {
		return
	}

	style := p.EffectiveStyle()
	rect := p.Rect()

	p.drawShadow(renderer, style, rect)

	if p.Dirty() || p.texture == nil {
		if err := p.buildTexture(renderer, style, rect); err != nil {
			internal.Logger().Error("popup texture rebuild failed", "error", err)
			return
		}
		p.ClearDirty()
	}

	renderer.Copy(p.texture, nil, &rect)

	pos := sdl.Point{X: rect.X, Y: rect.Y}
	widgets := p.Widgets()
	for i := len(widgets) - 1; i >= 0; i-- {
		widgets[i].Draw(renderer, pos)
	}
}

func (p *PopupWindow) drawShadow(renderer *sdl.Renderer, style Style, rect sdl.Rect) {
	offset := style.ShadowOffset
	if offset.X == 0 && offset.Y == 0 && style.ShadowColor.A == 0 {
		return
	}
	x := rect.X + offset.X
	y := rect.Y + offset.Y
	gfx.RoundedBoxColor(renderer, x, y, x+rect.W-1, y+rect.H-1, style.BorderRadius, style.ShadowColor)
}

// buildTexture renders the window chrome (caption, body, border) into a
// cached target texture.
func (p *PopupWindow) buildTexture(renderer *sdl.Renderer, style Style, rect sdl.Rect) error {
	if p.texture != nil {
		p.texture.Destroy()
		p.texture = nil
	}

	texture, err := renderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_RGBA8888), sdl.TEXTUREACCESS_TARGET, rect.W, rect.H)
	if err != nil {
		return err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	prevTarget := renderer.GetRenderTarget()
	renderer.SetRenderTarget(texture)
	defer renderer.SetRenderTarget(prevTarget)

	renderer.SetDrawColor(0, 0, 0, 0)
	renderer.Clear()

	contentY := int32(0)
	if p.showCaption {
		contentY = style.CaptionHeight
		p.renderCaption(renderer, style, rect)
	}

	// Body. The top corners are square under the caption bar.
	topLeft, topRight := style.TopLeftRadius(), style.TopRightRadius()
	if p.showCaption {
		topLeft, topRight = 0, 0
	}
	body := sdl.Rect{X: 0, Y: contentY, W: rect.W, H: rect.H - contentY}
	fillRoundedBox(renderer, body, topLeft, topRight,
		style.BottomLeftRadius(), style.BottomRightRadius(), style.BackgroundColor)

	// Outer border
	if style.BorderWidth > 0 {
		for i := int32(0); i < style.BorderWidth; i++ {
			gfx.RoundedRectangleColor(renderer, i, i, rect.W-1-i, rect.H-1-i, style.BorderRadius, style.BorderColor)
		}
	}

	p.texture = texture
	return nil
}

// cornerQuadrants splits a rectangle into four disjoint quadrants that tile
// it exactly, ordered top-left, top-right, bottom-left, bottom-right.
func cornerQuadrants(rect sdl.Rect) [4]sdl.Rect {
	halfW, halfH := rect.W/2, rect.H/2
	return [4]sdl.Rect{
		{X: rect.X, Y: rect.Y, W: halfW, H: halfH},
		{X: rect.X + halfW, Y: rect.Y, W: rect.W - halfW, H: halfH},
		{X: rect.X, Y: rect.Y + halfH, W: halfW, H: rect.H - halfH},
		{X: rect.X + halfW, Y: rect.Y + halfH, W: rect.W - halfW, H: rect.H - halfH},
	}
}

// fillRoundedBox fills a rectangle honoring per-corner radii. The gfx rounded
// primitives take a single radius, so mixed radii are painted one quadrant at
// a time under disjoint clip rectangles; each pixel is painted exactly once,
// which keeps translucent fills blend-correct.
func fillRoundedBox(renderer *sdl.Renderer, rect sdl.Rect, topLeft, topRight, bottomLeft, bottomRight int32, color sdl.Color) {
	x2, y2 := rect.X+rect.W-1, rect.Y+rect.H-1
	if topLeft == topRight && topRight == bottomLeft && bottomLeft == bottomRight {
		gfx.RoundedBoxColor(renderer, rect.X, rect.Y, x2, y2, topLeft, color)
		return
	}

	prev := renderer.GetClipRect()
	radii := [4]int32{topLeft, topRight, bottomLeft, bottomRight}
	for i, quad := range cornerQuadrants(rect) {
		quad := quad
		renderer.SetClipRect(&quad)
		gfx.RoundedBoxColor(renderer, rect.X, rect.Y, x2, y2, radii[i], color)
	}
	if prev == (sdl.Rect{}) {
		renderer.SetClipRect(nil)
	} else {
		renderer.SetClipRect(&prev)
	}
}

func (p *PopupWindow) renderCaption(renderer *sdl.Renderer, style Style, rect sdl.Rect) {
	caption := sdl.Rect{X: 0, Y: 0, W: rect.W, H: style.CaptionHeight}

	gfx.RoundedBoxColor(renderer, 0, 0, caption.W-1, caption.H+style.BorderRadius-1,
		style.TopLeftRadius(), style.SecondaryBackgroundColor)
	// Square off the caption's bottom edge
	renderer.SetDrawColor(style.SecondaryBackgroundColor.R, style.SecondaryBackgroundColor.G,
		style.SecondaryBackgroundColor.B, style.SecondaryBackgroundColor.A)
	renderer.FillRect(&sdl.Rect{X: 0, Y: caption.H - style.BorderRadius, W: caption.W, H: style.BorderRadius})

	if style.SecondaryBorderWidth > 0 {
		gfx.RoundedRectangleColor(renderer, 0, 0, caption.W-1, caption.H-1,
			style.TopLeftRadius(), style.SecondaryBorderColor)
	}

	if p.title == "" {
		return
	}

	font, err := style.Font(true)
	if err != nil {
		internal.Logger().Error("caption font unavailable", "font", style.SecondaryFontName, "error", err)
		return
	}

	text, err := font.RenderUTF8Blended(p.title, style.ForegroundColor)
	if err != nil {
		return
	}
	defer text.Free()

	textTexture, err := renderer.CreateTextureFromSurface(text)
	if err != nil {
		return
	}
	defer textTexture.Destroy()

	dst := sdl.Rect{
		X: style.BorderRadius,
		Y: (caption.H - text.H) / 2,
		W: text.W,
		H: text.H,
	}
	renderer.Copy(textTexture, nil, &dst)
}
