package sfoglia

import (
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/mvalenti/sfoglia/pkg/sfoglia/constants"
	"github.com/mvalenti/sfoglia/pkg/sfoglia/internal"
)

const (
	messagePadding    = int32(16)
	messageButtonW    = int32(90)
	messageButtonH    = int32(32)
	messageButtonGap  = int32(12)
	messageIconSize   = int32(32)
	buttonIndexNone   = -1
	buttonIndexOK     = 0
	buttonIndexCancel = 1
)

// MessageOptions configures a MessagePopup.
type MessageOptions struct {
	// ConfirmLabel overrides the localized default ("OK").
	ConfirmLabel string
	// CancelLabel overrides the localized default ("Cancel").
	CancelLabel string
	// HideCancel shows only the confirm button.
	HideCancel bool
	// IconPath optionally names an SVG rendered beside the message.
	IconPath string
	// OnConfirm runs when the confirm button is clicked.
	OnConfirm func()
	// OnCancel runs when the cancel button is clicked.
	OnCancel func()
}

// MessagePopup is a popup window showing a message and confirm/cancel
// buttons. Button labels default to localized framework strings, and the
// buttons consult the "popup>button" theme selector, including its ":hover"
// state when the theme specializes it.
type MessagePopup struct {
	PopupWindow

	message string
	opts    MessageOptions

	buttonBinding StyleBinding
	hovered       int
}

// NewMessagePopup creates a message dialog. Clicking a button hides the
// popup and runs the matching callback; the embedding application removes it
// from the stack when appropriate.
func NewMessagePopup(store *ThemeStore, rect sdl.Rect, title, message string, opts MessageOptions) *MessagePopup {
	if opts.ConfirmLabel == "" {
		opts.ConfirmLabel = internal.T("ButtonOK", "OK")
	}
	if opts.CancelLabel == "" {
		opts.CancelLabel = internal.T("ButtonCancel", "Cancel")
	}

	m := &MessagePopup{
		PopupWindow: *NewPopupWindow(store, rect, title),
		message:     message,
		opts:        opts,
		hovered:     buttonIndexNone,
	}
	m.Binding().SetOnChange(m.markDirty)
	m.buttonBinding = NewStyleBinding(store, "popup>button", nil)
	return m
}

// Message returns the dialog text.
func (m *MessagePopup) Message() string {
	return m.message
}

func (m *MessagePopup) buttonRect(index int) sdl.Rect {
	rect := m.Rect()
	count := int32(2)
	if m.opts.HideCancel {
		count = 1
	}
	rowW := count*messageButtonW + (count-1)*messageButtonGap
	x := rect.X + (rect.W-rowW)/2 + int32(index)*(messageButtonW+messageButtonGap)
	y := rect.Y + rect.H - messageButtonH - messagePadding
	return sdl.Rect{X: x, Y: y, W: messageButtonW, H: messageButtonH}
}

func (m *MessagePopup) buttonAt(p sdl.Point) int {
	if r := m.buttonRect(buttonIndexOK); p.InRect(&r) {
		return buttonIndexOK
	}
	if !m.opts.HideCancel {
		if r := m.buttonRect(buttonIndexCancel); p.InRect(&r) {
			return buttonIndexCancel
		}
	}
	return buttonIndexNone
}

// HandleEvent tracks button hover and consumes clicks on the buttons.
func (m *MessagePopup) HandleEvent(event Event) bool {
	if m.PopupWindow.HandleEvent(event) {
		return true
	}
	if !m.Visible() {
		return false
	}

	switch event.Kind {
	case EventMouseMotion:
		m.hovered = m.buttonAt(event.Pos)
		return false
	case EventMouseButtonDown:
		switch m.buttonAt(event.Pos) {
		case buttonIndexOK:
			m.SetVisible(false)
			if m.opts.OnConfirm != nil {
				m.opts.OnConfirm()
			}
			return true
		case buttonIndexCancel:
			m.SetVisible(false)
			if m.opts.OnCancel != nil {
				m.opts.OnCancel()
			}
			return true
		}
		rect := m.Rect()
		return event.Pos.InRect(&rect)
	default:
		return false
	}
}

// Draw paints the popup chrome, the message text, the optional icon, and the
// buttons.
func (m *MessagePopup) Draw(renderer *sdl.Renderer) {
	if !m.Visible() {
		return
	}
	m.PopupWindow.Draw(renderer)

	style := m.EffectiveStyle()
	rect := m.Rect()

	textX := rect.X + messagePadding
	if m.opts.IconPath != "" {
		if icon, err := internal.IconTexture(renderer, m.opts.IconPath, messageIconSize, messageIconSize); err == nil {
			dst := sdl.Rect{
				X: rect.X + messagePadding,
				Y: rect.Y + style.CaptionHeight + messagePadding,
				W: messageIconSize, H: messageIconSize,
			}
			renderer.Copy(icon, nil, &dst)
			textX += messageIconSize + messagePadding
		} else {
			internal.Logger().Warn("message icon unavailable", "path", m.opts.IconPath, "error", err)
		}
	}

	m.drawText(renderer, style, m.message, false, sdl.Point{
		X: textX,
		Y: rect.Y + style.CaptionHeight + messagePadding,
	})

	m.drawButton(renderer, buttonIndexOK, m.opts.ConfirmLabel)
	if !m.opts.HideCancel {
		m.drawButton(renderer, buttonIndexCancel, m.opts.CancelLabel)
	}
}

func (m *MessagePopup) drawButton(renderer *sdl.Renderer, index int, label string) {
	state := constants.StateNone
	if m.hovered == index {
		state = constants.StateHover
	}
	style := m.buttonBinding.EffectiveStyleForState(state)
	rect := m.buttonRect(index)

	gfx.RoundedBoxColor(renderer, rect.X, rect.Y, rect.X+rect.W-1, rect.Y+rect.H-1,
		style.BorderRadius, style.BackgroundColor)
	if style.BorderWidth > 0 {
		gfx.RoundedRectangleColor(renderer, rect.X, rect.Y, rect.X+rect.W-1, rect.Y+rect.H-1,
			style.BorderRadius, style.BorderColor)
	}

	font, err := style.Font(true)
	if err != nil {
		return
	}
	labelW, labelH, err := font.SizeUTF8(label)
	if err != nil {
		return
	}
	m.drawText(renderer, style, label, true, sdl.Point{
		X: rect.X + (rect.W-int32(labelW))/2,
		Y: rect.Y + (rect.H-int32(labelH))/2,
	})
}

func (m *MessagePopup) drawText(renderer *sdl.Renderer, style Style, text string, secondary bool, pos sdl.Point) {
	if text == "" {
		return
	}
	font, err := style.Font(secondary)
	if err != nil {
		internal.Logger().Error("text font unavailable", "error", err)
		return
	}

	color := style.ForegroundColor
	if secondary {
		color = style.SecondaryForegroundColor
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return
	}
	defer texture.Destroy()

	renderer.Copy(texture, nil, &sdl.Rect{X: pos.X, Y: pos.Y, W: surface.W, H: surface.H})
}
