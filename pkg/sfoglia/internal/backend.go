package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/mvalenti/sfoglia/pkg/sfoglia/constants"
)

// WindowOptions selects SDL window flags for the application window.
type WindowOptions struct {
	Borderless  bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable   bool // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen  bool // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	AlwaysOnTop bool // Window stays above others (SDL_WINDOW_ALWAYS_ON_TOP)
	Hidden      bool // Start hidden (omits SDL_WINDOW_SHOWN)
}

func (wo WindowOptions) toSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	return flags
}

// Backend wraps the SDL window and renderer the toolkit draws into.
type Backend struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer

	background      *sdl.Texture
	hasVSync        bool
	lastPresentTime uint64
}

// InitBackend initializes SDL video, SDL_ttf, and SDL_image, and creates the
// application window and renderer. In development mode the window size can
// be overridden with the WINDOW_WIDTH/WINDOW_HEIGHT environment variables.
func InitBackend(title string, width, height int32, opts WindowOptions) (*Backend, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sfoglia: init sdl: %w", err)
	}
	if err := ttf.Init(); err != nil {
		return nil, fmt.Errorf("sfoglia: init ttf: %w", err)
	}
	img.Init(img.INIT_PNG | img.INIT_JPG)

	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if constants.IsDevMode() {
		opts.Borderless = false
		x, y = 50, 50
		width = devSizeOverride(constants.WindowWidthEnvVar, width)
		height = devSizeOverride(constants.WindowHeightEnvVar, height)
	}

	Logger().Debug("initializing sdl window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, opts.toSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("sfoglia: create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("sfoglia: create renderer: %w", err)
	}

	renderer.SetLogicalSize(width, height)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Backend{
		Window:   window,
		Renderer: renderer,
		hasVSync: vsync,
	}, nil
}

func devSizeOverride(envVar string, fallback int32) int32 {
	v := os.Getenv(envVar)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		Logger().Warn("invalid window size override; using default", "var", envVar, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

// Size returns the current window size.
func (b *Backend) Size() (int32, int32) {
	return b.Window.GetSize()
}

// LoadBackground loads an image as the screen background, replacing any
// previous one. Pass "" to clear the background.
func (b *Backend) LoadBackground(path string) error {
	if b.background != nil {
		b.background.Destroy()
		b.background = nil
	}
	if path == "" {
		return nil
	}

	texture, err := img.LoadTexture(b.Renderer, path)
	if err != nil {
		return fmt.Errorf("sfoglia: load background %q: %w", path, err)
	}
	b.background = texture
	return nil
}

// RenderBackground paints the background image, if one is loaded, across the
// whole window.
func (b *Backend) RenderBackground() {
	if b.background == nil {
		return
	}
	w, h := b.Size()
	b.Renderer.Copy(b.background, nil, &sdl.Rect{X: 0, Y: 0, W: w, H: h})
}

// Present swaps the render buffer and enforces the frame budget when VSync
// is not available. Use this instead of renderer.Present().
func (b *Backend) Present() {
	b.Renderer.Present()
	if !b.hasVSync {
		budget := uint64(constants.DefaultFrameBudget.Milliseconds())
		now := sdl.GetTicks64()
		if elapsed := now - b.lastPresentTime; elapsed < budget {
			sdl.Delay(uint32(budget - elapsed))
		}
		b.lastPresentTime = sdl.GetTicks64()
	}
}

// Close tears down the renderer, window, and SDL subsystems.
func (b *Backend) Close() {
	iconCache.Destroy()
	if b.background != nil {
		b.background.Destroy()
	}
	b.Renderer.Destroy()
	b.Window.Destroy()
	CloseFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
