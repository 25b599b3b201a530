package sfoglia

import (
	_ "embed"
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/mvalenti/sfoglia/pkg/sfoglia/constants"
	"github.com/mvalenti/sfoglia/pkg/sfoglia/internal"
)

//go:embed themes/light.toml
var defaultThemeData []byte

// Options configures Application initialization.
type Options struct {
	Title  string // Window title
	Width  int32  // Window width (default 800)
	Height int32  // Window height (default 600)

	WindowOptions internal.WindowOptions // SDL window flags

	ThemePaths   []string // Theme files loaded at startup, first one activated
	NoRootWindow bool     // Skip the implicit fullscreen root window

	BackgroundImagePath string            // Optional image painted behind all windows
	LogPath             string            // Full path for the log file (parent dirs created)
	Locales             []string          // Preferred languages for framework strings
	Fonts               map[string]string // Font family name to TTF path registrations
}

// Application owns the backend window, the window stack, and the frame loop.
// Everything runs on the calling goroutine: events are dispatched before
// updates, and all updates complete before the draw pass.
type Application struct {
	backend *internal.Backend
	stack   *WindowStack
	themes  *ThemeStore

	running      bool
	lastThemeGen uint64
	lastTicks    uint64
}

// NewApplication initializes SDL, loads the startup themes (falling back to
// the embedded default theme), and creates the window stack with an implicit
// fullscreen root window.
func NewApplication(opts Options) (*Application, error) {
	if opts.LogPath != "" {
		internal.SetLogPath(opts.LogPath)
	}
	internal.SetRawLogLevel(os.Getenv(constants.LogLevelEnvVar))
	if len(opts.Locales) > 0 {
		internal.SetLocales(opts.Locales...)
	}
	for family, path := range opts.Fonts {
		internal.RegisterFontFamily(family, path)
	}

	if opts.Width == 0 {
		opts.Width = 800
	}
	if opts.Height == 0 {
		opts.Height = 600
	}

	themes := Themes()
	var first *Theme
	for _, path := range opts.ThemePaths {
		theme, err := themes.Load(path)
		if err != nil {
			return nil, err
		}
		if first == nil {
			first = theme
		}
	}
	if first == nil {
		theme, err := themes.LoadData(defaultThemeData)
		if err != nil {
			return nil, err
		}
		first = theme
	}
	if themes.Current() == nil {
		if err := themes.Use(first.Name()); err != nil {
			return nil, err
		}
	}

	backend, err := internal.InitBackend(opts.Title, opts.Width, opts.Height, opts.WindowOptions)
	if err != nil {
		return nil, err
	}
	if opts.BackgroundImagePath != "" {
		if err := backend.LoadBackground(opts.BackgroundImagePath); err != nil {
			internal.Logger().Warn("background image unavailable", "error", err)
		}
	}

	w, h := backend.Size()
	app := &Application{
		backend:      backend,
		stack:        NewWindowStack(sdl.Rect{X: 0, Y: 0, W: w, H: h}),
		themes:       themes,
		lastThemeGen: themes.Generation(),
	}

	if !opts.NoRootWindow {
		app.stack.AddAt(NewWindow(themes, true, sdl.Rect{}), 0)
	}

	return app, nil
}

// Stack returns the application's window stack.
func (a *Application) Stack() *WindowStack {
	return a.stack
}

// Themes returns the theme store the application styles from.
func (a *Application) Themes() *ThemeStore {
	return a.themes
}

// AddWindow adds a window above everything currently on top.
func (a *Application) AddWindow(window Window) Window {
	a.stack.Add(window)
	return window
}

// Run drives the frame loop until Quit is called or the backend reports
// quit. Each frame: poll and dispatch events, emit at most one synthetic
// theme-changed event if the active theme switched, update, then draw.
func (a *Application) Run() {
	a.running = true
	a.lastTicks = sdl.GetTicks64()

	for a.running {
		now := sdl.GetTicks64()
		dt := float64(now-a.lastTicks) / 1000.0
		a.lastTicks = now

		for raw := sdl.PollEvent(); raw != nil; raw = sdl.PollEvent() {
			event, ok := TranslateSDLEvent(raw)
			if !ok {
				continue
			}
			if event.Kind == EventQuit {
				a.Quit()
				return
			}
			a.stack.HandleEvent(event)
		}

		if gen := a.themes.Generation(); gen != a.lastThemeGen {
			a.lastThemeGen = gen
			a.stack.HandleEvent(ThemeChangedEvent())
		}

		a.stack.Update(dt)

		a.backend.Renderer.SetDrawColor(0, 0, 0, 255)
		a.backend.Renderer.Clear()
		a.backend.RenderBackground()
		a.stack.Draw(a.backend.Renderer)
		a.backend.Present()
	}
}

// Quit stops the frame loop and tears down the backend.
func (a *Application) Quit() {
	if !a.running {
		return
	}
	a.running = false
	a.backend.Close()
}
