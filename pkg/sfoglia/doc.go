// Package sfoglia is a retained-mode GUI toolkit layered over SDL2. It
// manages a z-ordered stack of windows and resolves their visual attributes
// through themeable style cascades.
//
// The two load-bearing pieces are the WindowStack and the theme engine.
// WindowStack keeps windows sorted by z-index, dispatches input front-to-back
// with consumption short-circuiting, and draws back-to-front while skipping
// everything occluded by the topmost visible fullscreen window. The theme
// engine loads TOML theme files, substitutes variables, resolves selector
// inheritance chains ("window>caption" inherits from "window"), and serves
// the resolved styles to per-widget StyleBindings.
//
// # Basic usage
//
//	app, err := sfoglia.NewApplication(sfoglia.Options{
//	    Title: "Demo",
//	    Width: 800, Height: 600,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	popup := sfoglia.NewPopupWindow(app.Themes(), sdl.Rect{X: 50, Y: 50, W: 200, H: 200}, "Popup")
//	app.AddWindow(popup)
//
//	// Override the themed style for one window
//	style := popup.EffectiveStyle()
//	style.BackgroundColor = sfoglia.HexToColor(0xC86464)
//	popup.SetOverride(&style)
//
//	app.Run()
//
// # Theming
//
// Theme files declare named styles, variables, and an optional root selector
// every other style inherits from:
//
//	name = "dark"
//	root = "window"
//
//	[variables]
//	accent = "#3268C8"
//
//	[styles.window]
//	background_color = "#202020"
//
//	[styles."popup>button:hover"]
//	background_color = "$accent"
//
// Switching themes at runtime (Themes().Use("dark")) is picked up by every
// live window on the next frame through a synthetic theme-changed event that
// travels the normal event-dispatch path.
package sfoglia
