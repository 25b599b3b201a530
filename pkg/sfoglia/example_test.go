package sfoglia_test

import (
	"fmt"

	"github.com/mvalenti/sfoglia/pkg/sfoglia"
)

// Example demonstrates loading a theme, resolving the cascade, and binding a
// widget selector to it.
func Example() {
	store := sfoglia.NewThemeStore()

	_, err := store.LoadData([]byte(`
name = "demo"
root = "window"

[variables]
accent = "#3268C8"

[styles.window]
border_width = 2

[styles."window>toolbar"]
background_color = "$accent"
`))
	if err != nil {
		fmt.Println("load failed:", err)
		return
	}

	if err := store.Use("demo"); err != nil {
		fmt.Println("use failed:", err)
		return
	}

	binding := sfoglia.NewStyleBinding(store, "window>toolbar", nil)
	style := binding.EffectiveStyle()

	// border_width is inherited from the root, the background comes from
	// the variable-substituted override.
	fmt.Println("border width:", style.BorderWidth)
	fmt.Printf("background: #%02X%02X%02X\n",
		style.BackgroundColor.R, style.BackgroundColor.G, style.BackgroundColor.B)

	// Unknown selectors fall back to the root style.
	binding.SetSelectorName("statusbar")
	fmt.Println("fallback border width:", binding.EffectiveStyle().BorderWidth)

	// Output:
	// border width: 2
	// background: #3268C8
	// fallback border width: 2
}
