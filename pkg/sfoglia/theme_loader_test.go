package sfoglia

import (
	"errors"
	"testing"
)

func TestParseThemeCascade(t *testing.T) {
	t.Parallel()

	theme, err := ParseTheme([]byte(`
name = "test"
root = "Root"

[styles.Root]
border_width = 2

[styles."Root>Child"]
border_color = "red"
`))
	if err != nil {
		t.Fatalf("ParseTheme() unexpected error: %v", err)
	}

	child, ok := theme.Style("Root>Child")
	if !ok {
		t.Fatal("Root>Child not resolved")
	}
	if child.BorderWidth != 2 {
		t.Errorf("child.BorderWidth = %d, want 2 (inherited)", child.BorderWidth)
	}
	if c, _ := ParseColor("red"); child.BorderColor != c {
		t.Errorf("child.BorderColor = %+v, want red (own override)", child.BorderColor)
	}
}

func TestParseThemeRootFallbackInheritance(t *testing.T) {
	t.Parallel()

	// A selector with no chain delimiter implicitly inherits from the root.
	theme, err := ParseTheme([]byte(`
name = "test"
root = "base"

[styles.base]
font_size = 20

[styles.button]
border_width = 3
`))
	if err != nil {
		t.Fatalf("ParseTheme() unexpected error: %v", err)
	}

	button, ok := theme.Style("button")
	if !ok {
		t.Fatal("button not resolved")
	}
	if button.FontSize != 20 {
		t.Errorf("button.FontSize = %d, want 20 (inherited from root)", button.FontSize)
	}
	if button.BorderWidth != 3 {
		t.Errorf("button.BorderWidth = %d, want 3", button.BorderWidth)
	}
}

func TestParseThemeVariableSubstitution(t *testing.T) {
	t.Parallel()

	theme, err := ParseTheme([]byte(`
name = "test"

[variables]
accent = "#112233"
thickness = 5

[styles.window]
background_color = "$accent"
border_width = "$thickness"
`))
	if err != nil {
		t.Fatalf("ParseTheme() unexpected error: %v", err)
	}

	window, _ := theme.Style("window")
	if want, _ := ParseColor("#112233"); window.BackgroundColor != want {
		t.Errorf("BackgroundColor = %+v, want %+v", window.BackgroundColor, want)
	}
	if window.BorderWidth != 5 {
		t.Errorf("BorderWidth = %d, want 5", window.BorderWidth)
	}
}

func TestParseThemeMissingVariable(t *testing.T) {
	t.Parallel()

	_, err := ParseTheme([]byte(`
name = "test"

[styles.window]
background_color = "$nope"
`))

	var missing *MissingVariableError
	if !errors.As(err, &missing) {
		t.Fatalf("ParseTheme() error = %v, want MissingVariableError", err)
	}
	if missing.Variable != "nope" || missing.Selector != "window" {
		t.Fatalf("MissingVariableError = %+v, want variable nope in window", missing)
	}
}

func TestParseThemeMissingParent(t *testing.T) {
	t.Parallel()

	_, err := ParseTheme([]byte(`
name = "test"

[styles."ghost>child"]
border_width = 1
`))

	var missing *MissingParentStyleError
	if !errors.As(err, &missing) {
		t.Fatalf("ParseTheme() error = %v, want MissingParentStyleError", err)
	}
	if missing.Selector != "ghost>child" || missing.Parent != "ghost" {
		t.Fatalf("MissingParentStyleError = %+v", missing)
	}
}

func TestParseThemeInvalidRoot(t *testing.T) {
	t.Parallel()

	_, err := ParseTheme([]byte(`
name = "test"
root = "base"

[styles.window]
border_width = 1
`))

	var invalid *InvalidThemeRootError
	if !errors.As(err, &invalid) {
		t.Fatalf("ParseTheme() error = %v, want InvalidThemeRootError", err)
	}
	if invalid.Root != "base" {
		t.Fatalf("InvalidThemeRootError.Root = %q, want base", invalid.Root)
	}
}

func TestParseThemeCyclicInheritance(t *testing.T) {
	t.Parallel()

	// "a" inherits from the root "a>b", whose chain parent is "a" again.
	_, err := ParseTheme([]byte(`
name = "test"
root = "a>b"

[styles.a]
border_width = 1

[styles."a>b"]
border_width = 2
`))

	var cyclic *CyclicStyleInheritanceError
	if !errors.As(err, &cyclic) {
		t.Fatalf("ParseTheme() error = %v, want CyclicStyleInheritanceError", err)
	}
	if len(cyclic.Chain) < 3 {
		t.Fatalf("cycle chain too short: %v", cyclic.Chain)
	}
}

func TestParseThemeInvalidAttribute(t *testing.T) {
	t.Parallel()

	_, err := ParseTheme([]byte(`
name = "test"

[styles.window]
border_widht = 2
`))

	var attrErr *InvalidStyleAttributeError
	if !errors.As(err, &attrErr) {
		t.Fatalf("ParseTheme() error = %v, want InvalidStyleAttributeError", err)
	}
	if attrErr.Attribute != "border_widht" || attrErr.Selector != "window" {
		t.Fatalf("InvalidStyleAttributeError = %+v", attrErr)
	}
}

func TestParseThemeRejectsIncompleteFiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "missing name", data: "[styles.window]\nborder_width = 1\n"},
		{name: "no styles", data: "name = \"empty\"\n"},
		{name: "not toml", data: "{\"name\": \"json\"}"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ParseTheme([]byte(tt.data)); err == nil {
				t.Fatal("ParseTheme() expected error")
			}
		})
	}
}

func TestParseThemeDeterministic(t *testing.T) {
	t.Parallel()

	data := []byte(`
name = "test"
root = "w"

[variables]
c = "#334455"

[styles.w]
border_width = 1
background_color = "$c"

[styles."w>a"]
border_width = 2

[styles."w>a>b"]
font_size = 9

[styles.x]
border_radius = 4
`)

	first, err := ParseTheme(data)
	if err != nil {
		t.Fatalf("ParseTheme() unexpected error: %v", err)
	}
	second, err := ParseTheme(data)
	if err != nil {
		t.Fatalf("ParseTheme() unexpected error: %v", err)
	}

	names := first.StyleNames()
	if len(names) != 4 {
		t.Fatalf("StyleNames() = %v, want 4 entries", names)
	}
	for _, name := range names {
		a, _ := first.Style(name)
		b, _ := second.Style(name)
		if a != b {
			t.Errorf("style %q resolved differently across loads", name)
		}
	}

	deep, _ := first.Style("w>a>b")
	if deep.BorderWidth != 2 || deep.FontSize != 9 {
		t.Errorf("w>a>b = width %d size %d, want 2/9", deep.BorderWidth, deep.FontSize)
	}
	if c, _ := ParseColor("#334455"); deep.BackgroundColor != c {
		t.Errorf("w>a>b background = %+v, want root's variable color", deep.BackgroundColor)
	}
}

func TestThemeGetRootFallback(t *testing.T) {
	t.Parallel()

	theme, err := ParseTheme([]byte(`
name = "test"
root = "window"

[styles.window]
border_width = 6
`))
	if err != nil {
		t.Fatalf("ParseTheme() unexpected error: %v", err)
	}

	got, ok := theme.Get("nonexistent")
	if !ok {
		t.Fatal("Get() with root declared should fall back")
	}
	if got.BorderWidth != 6 {
		t.Fatalf("fallback style BorderWidth = %d, want 6", got.BorderWidth)
	}

	if _, ok := theme.Style("nonexistent"); ok {
		t.Fatal("Style() must not fall back to root")
	}
}
