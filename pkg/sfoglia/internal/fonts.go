package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

type fontKey struct {
	name string
	size int
}

var (
	fonts        = map[fontKey]*ttf.Font{}
	fontFamilies = map[string]string{}
)

// RegisterFontFamily maps a font family name used in theme files to a TTF
// file path. Style.Font first resolves the family through this table; names
// with no registration are treated as paths directly.
func RegisterFontFamily(family, path string) {
	fontFamilies[family] = path
}

// FontPath resolves a font family name to its registered TTF path. Names with
// no registration are returned unchanged and treated as paths.
func FontPath(name string) string {
	if path, ok := fontFamilies[name]; ok {
		return path
	}
	return name
}

// OpenFont returns a cached font handle for a family (or path) and size,
// opening it on first use. Handles stay open until CloseFonts; callers must
// not close them.
func OpenFont(name string, size int) (*ttf.Font, error) {
	key := fontKey{name: name, size: size}
	if font, ok := fonts[key]; ok {
		return font, nil
	}

	font, err := ttf.OpenFont(FontPath(name), size)
	if err != nil {
		return nil, fmt.Errorf("sfoglia: open font %q size %d: %w", name, size, err)
	}

	fonts[key] = font
	return font, nil
}

// CloseFonts closes every cached font handle.
func CloseFonts() {
	for key, font := range fonts {
		font.Close()
		delete(fonts, key)
	}
}
