package sfoglia

import "github.com/mvalenti/sfoglia/pkg/sfoglia/internal"

// RegisterFontFamily maps a font family name, as used by Style.FontName and
// theme files, to a TTF file path. Style.Font resolves family names through
// the registry and treats unregistered names as file paths. Applications can
// also register fonts at startup through Options.Fonts.
func RegisterFontFamily(family, path string) {
	internal.RegisterFontFamily(family, path)
}
