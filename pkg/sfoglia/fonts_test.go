package sfoglia

import (
	"testing"

	"github.com/mvalenti/sfoglia/pkg/sfoglia/internal"
)

func TestRegisterFontFamilyReachesStyleResolution(t *testing.T) {
	RegisterFontFamily("Sans Test", "/fonts/sans-test.ttf")

	if got := internal.FontPath("Sans Test"); got != "/fonts/sans-test.ttf" {
		t.Fatalf("FontPath(Sans Test) = %q, want the path registered through the public API", got)
	}
}
