package sfoglia

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

// The per-corner fill paints under the four quadrant clips in turn, so the
// quadrants must tile the rectangle exactly: full coverage, no overlap.
func TestCornerQuadrantsTileRect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rect sdl.Rect
	}{
		{name: "even", rect: sdl.Rect{X: 0, Y: 0, W: 100, H: 60}},
		{name: "odd", rect: sdl.Rect{X: 3, Y: 5, W: 101, H: 57}},
		{name: "offset", rect: sdl.Rect{X: -20, Y: 40, W: 33, H: 80}},
		{name: "tiny", rect: sdl.Rect{X: 0, Y: 0, W: 1, H: 1}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			quads := cornerQuadrants(tt.rect)

			var area int32
			for i := range quads {
				q := quads[i]
				area += q.W * q.H
				if q.W > 0 && q.H > 0 {
					inter, ok := q.Intersect(&tt.rect)
					if !ok || inter != q {
						t.Errorf("quadrant %d %+v exceeds %+v", i, q, tt.rect)
					}
				}
				for j := i + 1; j < len(quads); j++ {
					if overlap, ok := quads[i].Intersect(&quads[j]); ok && overlap.W > 0 && overlap.H > 0 {
						t.Errorf("quadrants %d and %d overlap at %+v", i, j, overlap)
					}
				}
			}
			if want := tt.rect.W * tt.rect.H; area != want {
				t.Errorf("quadrant area = %d, want %d (exact cover)", area, want)
			}
		})
	}
}
