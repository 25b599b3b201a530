package internal

import (
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// RasterizeSVG renders an SVG file to an RGBA surface of the given size.
// The caller owns the returned surface.
func RasterizeSVG(path string, width, height int32) (*sdl.Surface, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("sfoglia: read svg %q: %w", path, err)
	}

	w, h := int(width), int(height)
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, width, height, 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, fmt.Errorf("sfoglia: create icon surface: %w", err)
	}

	pixels := surface.Pixels()
	pitch := int(surface.Pitch)
	for y := 0; y < h; y++ {
		copy(pixels[y*pitch:y*pitch+w*4], rgba.Pix[y*rgba.Stride:y*rgba.Stride+w*4])
	}

	return surface, nil
}

// IconTexture rasterizes an SVG to a texture, served from the renderer-wide
// icon cache. The cache owns the returned texture; do not destroy it.
func IconTexture(renderer *sdl.Renderer, path string, width, height int32) (*sdl.Texture, error) {
	key := fmt.Sprintf("%s@%dx%d", path, width, height)
	if texture := iconCache.Get(key); texture != nil {
		return texture, nil
	}

	surface, err := RasterizeSVG(path, width, height)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("sfoglia: create icon texture: %w", err)
	}

	iconCache.Set(key, texture)
	return texture, nil
}
