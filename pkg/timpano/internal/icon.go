package internal

import (
	"bytes"
	_ "embed"
	"image"
	"strconv"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed embedded/back_arrow.svg
var backArrowSVG []byte

// RasterizeSVG renders SVG bytes into an SDL texture at the given pixel size.
// Returns nil if the SVG cannot be parsed or the texture cannot be created.
func RasterizeSVG(renderer *sdl.Renderer, data []byte, size int32) *sdl.Texture {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		GetInternalLogger().Warn("Failed to parse SVG icon", "error", err)
		return nil
	}

	w, h := int(size), int(size)
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STATIC, size, size)
	if err != nil {
		GetInternalLogger().Warn("Failed to create icon texture", "error", err)
		return nil
	}

	if err := texture.Update(nil, unsafe.Pointer(&rgba.Pix[0]), rgba.Stride); err != nil {
		texture.Destroy()
		return nil
	}

	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture
}

// BackArrowTexture returns the rasterized back-arrow icon, using the
// chrome texture cache so the SVG is only rasterized once per size.
func BackArrowTexture(renderer *sdl.Renderer, size int32) *sdl.Texture {
	key := "icon:back_arrow:" + strconv.Itoa(int(size))
	if texture := chromeCache().Get(key); texture != nil {
		return texture
	}

	texture := RasterizeSVG(renderer, backArrowSVG, size)
	if texture != nil {
		chromeCache().Set(key, texture)
	}
	return texture
}
