package internal

import (
	"strconv"

	"github.com/BrandonKowalski/timpano/pkg/timpano/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const (
	backIconSize    int32 = 32
	chromeSidePad   int32 = 16
	placeholderSink int32 = 12
)

var chromeTextures *TextureCache

func chromeCache() *TextureCache {
	if chromeTextures == nil {
		chromeTextures = NewTextureCache()
	}
	return chromeTextures
}

func destroyChromeCache() {
	if chromeTextures != nil {
		chromeTextures.Destroy()
		chromeTextures = nil
	}
}

// DrawHeader renders the chrome header bar: an accent strip across the top
// of the window with the screen title and, when back navigation is
// possible, the back arrow with its localized label.
func DrawHeader(window *Window, title string, canGoBack bool) {
	renderer := window.Renderer
	theme := GetTheme()

	bar := sdl.Rect{X: 0, Y: 0, W: window.GetWidth(), H: constants.DefaultHeaderHeight}
	renderer.SetDrawColor(theme.AccentColor.R, theme.AccentColor.G, theme.AccentColor.B, theme.AccentColor.A)
	renderer.FillRect(&bar)

	x := chromeSidePad

	if canGoBack {
		if arrow := BackArrowTexture(renderer, backIconSize); arrow != nil {
			dst := sdl.Rect{
				X: x,
				Y: (constants.DefaultHeaderHeight - backIconSize) / 2,
				W: backIconSize,
				H: backIconSize,
			}
			renderer.Copy(arrow, nil, &dst)
			x += backIconSize + chromeSidePad/2
		}

		drawText(window, HintFont(), Localize(MsgBack), theme.HintColor, x, constants.DefaultHeaderHeight/2, false)
	}

	drawText(window, TitleFont(), title, theme.TextColor, window.GetWidth()/2, constants.DefaultHeaderHeight/2, true)
}

// DrawPlaceholder renders the localized empty-stack message centered in
// the window. Shown when there is no current screen to render.
func DrawPlaceholder(window *Window) {
	theme := GetTheme()
	drawText(window, HintFont(), Localize(MsgEmptyStack), theme.HintColor,
		window.GetWidth()/2, window.GetHeight()/2-placeholderSink, true)
}

// drawText renders text at (x, centerY), centered horizontally when
// centered is true, otherwise left-aligned at x. No-op without a font.
func drawText(window *Window, font *ttf.Font, text string, color sdl.Color, x, centerY int32, centered bool) {
	if font == nil || text == "" {
		return
	}

	key := "text:" + text + ":" + strconv.FormatUint(uint64(color.R)<<16|uint64(color.G)<<8|uint64(color.B), 16)
	texture := chromeCache().Get(key)
	if texture == nil {
		surface, err := font.RenderUTF8Blended(text, color)
		if err != nil {
			return
		}
		texture, err = window.Renderer.CreateTextureFromSurface(surface)
		surface.Free()
		if err != nil {
			return
		}
		chromeCache().Set(key, texture)
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}

	dst := sdl.Rect{X: x, Y: centerY - h/2, W: w, H: h}
	if centered {
		dst.X = x - w/2
	}
	window.Renderer.Copy(texture, nil, &dst)
}
