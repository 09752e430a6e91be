package timpano

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BrandonKowalski/timpano/pkg/timpano/internal"
	"github.com/BurntSushi/toml"
)

// fileOptions mirrors Options in the shape the TOML file uses.
type fileOptions struct {
	WindowTitle    string `toml:"window_title"`
	ShowBackground bool   `toml:"show_background"`
	AccentColor    string `toml:"accent_color"` // "RRGGBB" or "0xRRGGBB"
	FontPath       string `toml:"font_path"`
	Locale         string `toml:"locale"`
	LogPath        string `toml:"log_path"`

	Window struct {
		Borderless        bool `toml:"borderless"`
		Resizable         bool `toml:"resizable"`
		Fullscreen        bool `toml:"fullscreen"`
		FullscreenDesktop bool `toml:"fullscreen_desktop"`
	} `toml:"window"`

	BackButton struct {
		DevicePath string `toml:"device_path"`
		KeyCode    uint16 `toml:"key_code"`
		CoolDownMS int    `toml:"cool_down_ms"`
	} `toml:"back_button"`
}

// LoadOptions reads Init options from a TOML file. Unknown keys are
// rejected so typos in a device's config file surface immediately.
func LoadOptions(path string) (Options, error) {
	var raw fileOptions

	md, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Options{}, NewInfrastructureError("load_options", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Options{}, NewInfrastructureError("load_options", fmt.Errorf("unknown keys: %v", undecoded))
	}

	options := Options{
		WindowTitle:    raw.WindowTitle,
		ShowBackground: raw.ShowBackground,
		FontPath:       raw.FontPath,
		Locale:         raw.Locale,
		LogPath:        raw.LogPath,
		WindowOptions: internal.WindowOptions{
			Borderless:        raw.Window.Borderless,
			Resizable:         raw.Window.Resizable,
			Fullscreen:        raw.Window.Fullscreen,
			FullscreenDesktop: raw.Window.FullscreenDesktop,
		},
		BackButton: internal.BackButtonConfig{
			DevicePath: raw.BackButton.DevicePath,
			KeyCode:    raw.BackButton.KeyCode,
			CoolDown:   time.Duration(raw.BackButton.CoolDownMS) * time.Millisecond,
		},
	}

	if raw.AccentColor != "" {
		hex, err := strconv.ParseUint(strings.TrimPrefix(raw.AccentColor, "0x"), 16, 32)
		if err != nil {
			return Options{}, NewInfrastructureError("load_options", fmt.Errorf("invalid accent_color %q: %w", raw.AccentColor, err))
		}
		options.PrimaryThemeColorHex = uint32(hex)
	}

	return options, nil
}
