package internal

import (
	"time"

	"github.com/BrandonKowalski/timpano/pkg/timpano/constants"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// BackButtonConfig describes a dedicated hardware back key read directly
// from an evdev input device, for devices whose back button does not
// surface as an SDL controller event.
type BackButtonConfig struct {
	DevicePath string        // e.g. "/dev/input/event1"; empty disables the watcher
	KeyCode    uint16        // Linux input key code (e.g. 158 for KEY_BACK)
	CoolDown   time.Duration // Minimum gap between presses; defaults to constants.DefaultBackButtonCoolDown
}

func (c BackButtonConfig) IsZero() bool {
	return c.DevicePath == ""
}

// StartBackButtonWatcher opens the configured device and reads key events
// on its own goroutine, invoking onPress for each debounced press of the
// configured key. The returned stop function ends the watcher.
//
// onPress is called from the watcher goroutine; it must only touch state
// that is safe to share with the UI thread.
func StartBackButtonWatcher(cfg BackButtonConfig, onPress func()) (stop func()) {
	dev, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		GetInternalLogger().Warn("Failed to open back-button device", "path", cfg.DevicePath, "error", err)
		return func() {}
	}

	coolDown := cfg.CoolDown
	if coolDown <= 0 {
		coolDown = constants.DefaultBackButtonCoolDown
	}

	GetInternalLogger().Debug("Watching back-button device", "path", cfg.DevicePath, "key_code", cfg.KeyCode)

	var stopped atomic.Bool

	go func() {
		var lastPress time.Time

		for {
			ev, err := dev.ReadOne()
			if err != nil {
				if !stopped.Load() {
					GetInternalLogger().Warn("Back-button device read failed", "error", err)
					dev.Close()
				}
				return
			}

			if ev.Type != evdev.EV_KEY || ev.Value != 1 || uint16(ev.Code) != cfg.KeyCode {
				continue
			}

			if time.Since(lastPress) < coolDown {
				continue
			}
			lastPress = time.Now()

			onPress()
		}
	}()

	return func() {
		// Closing the device unblocks the pending ReadOne.
		stopped.Store(true)
		dev.Close()
	}
}
