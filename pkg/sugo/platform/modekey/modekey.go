// Package modekey watches a Linux input device for a hardware key and
// toggles the theme mode when it is pressed. Intended for handheld devices
// where light/dark switching is bound to a function key rather than a
// widget.
package modekey

import (
	"fmt"
	"sync"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/sugo-ui/sugo/pkg/sugo/internal"
	"github.com/sugo-ui/sugo/pkg/sugo/tokens"
)

// Config describes which device and key to watch.
type Config struct {
	DevicePath string       // e.g. /dev/input/event1
	KeyCode    evdev.EvCode // e.g. evdev.KEY_F10
	OnPress    func()       // Called on each key press from the watcher goroutine
}

// Watcher owns the reader goroutine for one device.
type Watcher struct {
	device *evdev.InputDevice
	wg     sync.WaitGroup
	closed *atomic.Bool
}

// Start opens the device and begins watching. The OnPress callback runs on
// the watcher goroutine; it must only touch goroutine-safe entry points
// (sugo.RequestMode is the intended one).
func Start(cfg Config) (*Watcher, error) {
	if cfg.OnPress == nil {
		return nil, fmt.Errorf("modekey: OnPress callback is required")
	}

	device, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		return nil, fmt.Errorf("modekey: open %s: %w", cfg.DevicePath, err)
	}

	w := &Watcher{
		device: device,
		closed: atomic.NewBool(false),
	}

	w.wg.Add(1)
	go w.watch(cfg)

	return w, nil
}

// Close stops the watcher and releases the device.
func (w *Watcher) Close() {
	w.closed.Store(true)
	w.device.Close()
	w.wg.Wait()
}

func (w *Watcher) watch(cfg Config) {
	defer w.wg.Done()

	log := internal.GetInternalLogger()
	log.Debug("Watching mode key", "device", cfg.DevicePath, "code", cfg.KeyCode)

	for {
		ev, err := w.device.ReadOne()
		if err != nil {
			if !w.closed.Load() {
				log.Error("Mode key read failed", "device", cfg.DevicePath, "error", err)
			}
			return
		}
		if ev.Type != evdev.EV_KEY || ev.Code != cfg.KeyCode {
			continue
		}
		// Value 1 is key-down; ignore repeats (2) and releases (0).
		if ev.Value == 1 {
			cfg.OnPress()
		}
	}
}

// ToggleFunc returns an OnPress callback that alternates between light and
// dark, starting from initial, and reports each new mode through request.
// Wire request to sugo.RequestMode.
func ToggleFunc(initial tokens.Mode, request func(tokens.Mode)) func() {
	current := atomic.NewInt32(int32(initial))
	return func() {
		next := tokens.Light
		if tokens.Mode(current.Load()) == tokens.Light {
			next = tokens.Dark
		}
		current.Store(int32(next))
		request(next)
	}
}
