// Package sugo is a design-token theming layer for SDL2-based immediate
// mode UIs.
//
// The host framework owns a single global visual-state table that every
// widget reads each frame. sugo owns what goes into it: a versioned set of
// design tokens for light and dark modes, a resolver that projects those
// tokens onto the table without one projection breaking another widget
// family, and a coordinator that arbitrates z-order, backdrop capture, and
// timing-gated dismissal between independently built floating surfaces.
//
// Call Init once, then BeginFrame at the top of every frame's update phase,
// before any widget reads the table or queries overlay dismissal.
package sugo

import (
	"log/slog"

	"github.com/sugo-ui/sugo/pkg/sugo/anim"
	"github.com/sugo-ui/sugo/pkg/sugo/internal"
	"github.com/sugo-ui/sugo/pkg/sugo/overlay"
	"github.com/sugo-ui/sugo/pkg/sugo/resolver"
	"github.com/sugo-ui/sugo/pkg/sugo/tokens"
)

// Options configures the theming layer.
type Options struct {
	Mode          tokens.Mode // Initial mode (defaults to light)
	OverridesPath string      // Optional TOML token override file
	Sink          TableSink   // Optional host sink receiving each frame's table
	LogPath       string      // Full path for the log file including filename
	LogLevel      string      // Minimum app log level ("debug", "info", ...)
}

// Init validates and installs the theme. Both modes are resolved eagerly
// so a misconfigured token set is rejected here, before the first frame,
// rather than mid-render.
//
// Must be called before BeginFrame or any accessor.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	light := tokens.ForMode(tokens.Light)
	dark := tokens.ForMode(tokens.Dark)

	if options.OverridesPath != "" {
		o, err := tokens.LoadOverrides(options.OverridesPath)
		if err != nil {
			return NewThemeError("load_overrides", err)
		}
		if light, err = o.Apply(light); err != nil {
			return NewThemeError("apply_overrides", err)
		}
		if dark, err = o.Apply(dark); err != nil {
			return NewThemeError("apply_overrides", err)
		}
		internal.GetInternalLogger().Info("Applied token overrides", "path", options.OverridesPath)
	}

	// Resolve both modes now; per-frame rebuilds of a validated set cannot
	// fail.
	if _, err := resolver.Resolve(light, tokens.Light); err != nil {
		return NewThemeError("resolve", err)
	}
	if _, err := resolver.Resolve(dark, tokens.Dark); err != nil {
		return NewThemeError("resolve", err)
	}

	state.sets[tokens.Light] = light
	state.sets[tokens.Dark] = dark
	state.mode = options.Mode
	state.pendingMode.Store(noPendingMode)
	state.coordinator = overlay.NewCoordinator()
	state.registry = anim.NewRegistry()
	state.sink = options.Sink
	state.current = nil
	state.initialized = true

	internal.GetInternalLogger().Debug("sugo initialized", "mode", state.mode.String())
	return nil
}

// Close releases the logging resources. Call before program exit.
func Close() {
	state.initialized = false
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g.,
// "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
