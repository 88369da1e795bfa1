package sugo

import (
	"time"

	"go.uber.org/atomic"

	"github.com/sugo-ui/sugo/pkg/sugo/anim"
	"github.com/sugo-ui/sugo/pkg/sugo/internal"
	"github.com/sugo-ui/sugo/pkg/sugo/overlay"
	"github.com/sugo-ui/sugo/pkg/sugo/resolver"
	"github.com/sugo-ui/sugo/pkg/sugo/tokens"
)

// TableSink receives the resolved visual table once per frame. The host
// framework implements this to copy the snapshot into whatever global
// structure its widgets read; sugo only ever writes to it.
type TableSink interface {
	ApplyVisualTable(*resolver.Snapshot)
}

const noPendingMode int32 = -1

// All frame state is single-writer and frame-synchronous; only pendingMode
// may be touched from other goroutines.
var state = struct {
	initialized bool
	sets        [2]tokens.TokenSet
	mode        tokens.Mode
	pendingMode atomic.Int32
	coordinator *overlay.Coordinator
	registry    *anim.Registry
	sink        TableSink
	current     *resolver.Snapshot
}{}

// BeginFrame rebuilds the visual table and runs the per-frame bookkeeping:
// pending mode changes are applied, the snapshot is rebuilt wholesale and
// pushed to the sink, overlay dismissal timers are armed, and stale
// animation keys are purged.
//
// Must run at the top of every frame's update phase, before any widget
// reads the table and before any ShouldDismiss check. Panics if Init has
// not been called; that is a programming error, not a runtime condition.
func BeginFrame(now time.Time) *resolver.Snapshot {
	mustBeInitialized()

	if pending := state.pendingMode.Swap(noPendingMode); pending != noPendingMode {
		state.mode = tokens.Mode(pending)
	}

	// The set was validated at Init; resolution of a validated set is
	// total. Keep the previous frame's snapshot on the impossible path
	// rather than render from a nil table.
	snap, err := resolver.Resolve(state.sets[state.mode], state.mode)
	if err != nil {
		internal.GetInternalLogger().Error("Frame resolve failed on a validated token set", "error", err)
		snap = state.current
	}
	state.current = snap

	if state.sink != nil && snap != nil {
		state.sink.ApplyVisualTable(snap)
	}

	state.coordinator.Tick(now)
	state.registry.BeginFrame()

	return snap
}

// Snapshot returns the current frame's visual table. Readers must treat it
// as immutable; it is replaced, never patched, on the next BeginFrame.
func Snapshot() *resolver.Snapshot {
	mustBeInitialized()
	return state.current
}

// Overlays returns the overlay coordinator.
func Overlays() *overlay.Coordinator {
	mustBeInitialized()
	return state.coordinator
}

// Animations returns the animation key registry.
func Animations() *anim.Registry {
	mustBeInitialized()
	return state.registry
}

// Mode returns the mode the current frame was resolved with.
func Mode() tokens.Mode {
	mustBeInitialized()
	return state.mode
}

// SetMode switches mode immediately. Frame-synchronous: call it only from
// the update phase, between frames.
func SetMode(mode tokens.Mode) {
	mustBeInitialized()
	state.mode = mode
}

// RequestMode requests a mode switch from outside the frame loop (for
// example a hardware-key watcher goroutine). The switch is applied at the
// next BeginFrame; requests between frames coalesce to the last one.
func RequestMode(mode tokens.Mode) {
	state.pendingMode.Store(int32(mode))
}

// Tokens returns the (possibly override-adjusted) token set for the given
// mode. The returned value is a copy.
func Tokens(mode tokens.Mode) tokens.TokenSet {
	mustBeInitialized()
	return state.sets[mode]
}

func mustBeInitialized() {
	if !state.initialized {
		panic("sugo: Init must be called first")
	}
}
