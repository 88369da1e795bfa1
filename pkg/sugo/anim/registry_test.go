package anim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frameDt = float32(1.0 / 60.0)

func TestFirstQuerySeedsAtTarget(t *testing.T) {
	r := NewRegistry()
	r.BeginFrame()

	// A freshly seen surface renders settled, not mid-flight.
	v := r.Advance(Key{"menu1", "open"}, 1.0, frameDt)
	assert.Equal(t, float32(1.0), v)
}

func TestAdvanceConvergesMonotonically(t *testing.T) {
	r := NewRegistry()
	r.BeginFrame()

	key := Key{"menu1", "hover"}
	r.Advance(key, 0, frameDt)

	prev := float32(0)
	for i := 0; i < 120; i++ {
		r.BeginFrame()
		v := r.Advance(key, 1.0, frameDt)
		assert.GreaterOrEqual(t, v, prev)
		assert.LessOrEqual(t, v, float32(1.0))
		prev = v
	}
	assert.InDelta(t, 1.0, float64(prev), 0.01)
}

func TestAdvanceIsDeterministic(t *testing.T) {
	run := func() []float32 {
		r := NewRegistry()
		key := Key{"a", "open"}
		r.BeginFrame()
		r.Advance(key, 0, frameDt)
		out := make([]float32, 0, 30)
		for i := 0; i < 30; i++ {
			r.BeginFrame()
			out = append(out, r.Advance(key, 1.0, frameDt))
		}
		return out
	}

	assert.Equal(t, run(), run())
}

// Re-targeting mid-transition must keep accumulated progress: the value
// never moves by more than one frame-step's maximum delta.
func TestRetargetingNeverJumps(t *testing.T) {
	r := NewRegistry()
	key := Key{"menu1", "hover"}

	r.BeginFrame()
	r.Advance(key, 0, frameDt)

	// Drive halfway toward 1, then yank the target back to 0.
	v := float32(0)
	for i := 0; i < 10; i++ {
		r.BeginFrame()
		v = r.Advance(key, 1.0, frameDt)
	}
	require.Greater(t, v, float32(0.1))

	maxStep := func(current, target float32) float64 {
		return math.Abs(float64(target-current)) * (1 - math.Exp(float64(-frameDt/0.07)))
	}

	before := v
	bound := maxStep(before, 0)
	r.BeginFrame()
	after := r.Advance(key, 0, frameDt)

	assert.LessOrEqual(t, math.Abs(float64(after-before)), bound+1e-5)
}

func TestDistinctKeysDoNotShareState(t *testing.T) {
	r := NewRegistry()
	r.BeginFrame()

	a := Key{"menu1", "hover"}
	b := Key{"menu2", "hover"}

	r.Advance(a, 0, frameDt)
	r.Advance(b, 1.0, frameDt)

	r.BeginFrame()
	va := r.Advance(a, 1.0, frameDt)
	vb := r.Advance(b, 1.0, frameDt)

	assert.Less(t, va, float32(0.5), "menu1 is mid-flight")
	assert.Equal(t, float32(1.0), vb, "menu2 was already settled")
}

func TestStaleKeysArePurged(t *testing.T) {
	r := NewRegistryWithIdleFrames(5)
	r.BeginFrame()

	live := Key{"menu1", "hover"}
	stale := Key{"tooltip9", "fade"}
	r.Advance(live, 1.0, frameDt)
	r.Advance(stale, 1.0, frameDt)
	require.Equal(t, 2, r.Len())

	for i := 0; i < 10; i++ {
		r.BeginFrame()
		r.Advance(live, 1.0, frameDt)
	}

	assert.Equal(t, 1, r.Len())
	_, ok := r.Current(stale)
	assert.False(t, ok)
	_, ok = r.Current(live)
	assert.True(t, ok)
}

func TestCurrentDoesNotAdvance(t *testing.T) {
	r := NewRegistry()
	r.BeginFrame()

	key := Key{"menu1", "open"}
	r.Advance(key, 0, frameDt)
	r.BeginFrame()
	r.Advance(key, 1.0, frameDt)

	v1, ok := r.Current(key)
	require.True(t, ok)
	v2, _ := r.Current(key)
	assert.Equal(t, v1, v2)
}
