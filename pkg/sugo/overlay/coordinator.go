// Package overlay arbitrates z-order, backdrop capture, and timing-gated
// dismissal between independently built floating surfaces (menus, dialogs,
// tooltips, sheets).
//
// The host framework draws surfaces in whatever order they are submitted
// and leaves "who closes on an outside click, and when" unresolved. The
// Coordinator answers both: paint order is deterministic by (tier,
// insertion order), and an outside click can only dismiss a surface after
// the open-time debounce has elapsed, so the click that opened a surface
// can never be reinterpreted as the click that closes it.
package overlay

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// DismissDebounce is the minimum time a surface must be open before an
// outside click may dismiss it. 100ms exceeds one full input-event round
// trip, which is what keeps the opening click from doubling as an outside
// click. Defined once here; components must not carry their own timers.
const DismissDebounce = 100 * time.Millisecond

// Tier is a coarse paint-order bucket. Higher tiers always paint above
// lower ones; within a tier, later-opened surfaces paint on top.
type Tier int

const (
	TierBackground Tier = iota
	TierMiddle
	TierForeground
	TierTooltip
)

func (t Tier) String() string {
	switch t {
	case TierBackground:
		return "background"
	case TierMiddle:
		return "middle"
	case TierForeground:
		return "foreground"
	case TierTooltip:
		return "tooltip"
	default:
		return "unknown"
	}
}

// Protocol misuse errors. These surface caller bugs immediately; swallowing
// them reproduces the click-through defects this package exists to prevent.
var (
	// ErrAlreadyOpen indicates Open was called for an identity that is
	// still registered. Surfaces must close before reopening.
	ErrAlreadyOpen = errors.New("overlay identity already open")

	// ErrUnknownOverlay indicates a dismissal query for an identity that
	// was never opened or has already closed.
	ErrUnknownOverlay = errors.New("unknown overlay identity")
)

// Session represents one open floating surface.
type Session struct {
	ID       string
	Tier     Tier
	OpenedAt time.Time

	seq          uint64 // insertion order, tiebreak within a tier
	dismissArmed bool
}

// DismissArmed reports whether the open-time debounce has elapsed for this
// session as of the last Tick.
func (s *Session) DismissArmed() bool {
	return s.dismissArmed
}

// Coordinator tracks every open surface. It is frame-synchronous and
// single-threaded: widgets call Open/Close on their own identity during
// the update phase, and Tick must run once per frame before any
// ShouldDismiss check.
type Coordinator struct {
	sessions map[string]*Session
	nextSeq  uint64
}

// NewCoordinator creates an empty coordinator.
func NewCoordinator() *Coordinator {
	return &Coordinator{
		sessions: make(map[string]*Session),
	}
}

// Open registers a surface. The identity must be unique among currently
// open surfaces; double-opening without closing first is a caller bug and
// returns ErrAlreadyOpen.
func (c *Coordinator) Open(id string, tier Tier, now time.Time) (*Session, error) {
	if _, exists := c.sessions[id]; exists {
		return nil, fmt.Errorf("overlay: open %q: %w", id, ErrAlreadyOpen)
	}
	s := &Session{
		ID:       id,
		Tier:     tier,
		OpenedAt: now,
		seq:      c.nextSeq,
	}
	c.nextSeq++
	c.sessions[id] = s
	return s, nil
}

// Tick arms dismissal on every session whose debounce interval has elapsed.
// Must run once per frame before dismissal checks.
func (c *Coordinator) Tick(now time.Time) {
	for _, s := range c.sessions {
		s.dismissArmed = now.Sub(s.OpenedAt) > DismissDebounce
	}
}

// ShouldDismiss reports whether the surface should close in response to an
// outside click. Hit-testing the click against the surface bounds is the
// caller's job; the coordinator only gates on timing and session existence.
func (c *Coordinator) ShouldDismiss(id string, outsideClick bool) (bool, error) {
	s, ok := c.sessions[id]
	if !ok {
		return false, fmt.Errorf("overlay: dismiss %q: %w", id, ErrUnknownOverlay)
	}
	return s.dismissArmed && outsideClick, nil
}

// Close removes a session. Idempotent: closing an unknown or already
// closed identity is a no-op, since dismissal and explicit close often
// race within one frame.
func (c *Coordinator) Close(id string) {
	delete(c.sessions, id)
}

// IsOpen reports whether the identity is currently registered.
func (c *Coordinator) IsOpen(id string) bool {
	_, ok := c.sessions[id]
	return ok
}

// Len returns the number of open sessions.
func (c *Coordinator) Len() int {
	return len(c.sessions)
}

// PaintOrder returns the open surface identities back-to-front: ascending
// tier, then ascending insertion order, so the newest surface within a
// tier draws frontmost.
func (c *Coordinator) PaintOrder() []string {
	ordered := make([]*Session, 0, len(c.sessions))
	for _, s := range c.sessions {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Tier != ordered[j].Tier {
			return ordered[i].Tier < ordered[j].Tier
		}
		return ordered[i].seq < ordered[j].seq
	})
	ids := make([]string, len(ordered))
	for i, s := range ordered {
		ids[i] = s.ID
	}
	return ids
}
