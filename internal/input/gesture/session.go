package gesture

import (
	"time"

	"github.com/dshills/inkstorm/internal/canvas"
)

// Session tracks one right-button press-to-release interaction. A session
// is created on button down and discarded on button up or cancel; at most
// one session is live at a time, and a fresh button down always replaces
// any prior session.
type Session struct {
	// Origin is the screen position of the initiating button down.
	Origin canvas.Point

	// Last is the most recent consumed pointer position.
	Last canvas.Point

	// Start is when the session began.
	Start time.Time

	// PointerID is the device captured for this session.
	PointerID int

	// SavedTool is the tool active before the session switched to pan.
	// Empty until the session commits to panning.
	SavedTool string

	// dragging is false while Armed and true once Panning.
	dragging bool

	// toolRestored guards against double restoration during cleanup.
	toolRestored bool
}

// newSession creates a session for a button down at the given position.
func newSession(origin canvas.Point, start time.Time, pointerID int) *Session {
	return &Session{
		Origin:    origin,
		Last:      origin,
		Start:     start,
		PointerID: pointerID,
	}
}

// Dragging returns true once the session has committed to panning.
func (s *Session) Dragging() bool {
	return s.dragging
}

// Displacement returns the Euclidean distance from the session origin.
func (s *Session) Displacement(pt canvas.Point) float64 {
	return pt.Distance(s.Origin)
}

// Elapsed returns the session duration as of t.
func (s *Session) Elapsed(t time.Time) time.Duration {
	return t.Sub(s.Start)
}
