package pointer

import (
	"time"

	"github.com/dshills/inkstorm/internal/canvas"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// Phase represents the kind of input occurrence.
type Phase uint8

const (
	// PhaseNone indicates no phase.
	PhaseNone Phase = iota
	// PhaseDown indicates a button press.
	PhaseDown
	// PhaseMove indicates pointer movement.
	PhaseMove
	// PhaseUp indicates a button release.
	PhaseUp
	// PhaseCancel indicates the platform aborted the pointer stream
	// (focus loss, platform-level gesture takeover).
	PhaseCancel
	// PhaseWheel indicates a scroll wheel event.
	PhaseWheel
	// PhaseContextMenu indicates the host is about to open its context menu.
	PhaseContextMenu
)

// String returns a string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	case PhaseCancel:
		return "cancel"
	case PhaseWheel:
		return "wheel"
	case PhaseContextMenu:
		return "context-menu"
	default:
		return "none"
	}
}

// Event represents one raw input event in screen coordinates.
type Event struct {
	// Phase is the kind of occurrence.
	Phase Phase

	// Button is the button involved, if any.
	Button Button

	// Position is the pointer position in screen space.
	Position canvas.Point

	// WheelDelta is the scroll delta for PhaseWheel events. Positive Y
	// scrolls down, matching platform wheel conventions.
	WheelDelta canvas.Point

	// Modifiers are the keyboard modifiers held during the event.
	Modifiers Modifier

	// PointerID identifies the pointer device for capture calls.
	PointerID int

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// Time returns the event timestamp, falling back to time.Now() when the
// platform did not stamp the event.
func (e Event) Time() time.Time {
	if e.Timestamp.IsZero() {
		return time.Now()
	}
	return e.Timestamp
}

// Verdict is the ownership decision for one intercepted event.
type Verdict uint8

const (
	// VerdictDelegated lets the event continue to the host's own handlers.
	VerdictDelegated Verdict = iota
	// VerdictConsumed stops propagation; the host never sees the event.
	VerdictConsumed
)

// String returns a string representation of the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictConsumed:
		return "consumed"
	default:
		return "delegated"
	}
}
