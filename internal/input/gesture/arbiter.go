package gesture

import (
	"time"

	"github.com/dshills/inkstorm/internal/canvas"
	"github.com/dshills/inkstorm/internal/host"
	"github.com/dshills/inkstorm/internal/input/pointer"
)

// State represents the arbiter's position in the gesture state machine.
type State uint8

const (
	// StateIdle means no right-button session is live.
	StateIdle State = iota
	// StateArmed means the button is down but the gesture is undecided.
	StateArmed
	// StatePanning means the gesture has committed to a camera pan.
	StatePanning
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateArmed:
		return "armed"
	case StatePanning:
		return "panning"
	default:
		return "idle"
	}
}

// Config configures gesture disambiguation thresholds.
type Config struct {
	// DragThreshold is the displacement in pixels past which a press
	// commits to a pan.
	DragThreshold float64

	// ClickTime is the maximum press duration for the click path.
	ClickTime time.Duration
}

// DefaultConfig returns the default thresholds.
func DefaultConfig() Config {
	return Config{
		DragThreshold: 5,
		ClickTime:     200 * time.Millisecond,
	}
}

// Arbiter disambiguates right-button drags (camera pan) from right-button
// clicks (context menu with updated selection). Not safe for concurrent
// use; the input layer is single-threaded by contract.
type Arbiter struct {
	config Config
	editor host.Editor

	state   State
	session *Session

	// suppressMenu consumes the next context-menu event. Set on pan end
	// and on ambiguous release, cleared once spent or on a new press.
	suppressMenu bool
}

// NewArbiter creates an arbiter driving the given host editor.
func NewArbiter(editor host.Editor, config Config) *Arbiter {
	return &Arbiter{
		config: config,
		editor: editor,
		state:  StateIdle,
	}
}

// State returns the current machine state.
func (a *Arbiter) State() State {
	return a.state
}

// SetConfig replaces the thresholds. Takes effect from the next session;
// a live session keeps the thresholds it started with only insofar as
// decisions already made are never revisited.
func (a *Arbiter) SetConfig(config Config) {
	a.config = config
}

// Handle processes one pointer event and returns its ownership verdict.
func (a *Arbiter) Handle(ev pointer.Event) pointer.Verdict {
	switch ev.Phase {
	case pointer.PhaseDown:
		return a.handleDown(ev)
	case pointer.PhaseMove:
		return a.handleMove(ev)
	case pointer.PhaseUp:
		return a.handleUp(ev)
	case pointer.PhaseCancel:
		return a.handleCancel(ev)
	case pointer.PhaseContextMenu:
		return a.handleContextMenu(ev)
	}
	return pointer.VerdictDelegated
}

// handleDown starts a new session on right-button down. Any prior session
// is invalidated first, so a missed release can never leak capture or a
// saved tool.
func (a *Arbiter) handleDown(ev pointer.Event) pointer.Verdict {
	if ev.Button != pointer.ButtonRight {
		return pointer.VerdictDelegated
	}

	if a.session != nil {
		a.endSession()
	}

	a.session = newSession(ev.Position, ev.Time(), ev.PointerID)
	a.state = StateArmed
	a.suppressMenu = false

	// Best-effort; a failed capture only means the platform may route
	// moves elsewhere, and the session still cleans up on release.
	_ = a.editor.CapturePointer(ev.PointerID)

	return pointer.VerdictConsumed
}

func (a *Arbiter) handleMove(ev pointer.Event) pointer.Verdict {
	if a.session == nil || ev.PointerID != a.session.PointerID {
		return pointer.VerdictDelegated
	}

	switch a.state {
	case StateArmed:
		if a.session.Displacement(ev.Position) > a.config.DragThreshold {
			a.beginPan()
			a.pan(ev.Position)
		} else {
			a.session.Last = ev.Position
		}
		return pointer.VerdictConsumed

	case StatePanning:
		a.pan(ev.Position)
		return pointer.VerdictConsumed
	}

	return pointer.VerdictDelegated
}

func (a *Arbiter) handleUp(ev pointer.Event) pointer.Verdict {
	if a.session == nil || ev.Button != pointer.ButtonRight || ev.PointerID != a.session.PointerID {
		return pointer.VerdictDelegated
	}

	if a.state == StatePanning {
		a.endSession()
		a.suppressMenu = true
		return pointer.VerdictConsumed
	}

	// Released while still Armed: click or ambiguous.
	withinTime := a.session.Elapsed(ev.Time()) < a.config.ClickTime
	withinDistance := a.session.Displacement(ev.Position) < a.config.DragThreshold
	a.endSession()

	if withinTime && withinDistance {
		a.updateSelection(ev.Position)
		a.suppressMenu = false
		// Delegated so the host positions its menu from the release.
		return pointer.VerdictDelegated
	}

	// Ambiguous release (slow press). Conservative default: no menu.
	a.suppressMenu = true
	return pointer.VerdictConsumed
}

// handleCancel aborts the session on platform-level pointer cancellation.
// The cancel itself is delegated so the host can run its own cleanup.
func (a *Arbiter) handleCancel(ev pointer.Event) pointer.Verdict {
	if a.session != nil && ev.PointerID == a.session.PointerID {
		a.endSession()
		a.suppressMenu = false
	}
	return pointer.VerdictDelegated
}

func (a *Arbiter) handleContextMenu(pointer.Event) pointer.Verdict {
	if a.suppressMenu {
		a.suppressMenu = false
		return pointer.VerdictConsumed
	}
	return pointer.VerdictDelegated
}

// beginPan commits the session to panning: snapshot the active tool,
// switch to the pan tool, show the grabbing cursor.
func (a *Arbiter) beginPan() {
	a.session.SavedTool = a.editor.ActiveTool()
	a.session.dragging = true
	a.state = StatePanning
	a.editor.SetActiveTool(host.ToolPan)
	a.editor.SetCursor(host.CursorGrabbing)
}

// pan translates the camera by the screen delta from the last recorded
// point, converted to page units at the current zoom.
func (a *Arbiter) pan(pos canvas.Point) {
	delta := pos.Sub(a.session.Last)
	a.session.Last = pos

	cam := a.editor.Camera()
	a.editor.SetCamera(cam.Translated(delta.X/cam.Zoom, delta.Y/cam.Zoom))
}

// updateSelection performs the click-path hit test. A hit shape replaces
// the selection unless it is already part of it; a miss clears the
// selection. Either way the host's menu then renders against the result.
func (a *Arbiter) updateSelection(pos canvas.Point) {
	page := a.editor.Camera().ScreenToPage(pos)
	id, ok := a.editor.HitTest(page)
	if !ok {
		a.editor.SetSelection(nil)
		return
	}
	for _, sel := range a.editor.Selection() {
		if sel == id {
			return
		}
	}
	a.editor.SetSelection([]string{id})
}

// endSession tears the session down. Tool restoration happens at most
// once and capture release is unconditional; facade errors are swallowed
// so cleanup always completes.
func (a *Arbiter) endSession() {
	s := a.session
	if s == nil {
		return
	}

	if s.dragging && !s.toolRestored {
		s.toolRestored = true
		a.editor.SetActiveTool(s.SavedTool)
		a.editor.SetCursor(host.CursorDefault)
	}

	_ = a.editor.ReleasePointer(s.PointerID)

	a.session = nil
	a.state = StateIdle
}
