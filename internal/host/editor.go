package host

import "github.com/dshills/inkstorm/internal/canvas"

// Tool identifiers the input layer depends on. The host may define any
// number of additional tools; only the pan tool is named here because the
// gesture layer switches to it during a pan session.
const (
	// ToolSelect is the host's default selection tool.
	ToolSelect = "select"
	// ToolPan is the camera pan tool.
	ToolPan = "pan"
)

// Cursor identifies a pointer cursor style.
type Cursor uint8

const (
	// CursorDefault is the host's default cursor.
	CursorDefault Cursor = iota
	// CursorGrab indicates a pannable surface.
	CursorGrab
	// CursorGrabbing indicates an active pan drag.
	CursorGrabbing
)

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	switch c {
	case CursorGrab:
		return "grab"
	case CursorGrabbing:
		return "grabbing"
	default:
		return "default"
	}
}

// Editor is the facade onto the host canvas editor. All methods execute
// synchronously inside the input callback that invoked them.
type Editor interface {
	// Camera returns the current camera. Callers must not cache it across
	// events.
	Camera() canvas.Camera

	// SetCamera replaces the camera.
	SetCamera(cam canvas.Camera)

	// ActiveTool returns the identifier of the active tool.
	ActiveTool() string

	// SetActiveTool switches the active tool.
	SetActiveTool(id string)

	// SetCursor sets the pointer cursor.
	SetCursor(cursor Cursor)

	// Selection returns the ids of the currently selected shapes.
	Selection() []string

	// SetSelection replaces the selection. A nil or empty slice clears it.
	SetSelection(ids []string)

	// HitTest returns the id of the topmost shape at a page-space point,
	// or false if nothing is there.
	HitTest(pt canvas.Point) (string, bool)

	// CapturePointer routes subsequent events for the pointer to the
	// capturing listener. Best-effort; the input layer tolerates failure.
	CapturePointer(pointerID int) error

	// ReleasePointer releases a previously captured pointer. Releasing a
	// pointer that is not captured is an error the input layer swallows.
	ReleasePointer(pointerID int) error
}
