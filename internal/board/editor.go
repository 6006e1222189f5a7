package board

import (
	"github.com/dshills/inkstorm/internal/canvas"
	"github.com/dshills/inkstorm/internal/host"
)

// Editor implements host.Editor over a Document. It is the reference
// host the demo and integration tests put behind the input layer. Like
// the input layer itself it is single-threaded by contract.
type Editor struct {
	doc *Document

	tool      string
	cursor    host.Cursor
	selection []string
	captured  map[int]bool
}

// NewEditor creates an editor over the given document.
func NewEditor(doc *Document) *Editor {
	return &Editor{
		doc:      doc,
		tool:     host.ToolSelect,
		captured: make(map[int]bool),
	}
}

// Document returns the underlying document.
func (e *Editor) Document() *Document {
	return e.doc
}

// Cursor returns the current pointer cursor.
func (e *Editor) Cursor() host.Cursor {
	return e.cursor
}

// Captured returns true if the pointer is currently captured.
func (e *Editor) Captured(pointerID int) bool {
	return e.captured[pointerID]
}

// Camera implements host.Editor.
func (e *Editor) Camera() canvas.Camera {
	return e.doc.Camera
}

// SetCamera implements host.Editor.
func (e *Editor) SetCamera(cam canvas.Camera) {
	e.doc.Camera = cam
}

// ActiveTool implements host.Editor.
func (e *Editor) ActiveTool() string {
	return e.tool
}

// SetActiveTool implements host.Editor.
func (e *Editor) SetActiveTool(id string) {
	e.tool = id
}

// SetCursor implements host.Editor.
func (e *Editor) SetCursor(cursor host.Cursor) {
	e.cursor = cursor
}

// Selection implements host.Editor.
func (e *Editor) Selection() []string {
	return e.selection
}

// SetSelection implements host.Editor.
func (e *Editor) SetSelection(ids []string) {
	e.selection = ids
}

// HitTest implements host.Editor.
func (e *Editor) HitTest(pt canvas.Point) (string, bool) {
	return e.doc.ShapeAt(pt)
}

// CapturePointer implements host.Editor.
func (e *Editor) CapturePointer(pointerID int) error {
	e.captured[pointerID] = true
	return nil
}

// ReleasePointer implements host.Editor.
func (e *Editor) ReleasePointer(pointerID int) error {
	if !e.captured[pointerID] {
		return ErrPointerNotCaptured
	}
	delete(e.captured, pointerID)
	return nil
}
