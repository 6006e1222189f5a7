package board

import (
	"github.com/google/uuid"

	"github.com/dshills/inkstorm/internal/canvas"
)

// Shape kinds understood by the board.
const (
	// KindRect is an axis-aligned rectangle.
	KindRect = "rect"
	// KindEllipse is an ellipse inscribed in its bounds.
	KindEllipse = "ellipse"
	// KindNote is a sticky note.
	KindNote = "note"
)

// Shape is one drawable element. Coordinates are page space.
type Shape struct {
	// ID is the shape's unique identifier.
	ID string

	// Kind is one of the Kind constants.
	Kind string

	// X, Y is the top-left corner in page space.
	X float64
	Y float64

	// W, H are the page-space dimensions.
	W float64
	H float64

	// Color is the palette entry id or CSS color for the shape.
	Color string
}

// Contains returns true if the page-space point is inside the shape's
// bounds. Hit-testing is bounds-based for all kinds; the host treats a
// shape's bounding box as its interactive area.
func (s Shape) Contains(pt canvas.Point) bool {
	return pt.X >= s.X && pt.X < s.X+s.W && pt.Y >= s.Y && pt.Y < s.Y+s.H
}

// Document is one whiteboard: an ordered list of shapes, first at the
// bottom of the z-order.
type Document struct {
	// ID is the document's unique identifier.
	ID string

	// Name is the user-visible document name.
	Name string

	// Camera is the persisted viewport.
	Camera canvas.Camera

	shapes []Shape
}

// NewDocument creates an empty document with a fresh id and an identity
// camera.
func NewDocument(name string) *Document {
	return &Document{
		ID:     uuid.NewString(),
		Name:   name,
		Camera: canvas.Camera{Zoom: 1},
	}
}

// AddShape appends a shape to the top of the z-order. A shape without an
// id receives one. Returns the shape's id.
func (d *Document) AddShape(s Shape) string {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	d.shapes = append(d.shapes, s)
	return s.ID
}

// Shape returns the shape with the given id.
func (d *Document) Shape(id string) (Shape, bool) {
	for _, s := range d.shapes {
		if s.ID == id {
			return s, true
		}
	}
	return Shape{}, false
}

// Shapes returns the shapes in z-order, bottom first. The returned slice
// is shared; callers must not mutate it.
func (d *Document) Shapes() []Shape {
	return d.shapes
}

// UpdateShape replaces the shape with the same id, keeping its z-order
// position. Returns false if the id is unknown.
func (d *Document) UpdateShape(s Shape) bool {
	for i := range d.shapes {
		if d.shapes[i].ID == s.ID {
			d.shapes[i] = s
			return true
		}
	}
	return false
}

// RemoveShape deletes the shape with the given id. Returns false if the
// id is unknown.
func (d *Document) RemoveShape(id string) bool {
	for i := range d.shapes {
		if d.shapes[i].ID == id {
			d.shapes = append(d.shapes[:i], d.shapes[i+1:]...)
			return true
		}
	}
	return false
}

// ShapeAt returns the id of the topmost shape containing the page-space
// point, or false if nothing is there.
func (d *Document) ShapeAt(pt canvas.Point) (string, bool) {
	for i := len(d.shapes) - 1; i >= 0; i-- {
		if d.shapes[i].Contains(pt) {
			return d.shapes[i].ID, true
		}
	}
	return "", false
}
