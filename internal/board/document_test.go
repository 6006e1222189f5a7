package board

import (
	"testing"

	"github.com/dshills/inkstorm/internal/canvas"
)

func TestAddShapeAssignsID(t *testing.T) {
	doc := NewDocument("b")

	id := doc.AddShape(Shape{Kind: KindRect, W: 10, H: 10})
	if id == "" {
		t.Fatal("AddShape returned empty id")
	}
	if _, ok := doc.Shape(id); !ok {
		t.Error("added shape not found")
	}
}

func TestUpdateShape(t *testing.T) {
	doc := NewDocument("b")
	id := doc.AddShape(Shape{Kind: KindRect, W: 10, H: 10})

	if !doc.UpdateShape(Shape{ID: id, Kind: KindRect, X: 5, W: 10, H: 10, Color: "#000"}) {
		t.Fatal("UpdateShape() = false")
	}
	s, _ := doc.Shape(id)
	if s.X != 5 || s.Color != "#000" {
		t.Errorf("shape = %+v, want updated", s)
	}

	if doc.UpdateShape(Shape{ID: "missing"}) {
		t.Error("UpdateShape(missing) = true, want false")
	}
}

func TestRemoveShape(t *testing.T) {
	doc := NewDocument("b")
	id := doc.AddShape(Shape{Kind: KindRect, W: 1, H: 1})

	if !doc.RemoveShape(id) {
		t.Fatal("RemoveShape() = false")
	}
	if _, ok := doc.Shape(id); ok {
		t.Error("removed shape still present")
	}
	if doc.RemoveShape(id) {
		t.Error("second RemoveShape() = true, want false")
	}
}

func TestShapeAtReturnsTopmost(t *testing.T) {
	doc := NewDocument("b")
	doc.AddShape(Shape{ID: "bottom", Kind: KindRect, X: 0, Y: 0, W: 100, H: 100})
	doc.AddShape(Shape{ID: "top", Kind: KindNote, X: 40, Y: 40, W: 100, H: 100})

	tests := []struct {
		name string
		pt   canvas.Point
		id   string
		hit  bool
	}{
		{"overlap hits topmost", canvas.Point{X: 50, Y: 50}, "top", true},
		{"bottom only", canvas.Point{X: 10, Y: 10}, "bottom", true},
		{"top only", canvas.Point{X: 120, Y: 120}, "top", true},
		{"miss", canvas.Point{X: 500, Y: 500}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, hit := doc.ShapeAt(tt.pt)
			if hit != tt.hit || id != tt.id {
				t.Errorf("ShapeAt(%v) = (%q, %v), want (%q, %v)", tt.pt, id, hit, tt.id, tt.hit)
			}
		})
	}
}

func TestEditorCaptureBookkeeping(t *testing.T) {
	ed := NewEditor(NewDocument("b"))

	if err := ed.CapturePointer(1); err != nil {
		t.Fatalf("CapturePointer() = %v", err)
	}
	if !ed.Captured(1) {
		t.Error("Captured(1) = false after capture")
	}
	if err := ed.ReleasePointer(1); err != nil {
		t.Fatalf("ReleasePointer() = %v", err)
	}
	if err := ed.ReleasePointer(1); err == nil {
		t.Error("second ReleasePointer() = nil, want error")
	}
}
