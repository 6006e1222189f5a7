package wheel

import (
	"math"
	"testing"

	"github.com/dshills/inkstorm/internal/canvas"
	"github.com/dshills/inkstorm/internal/host"
	"github.com/dshills/inkstorm/internal/input/pointer"
)

const epsilon = 1e-9

// wheelEditor is a minimal host.Editor for the remapper, which only
// touches the camera.
type wheelEditor struct {
	camera  canvas.Camera
	camSets int
}

func (e *wheelEditor) Camera() canvas.Camera { return e.camera }

func (e *wheelEditor) SetCamera(cam canvas.Camera) {
	e.camera = cam
	e.camSets++
}

func (e *wheelEditor) ActiveTool() string                  { return "" }
func (e *wheelEditor) SetActiveTool(string)                {}
func (e *wheelEditor) SetCursor(host.Cursor)               {}
func (e *wheelEditor) Selection() []string                 { return nil }
func (e *wheelEditor) SetSelection([]string)               {}
func (e *wheelEditor) HitTest(canvas.Point) (string, bool) { return "", false }
func (e *wheelEditor) CapturePointer(int) error            { return nil }
func (e *wheelEditor) ReleasePointer(int) error            { return nil }

func wheelEvent(deltaY float64, pos canvas.Point, mods pointer.Modifier) pointer.Event {
	return pointer.Event{
		Phase:      pointer.PhaseWheel,
		Position:   pos,
		WheelDelta: canvas.Point{Y: deltaY},
		Modifiers:  mods,
		PointerID:  1,
	}
}

func TestZoomToCursorReferenceCase(t *testing.T) {
	ed := &wheelEditor{camera: canvas.Camera{Zoom: 1}}
	r := NewRemapper(ed, DefaultConfig())
	cursor := canvas.Point{X: 400, Y: 300}

	pageBefore := ed.camera.ScreenToPage(cursor)

	v := r.Handle(wheelEvent(-120, cursor, pointer.ModNone))
	if v != pointer.VerdictConsumed {
		t.Fatalf("verdict = %v, want consumed", v)
	}

	if math.Abs(ed.camera.Zoom-1.1) > epsilon {
		t.Errorf("zoom = %v, want 1.1", ed.camera.Zoom)
	}

	// The page point that was under the cursor is still under it.
	back := ed.camera.PageToScreen(pageBefore)
	if math.Abs(back.X-400) > epsilon || math.Abs(back.Y-300) > epsilon {
		t.Errorf("page point now at screen %v, want (400, 300)", back)
	}

	if ed.camSets != 1 {
		t.Errorf("SetCamera called %d times, want 1", ed.camSets)
	}
}

func TestZoomOut(t *testing.T) {
	ed := &wheelEditor{camera: canvas.Camera{Zoom: 1}}
	r := NewRemapper(ed, DefaultConfig())

	r.Handle(wheelEvent(120, canvas.Point{X: 100, Y: 100}, pointer.ModNone))

	if math.Abs(ed.camera.Zoom-0.9) > epsilon {
		t.Errorf("zoom = %v, want 0.9", ed.camera.Zoom)
	}
}

func TestZoomNeverLeavesBounds(t *testing.T) {
	config := DefaultConfig()
	cursor := canvas.Point{X: 50, Y: 50}

	ed := &wheelEditor{camera: canvas.Camera{Zoom: 1}}
	r := NewRemapper(ed, config)

	// Far more zoom-in steps than the range allows.
	for i := 0; i < 200; i++ {
		r.Handle(wheelEvent(-120, cursor, pointer.ModNone))
		if ed.camera.Zoom > config.MaxZoom {
			t.Fatalf("zoom %v exceeded max %v", ed.camera.Zoom, config.MaxZoom)
		}
	}
	if ed.camera.Zoom != config.MaxZoom {
		t.Errorf("zoom = %v, want pinned at max %v", ed.camera.Zoom, config.MaxZoom)
	}

	for i := 0; i < 400; i++ {
		r.Handle(wheelEvent(120, cursor, pointer.ModNone))
		if ed.camera.Zoom < config.MinZoom {
			t.Fatalf("zoom %v below min %v", ed.camera.Zoom, config.MinZoom)
		}
	}
	if ed.camera.Zoom != config.MinZoom {
		t.Errorf("zoom = %v, want pinned at min %v", ed.camera.Zoom, config.MinZoom)
	}
}

func TestShiftWheelPansHorizontally(t *testing.T) {
	ed := &wheelEditor{camera: canvas.Camera{Zoom: 2}}
	r := NewRemapper(ed, DefaultConfig())

	r.Handle(wheelEvent(120, canvas.Point{X: 10, Y: 10}, pointer.ModShift))

	// camera.x += deltaY * PanScale / zoom = 120 * 1 / 2.
	if math.Abs(ed.camera.X-60) > epsilon {
		t.Errorf("camera.X = %v, want 60", ed.camera.X)
	}
	if ed.camera.Y != 0 {
		t.Errorf("camera.Y = %v, want 0", ed.camera.Y)
	}
	if ed.camera.Zoom != 2 {
		t.Errorf("zoom = %v, want unchanged 2", ed.camera.Zoom)
	}
}

func TestCtrlWheelPansVerticallyOppositeSign(t *testing.T) {
	ed := &wheelEditor{camera: canvas.Camera{Zoom: 2}}
	r := NewRemapper(ed, DefaultConfig())

	r.Handle(wheelEvent(120, canvas.Point{X: 10, Y: 10}, pointer.ModCtrl))

	// camera.y += -deltaY * PanScale / zoom = -60.
	if math.Abs(ed.camera.Y-(-60)) > epsilon {
		t.Errorf("camera.Y = %v, want -60", ed.camera.Y)
	}
	if ed.camera.X != 0 {
		t.Errorf("camera.X = %v, want 0", ed.camera.X)
	}
}

func TestMetaBehavesLikeCtrl(t *testing.T) {
	ed := &wheelEditor{camera: canvas.Camera{Zoom: 1}}
	r := NewRemapper(ed, DefaultConfig())

	r.Handle(wheelEvent(120, canvas.Point{}, pointer.ModMeta))

	if ed.camera.Y != -120 {
		t.Errorf("camera.Y = %v, want -120", ed.camera.Y)
	}
}

func TestCtrlWinsOverShift(t *testing.T) {
	ed := &wheelEditor{camera: canvas.Camera{Zoom: 1}}
	r := NewRemapper(ed, DefaultConfig())

	r.Handle(wheelEvent(120, canvas.Point{}, pointer.ModCtrl|pointer.ModShift))

	if ed.camera.X != 0 {
		t.Errorf("camera.X = %v, want 0 (vertical pan wins)", ed.camera.X)
	}
	if ed.camera.Y != -120 {
		t.Errorf("camera.Y = %v, want -120", ed.camera.Y)
	}
}

func TestNonWheelEventsAreDelegated(t *testing.T) {
	ed := &wheelEditor{camera: canvas.Camera{Zoom: 1}}
	r := NewRemapper(ed, DefaultConfig())

	ev := pointer.Event{Phase: pointer.PhaseMove, Position: canvas.Point{X: 1, Y: 1}}
	if v := r.Handle(ev); v != pointer.VerdictDelegated {
		t.Errorf("verdict = %v, want delegated", v)
	}
	if ed.camSets != 0 {
		t.Errorf("SetCamera called %d times, want 0", ed.camSets)
	}
}
