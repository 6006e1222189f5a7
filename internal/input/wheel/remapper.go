package wheel

import (
	"github.com/dshills/inkstorm/internal/canvas"
	"github.com/dshills/inkstorm/internal/host"
	"github.com/dshills/inkstorm/internal/input/pointer"
)

// Config configures wheel remapping.
type Config struct {
	// ZoomIn is the zoom factor for one wheel step toward the user.
	ZoomIn float64

	// ZoomOut is the zoom factor for one wheel step away from the user.
	ZoomOut float64

	// MinZoom is the lower zoom bound.
	MinZoom float64

	// MaxZoom is the upper zoom bound.
	MaxZoom float64

	// PanScale converts wheel delta units to screen pixels for the
	// modifier pan modes.
	PanScale float64
}

// DefaultConfig returns the default wheel behavior.
func DefaultConfig() Config {
	return Config{
		ZoomIn:   1.1,
		ZoomOut:  0.9,
		MinZoom:  canvas.MinZoom,
		MaxZoom:  canvas.MaxZoom,
		PanScale: 1.0,
	}
}

// Remapper translates wheel events into camera mutations. Stateless apart
// from its configuration; one facade camera-set call per event.
type Remapper struct {
	config Config
	editor host.Editor
}

// NewRemapper creates a remapper driving the given host editor.
func NewRemapper(editor host.Editor, config Config) *Remapper {
	return &Remapper{
		config: config,
		editor: editor,
	}
}

// SetConfig replaces the remapper configuration.
func (r *Remapper) SetConfig(config Config) {
	r.config = config
}

// Handle processes one wheel event. Wheel events are always consumed;
// anything else is delegated untouched.
func (r *Remapper) Handle(ev pointer.Event) pointer.Verdict {
	if ev.Phase != pointer.PhaseWheel {
		return pointer.VerdictDelegated
	}

	cam := r.editor.Camera()

	switch {
	case ev.Modifiers.HasCtrl() || ev.Modifiers.HasMeta():
		cam = cam.Translated(0, -ev.WheelDelta.Y*r.config.PanScale/cam.Zoom)

	case ev.Modifiers.HasShift():
		cam = cam.Translated(ev.WheelDelta.Y*r.config.PanScale/cam.Zoom, 0)

	default:
		factor := r.config.ZoomOut
		if ev.WheelDelta.Y < 0 {
			factor = r.config.ZoomIn
		}
		zoom := canvas.ClampZoom(cam.Zoom*factor, r.config.MinZoom, r.config.MaxZoom)
		cam = cam.ZoomedToPoint(ev.Position, zoom)
	}

	r.editor.SetCamera(cam)
	return pointer.VerdictConsumed
}
