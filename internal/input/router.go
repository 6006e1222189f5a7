package input

import (
	"github.com/dshills/inkstorm/internal/host"
	"github.com/dshills/inkstorm/internal/input/gesture"
	"github.com/dshills/inkstorm/internal/input/pointer"
	"github.com/dshills/inkstorm/internal/input/wheel"
)

// Config aggregates the tunables of both input handlers.
type Config struct {
	// Gesture configures right-button disambiguation.
	Gesture gesture.Config

	// Wheel configures scroll remapping.
	Wheel wheel.Config
}

// DefaultConfig returns the default input configuration.
func DefaultConfig() Config {
	return Config{
		Gesture: gesture.DefaultConfig(),
		Wheel:   wheel.DefaultConfig(),
	}
}

// Router routes raw events to the gesture arbiter or the wheel remapper.
// Not safe for concurrent use; events must arrive in platform delivery
// order on a single goroutine.
type Router struct {
	arbiter  *gesture.Arbiter
	remapper *wheel.Remapper
}

// NewRouter creates a router driving the given host editor.
func NewRouter(editor host.Editor, config Config) *Router {
	return &Router{
		arbiter:  gesture.NewArbiter(editor, config.Gesture),
		remapper: wheel.NewRemapper(editor, config.Wheel),
	}
}

// HandleEvent processes one raw event and returns its ownership verdict.
// Wheel events go to the remapper; everything else goes to the arbiter.
func (r *Router) HandleEvent(ev pointer.Event) pointer.Verdict {
	if ev.Phase == pointer.PhaseWheel {
		return r.remapper.Handle(ev)
	}
	return r.arbiter.Handle(ev)
}

// ApplyConfig swaps in new tunables. A gesture session in flight keeps
// decisions it has already made; new thresholds apply from the next
// decision point.
func (r *Router) ApplyConfig(config Config) {
	r.arbiter.SetConfig(config.Gesture)
	r.remapper.SetConfig(config.Wheel)
}

// GestureState exposes the arbiter state machine for diagnostics.
func (r *Router) GestureState() gesture.State {
	return r.arbiter.State()
}
