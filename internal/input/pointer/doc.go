// Package pointer defines the raw input event model consumed by the
// input layer.
//
// Events carry float64 screen coordinates because the host canvas reports
// sub-pixel pointer positions and zoom is fractional.
//
// # Events
//
// An Event describes one pointer, wheel, or context-menu occurrence:
//
//	ev := pointer.Event{
//	    Phase:     pointer.PhaseDown,
//	    Button:    pointer.ButtonRight,
//	    Position:  canvas.Point{X: 100, Y: 50},
//	    Modifiers: pointer.ModNone,
//	    PointerID: 1,
//	    Timestamp: time.Now(),
//	}
//
// # Verdicts
//
// Every intercepted event receives exactly one Verdict: Consumed (the
// host never sees it) or Delegated (the host processes it with its own
// logic). There is no third state; deterministic ownership is the core
// discipline of the input layer.
package pointer
