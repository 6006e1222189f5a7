// Package input wires the gesture arbiter and the wheel remapper in front
// of the host canvas editor.
//
// The Router owns one gesture.Arbiter and one wheel.Remapper. Every raw
// event is classified and handed to exactly one of them, synchronously,
// in platform delivery order; the returned Verdict tells the caller
// whether to stop propagation or let the host's own handlers run.
//
//	router := input.NewRouter(editor, input.DefaultConfig())
//	verdict := router.HandleEvent(ev)
//	if verdict == pointer.VerdictConsumed {
//	    prop.Stop()
//	}
//
// Thresholds are tunable at runtime through ApplyConfig, which the config
// watcher uses for live retuning.
package input
