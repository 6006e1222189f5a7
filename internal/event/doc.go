// Package event provides a capture-phase event dispatcher.
//
// The host canvas editor registers its own handlers at the target phase;
// the input layer registers at the capture phase, which runs first. A
// capture listener that stops propagation prevents every later listener
// from seeing the event; this is how the input layer consumes events
// before the host can interpret them.
//
//	bus := event.NewBus()
//	bus.SubscribeCapture(func(ev pointer.Event, prop *event.Propagation) {
//	    if router.HandleEvent(ev) == pointer.VerdictConsumed {
//	        prop.Stop()
//	    }
//	})
//	bus.Subscribe(hostHandler)
//	bus.Dispatch(ev)
//
// Dispatch is synchronous and single-threaded: listeners run in
// registration order within their phase, on the caller's goroutine. A
// panicking listener is recovered so one bad handler cannot take down the
// event loop; propagation continues past it.
package event
