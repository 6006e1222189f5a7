package event

import (
	"github.com/dshills/inkstorm/internal/input/pointer"
)

// Propagation carries the propagation state of one dispatch.
type Propagation struct {
	stopped bool
}

// Stop prevents all later listeners from receiving the event.
func (p *Propagation) Stop() {
	p.stopped = true
}

// Stopped returns true if propagation has been stopped.
func (p *Propagation) Stopped() bool {
	return p.stopped
}

// HandlerFunc receives an event and the dispatch's propagation state.
type HandlerFunc func(ev pointer.Event, prop *Propagation)

// Token identifies a subscription for removal.
type Token int

type registration struct {
	token   Token
	handler HandlerFunc
}

// Bus dispatches events through a capture phase followed by a target
// phase. Not safe for concurrent use; subscription and dispatch happen on
// the single input goroutine.
type Bus struct {
	capture []registration
	target  []registration
	next    Token

	// PanicHandler is called when a listener panics. Nil means panics
	// are recovered silently.
	PanicHandler func(ev pointer.Event, panicValue any)
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// SubscribeCapture registers a listener in the capture phase. Capture
// listeners run before target listeners, in registration order.
func (b *Bus) SubscribeCapture(handler HandlerFunc) Token {
	b.next++
	b.capture = append(b.capture, registration{token: b.next, handler: handler})
	return b.next
}

// Subscribe registers a listener in the target phase.
func (b *Bus) Subscribe(handler HandlerFunc) Token {
	b.next++
	b.target = append(b.target, registration{token: b.next, handler: handler})
	return b.next
}

// Unsubscribe removes a listener by token. Unknown tokens are ignored.
func (b *Bus) Unsubscribe(token Token) {
	b.capture = remove(b.capture, token)
	b.target = remove(b.target, token)
}

func remove(regs []registration, token Token) []registration {
	for i, r := range regs {
		if r.token == token {
			return append(regs[:i], regs[i+1:]...)
		}
	}
	return regs
}

// Dispatch delivers the event through both phases. It returns true if a
// listener stopped propagation (the event was consumed).
func (b *Bus) Dispatch(ev pointer.Event) bool {
	prop := &Propagation{}

	for _, phase := range [][]registration{b.capture, b.target} {
		for _, reg := range phase {
			if prop.Stopped() {
				return true
			}
			b.invoke(reg.handler, ev, prop)
		}
	}

	return prop.Stopped()
}

// invoke runs one listener with panic recovery so a faulty handler cannot
// kill the event loop.
func (b *Bus) invoke(handler HandlerFunc, ev pointer.Event, prop *Propagation) {
	defer func() {
		if r := recover(); r != nil && b.PanicHandler != nil {
			b.PanicHandler(ev, r)
		}
	}()
	handler(ev, prop)
}
