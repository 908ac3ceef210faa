package internal

import "github.com/AnatoleLucet/blaze/surface"

// Listener is an event handler carried by an element description.
// Its identity (the pointer) decides whether a subscription changed between renders.
type Listener struct {
	fn func(surface.Event)
}

func NewListener(fn func(surface.Event)) *Listener {
	return &Listener{fn: fn}
}

func (l *Listener) Call(ev surface.Event) {
	if l != nil && l.fn != nil {
		l.fn(ev)
	}
}

// boundListener is what the runtime hands to the surface.
// It is a comparable value: binding the same listener twice yields equal values,
// which lets surfaces remove a subscription by equality.
type boundListener struct {
	rt *Runtime
	l  *Listener
}

func (b boundListener) HandleEvent(ev surface.Event) {
	// every event is a turn of its own, updates dispatched by the handler are
	// flushed once it returns
	err := b.rt.Batch(func() { b.l.Call(ev) })
	if err != nil {
		b.rt.reportError(err)
	}
}
