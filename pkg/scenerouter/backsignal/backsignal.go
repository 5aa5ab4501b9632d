// Package backsignal models the host's "back requested" signal.
//
// The host delivers a zero-argument signal; interested parties subscribe a
// Handler and release the subscription when they go away. Handlers run
// newest first and delivery stops at the first handler that consumes the
// signal, so the most recently mounted router gets the first say.
package backsignal

// Handler reacts to a back signal. It returns true when it consumed the
// signal.
type Handler func() bool

// Source is anything a Handler can be subscribed to. The returned release
// function removes the subscription and is safe to call more than once.
type Source interface {
	Subscribe(h Handler) (release func())
}

type subscription struct {
	handler  Handler
	released bool
}

// Dispatcher is an in-process Source. It is not safe for concurrent use;
// deliver signals from the same goroutine that dispatches navigation.
type Dispatcher struct {
	subs []*subscription
}

// NewDispatcher creates a Dispatcher with no subscribers.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe adds h on top of the existing handlers.
func (d *Dispatcher) Subscribe(h Handler) func() {
	sub := &subscription{handler: h}
	d.subs = append(d.subs, sub)

	return func() {
		if sub.released {
			return
		}
		sub.released = true
		for i, s := range d.subs {
			if s == sub {
				d.subs = append(d.subs[:i:i], d.subs[i+1:]...)
				return
			}
		}
	}
}

// Signal delivers one back signal. It reports whether any handler consumed
// it; false means the host should apply its default (usually exiting).
//
// Handlers subscribed while the signal is delivered wait for the next one.
// Handlers released while it is delivered are not called.
func (d *Dispatcher) Signal() bool {
	subs := append([]*subscription(nil), d.subs...)
	for i := len(subs) - 1; i >= 0; i-- {
		if subs[i].released {
			continue
		}
		if subs[i].handler() {
			return true
		}
	}
	return false
}

// Len returns the number of live subscriptions.
func (d *Dispatcher) Len() int {
	return len(d.subs)
}
