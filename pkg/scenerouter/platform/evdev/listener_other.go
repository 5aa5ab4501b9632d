//go:build !linux

package evdev

// Listener is unavailable outside Linux.
type Listener struct {
	signals chan struct{}
}

// Open always fails with ErrUnsupported.
func Open(cfg Config) (*Listener, error) {
	return nil, ErrUnsupported
}

func (l *Listener) Signals() <-chan struct{} {
	return l.signals
}

func (l *Listener) Close() error {
	return nil
}
