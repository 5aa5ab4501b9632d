//go:build linux

package evdev

import (
	"fmt"
	"sync"
	"time"

	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/constants"
	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/internal"
	input "github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

const keyPressed = 1

// Listener reads back key presses from an input device.
type Listener struct {
	device   *input.InputDevice
	codes    map[input.EvCode]struct{}
	debounce debouncer
	signals  chan struct{}
	wg       sync.WaitGroup
	closed   atomic.Bool
}

// Open opens the device and starts reading it.
func Open(cfg Config) (*Listener, error) {
	device, err := input.Open(cfg.DevicePath)
	if err != nil {
		return nil, fmt.Errorf("evdev: open %s: %w", cfg.DevicePath, err)
	}

	l := newListener(cfg)
	l.device = device

	l.wg.Add(1)
	go l.run()

	internal.GetInternalLogger().Debug("Listening for back key", "device", cfg.DevicePath, "codes", cfg.Codes)
	return l, nil
}

func newListener(cfg Config) *Listener {
	codes := cfg.Codes
	if len(codes) == 0 {
		codes = []uint16{KeyBack, KeyEsc}
	}

	window := cfg.Debounce
	if window == 0 {
		window = constants.DefaultBackDebounce
	}

	l := &Listener{
		codes:    make(map[input.EvCode]struct{}, len(codes)),
		debounce: debouncer{window: window},
		signals:  make(chan struct{}, 1),
	}
	for _, c := range codes {
		l.codes[input.EvCode(c)] = struct{}{}
	}
	return l
}

// Signals delivers one value per accepted back press. It is closed when
// the listener stops.
func (l *Listener) Signals() <-chan struct{} {
	return l.signals
}

// Close stops reading and closes the device.
func (l *Listener) Close() error {
	if !l.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := l.device.Close()
	l.wg.Wait()
	return err
}

func (l *Listener) run() {
	defer l.wg.Done()
	defer close(l.signals)

	for {
		ev, err := l.device.ReadOne()
		if err != nil {
			if !l.closed.Load() {
				internal.GetInternalLogger().Error("Failed to read input device", "error", err)
			}
			return
		}

		if l.accept(ev, time.Now()) {
			select {
			case l.signals <- struct{}{}:
			default:
				// The host has not consumed the previous press yet.
			}
		}
	}
}

func (l *Listener) accept(ev *input.InputEvent, now time.Time) bool {
	if ev.Type != input.EV_KEY || ev.Value != keyPressed {
		return false
	}
	if _, ok := l.codes[ev.Code]; !ok {
		return false
	}
	return l.debounce.accept(now)
}
