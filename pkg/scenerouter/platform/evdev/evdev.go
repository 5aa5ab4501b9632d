// Package evdev turns a hardware back key on a Linux input device into
// back signals.
//
// The device is read on its own goroutine. Presses are only delivered over
// a channel; the host's event loop receives from it and calls
// backsignal.Dispatcher.Signal itself, so navigation stays on one goroutine:
//
//	l, err := evdev.Open(evdev.Config{DevicePath: "/dev/input/event1"})
//	if err != nil {
//	    return err
//	}
//	defer l.Close()
//
//	for range l.Signals() {
//	    if !back.Signal() {
//	        break
//	    }
//	}
package evdev

import (
	"errors"
	"time"
)

// ErrUnsupported is returned by Open on platforms without evdev.
var ErrUnsupported = errors.New("evdev: not supported on this platform")

// Key codes from linux/input-event-codes.h that mean "back" on common
// handhelds and keyboards.
const (
	KeyEsc  uint16 = 1
	KeyBack uint16 = 158
	BtnEast uint16 = 0x131 // B on most gamepads
)

// Config configures a Listener.
type Config struct {
	DevicePath string        // e.g. /dev/input/event1
	Codes      []uint16      // Key codes treated as back; KeyBack and KeyEsc when empty
	Debounce   time.Duration // Presses closer together than this are dropped; constants.DefaultBackDebounce when zero
}

// debouncer drops presses that arrive too soon after the last accepted one.
type debouncer struct {
	window time.Duration
	last   time.Time
}

func (d *debouncer) accept(now time.Time) bool {
	if !d.last.IsZero() && now.Sub(d.last) < d.window {
		return false
	}
	d.last = now
	return true
}
