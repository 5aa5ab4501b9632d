//go:build linux

package evdev

import (
	"testing"
	"time"

	input "github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/require"
)

func TestAcceptFiltersEvents(t *testing.T) {
	l := newListener(Config{Debounce: 100 * time.Millisecond})
	now := time.Now()

	require.False(t, l.accept(&input.InputEvent{Type: input.EV_KEY, Code: input.EvCode(KeyBack), Value: 0}, now), "release")
	require.False(t, l.accept(&input.InputEvent{Type: input.EV_KEY, Code: input.EvCode(KeyBack), Value: 2}, now), "repeat")
	require.False(t, l.accept(&input.InputEvent{Type: input.EV_KEY, Code: input.EvCode(BtnEast), Value: 1}, now), "not configured")
	require.False(t, l.accept(&input.InputEvent{Type: input.EV_SYN, Code: input.EvCode(KeyBack), Value: 1}, now), "not a key")

	require.True(t, l.accept(&input.InputEvent{Type: input.EV_KEY, Code: input.EvCode(KeyBack), Value: 1}, now))
	require.False(t, l.accept(&input.InputEvent{Type: input.EV_KEY, Code: input.EvCode(KeyEsc), Value: 1}, now.Add(50*time.Millisecond)), "debounced")
	require.True(t, l.accept(&input.InputEvent{Type: input.EV_KEY, Code: input.EvCode(KeyEsc), Value: 1}, now.Add(150*time.Millisecond)))
}

func TestCustomCodes(t *testing.T) {
	l := newListener(Config{Codes: []uint16{BtnEast}})
	now := time.Now()

	require.False(t, l.accept(&input.InputEvent{Type: input.EV_KEY, Code: input.EvCode(KeyBack), Value: 1}, now))
	require.True(t, l.accept(&input.InputEvent{Type: input.EV_KEY, Code: input.EvCode(BtnEast), Value: 1}, now))
}
