package backsignal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignalNewestFirst(t *testing.T) {
	d := NewDispatcher()
	var calls []string

	d.Subscribe(func() bool {
		calls = append(calls, "outer")
		return true
	})
	d.Subscribe(func() bool {
		calls = append(calls, "inner")
		return false
	})

	require.True(t, d.Signal())
	require.Equal(t, []string{"inner", "outer"}, calls)
}

func TestSignalStopsAtFirstConsumer(t *testing.T) {
	d := NewDispatcher()
	outer := 0

	d.Subscribe(func() bool { outer++; return true })
	d.Subscribe(func() bool { return true })

	require.True(t, d.Signal())
	require.Zero(t, outer)
}

func TestReleaseRemovesHandler(t *testing.T) {
	d := NewDispatcher()
	calls := 0

	release := d.Subscribe(func() bool { calls++; return true })
	require.Equal(t, 1, d.Len())

	release()
	release()
	require.Zero(t, d.Len())
	require.False(t, d.Signal())
	require.Zero(t, calls)
}

func TestReleaseSelfDuringSignal(t *testing.T) {
	d := NewDispatcher()
	var release func()
	outer := 0

	d.Subscribe(func() bool { outer++; return true })
	release = d.Subscribe(func() bool {
		release()
		return false
	})

	require.True(t, d.Signal())
	require.Equal(t, 1, outer)
	require.Equal(t, 1, d.Len())
}

func TestReleaseOtherDuringSignal(t *testing.T) {
	d := NewDispatcher()
	older := 0

	releaseOlder := d.Subscribe(func() bool { older++; return true })
	d.Subscribe(func() bool {
		releaseOlder()
		return false
	})

	require.False(t, d.Signal())
	require.Zero(t, older)
	require.Equal(t, 1, d.Len())
}

func TestSubscribeDuringSignalWaitsForNext(t *testing.T) {
	d := NewDispatcher()
	late := 0

	d.Subscribe(func() bool {
		d.Subscribe(func() bool { late++; return true })
		return false
	})

	require.False(t, d.Signal())
	require.Zero(t, late)

	require.True(t, d.Signal())
	require.Equal(t, 1, late)
}
