package router

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	s := NewStack()
	require.True(t, s.IsEmpty())

	_, ok := s.Pop()
	require.False(t, ok)

	s.Push("A")
	s.Push("B")
	s.Push("A")
	require.Equal(t, 3, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, "A", top)

	require.True(t, s.RemoveLast("B"))
	require.False(t, s.RemoveLast("C"))
	require.Equal(t, []string{"A", "A"}, s.Entries())

	id, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, "A", id)

	s.Push("B")
	require.Equal(t, 1, s.RemoveAll("A"))
	require.Equal(t, []string{"B"}, s.Entries())

	s.Clear()
	require.True(t, s.IsEmpty())
}

func TestRegistryUnregisterDropsActivations(t *testing.T) {
	reg := NewRegistry()
	r := newRouter(t, reg, "A", "Home")

	reg.Activate("A")
	reg.Activate("B")
	reg.Activate("A")

	found, ok := reg.Lookup("A")
	require.True(t, ok)
	require.Same(t, r, found)

	reg.Unregister("A")
	require.Equal(t, []string{"B"}, reg.Active())
	_, ok = reg.Lookup("A")
	require.False(t, ok)

	top, ok := reg.Top()
	require.True(t, ok)
	require.Equal(t, "B", top)
}
