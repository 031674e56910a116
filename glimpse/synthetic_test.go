package glimpse

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/mobile/event/key"
)

func TestSyntheticSourceReplaysInOrder(t *testing.T) {
	escape := KeyboardInput{Code: key.CodeEscape, Direction: key.DirPress}
	src := NewSyntheticSource(escape, CloseRequested{})

	ev, err := src.WaitEvent(true)
	require.NoError(t, err)
	require.Equal(t, escape, ev)

	ev, err = src.WaitEvent(false)
	require.NoError(t, err)
	require.Equal(t, CloseRequested{}, ev)

	require.Zero(t, src.Len())
}

func TestSyntheticSourceWhenEmpty(t *testing.T) {
	src := NewSyntheticSource()

	ev, err := src.WaitEvent(false)
	require.ErrorIs(t, err, ErrDrained)
	require.Nil(t, ev)

	ev, err = src.WaitEvent(true)
	require.ErrorIs(t, err, ErrDrained)
	require.Nil(t, ev)

	src.Push(RedrawRequested{})

	ev, err = src.WaitEvent(true)
	require.NoError(t, err)
	require.Equal(t, RedrawRequested{}, ev)
}
