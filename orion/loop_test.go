package orion

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/oliverbestmann/triangle/glimpse"
	"github.com/oliverbestmann/triangle/glm"
	"github.com/stretchr/testify/require"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

var (
	escapePress   = glimpse.KeyboardInput{Code: key.CodeEscape, Direction: key.DirPress}
	escapeRelease = glimpse.KeyboardInput{Code: key.CodeEscape, Direction: key.DirRelease}
)

func TestRunLoopIdle(t *testing.T) {
	logger, buf := captureLogger()

	state, err := RunLoop(glimpse.NewSyntheticSource(), LoopOptions{Logger: logger})
	require.ErrorIs(t, err, glimpse.ErrDrained)
	require.Equal(t, ControlFlowWait, state.Flow)
	require.Zero(t, state.Stats.Count)
	require.Empty(t, buf.String())
}

func TestRunLoopExitsOnCloseRequest(t *testing.T) {
	logger, buf := captureLogger()

	src := glimpse.NewSyntheticSource(
		glimpse.CursorMoved{Position: glm.Vec2d{1, 2}},
		glimpse.CloseRequested{},
		glimpse.RedrawRequested{},
	)

	state, err := RunLoop(src, LoopOptions{Logger: logger})
	require.NoError(t, err)
	require.Equal(t, ControlFlowExit, state.Flow)
	require.Equal(t, uint64(2), state.Stats.Count)
	require.Equal(t, 1, src.Len(), "events after the close request stay queued")
	require.Contains(t, buf.String(), "Close requested")
}

func TestRunLoopEscapeExit(t *testing.T) {
	logger, buf := captureLogger()

	src := glimpse.NewSyntheticSource(escapePress, escapeRelease)

	state, err := RunLoop(src, LoopOptions{Logger: logger, Escape: EscapeExit})
	require.NoError(t, err)
	require.Equal(t, ControlFlowExit, state.Flow)

	output := buf.String()
	require.Contains(t, output, "Keyboard input")
	require.Contains(t, output, "Escape key pressed!")
	require.NotContains(t, output, "Escape key released!")
}

func TestRunLoopEscapeLogOnly(t *testing.T) {
	logger, buf := captureLogger()

	src := glimpse.NewSyntheticSource(escapePress, escapeRelease)

	state, err := RunLoop(src, LoopOptions{Logger: logger, Escape: EscapeLog})
	require.ErrorIs(t, err, glimpse.ErrDrained)
	require.Equal(t, ControlFlowWait, state.Flow)

	output := buf.String()
	require.Contains(t, output, "Escape key pressed!")
	require.Contains(t, output, "Escape key released!")
}

func TestRunLoopPollKeepsPolling(t *testing.T) {
	logger, _ := captureLogger()

	src := glimpse.NewSyntheticSource(glimpse.Focused{Focused: true})

	state, err := RunLoop(src, LoopOptions{Logger: logger, ControlFlow: ControlFlowPoll})
	require.ErrorIs(t, err, glimpse.ErrDrained)
	require.Equal(t, ControlFlowPoll, state.Flow)
	require.Equal(t, uint64(1), state.Stats.ByKind["focused"])
}

func TestRunLoopRejectsExitAsStartFlow(t *testing.T) {
	_, err := RunLoop(glimpse.NewSyntheticSource(), LoopOptions{ControlFlow: ControlFlowExit})
	require.Error(t, err)
}

func TestDispatchNeverExitsWithoutCloseOrEscape(t *testing.T) {
	logger, _ := captureLogger()

	events := []glimpse.Event{
		glimpse.KeyboardInput{Code: key.CodeA, Direction: key.DirPress},
		glimpse.KeyboardInput{Code: key.CodeA, Direction: key.DirRelease},
		escapeRelease,
		glimpse.MouseInput{Button: mouse.ButtonLeft, Direction: mouse.DirPress},
		glimpse.MouseInput{Button: mouse.ButtonLeft, Direction: mouse.DirRelease},
		glimpse.CursorMoved{Position: glm.Vec2d{10, 20}},
		glimpse.Moved{Position: glm.Vec2i{5, 5}},
		glimpse.Iconified{Iconified: true},
		glimpse.Scrolled{Offset: glm.Vec2d{0, 1}},
		glimpse.ReceivedCharacter{Char: 'a'},
		glimpse.RedrawRequested{},
	}

	for _, policy := range []EscapePolicy{EscapeExit, EscapeLog} {
		dispatcher := &Dispatcher{Logger: logger, Escape: policy}

		flow := ControlFlowWait
		for _, ev := range events {
			dispatcher.Dispatch(ev, &flow)
			require.NotEqual(t, ControlFlowExit, flow, "%s after %#v", policy, ev)
		}
	}
}

func TestDispatchLogsEveryEvent(t *testing.T) {
	logger, buf := captureLogger()
	dispatcher := &Dispatcher{Logger: logger}

	flow := ControlFlowWait
	dispatcher.Dispatch(glimpse.MouseInput{Button: mouse.ButtonRight, Direction: mouse.DirPress}, &flow)
	dispatcher.Dispatch(glimpse.CursorMoved{Position: glm.Vec2d{12.5, 40}}, &flow)
	dispatcher.Dispatch(glimpse.Focused{Focused: false}, &flow)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	require.Contains(t, lines[0], `msg="Mouse input" button=right state=pressed`)
	require.Contains(t, lines[1], `position="(12.5, 40)"`)
	require.Contains(t, lines[2], "kind=focused")
	require.Contains(t, lines[2], `event=Focused(false)`)
}

func TestDispatchCloseAlwaysExits(t *testing.T) {
	logger, _ := captureLogger()

	for _, start := range []ControlFlow{ControlFlowWait, ControlFlowPoll} {
		flow := start
		(&Dispatcher{Logger: logger}).Dispatch(glimpse.CloseRequested{}, &flow)
		require.Equal(t, ControlFlowExit, flow)
	}
}
