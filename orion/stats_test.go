package orion

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEventStatsRecord(t *testing.T) {
	var stats EventStats

	start := time.Unix(100, 0)
	stats.record("keyboardInput", start, 5*time.Millisecond)
	stats.record("cursorMoved", start.Add(time.Second), 20*time.Millisecond)
	stats.record("keyboardInput", start.Add(3*time.Second), time.Millisecond)

	require.Equal(t, uint64(3), stats.Count)
	require.Equal(t, uint64(2), stats.ByKind["keyboardInput"])
	require.Equal(t, uint64(1), stats.ByKind["cursorMoved"])
	require.Equal(t, 3*time.Second, stats.Duration)
	require.Equal(t, 20*time.Millisecond, stats.MaxWait)
}

func TestEventStatsLogValueIsSorted(t *testing.T) {
	var stats EventStats

	now := time.Unix(100, 0)
	for _, kind := range []string{"scrolled", "closeRequested", "mouseInput", "cursorMoved", "focused"} {
		stats.record(kind, now, 0)
	}

	var first string
	for run := 0; run < 10; run++ {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if len(groups) == 0 && a.Key == slog.TimeKey {
					return slog.Attr{}
				}
				return a
			},
		}))

		logger.Info("done", slog.Any("events", stats))

		if run == 0 {
			first = buf.String()
			continue
		}

		require.Equal(t, first, buf.String())
	}

	idx := func(s string) int { return strings.Index(first, s) }
	require.Contains(t, first, "events.count=5")
	for _, kind := range []string{"closeRequested", "cursorMoved", "focused", "mouseInput", "scrolled"} {
		require.Contains(t, first, "events."+kind+"=1")
	}

	require.Less(t, idx("events.closeRequested=1"), idx("events.cursorMoved=1"))
	require.Less(t, idx("events.cursorMoved=1"), idx("events.focused=1"))
	require.Less(t, idx("events.focused=1"), idx("events.mouseInput=1"))
	require.Less(t, idx("events.mouseInput=1"), idx("events.scrolled=1"))
}
