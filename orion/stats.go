package orion

import (
	"log/slog"
	"maps"
	"slices"
	"time"
)

// EventStats counts the events dispatched by the event loop.
type EventStats struct {
	Count  uint64
	ByKind map[string]uint64

	// time between the first and the last dispatched event
	Duration time.Duration

	// longest time the loop spent waiting for a single event
	MaxWait time.Duration

	firstTime time.Time
}

func (s *EventStats) record(kind string, now time.Time, waited time.Duration) {
	if s.ByKind == nil {
		s.ByKind = map[string]uint64{}
	}

	if s.Count == 0 {
		s.firstTime = now
	}

	s.Count += 1
	s.ByKind[kind] += 1
	s.Duration = now.Sub(s.firstTime)
	s.MaxWait = max(s.MaxWait, waited)
}

func (s EventStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Uint64("count", s.Count),
		slog.Duration("duration", s.Duration),
		slog.Duration("maxWait", s.MaxWait),
	}

	for _, kind := range slices.Sorted(maps.Keys(s.ByKind)) {
		attrs = append(attrs, slog.Uint64(kind, s.ByKind[kind]))
	}

	return slog.GroupValue(attrs...)
}
