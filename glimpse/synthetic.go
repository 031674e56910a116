package glimpse

// SyntheticSource replays a fixed list of events. It stands in for a
// real window where no display is available, e.g. in tests.
type SyntheticSource struct {
	events []Event
}

var _ EventSource = (*SyntheticSource)(nil)

func NewSyntheticSource(events ...Event) *SyntheticSource {
	return &SyntheticSource{events: events}
}

// Push appends more events to the end of the queue.
func (s *SyntheticSource) Push(events ...Event) {
	s.events = append(s.events, events...)
}

func (s *SyntheticSource) Len() int {
	return len(s.events)
}

func (s *SyntheticSource) WaitEvent(block bool) (Event, error) {
	if len(s.events) == 0 {
		// nothing will ever arrive, a real window would block or
		// report an empty queue here
		return nil, ErrDrained
	}

	ev := s.events[0]
	s.events = s.events[1:]

	return ev, nil
}
