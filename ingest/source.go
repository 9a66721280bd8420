package ingest

// Source yields Events in input order. The calling pattern mirrors
// bufio.Scanner:
//
//	for src.Scan() {
//		ev := src.Event()
//	}
//	if err := src.Err(); err != nil { ... }
type Source interface {
	Scan() bool
	Event() Event
	Err() error
	Close() error
}

// SliceSource replays a fixed list of events.
type SliceSource struct {
	events []Event
	pos    int
}

// NewSliceSource returns a Source over events.
func NewSliceSource(events ...Event) *SliceSource {
	return &SliceSource{events: events, pos: -1}
}

// Scan advances to the next event.
func (s *SliceSource) Scan() bool {
	if s.pos+1 >= len(s.events) {
		s.pos = len(s.events)
		return false
	}
	s.pos++

	return true
}

// Event returns the current event, or nil outside a successful Scan.
func (s *SliceSource) Event() Event {
	if s.pos < 0 || s.pos >= len(s.events) {
		return nil
	}

	return s.events[s.pos]
}

// Err always returns nil.
func (s *SliceSource) Err() error { return nil }

// Close always returns nil.
func (s *SliceSource) Close() error { return nil }
