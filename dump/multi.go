package dump

import "github.com/katalvlaran/stationreach/core"

// multiSink fans every event out to several sinks, in order.
type multiSink []Sink

// Multi returns a Sink that forwards each event to every sink in turn and
// stops at the first error, like io.MultiWriter. Nil sinks are skipped.
func Multi(sinks ...Sink) Sink {
	all := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			all = append(all, s)
		}
	}

	return all
}

func (m multiSink) Station(n *core.Node) error {
	for _, s := range m {
		if err := s.Station(n); err != nil {
			return err
		}
	}
	return nil
}

func (m multiSink) BeginComponent(index int) error {
	for _, s := range m {
		if err := s.BeginComponent(index); err != nil {
			return err
		}
	}
	return nil
}

func (m multiSink) Edge(a, b *core.Node) error {
	for _, s := range m {
		if err := s.Edge(a, b); err != nil {
			return err
		}
	}
	return nil
}
