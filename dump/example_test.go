package dump_test

import (
	"os"

	"github.com/katalvlaran/stationreach/core"
	"github.com/katalvlaran/stationreach/dump"
)

// ExampleDump writes two components and a station marker.
func ExampleDump() {
	s := core.NewStore()
	a, _ := s.Create(1, 0, 0)
	b, _ := s.Create(2, 30, 40)
	c, _ := s.Create(3, 500, 0)
	d, _ := s.Create(4, 500, 10)
	_, _ = s.AddEdge(a, b)
	_, _ = s.AddEdge(c, d)
	_ = s.MarkStation(a, false)
	s.Node(b).Distance = 50
	s.Node(c).Distance = 1000
	s.Node(d).Distance = 1000

	ts := dump.NewTextSink(os.Stdout)
	_, _ = dump.Dump(s, ts)
	_ = ts.Flush()

	// Output:
	// #STATION 0 0 0 # 1
	// 0 0 0 # 1
	// 30 40 50 # 2
	//
	// # new net
	//
	// 500 0 1000 # 3
	// 500 10 1000 # 4
}
