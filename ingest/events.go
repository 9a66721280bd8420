package ingest

// Event is a decoded map object. The set of implementations is closed:
// NodeEvent and WayEvent.
type Event interface {
	isEvent()
}

// NodeEvent is a geospatial point.
type NodeEvent struct {
	ID   int64
	Lat  float64
	Lon  float64
	Tags map[string]string
}

// WayEvent is an ordered chain of node ids.
type WayEvent struct {
	ID   int64
	Tags map[string]string
	Refs []int64
}

func (NodeEvent) isEvent() {}
func (WayEvent) isEvent()  {}
