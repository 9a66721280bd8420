package ingest

// Rule matches a tag by key and, optionally, by value.
// An empty Values list matches any value of Key.
type Rule struct {
	Key    string
	Values []string
}

// Match reports whether tags satisfy r.
func (r Rule) Match(tags map[string]string) bool {
	v, ok := tags[r.Key]
	if !ok {
		return false
	}
	if len(r.Values) == 0 {
		return true
	}
	for _, want := range r.Values {
		if v == want {
			return true
		}
	}

	return false
}

// Classifier maps tags to routing and station flags. Each list matches when
// any of its rules does.
type Classifier struct {
	// Route marks a way as part of the pedestrian network.
	Route []Rule

	// Station marks a node, or every node of a way, as a station.
	Station []Rule

	// Proposed qualifies a station as not yet operational.
	Proposed []Rule
}

// DefaultClassifier routes every highway and recognizes subway entrances
// and subway stations, with proposed or under-construction lines flagged.
func DefaultClassifier() Classifier {
	return Classifier{
		Route: []Rule{{Key: "highway"}},
		Station: []Rule{
			{Key: "railway", Values: []string{"subway_entrance"}},
			{Key: "station", Values: []string{"subway"}},
		},
		Proposed: []Rule{
			{Key: "proposed"},
			{Key: "railway", Values: []string{"proposed", "construction"}},
		},
	}
}

// Class is the classification of one object.
type Class struct {
	Route    bool
	Station  bool
	Proposed bool // only set together with Station
}

// Classify applies c to tags.
func (c Classifier) Classify(tags map[string]string) Class {
	var cl Class
	cl.Route = matchAny(c.Route, tags)
	cl.Station = matchAny(c.Station, tags)
	cl.Proposed = cl.Station && matchAny(c.Proposed, tags)

	return cl
}

func matchAny(rules []Rule, tags map[string]string) bool {
	for _, r := range rules {
		if r.Match(tags) {
			return true
		}
	}

	return false
}
