package mesh

import (
	"fmt"
	"image/color"
)

// Band is a walking-distance class.
type Band int

const (
	Good    Band = iota // within a third of the cutoff
	Average             // within two thirds
	Bad                 // below the cutoff
	Remote              // at or beyond the cutoff
)

func (b Band) String() string {
	switch b {
	case Good:
		return "good"
	case Average:
		return "average"
	case Bad:
		return "bad"
	case Remote:
		return "remote"
	}
	return fmt.Sprintf("Band(%d)", int(b))
}

// Map colours.
var (
	ColorGood    = color.RGBA{0x00, 0xff, 0x00, 0xff}
	ColorAverage = color.RGBA{0xff, 0xe0, 0x20, 0xff}
	ColorBad     = color.RGBA{0xff, 0x20, 0x20, 0xff}
	ColorRemote  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColorRoad    = color.RGBA{0xb0, 0xb0, 0xb0, 0xff}
	ColorStation = color.RGBA{0x10, 0x10, 0xff, 0xff}
)

// Classify places distance d into a band relative to cutoff.
func Classify(d, cutoff float64) Band {
	switch {
	case d <= cutoff/3:
		return Good
	case d <= 2*cutoff/3:
		return Average
	case d < cutoff:
		return Bad
	}

	return Remote
}

// Color returns the fill colour of b.
func (b Band) Color() color.RGBA {
	switch b {
	case Good:
		return ColorGood
	case Average:
		return ColorAverage
	case Bad:
		return ColorBad
	}

	return ColorRemote
}

// Mix averages three colours channel by channel, truncating.
func Mix(a, b, c color.RGBA) color.RGBA {
	avg := func(x, y, z uint8) uint8 { return uint8((uint16(x) + uint16(y) + uint16(z)) / 3) }

	return color.RGBA{
		R: avg(a.R, b.R, c.R),
		G: avg(a.G, b.G, c.G),
		B: avg(a.B, b.B, c.B),
		A: avg(a.A, b.A, c.A),
	}
}

// FaceColor returns the fill colour of face i: the mix of its vertex bands.
func (m *Mesh) FaceColor(i int, cutoff float64) color.RGBA {
	f := m.Faces[i]

	return Mix(
		Classify(m.Points[f[0]].D, cutoff).Color(),
		Classify(m.Points[f[1]].D, cutoff).Color(),
		Classify(m.Points[f[2]].D, cutoff).Color(),
	)
}

// Histogram counts points per band.
func (m *Mesh) Histogram(cutoff float64) map[Band]int {
	h := make(map[Band]int, 4)
	for _, p := range m.Points {
		h[Classify(p.D, cutoff)]++
	}

	return h
}
