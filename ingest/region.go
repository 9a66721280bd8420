package ingest

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// ErrBadRegion indicates an empty or out-of-range bounding box, or a
// non-positive Earth radius.
var ErrBadRegion = errors.New("ingest: invalid region")

// Earth radii in meters.
const (
	EquatorialRadius = 6378137.0
	PolarRadius      = 6356752.0
	MeanRadius       = (EquatorialRadius + PolarRadius) / 2
)

// Region is the ingestion bounding box plus the projection parameters.
// Bounds are inclusive.
type Region struct {
	LonMin, LonMax float64
	LatMin, LatMax float64
	EarthRadius    float64
}

// DefaultRegion is the Ciudad Autónoma de Buenos Aires extract.
func DefaultRegion() Region {
	return Region{
		LonMin:      -58.54,
		LonMax:      -58.33,
		LatMin:      -34.71,
		LatMax:      -34.53,
		EarthRadius: MeanRadius,
	}
}

// Validate reports ErrBadRegion for an empty box, coordinates outside the
// WGS84 range, or a non-positive radius.
func (r Region) Validate() error {
	switch {
	case !(r.LonMin < r.LonMax):
		return fmt.Errorf("%w: lon_min %g must be below lon_max %g", ErrBadRegion, r.LonMin, r.LonMax)
	case !(r.LatMin < r.LatMax):
		return fmt.Errorf("%w: lat_min %g must be below lat_max %g", ErrBadRegion, r.LatMin, r.LatMax)
	case r.LonMin < -180 || r.LonMax > 180:
		return fmt.Errorf("%w: longitude outside [-180,180]", ErrBadRegion)
	case r.LatMin < -90 || r.LatMax > 90:
		return fmt.Errorf("%w: latitude outside [-90,90]", ErrBadRegion)
	case !(r.EarthRadius > 0):
		return fmt.Errorf("%w: earth radius %g", ErrBadRegion, r.EarthRadius)
	}

	return nil
}

// Bound returns the box as an orb.Bound in (lon, lat) order.
func (r Region) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.LonMin, r.LatMin},
		Max: orb.Point{r.LonMax, r.LatMax},
	}
}

// Contains reports whether (lat, lon) lies inside the box, edges included.
func (r Region) Contains(lat, lon float64) bool {
	return r.Bound().Contains(orb.Point{lon, lat})
}

// Project maps (lat, lon) to planar meters relative to the box's south-west
// corner. Distances along meridians and along circles of latitude are kept.
func (r Region) Project(lat, lon float64) (x, y float64) {
	degree := r.EarthRadius * math.Pi / 180
	x = (lon - r.LonMin) * degree * math.Cos(lat*math.Pi/180)
	y = (lat - r.LatMin) * degree

	return x, y
}
