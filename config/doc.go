// Package config loads the run configuration of stationreach from an HCL
// file and turns it into options for the pipeline packages.
//
// A configuration file overrides only what it names; everything else keeps
// the built-in defaults (the Buenos Aires extract, a 1000 m walking cutoff,
// an 80 m entrance capture radius):
//
//	region {
//	  lon_min      = -58.54
//	  lon_max      = -58.33
//	  lat_min      = -34.71
//	  lat_max      = -34.53
//	  earth_radius = earth.mean_radius
//	}
//
//	store {
//	  capacity = 1000000
//	}
//
//	routing {
//	  unreachable    = 1000
//	  capture_radius = 80
//	  allow_proposed = false
//	  gap_policy     = "link"   # link | split | truncate
//	  queue          = "fifo"   # fifo | lifo
//	}
//
//	classify {
//	  route { key = "highway" }
//	  station {
//	    key    = "railway"
//	    values = ["subway_entrance"]
//	  }
//	  proposed { key = "proposed" }
//	}
//
//	output {
//	  precision         = 0
//	  distance          = true
//	  station_indicator = false
//	}
//
// Expressions are evaluated with the variables earth.equatorial_radius,
// earth.polar_radius and earth.mean_radius in scope, so radii and cutoffs may
// be written as arithmetic over them.
//
// Errors:
//
//	ErrBadRegion     – empty or out-of-range box, non-positive radius
//	ErrBadStore      – non-positive capacity
//	ErrBadRouting    – cutoff or capture radius out of range
//	ErrBadOutput     – precision outside [0,17]
//	ErrUnknownPolicy – unknown gap_policy or queue name
//	ErrParse         – HCL syntax or decoding diagnostics
package config
