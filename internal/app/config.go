package app

import (
	"fmt"

	"github.com/katalvlaran/stationreach/builder"
	"github.com/katalvlaran/stationreach/config"
	"github.com/katalvlaran/stationreach/distance"
	"github.com/katalvlaran/stationreach/ingest"
)

// Config is what the command line asks for. Pointer fields are overrides:
// nil keeps the value from the configuration file (or its default).
type Config struct {
	Input      string // extract path
	ConfigPath string // HCL file; empty uses built-in defaults
	Output     string // text dump path; empty or "-" is stdout
	SQLitePath string // optional SQLite export
	LogLevel   string
	LogFormat  string
	Procs      int // PBF decoder goroutines

	AllowProposed *bool
	Region        *ingest.Region
	CaptureRadius *float64
	Unreachable   *float64
	GapPolicy     *string
	Queue         *string
}

// resolve loads the configuration file, applies the overrides and
// validates the result.
func (c *Config) resolve() (config.Config, error) {
	cfg := config.Default()
	if c.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(c.ConfigPath); err != nil {
			return config.Config{}, err
		}
	}

	if c.AllowProposed != nil {
		cfg.Routing.AllowProposed = *c.AllowProposed
	}
	if c.Region != nil {
		// Keep the configured Earth radius unless the override sets one.
		r := *c.Region
		if r.EarthRadius == 0 {
			r.EarthRadius = cfg.Region.EarthRadius
		}
		cfg.Region = r
	}
	if c.CaptureRadius != nil {
		cfg.Routing.CaptureRadius = *c.CaptureRadius
	}
	if c.Unreachable != nil {
		cfg.Routing.Unreachable = *c.Unreachable
	}
	if c.GapPolicy != nil {
		p, err := builder.ParseGapPolicy(*c.GapPolicy)
		if err != nil {
			return config.Config{}, fmt.Errorf("%w: %w", config.ErrUnknownPolicy, err)
		}
		cfg.Routing.Gap = p
	}
	if c.Queue != nil {
		q, err := distance.ParseQueueOrder(*c.Queue)
		if err != nil {
			return config.Config{}, fmt.Errorf("%w: %w", config.ErrUnknownPolicy, err)
		}
		cfg.Routing.Queue = q
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}
