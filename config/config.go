package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/stationreach/builder"
	"github.com/katalvlaran/stationreach/core"
	"github.com/katalvlaran/stationreach/distance"
	"github.com/katalvlaran/stationreach/dump"
	"github.com/katalvlaran/stationreach/ingest"
)

// Sentinel errors returned by Load, Parse and Validate.
var (
	ErrBadRegion     = errors.New("config: invalid region")
	ErrBadStore      = errors.New("config: invalid store")
	ErrBadRouting    = errors.New("config: invalid routing")
	ErrBadOutput     = errors.New("config: invalid output")
	ErrUnknownPolicy = errors.New("config: unknown policy")
	ErrParse         = errors.New("config: parse")
)

// maxPrecision mirrors the bound enforced by dump.WithPrecision.
const maxPrecision = 17

// Routing groups the labeling and graph-building knobs.
type Routing struct {
	Unreachable   float64
	CaptureRadius float64
	AllowProposed bool
	Gap           builder.GapPolicy
	Queue         distance.QueueOrder
}

// Output groups the text dump knobs.
type Output struct {
	Precision        int
	Distance         bool
	StationIndicator bool
}

// Config is the resolved run configuration.
type Config struct {
	Region     ingest.Region
	Capacity   int
	Routing    Routing
	Classifier ingest.Classifier
	Output     Output
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Region:   ingest.DefaultRegion(),
		Capacity: core.DefaultCapacity,
		Routing: Routing{
			Unreachable:   distance.DefaultUnreachable,
			CaptureRadius: distance.DefaultCaptureRadius,
			Gap:           builder.GapLink,
			Queue:         distance.FIFO,
		},
		Classifier: ingest.DefaultClassifier(),
		Output:     Output{Distance: true},
	}
}

// Validate checks c section by section and returns the first problem found.
func (c Config) Validate() error {
	if err := c.Region.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadRegion, err)
	}
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity %d must be positive", ErrBadStore, c.Capacity)
	}

	r := c.Routing
	switch {
	case !(r.Unreachable > 0):
		return fmt.Errorf("%w: unreachable %g must be positive", ErrBadRouting, r.Unreachable)
	case r.CaptureRadius < 0 || r.CaptureRadius >= r.Unreachable:
		return fmt.Errorf("%w: capture_radius %g must be in [0, %g)", ErrBadRouting, r.CaptureRadius, r.Unreachable)
	}
	// A value outside the enum stringifies to a name its parser rejects.
	if _, err := builder.ParseGapPolicy(r.Gap.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrUnknownPolicy, err)
	}
	if _, err := distance.ParseQueueOrder(r.Queue.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrUnknownPolicy, err)
	}

	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		return fmt.Errorf("%w: precision %d must be in [0,%d]", ErrBadOutput, c.Output.Precision, maxPrecision)
	}

	return nil
}

// StoreOptions returns the options for core.NewStore.
func (c Config) StoreOptions() []core.StoreOption {
	return []core.StoreOption{core.WithCapacity(c.Capacity)}
}

// BuilderOptions returns the options for builder.New.
func (c Config) BuilderOptions(l *slog.Logger) []builder.Option {
	return []builder.Option{builder.WithGapPolicy(c.Routing.Gap), builder.WithLogger(l)}
}

// IngestOptions returns the options for ingest.New.
func (c Config) IngestOptions(l *slog.Logger) []ingest.Option {
	return []ingest.Option{
		ingest.WithRegion(c.Region),
		ingest.WithClassifier(c.Classifier),
		ingest.WithLogger(l),
	}
}

// LabelOptions returns the options for distance.Label.
func (c Config) LabelOptions(l *slog.Logger) []distance.Option {
	return []distance.Option{
		distance.WithUnreachable(c.Routing.Unreachable),
		distance.WithCaptureRadius(c.Routing.CaptureRadius),
		distance.WithAllowProposed(c.Routing.AllowProposed),
		distance.WithQueue(c.Routing.Queue),
		distance.WithLogger(l),
	}
}

// TextOptions returns the options for dump.NewTextSink.
func (c Config) TextOptions() []dump.TextOption {
	return []dump.TextOption{
		dump.WithPrecision(c.Output.Precision),
		dump.WithDistance(c.Output.Distance),
		dump.WithStationIndicator(c.Output.StationIndicator),
	}
}
