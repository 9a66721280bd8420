package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/stationreach/builder"
	"github.com/katalvlaran/stationreach/distance"
	"github.com/katalvlaran/stationreach/ingest"
)

// fileRoot decodes every top-level block a configuration file may carry.
// Each block is optional and may appear at most once.
type fileRoot struct {
	Region   *regionBlock   `hcl:"region,block"`
	Store    *storeBlock    `hcl:"store,block"`
	Routing  *routingBlock  `hcl:"routing,block"`
	Classify *classifyBlock `hcl:"classify,block"`
	Output   *outputBlock   `hcl:"output,block"`
}

type regionBlock struct {
	LonMin      *float64 `hcl:"lon_min,optional"`
	LonMax      *float64 `hcl:"lon_max,optional"`
	LatMin      *float64 `hcl:"lat_min,optional"`
	LatMax      *float64 `hcl:"lat_max,optional"`
	EarthRadius *float64 `hcl:"earth_radius,optional"`
}

type storeBlock struct {
	Capacity *int `hcl:"capacity,optional"`
}

type routingBlock struct {
	Unreachable   *float64 `hcl:"unreachable,optional"`
	CaptureRadius *float64 `hcl:"capture_radius,optional"`
	AllowProposed *bool    `hcl:"allow_proposed,optional"`
	GapPolicy     *string  `hcl:"gap_policy,optional"`
	Queue         *string  `hcl:"queue,optional"`
}

type ruleBlock struct {
	Key    string   `hcl:"key"`
	Values []string `hcl:"values,optional"`
}

type classifyBlock struct {
	Route    []*ruleBlock `hcl:"route,block"`
	Station  []*ruleBlock `hcl:"station,block"`
	Proposed []*ruleBlock `hcl:"proposed,block"`
}

type outputBlock struct {
	Precision        *int  `hcl:"precision,optional"`
	Distance         *bool `hcl:"distance,optional"`
	StationIndicator *bool `hcl:"station_indicator,optional"`
}

// EvalContext returns the variables visible to configuration expressions.
func EvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"earth": cty.ObjectVal(map[string]cty.Value{
				"equatorial_radius": cty.NumberFloatVal(ingest.EquatorialRadius),
				"polar_radius":      cty.NumberFloatVal(ingest.PolarRadius),
				"mean_radius":       cty.NumberFloatVal(ingest.MeanRadius),
			}),
		},
	}
}

// Load reads the file at path and parses it with Parse.
func Load(path string) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Parse(src, path)
}

// Parse decodes src (HCL native syntax; filename is used in diagnostics)
// on top of Default and validates the result.
func Parse(src []byte, filename string) (Config, error) {
	// 1) Syntax.
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrParse, filename, diags)
	}

	// 2) Schema and expressions.
	var root fileRoot
	if diags = gohcl.DecodeBody(file.Body, EvalContext(), &root); diags.HasErrors() {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrParse, filename, diags)
	}

	// 3) Overlay onto defaults, then validate the whole.
	cfg := Default()
	if err := root.apply(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (f *fileRoot) apply(c *Config) error {
	if r := f.Region; r != nil {
		set(&c.Region.LonMin, r.LonMin)
		set(&c.Region.LonMax, r.LonMax)
		set(&c.Region.LatMin, r.LatMin)
		set(&c.Region.LatMax, r.LatMax)
		set(&c.Region.EarthRadius, r.EarthRadius)
	}
	if s := f.Store; s != nil {
		set(&c.Capacity, s.Capacity)
	}
	if r := f.Routing; r != nil {
		set(&c.Routing.Unreachable, r.Unreachable)
		set(&c.Routing.CaptureRadius, r.CaptureRadius)
		set(&c.Routing.AllowProposed, r.AllowProposed)
		if r.GapPolicy != nil {
			p, err := builder.ParseGapPolicy(*r.GapPolicy)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrUnknownPolicy, err)
			}
			c.Routing.Gap = p
		}
		if r.Queue != nil {
			q, err := distance.ParseQueueOrder(*r.Queue)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrUnknownPolicy, err)
			}
			c.Routing.Queue = q
		}
	}
	if cl := f.Classify; cl != nil {
		// A rule list named in the file replaces the default list; an
		// absent one keeps it.
		setRules(&c.Classifier.Route, cl.Route)
		setRules(&c.Classifier.Station, cl.Station)
		setRules(&c.Classifier.Proposed, cl.Proposed)
	}
	if o := f.Output; o != nil {
		set(&c.Output.Precision, o.Precision)
		set(&c.Output.Distance, o.Distance)
		set(&c.Output.StationIndicator, o.StationIndicator)
	}

	return nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setRules(dst *[]ingest.Rule, blocks []*ruleBlock) {
	if len(blocks) == 0 {
		return
	}
	rules := make([]ingest.Rule, len(blocks))
	for i, b := range blocks {
		rules[i] = ingest.Rule{Key: b.Key, Values: b.Values}
	}
	*dst = rules
}
