package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/stationreach/ingest"
	"github.com/katalvlaran/stationreach/internal/app"
	"github.com/katalvlaran/stationreach/mesh"
)

// Environment variables consulted for flag defaults.
const (
	EnvConfig    = "STATIONREACH_CONFIG"
	EnvLogLevel  = "STATIONREACH_LOG_LEVEL"
	EnvLogFormat = "STATIONREACH_LOG_FORMAT"
	EnvQhull     = "STATIONREACH_QHULL"
)

// ExitError is an error with a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string { return e.Message }

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Command selects what main runs.
type Command int

const (
	CommandRun  Command = iota // ingest → label → dump
	CommandMesh                // triangulate a dump stream
)

// Invocation is the parsed command line.
type Invocation struct {
	Command Command
	App     app.Config
	Qhull   mesh.Qhull // CommandMesh only
	MeshIn  string     // CommandMesh only; empty or "-" is stdin
}

// LoadEnv loads a .env file into the process environment without
// overriding variables already set. A missing file is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cli: %s: %w", path, err)
	}

	return nil
}

// Parse processes args (without the program name). The boolean reports a
// clean early exit, such as -h.
func Parse(args []string, output io.Writer) (*Invocation, bool, error) {
	if len(args) > 0 && args[0] == "mesh" {
		return parseMesh(args[1:], output)
	}

	flagSet := flag.NewFlagSet("stationreach", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
stationreach - walking distance from every street node to the nearest station.

Usage:
  stationreach [options] EXTRACT
  stationreach mesh [options] [DUMP]

Arguments:
  EXTRACT
    OpenStreetMap extract: .osm, .osm.bz2, .pbf or .osm.pbf.

Options:
`)
		flagSet.PrintDefaults()
	}

	common := addCommon(flagSet)
	proposed := flagSet.Bool("p", false, "Treat proposed stations as operational.")
	bbox := flagSet.String("bbox", "", "Region override: lonmin,lonmax,latmin,latmax.")
	radius := flagSet.String("radius", "", "Capture radius in meters (0 seeds stations only).")
	unreachable := flagSet.String("unreachable", "", "Unreachable distance in meters; also the cutoff.")
	gap := flagSet.String("gap", "", "Unresolved way ref policy: link, split or truncate.")
	queue := flagSet.String("queue", "", "Relaxation order: fifo or lifo.")
	out := flagSet.String("o", "-", "Text dump destination; '-' is stdout.")
	sqlitePath := flagSet.String("sqlite", "", "Also export the dump into this SQLite file.")
	procs := flagSet.Int("procs", 1, "PBF decoder goroutines.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err)
	}
	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return nil, false, usageError("expected exactly one EXTRACT argument, got %d", flagSet.NArg())
	}

	cfg, err := common.config()
	if err != nil {
		return nil, false, err
	}
	cfg.Input = flagSet.Arg(0)
	cfg.Output = *out
	cfg.SQLitePath = *sqlitePath
	if *procs < 1 {
		return nil, false, usageError("invalid -procs %d: must be at least 1", *procs)
	}
	cfg.Procs = *procs

	// Only flags given on the command line override the configuration file.
	var perr error
	flagSet.Visit(func(f *flag.Flag) {
		if perr != nil {
			return
		}
		switch f.Name {
		case "p":
			cfg.AllowProposed = proposed
		case "bbox":
			cfg.Region, perr = parseBBox(*bbox)
		case "radius":
			cfg.CaptureRadius, perr = parseMeters("radius", *radius)
		case "unreachable":
			cfg.Unreachable, perr = parseMeters("unreachable", *unreachable)
		case "gap":
			cfg.GapPolicy = gap
		case "queue":
			cfg.Queue = queue
		}
	})
	if perr != nil {
		return nil, false, perr
	}

	return &Invocation{Command: CommandRun, App: cfg}, false, nil
}

func parseMesh(args []string, output io.Writer) (*Invocation, bool, error) {
	flagSet := flag.NewFlagSet("stationreach mesh", flag.ContinueOnError)
	flagSet.SetOutput(output)
	common := addCommon(flagSet)
	qhull := flagSet.String("qhull", envOr(EnvQhull, strings.Join(append([]string{mesh.DefaultQhull.Command}, mesh.DefaultQhull.Args...), " ")),
		"Delaunay command speaking the qhull protocol.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err)
	}
	if flagSet.NArg() > 1 {
		return nil, false, usageError("expected at most one DUMP argument, got %d", flagSet.NArg())
	}
	words := strings.Fields(*qhull)
	if len(words) == 0 {
		return nil, false, usageError("invalid -qhull: empty command")
	}

	cfg, err := common.config()
	if err != nil {
		return nil, false, err
	}

	return &Invocation{
		Command: CommandMesh,
		App:     cfg,
		Qhull:   mesh.Qhull{Command: words[0], Args: words[1:]},
		MeshIn:  flagSet.Arg(0),
	}, false, nil
}

// commonFlags are shared by every command.
type commonFlags struct {
	configPath *string
	logLevel   *string
	logFormat  *string
}

func addCommon(flagSet *flag.FlagSet) commonFlags {
	return commonFlags{
		configPath: flagSet.String("config", os.Getenv(EnvConfig), "HCL configuration file."),
		logLevel:   flagSet.String("log-level", envOr(EnvLogLevel, "info"), "Logging level: debug, info, warn or error."),
		logFormat:  flagSet.String("log-format", envOr(EnvLogFormat, "text"), "Log format: text or json."),
	}
}

func (c commonFlags) config() (app.Config, error) {
	level := strings.ToLower(*c.logLevel)
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return app.Config{}, usageError("invalid log-level %q: must be debug, info, warn or error", *c.logLevel)
	}
	format := strings.ToLower(*c.logFormat)
	if format != "text" && format != "json" {
		return app.Config{}, usageError("invalid log-format %q: must be text or json", *c.logFormat)
	}

	return app.Config{ConfigPath: *c.configPath, LogLevel: level, LogFormat: format}, nil
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// parseBBox reads "lonmin,lonmax,latmin,latmax". The Earth radius is left
// zero so the configured one is kept.
func parseBBox(s string) (*ingest.Region, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, usageError("invalid -bbox %q: want lonmin,lonmax,latmin,latmax", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, usageError("invalid -bbox %q: %v", s, err)
		}
		v[i] = f
	}

	return &ingest.Region{LonMin: v[0], LonMax: v[1], LatMin: v[2], LatMax: v[3]}, nil
}

func parseMeters(name, s string) (*float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, usageError("invalid -%s %q: %v", name, s, err)
	}

	return &f, nil
}
