package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/stationreach/builder"
	"github.com/katalvlaran/stationreach/core"
	"github.com/katalvlaran/stationreach/ctxlog"
	"github.com/katalvlaran/stationreach/distance"
	"github.com/katalvlaran/stationreach/dump"
	"github.com/katalvlaran/stationreach/ingest"
	"github.com/katalvlaran/stationreach/sqlitesink"
)

// Summary collects the counters of every phase.
type Summary struct {
	RunID  string
	Ingest ingest.Stats
	Build  builder.Stats
	Store  core.Stats
	Label  distance.Result
	Dump   dump.Result
}

// Run executes ingest, label and dump for the configured extract.
func (a *App) Run(ctx context.Context) (Summary, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	sum := Summary{RunID: a.runID}
	if a.opts.Input == "" {
		return sum, ErrNoInput
	}

	// 1) Ingest.
	store := core.NewStore(a.cfg.StoreOptions()...)
	b, err := a.ingest(ctx, store, &sum)
	if err != nil {
		return sum, fmt.Errorf("app: ingest: %w", err)
	}
	sum.Build = b.Stats()

	// 2) Label.
	log := ctxlog.FromContext(ctx)
	if sum.Label, err = distance.Label(store, a.cfg.LabelOptions(log.With("phase", "label"))...); err != nil {
		return sum, fmt.Errorf("app: label: %w", err)
	}
	sum.Store = store.Stats()
	log.Info("labeled",
		"stations", sum.Store.Stations, "sources", sum.Label.Sources,
		"reachable", sum.Label.Reachable, "unreachable", sum.Label.Unreachable,
		"farthest", sum.Label.Farthest)

	// 3) Dump.
	if sum.Dump, err = a.dump(ctx, store); err != nil {
		return sum, fmt.Errorf("app: dump: %w", err)
	}
	log.Info("dumped",
		"components", sum.Dump.Components, "edges", sum.Dump.Edges, "stations", sum.Dump.Stations)

	return sum, nil
}

func (a *App) ingest(ctx context.Context, store *core.Store, sum *Summary) (*builder.Builder, error) {
	log := ctxlog.FromContext(ctx).With("phase", "ingest")
	src, err := ingest.Open(ctx, a.opts.Input, a.opts.Procs)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	b, err := builder.New(store, a.cfg.BuilderOptions(log)...)
	if err != nil {
		return nil, err
	}
	in, err := ingest.New(b, a.cfg.IngestOptions(log)...)
	if err != nil {
		return nil, err
	}
	sum.Ingest, err = in.Run(ctx, src)
	if err != nil {
		return nil, err
	}
	log.Info(fmt.Sprintf("%d nodes %d edges", store.Len(), store.EdgeCount()),
		"skipped_objects", src.Skipped(), "ways", sum.Ingest.WayEvents)

	return b, nil
}

// dump writes the text stream and, when configured, the SQLite export. The
// export is committed only if the whole dump succeeds.
func (a *App) dump(ctx context.Context, store *core.Store) (res dump.Result, err error) {
	w, closeOut, err := a.output()
	if err != nil {
		return dump.Result{}, err
	}
	defer func() {
		if cerr := closeOut(); err == nil {
			err = cerr
		}
	}()

	text := dump.NewTextSink(w, a.cfg.TextOptions()...)
	var export *sqlitesink.Sink
	if a.opts.SQLitePath != "" {
		db, err := sqlitesink.Connect(ctx, a.opts.SQLitePath)
		if err != nil {
			return dump.Result{}, err
		}
		defer db.Close()
		export, err = db.BeginRun(ctx, a.runID, sqlitesink.RunMeta{
			Source:        a.opts.Input,
			Cutoff:        a.cfg.Routing.Unreachable,
			AllowProposed: a.cfg.Routing.AllowProposed,
		})
		if err != nil {
			return dump.Result{}, err
		}
	}

	var sink dump.Sink = text
	if export != nil {
		sink = dump.Multi(text, export)
	}
	res, err = dump.Dump(store, sink,
		dump.WithContext(ctx),
		dump.WithAllowProposed(a.cfg.Routing.AllowProposed))
	if err == nil {
		err = text.Flush()
	}
	if export != nil {
		if err != nil {
			_ = export.Abort()
			return res, err
		}
		if err = export.Finish(res); err != nil {
			return res, err
		}
		ctxlog.FromContext(ctx).Info("exported", "sqlite", a.opts.SQLitePath)
	}

	return res, err
}

// output opens the text destination.
func (a *App) output() (io.Writer, func() error, error) {
	if a.opts.Output == "" || a.opts.Output == "-" {
		return a.stdout, func() error { return nil }, nil
	}
	f, err := os.Create(a.opts.Output)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}
