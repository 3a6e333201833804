// Command gridpath generates a weighted grid graph with a guaranteed
// start→end path and animates Dijkstra's algorithm over it in the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/log"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/stats"
	"github.com/katalvlaran/gridpath/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run is the testable body of main; it returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, exit, err := parseArgs(args, stderr)
	if exit {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		var ee *ExitError
		if errors.As(err, &ee) {
			return ee.Code
		}
		return 1
	}

	if err := execute(ctx, opts, stdout, stderr); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	return 0
}

func execute(ctx context.Context, opts *options, stdout, stderr io.Writer) error {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath, nil); err != nil {
			return err
		}
	}
	if opts.seedSet {
		seed := opts.seed
		cfg.Generation.Seed = &seed
	}
	if opts.logLevel != "" {
		lvl, err := log.ParseLevel(opts.logLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = lvl
	}

	logger := log.New(stderr, cfg.LogLevel)
	log.SetDefaultLogger(logger)
	defer log.SetDefaultLogger(nil)

	runID := uuid.NewString()
	logger.Info("run %s: grid %dx%d step %d, store %s", runID,
		cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.Step, cfg.Store.Kind)

	st, closeStore, err := config.OpenStore(cfg.Store)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeStore(); cerr != nil {
			logger.Warn("closing store: %v", cerr)
		}
	}()

	rec, err := obtainGraph(ctx, cfg, opts, st, logger)
	if err != nil {
		return err
	}

	if opts.saveKey != "" {
		key := opts.saveKey
		if key == "auto" {
			key = runID
		}
		if err := st.Save(ctx, key, rec); err != nil {
			return fmt.Errorf("saving graph: %w", err)
		}
		logger.Info("saved graph as %q", key)
	}

	return animate(ctx, cfg, opts, rec, stdout, logger)
}

// obtainGraph loads the record named by -load or generates a fresh one.
// Configured endpoints apply to loaded graphs too, as long as they are
// members and the end stays reachable; otherwise the stored pair is kept.
func obtainGraph(ctx context.Context, cfg *config.Config, opts *options, st store.Store, logger log.Logger) (store.Record, error) {
	if opts.loadKey != "" {
		rec, err := st.Load(ctx, opts.loadKey)
		if err != nil {
			return store.Record{}, fmt.Errorf("loading graph %q: %w", opts.loadKey, err)
		}
		logger.Info("loaded graph %q: %d nodes, %d edges", opts.loadKey, rec.Graph.NodeCount(), rec.Graph.EdgeCount())

		b, err := builder.FromGraph(rec.Graph, rec.Start, rec.End, cfg.BuilderOptions(logger)...)
		if err != nil {
			return store.Record{}, fmt.Errorf("loading graph %q: %w", opts.loadKey, err)
		}
		applyEndpoints(b, cfg, logger)
		start, end := b.Endpoints()
		if start == rec.Start && end == rec.End {
			return rec, nil
		}
		if !b.PathExists() {
			logger.Warn("%s not reachable from %s in %q, keeping stored endpoints %s -> %s",
				end, start, opts.loadKey, rec.Start, rec.End)

			return rec, nil
		}

		return store.Record{Graph: rec.Graph, Start: start, End: end}, nil
	}

	b, err := builder.New(cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.Step, cfg.BuilderOptions(logger)...)
	if err != nil {
		return store.Record{}, err
	}
	applyEndpoints(b, cfg, logger)

	g, err := b.Generate(cfg.Edges)
	if err != nil {
		return store.Record{}, err
	}
	start, end := b.Endpoints()

	return store.Record{Graph: g, Start: start, End: end}, nil
}

// applyEndpoints moves b to the configured endpoints, warning about any
// that are not nodes of b.
func applyEndpoints(b *builder.Builder, cfg *config.Config, logger log.Logger) {
	start, end := cfg.Endpoints.Start, cfg.Endpoints.End
	b.SetEndpoints(&start, &end)
	if got, _ := b.Endpoints(); got != start {
		logger.Warn("start %s is not a lattice node, keeping %s", start, got)
	}
	if _, got := b.Endpoints(); got != end {
		logger.Warn("end %s is not a lattice node, keeping %s", end, got)
	}
}

// animate steps the traversal to completion, printing frames.
func animate(ctx context.Context, cfg *config.Config, opts *options, rec store.Record,
	stdout io.Writer, logger log.Logger) error {
	stepper, err := dijkstra.NewStepper(rec.Graph, rec.Start, rec.End, dijkstra.WithLogger(logger))
	if err != nil {
		return err
	}
	term := render.NewTerminal()

	state := stepper.State()
	for {
		next, ok := stepper.Step()
		state = next
		if !ok {
			break
		}
		if opts.frames {
			fmt.Fprintf(stdout, "%s\n\n", term.Frame(rec.Graph, rec.Start, rec.End, state))
			if err := sleep(ctx, cfg.Render.Tick); err != nil {
				return err
			}
		}
		if state.Status.Terminal() {
			break
		}
	}

	if !opts.frames {
		fmt.Fprintln(stdout, term.Frame(rec.Graph, rec.Start, rec.End, state))
	}
	printSummary(stdout, rec, state)

	return nil
}

// sleep waits d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func printSummary(w io.Writer, rec store.Record, st dijkstra.State) {
	fmt.Fprintf(w, "status: %s after %d steps\n", st.Status, st.Step)
	if st.Status == dijkstra.StatusFound {
		fmt.Fprintf(w, "path: %v\n", st.CurrentPath)
		fmt.Fprintf(w, "cost: %d\n", st.Distances[rec.End])
	}
	if s, err := stats.WeightStats(rec.Graph); err == nil {
		fmt.Fprintf(w, "weights: n=%d mean=%.2f std=%.2f min=%d max=%d\n", s.Count, s.Mean, s.StdDev, s.Min, s.Max)
	}
	fmt.Fprintf(w, "graph: %d nodes, %d edges, start %s, end %s\n",
		rec.Graph.NodeCount(), rec.Graph.EdgeCount(), rec.Start, rec.End)
}
