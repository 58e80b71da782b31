// internal/appcore/core.go
package appcore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gslice/internal/aligner"
	"gslice/internal/fasta"
	"gslice/internal/hits"
	"gslice/internal/pipeline"
	"gslice/internal/runutil"
	"gslice/internal/writers"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitFailure   = 3
	ExitCancelled = 130
)

// ErrConfig marks failures detected before any aligner invocation.
var ErrConfig = errors.New("configuration error")

type Options struct {
	Query    string
	Database string
	OutDir   string // resolved by the caller; created by Run

	Task       string
	Binary     string
	MaxTargets int // 0 = count database records

	Workers int
	Timeout time.Duration

	Tag             string
	UseNames        bool
	Formats         []string
	Report          bool
	NoMatchExitCode int
	Quiet           bool

	// JSONL streams every hit to Stdout as JSON Lines after export.
	JSONL  bool
	Stdout io.Writer

	// Progress draws a batch progress bar on the run's stderr in place of
	// console log lines.
	Progress bool

	// Exec overrides process execution; nil runs real processes.
	Exec aligner.Executor
}

// Outcome is everything one run produced.
type Outcome struct {
	Queries    int
	MaxTargets int
	Results    []pipeline.BatchResult
	Groups     *hits.Aggregated
	Files      []string
	ReportPath string
}

// Run sets up the output directory and run log, executes the pipeline and
// maps the result to an exit code. Fatal errors go to stderr.
func Run(ctx context.Context, stderr io.Writer, o Options) int {
	quiet := o.Quiet || o.Progress
	if err := runutil.EnsureOutputDir(o.OutDir); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitUsage
	}
	run, err := runutil.NewRun(runutil.LogConfig{
		File:   filepath.Join(o.OutDir, runutil.LogName),
		Stderr: stderr,
		Quiet:  quiet,
	})
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitUsage
	}
	defer func() { _ = run.Close() }()

	var bars io.Writer
	if o.Progress {
		bars = stderr
	}
	out, err := execute(ctx, run, o, bars)
	switch {
	case errors.Is(err, ErrConfig):
		run.Log.Error("aborted", "err", err)
		if quiet {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return ExitUsage
	case err != nil:
		run.Log.Error("aborted", "err", err)
		if quiet {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return ExitFailure
	}
	if ctx.Err() != nil {
		return ExitCancelled
	}
	if n := len(run.Errors()); n > 0 {
		if quiet {
			fmt.Fprintf(stderr, "error: %d problem(s) during run; see %s\n", n, filepath.Join(o.OutDir, runutil.LogName))
		}
		return ExitFailure
	}
	if out.Groups == nil || out.Groups.Total() == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}

// Execute runs the pipeline: read queries, partition, align in parallel,
// group hits and export. Configuration problems return an error wrapping
// ErrConfig before any invocation. Batch failures, rows wider than the
// schema and export errors are recorded on run; everything else is still
// grouped and exported.
func Execute(ctx context.Context, run *runutil.Run, o Options) (*Outcome, error) {
	return execute(ctx, run, o, nil)
}

func execute(ctx context.Context, run *runutil.Run, o Options, bars io.Writer) (*Outcome, error) {
	out := &Outcome{}

	maxTargets := o.MaxTargets
	if maxTargets == 0 {
		n, err := fasta.CountRecords(o.Database)
		if err != nil {
			return out, fmt.Errorf("%w: count database records (set --max-targets when --db is not a FASTA file): %w", ErrConfig, err)
		}
		if n == 0 {
			return out, fmt.Errorf("%w: database %s has no records", ErrConfig, o.Database)
		}
		maxTargets = n
	}
	out.MaxTargets = maxTargets

	queries, err := fasta.ReadRecords(ctx, o.Query)
	if err != nil {
		if ctx.Err() != nil {
			return out, nil
		}
		return out, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	out.Queries = len(queries)

	workers := o.Workers
	if workers < 1 {
		workers = 1
	}
	run.Log.Info("starting",
		"query", o.Query, "queries", len(queries),
		"db", o.Database, "max_targets", maxTargets,
		"task", o.Task, "workers", workers)

	if len(queries) == 0 {
		run.Log.Warn("query file has no records; nothing to align", "query", o.Query)
		out.Groups = hits.NewAggregated()
		finish(run, o, out, workers)
		return out, nil
	}

	workDir, err := os.MkdirTemp("", "gslice-*")
	if err != nil {
		return out, fmt.Errorf("create work directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	inv := aligner.Invoker{
		Binary:     o.Binary,
		Task:       o.Task,
		Database:   o.Database,
		MaxTargets: maxTargets,
		Exec:       o.Exec,
	}
	batches := pipeline.Partition(queries, workers)
	bar := newProgress(bars, pipeline.NonEmpty(batches), workers)
	cfg := pipeline.Config{Workers: workers, Timeout: o.Timeout, OnDone: bar.done}
	out.Results = pipeline.Run(ctx, cfg, batches,
		func(ctx context.Context, i int, batch []fasta.Record) ([]string, error) {
			path := filepath.Join(workDir, fmt.Sprintf("batch-%03d.fa", i))
			if err := fasta.WriteFile(path, batch); err != nil {
				return nil, err
			}
			run.Log.Debug("batch started", "batch", i, "queries", len(batch))
			lines, err := inv.Invoke(ctx, path)
			if err == nil {
				run.Log.Info("batch finished", "batch", i, "queries", len(batch), "lines", len(lines))
			}
			return lines, err
		})
	bar.wait()

	if ctx.Err() != nil {
		run.Log.Warn("cancelled", "err", ctx.Err())
		return out, nil
	}
	for _, f := range pipeline.Failures(out.Results) {
		run.Fail(fmt.Sprintf("batch %d (%d queries)", f.Index, f.Size), f.Err)
	}

	agg := hits.NewAggregated()
	warn := func(w hits.Warning) { run.Warn(w.String()) }
	for _, r := range pipeline.Succeeded(out.Results) {
		if err := agg.AddLines(r.Lines, hits.Options{UseNames: o.UseNames}, warn); err != nil {
			run.Fail(fmt.Sprintf("parse aligner output of batch %d", r.Index), err)
		}
	}
	out.Groups = agg

	files, err := writers.Export(o.OutDir, agg, o.Formats, writers.Options{Tag: o.Tag, UseNames: o.UseNames, Warn: run.Warn})
	out.Files = files
	if err != nil {
		run.Fail("export", err)
	}
	if o.JSONL && o.Stdout != nil {
		if _, err := writers.StreamJSONL(o.Stdout, agg, o.UseNames); err != nil {
			run.Fail("stream hits", err)
		}
	}
	finish(run, o, out, workers)
	return out, nil
}

// finish writes the run report and logs the summary.
func finish(run *runutil.Run, o Options, out *Outcome, workers int) {
	if o.Report {
		path := filepath.Join(o.OutDir, ReportName(o.Tag))
		if err := writeReport(path, run, o, out, workers); err != nil {
			run.Fail("write report", err)
		} else {
			out.ReportPath = path
		}
	}
	groups, total := 0, 0
	if out.Groups != nil {
		groups, total = out.Groups.Len(), out.Groups.Total()
	}
	run.Log.Info("finished",
		"groups", groups, "hits", total, "files", len(out.Files),
		"warnings", len(run.Warnings()), "errors", len(run.Errors()),
		"elapsed", time.Since(run.Started).Round(time.Millisecond))
}
