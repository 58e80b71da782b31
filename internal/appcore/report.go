package appcore

import (
	"time"

	"gslice/internal/jsonutil"
	"gslice/internal/runutil"
	"gslice/internal/version"
	"gslice/pkg/api"
)

// ReportName is "<tag>_run-report.json", or "run-report.json" without a tag.
func ReportName(tag string) string {
	if tag == "" {
		return "run-report.json"
	}
	return tag + "_run-report.json"
}

// BuildReport converts an outcome to the stable report schema (v1).
func BuildReport(run *runutil.Run, o Options, out *Outcome, workers int) api.RunReportV1 {
	rep := api.RunReportV1{
		RunID:      run.ID,
		Version:    version.Version,
		Query:      o.Query,
		Database:   o.Database,
		Task:       o.Task,
		Workers:    workers,
		MaxTargets: out.MaxTargets,
		Queries:    out.Queries,
		Batches:    make([]api.BatchReportV1, 0, len(out.Results)),
		Warnings:   run.Warnings(),
		Errors:     run.Errors(),
		Files:      out.Files,
		StartedAt:  run.Started.Format(time.RFC3339),
		DurationMS: time.Since(run.Started).Milliseconds(),
	}
	for _, r := range out.Results {
		b := api.BatchReportV1{
			Index:      r.Index,
			Size:       r.Size,
			Lines:      len(r.Lines),
			Skipped:    r.Skipped,
			DurationMS: r.Duration.Milliseconds(),
		}
		if r.Err != nil {
			b.Error = r.Err.Error()
		}
		rep.Batches = append(rep.Batches, b)
	}
	if out.Groups != nil {
		for _, k := range out.Groups.Keys() {
			n := len(out.Groups.Hits(k))
			rep.Groups = append(rep.Groups, api.GroupReportV1{QueryID: k, Hits: n})
			rep.Hits += n
		}
	}
	return rep
}

func writeReport(path string, run *runutil.Run, o Options, out *Outcome, workers int) error {
	return jsonutil.WriteFile(path, BuildReport(run, o, out, workers))
}
