// pkg/api/report_v1.go
package api

// RunReportV1 summarises one pipeline run.
type RunReportV1 struct {
	RunID      string          `json:"run_id"`
	Version    string          `json:"version"`
	Query      string          `json:"query"`
	Database   string          `json:"database"`
	Task       string          `json:"task"`
	Workers    int             `json:"workers"`
	MaxTargets int             `json:"max_targets"`
	Queries    int             `json:"queries"`
	Batches    []BatchReportV1 `json:"batches"`
	Groups     []GroupReportV1 `json:"groups,omitempty"`
	Hits       int             `json:"hits"`
	Warnings   []string        `json:"warnings,omitempty"`
	Errors     []string        `json:"errors,omitempty"`
	Files      []string        `json:"files,omitempty"`
	StartedAt  string          `json:"started_at"`
	DurationMS int64           `json:"duration_ms"`
}

// BatchReportV1 is one partition of the query set.
type BatchReportV1 struct {
	Index      int    `json:"index"`
	Size       int    `json:"size"`
	Lines      int    `json:"lines"`
	Skipped    bool   `json:"skipped,omitempty"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms,omitempty"`
}

// GroupReportV1 is one query's hit group.
type GroupReportV1 struct {
	QueryID string `json:"query_id"`
	Hits    int    `json:"hits"`
}
