// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"gslice/internal/hits"
	"gslice/internal/output"
)

// Group is one query's hits plus its position among all groups.
type Group struct {
	Index   int
	QueryID string
	Hits    []hits.Record
}

// Options are shared by all artifact renderers.
type Options struct {
	Tag      string
	UseNames bool

	// Warn, if set, receives non-fatal export findings.
	Warn func(msg string)
}

// Artifact renders one file per group for a given format.
type Artifact struct {
	Name  func(o Options, g Group) string
	Write func(w io.Writer, o Options, g Group) error
}

// Artifact registry (format → handler). Register in init(); last wins.
var artifacts = map[string]Artifact{}

func Register(format string, a Artifact) { artifacts[format] = a }

// Lookup returns the artifact registered for format.
func Lookup(format string) (Artifact, error) {
	a, ok := artifacts[format]
	if !ok {
		return Artifact{}, fmt.Errorf("unknown export format %q (no writer registered)", format)
	}
	return a, nil
}

// Formats lists registered formats in sorted order.
func Formats() []string {
	out := make([]string, 0, len(artifacts))
	for f := range artifacts {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// DefaultFormats are exported when the caller does not choose.
var DefaultFormats = []string{output.FormatCSV, output.FormatFASTA}

func init() {
	Register(output.FormatCSV, Artifact{
		Name:  func(o Options, g Group) string { return output.CSVName(o.Tag, g.Index) },
		Write: func(w io.Writer, _ Options, g Group) error { return output.WriteCSV(w, g.Hits) },
	})
	Register(output.FormatFASTA, Artifact{
		Name:  func(_ Options, g Group) string { return output.FASTAName(g.QueryID) },
		Write: func(w io.Writer, o Options, g Group) error { return output.WriteFASTA(w, g.Hits, o.UseNames) },
	})
	Register(output.FormatJSON, Artifact{
		Name:  func(_ Options, g Group) string { return output.JSONName(g.QueryID) },
		Write: func(w io.Writer, o Options, g Group) error { return output.WriteJSON(w, g.Hits, o.UseNames) },
	})
}
