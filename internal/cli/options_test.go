// internal/cli/options_test.go
package cli

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
)

func parse(argv ...string) (Options, error) {
	var o Options
	cmd := NewCommand("test", &o)
	cmd.SetArgs(argv)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.RunE = func(_ *cobra.Command, args []string) error { return Bind(&o, args) }
	err := cmd.Execute()
	return o, err
}

func mustParse(t *testing.T, argv ...string) Options {
	t.Helper()
	o, err := parse(argv...)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return o
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "--db", "genomes.fa", "q.fa")
	if o.Query != "q.fa" || o.Database != "genomes.fa" {
		t.Fatalf("bad input parse %+v", o)
	}
	if o.Task != "megablast" || o.Aligner != "blastn" || o.Threads != 0 || o.MaxTargets != 0 {
		t.Fatalf("bad defaults %+v", o)
	}
	if o.UseNames || o.Tag != "" || o.OutDir != "" || !o.Report || o.NoMatchExitCode != 1 {
		t.Fatalf("bad output defaults %+v", o)
	}
	if strings.Join(o.Formats, ",") != "csv,fasta" {
		t.Fatalf("formats %v", o.Formats)
	}
}

func TestAllFlags(t *testing.T) {
	o := mustParse(t,
		"q.fa", "--db", "db.fa", "--task", "blastn-short", "-t", "3",
		"--timeout", "90s", "-o", "out", "--tag", "run1", "--use-names",
		"--formats", "fasta,json", "--max-targets", "50", "-q", "--jsonl",
	)
	if o.Task != "blastn-short" || o.Threads != 3 || o.Timeout != 90*time.Second {
		t.Fatalf("bad parse %+v", o)
	}
	if o.OutDir != "out" || o.Tag != "run1" || !o.UseNames || !o.Quiet || o.MaxTargets != 50 || !o.JSONL {
		t.Fatalf("bad parse %+v", o)
	}
	if strings.Join(o.Formats, ",") != "fasta,json" {
		t.Fatalf("formats %v", o.Formats)
	}
}

func TestErrors(t *testing.T) {
	cases := map[string][]string{
		"missing db":      {"q.fa"},
		"missing query":   {"--db", "db.fa"},
		"two queries":     {"--db", "db.fa", "a.fa", "b.fa"},
		"negative thread": {"--db", "db.fa", "-t", "-1", "q.fa"},
		"bad format":      {"--db", "db.fa", "--formats", "xml", "q.fa"},
		"bad exit code":   {"--db", "db.fa", "--no-match-exit-code", "300", "q.fa"},
		"empty task":      {"--db", "db.fa", "--task", "", "q.fa"},
		"unknown flag":    {"--db", "db.fa", "--nope", "q.fa"},
	}
	for name, argv := range cases {
		if _, err := parse(argv...); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestVersionSkipsValidation(t *testing.T) {
	o := mustParse(t, "--version")
	if !o.Version {
		t.Fatalf("version flag not set")
	}
}
