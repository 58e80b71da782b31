// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gslice/internal/aligner"
	"gslice/internal/output"
	"gslice/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Query    string
	Database string

	// Aligner
	Task       string
	Aligner    string
	MaxTargets int // 0 = database record count

	// Performance
	Threads int
	Timeout time.Duration

	// Output
	OutDir          string
	Tag             string
	UseNames        bool
	Formats         []string
	Report          bool
	JSONL           bool
	NoMatchExitCode int

	// Misc
	Quiet    bool
	Progress bool
	Version  bool
}

// NewCommand returns the root command with all flags bound to o.
// The caller sets RunE.
func NewCommand(name string, o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " [options] --db DB query.fasta",
		Short: "extract homologous regions from genome assemblies with an external aligner",
		Long: fmt.Sprintf(`%s – extract homologous regions from a set of genomes

Author:  Michael Ke; Erick Samera
License: MIT
Version: %s

The query FASTA is split into one batch per worker, each batch is aligned
against --db, and hits are grouped by query into FASTA and CSV files.`, name, version.Version),
		Example: `  # one batch per CPU, output next to the query
  ` + name + ` --db genomes.fa genes.fa

  # descriptive headers, 8 workers, 1h limit per batch
  ` + name + ` --db genomes.fa --use-names -t 8 --timeout 1h -o out/ --tag run1 genes.fa

  # pipe hits to jq
  ` + name + ` --db genomes.fa --jsonl -q genes.fa | jq .subject`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	f := cmd.Flags()
	f.SortFlags = false

	// Input
	f.StringVar(&o.Database, "db", "", "alignment database path (FASTA the database was built from) [required]")

	// Aligner
	f.StringVar(&o.Task, "task", aligner.DefaultTask, "aligner task")
	f.StringVar(&o.Aligner, "aligner", aligner.DefaultBinary, "aligner executable")
	f.IntVar(&o.MaxTargets, "max-targets", 0, "max alignments reported per query (0 = number of database records)")

	// Performance
	f.IntVarP(&o.Threads, "threads", "t", 0, "parallel aligner invocations (0 = all CPUs)")
	f.DurationVar(&o.Timeout, "timeout", 0, "per-batch aligner timeout, e.g. 30m (0 = none)")

	// Output
	f.StringVarP(&o.OutDir, "output", "o", "", "output directory (default: directory of the query file)")
	f.StringVar(&o.Tag, "tag", "", "tag prefixed to CSV output names")
	f.BoolVar(&o.UseNames, "use-names", false, "FASTA headers as <scientific-name>_<taxid>_<accession>")
	f.StringSliceVar(&o.Formats, "formats", []string{output.FormatCSV, output.FormatFASTA}, "per-query exports: csv, fasta, json")
	f.BoolVar(&o.Report, "report", true, "write a JSON run report")
	f.BoolVar(&o.JSONL, "jsonl", false, "also stream every hit to stdout as JSON Lines")
	f.IntVar(&o.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no hits are found")

	// Misc
	f.BoolVarP(&o.Quiet, "quiet", "q", false, "log to file only, not to stderr")
	f.BoolVar(&o.Progress, "progress", false, "show a batch progress bar on stderr (implies --quiet)")
	f.BoolVarP(&o.Version, "version", "v", false, "print version and exit")

	return cmd
}

// Bind copies positional arguments into o and validates it.
func Bind(o *Options, args []string) error {
	if o.Version {
		return nil
	}
	switch len(args) {
	case 0:
		return errors.New("a query FASTA file is required")
	case 1:
		o.Query = args[0]
	default:
		return fmt.Errorf("exactly one query FASTA file is expected, got %d", len(args))
	}
	return Validate(o)
}

// Validate applies CLI invariants.
func Validate(o *Options) error {
	if o.Query == "" {
		return errors.New("a query FASTA file is required")
	}
	if o.Database == "" {
		return errors.New("--db is required")
	}
	if o.Task == "" {
		return errors.New("--task must not be empty")
	}
	if o.Aligner == "" {
		return errors.New("--aligner must not be empty")
	}
	if o.MaxTargets < 0 {
		return errors.New("--max-targets must be ≥ 0")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if o.Timeout < 0 {
		return errors.New("--timeout must be ≥ 0")
	}
	if len(o.Formats) == 0 {
		return errors.New("--formats must name at least one format")
	}
	for _, fm := range o.Formats {
		switch fm {
		case output.FormatCSV, output.FormatFASTA, output.FormatJSON:
		default:
			return fmt.Errorf("invalid --formats value %q", fm)
		}
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
