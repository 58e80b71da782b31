package aligner

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"gslice/internal/hits"
)

// DefaultBinary and DefaultTask match a stock BLAST+ nucleotide search.
const (
	DefaultBinary = "blastn"
	DefaultTask   = "megablast"
)

var (
	// ErrUndecodable means stdout was not valid UTF-8 text.
	ErrUndecodable = errors.New("aligner output is not valid text")
	// ErrTimeout means the invocation exceeded its deadline.
	ErrTimeout = errors.New("aligner timed out")
)

// InvocationError describes a failed aligner run.
type InvocationError struct {
	Query    string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *InvocationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "aligner failed on %s", e.Query)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	} else {
		fmt.Fprintf(&b, ": exit status %d", e.ExitCode)
	}
	if e.Stderr != "" {
		fmt.Fprintf(&b, ": %s", e.Stderr)
	}
	return b.String()
}

func (e *InvocationError) Unwrap() error { return e.Err }

// Invoker builds and runs one aligner command per query file.
type Invoker struct {
	Binary     string
	Task       string
	Database   string
	MaxTargets int // upper bound on reported alignments; the database record count
	Exec       Executor
}

// Args returns the argument vector for one query file.
func (inv Invoker) Args(query string) []string {
	task := inv.Task
	if task == "" {
		task = DefaultTask
	}
	return []string{
		"-task", task,
		"-db", inv.Database,
		"-num_alignments", strconv.Itoa(inv.MaxTargets),
		"-outfmt", hits.OutFormat(),
		"-query", query,
	}
}

// Invoke runs the aligner on query and returns its tabular output lines.
// Any failure is returned as an error; an empty slice with a nil error means
// the aligner succeeded and found nothing.
func (inv Invoker) Invoke(ctx context.Context, query string) ([]string, error) {
	bin := inv.Binary
	if bin == "" {
		bin = DefaultBinary
	}
	ex := inv.Exec
	if ex == nil {
		ex = ExecExecutor{}
	}

	res, err := ex.Execute(ctx, bin, inv.Args(query))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return nil, &InvocationError{Query: query, ExitCode: res.ExitCode, Stderr: excerpt(res.Stderr), Err: err}
	}
	if res.ExitCode != 0 {
		return nil, &InvocationError{Query: query, ExitCode: res.ExitCode, Stderr: excerpt(res.Stderr)}
	}
	if !utf8.Valid(res.Stdout) {
		return nil, &InvocationError{Query: query, Err: ErrUndecodable}
	}
	return SplitLines(string(res.Stdout)), nil
}

// SplitLines splits output on newlines, dropping the empty tail produced by
// a trailing newline.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

const maxStderr = 512

func excerpt(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > maxStderr {
		cut := maxStderr
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "…"
	}
	return s
}
