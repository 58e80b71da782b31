package aligner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"gslice/internal/hits"
)

func canned(res Result, err error) ExecutorFunc {
	return func(context.Context, string, []string) (Result, error) { return res, err }
}

func TestArgs(t *testing.T) {
	inv := Invoker{Task: "blastn-short", Database: "db.fa", MaxTargets: 10}
	want := []string{
		"-task", "blastn-short",
		"-db", "db.fa",
		"-num_alignments", "10",
		"-outfmt", hits.OutFormat(),
		"-query", "q.fa",
	}
	if diff := cmp.Diff(want, inv.Args("q.fa")); diff != "" {
		t.Fatalf("args (-want +got):\n%s", diff)
	}
	if got := (Invoker{}).Args("q")[1]; got != DefaultTask {
		t.Fatalf("default task = %q", got)
	}
}

func TestInvoke_SplitsLines(t *testing.T) {
	var gotName string
	ex := ExecutorFunc(func(_ context.Context, name string, _ []string) (Result, error) {
		gotName = name
		return Result{Stdout: []byte("q1\ta\nq2\tb\n")}, nil
	})
	lines, err := Invoker{Exec: ex}.Invoke(context.Background(), "q.fa")
	if err != nil {
		t.Fatal(err)
	}
	if gotName != DefaultBinary {
		t.Fatalf("binary = %q", gotName)
	}
	if diff := cmp.Diff([]string{"q1\ta", "q2\tb"}, lines); diff != "" {
		t.Fatalf("lines (-want +got):\n%s", diff)
	}
}

func TestInvoke_EmptyOutputIsNoHits(t *testing.T) {
	lines, err := Invoker{Exec: canned(Result{}, nil)}.Invoke(context.Background(), "q.fa")
	if err != nil || len(lines) != 0 {
		t.Fatalf("want no lines and no error, got %v, %v", lines, err)
	}
}

func TestInvoke_NonZeroExit(t *testing.T) {
	_, err := Invoker{Exec: canned(Result{ExitCode: 2, Stderr: []byte("BLAST Database error\n")}, nil)}.
		Invoke(context.Background(), "q.fa")
	var ie *InvocationError
	if !errors.As(err, &ie) {
		t.Fatalf("want InvocationError, got %v", err)
	}
	if ie.ExitCode != 2 || ie.Stderr != "BLAST Database error" {
		t.Fatalf("unexpected error fields: %+v", ie)
	}
	if !strings.Contains(err.Error(), "exit status 2") {
		t.Fatalf("message: %v", err)
	}
}

func TestInvoke_Undecodable(t *testing.T) {
	_, err := Invoker{Exec: canned(Result{Stdout: []byte{0xff, 0xfe, '\n'}}, nil)}.
		Invoke(context.Background(), "q.fa")
	if !errors.Is(err, ErrUndecodable) {
		t.Fatalf("want ErrUndecodable, got %v", err)
	}
}

func TestInvoke_ExecutorError(t *testing.T) {
	boom := errors.New("no such binary")
	_, err := Invoker{Exec: canned(Result{ExitCode: -1}, boom)}.Invoke(context.Background(), "q.fa")
	if !errors.Is(err, boom) {
		t.Fatalf("want wrapped cause, got %v", err)
	}
}

func TestInvoke_Timeout(t *testing.T) {
	ex := ExecutorFunc(func(ctx context.Context, _ string, _ []string) (Result, error) {
		<-ctx.Done()
		return Result{ExitCode: -1}, ctx.Err()
	})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := Invoker{Exec: ex}.Invoke(ctx, "q.fa")
	if !errors.Is(err, ErrTimeout) || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want timeout, got %v", err)
	}
}

func TestSplitLines(t *testing.T) {
	if got := SplitLines(""); got != nil {
		t.Fatalf("empty: %v", got)
	}
	if diff := cmp.Diff([]string{"a", "", "b"}, SplitLines("a\n\nb")); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestExecExecutor_Script(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake needs a POSIX shell")
	}
	dir := t.TempDir()
	script := filepath.Join(dir, "fake-aligner")
	body := "#!/bin/sh\necho \"$2\"\necho oops >&2\nexit 3\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatal(err)
	}
	res, err := ExecExecutor{}.Execute(context.Background(), script, []string{"-task", "megablast"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if res.ExitCode != 3 || strings.TrimSpace(string(res.Stdout)) != "megablast" || strings.TrimSpace(string(res.Stderr)) != "oops" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestOutcome_CleanExitAtDeadlineKeepsOutput(t *testing.T) {
	res, err := outcome(Result{Stdout: []byte("q1\ts1\n")}, nil, context.DeadlineExceeded)
	if err != nil {
		t.Fatalf("clean exit reported as %v", err)
	}
	if res.ExitCode != 0 || string(res.Stdout) != "q1\ts1\n" {
		t.Fatalf("output dropped: %+v", res)
	}
}

func TestOutcome_KilledByDeadline(t *testing.T) {
	_, err := outcome(Result{}, errors.New("signal: killed"), context.DeadlineExceeded)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want deadline error, got %v", err)
	}
}

func TestExecExecutor_CancelledKillsProcess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake needs a POSIX shell")
	}
	script := filepath.Join(t.TempDir(), "slow-aligner")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nexec sleep 10\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	res, err := ExecExecutor{}.Execute(ctx, script, nil)
	if !errors.Is(err, context.DeadlineExceeded) || res.ExitCode != -1 {
		t.Fatalf("want deadline with exit -1, got %+v %v", res, err)
	}
}

func TestExcerpt_KeepsRunesWhole(t *testing.T) {
	s := strings.Repeat("a", maxStderr-1) + "é tail"
	got := excerpt([]byte(s))
	if !utf8.ValidString(got) {
		t.Fatalf("excerpt split a rune: %q", got[len(got)-8:])
	}
	if !strings.HasSuffix(got, "…") || len(got) > maxStderr+len("…") {
		t.Fatalf("excerpt not trimmed: %d bytes", len(got))
	}
}
