// Package aligner wraps one invocation of the external sequence aligner.
//
// Process execution sits behind Executor so tests can substitute canned
// output for a real binary.
package aligner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// waitDelay bounds how long Execute waits for output pipes after the
// process has been killed on cancellation.
const waitDelay = 5 * time.Second

// Result is the captured outcome of one external process.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Executor runs an external command to completion.
// A non-zero exit is reported through Result.ExitCode, not as an error;
// errors mean the process could not be run or was interrupted.
type Executor interface {
	Execute(ctx context.Context, name string, args []string) (Result, error)
}

// ExecExecutor runs commands as OS processes.
type ExecExecutor struct{}

func (ExecExecutor) Execute(ctx context.Context, name string, args []string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	return outcome(Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}, err, ctx.Err())
}

// outcome maps a finished run to Execute's contract. ctxErr only counts when
// the run itself failed: a process that exited 0 as the deadline passed
// still produced complete output.
func outcome(res Result, runErr, ctxErr error) (Result, error) {
	if runErr == nil {
		return res, nil
	}
	if ctxErr != nil {
		res.ExitCode = -1
		return res, ctxErr
	}
	var ee *exec.ExitError
	if errors.As(runErr, &ee) {
		res.ExitCode = ee.ExitCode()
		return res, nil
	}
	res.ExitCode = -1
	return res, runErr
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(ctx context.Context, name string, args []string) (Result, error)

func (f ExecutorFunc) Execute(ctx context.Context, name string, args []string) (Result, error) {
	return f(ctx, name, args)
}
