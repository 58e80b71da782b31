// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gslice/internal/appcore"
	"gslice/internal/cli"
	"gslice/internal/runutil"
	"gslice/internal/version"
	"gslice/internal/writers"
)

const name = "gslice"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	if len(argv) == 0 {
		argv = []string{"--help"}
	}

	var opts cli.Options
	cmd := cli.NewCommand(name, &opts)
	cmd.SetArgs(argv)
	cmd.SetOut(outw)
	cmd.SetErr(stderr)

	code := appcore.ExitOK
	cmd.RunE = func(c *cobra.Command, args []string) error {
		if err := cli.Bind(&opts, args); err != nil {
			return err
		}
		if opts.Version {
			_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
			return nil
		}
		code = appcore.Run(c.Context(), stderr, appcore.Options{
			Query:           opts.Query,
			Database:        opts.Database,
			OutDir:          runutil.ResolveOutputDir(opts.OutDir, opts.Query),
			Task:            opts.Task,
			Binary:          opts.Aligner,
			MaxTargets:      opts.MaxTargets,
			Workers:         runutil.EffectiveWorkers(opts.Threads),
			Timeout:         opts.Timeout,
			Tag:             opts.Tag,
			UseNames:        opts.UseNames,
			Formats:         opts.Formats,
			Report:          opts.Report,
			NoMatchExitCode: opts.NoMatchExitCode,
			Quiet:           opts.Quiet,
			Progress:        opts.Progress,
			JSONL:           opts.JSONL,
			Stdout:          outw,
		})
		return nil
	}

	if err := cmd.ExecuteContext(parent); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
		code = appcore.ExitUsage
	}

	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return code
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitFailure
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
