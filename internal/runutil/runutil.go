// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/shenwei356/util/pathutil"
)

// EffectiveWorkers returns the worker count: threads if > 0, else all CPUs.
func EffectiveWorkers(threads int) int {
	if threads > 0 {
		return threads
	}
	return runtime.NumCPU()
}

// ResolveOutputDir returns out, or the directory of the query file when out
// is empty.
func ResolveOutputDir(out, query string) string {
	if out != "" {
		return out
	}
	return filepath.Dir(query)
}

// EnsureOutputDir creates dir (and parents) and checks it is a directory.
func EnsureOutputDir(dir string) error {
	ok, err := pathutil.DirExists(dir)
	if err != nil {
		return fmt.Errorf("check output directory: %w", err)
	}
	if ok {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}
