package pipeline

import (
	"context"
	"sync"
	"time"

	"gslice/internal/fasta"
)

// Config controls the worker pool.
type Config struct {
	Workers int           // number of worker goroutines (>=1)
	Timeout time.Duration // per-batch deadline; 0 disables

	// OnDone, if set, is called from the worker after each invoked batch.
	// It must be safe for concurrent use.
	OnDone func(BatchResult)
}

// BatchFunc runs the aligner on one non-empty batch and returns raw lines.
type BatchFunc func(ctx context.Context, index int, batch []fasta.Record) ([]string, error)

// BatchResult is the outcome of one batch, at its submission position.
type BatchResult struct {
	Index    int
	Size     int
	Lines    []string
	Err      error
	Skipped  bool // empty batch, never invoked
	Duration time.Duration
}

// Run executes fn once per non-empty batch using cfg.Workers goroutines and
// returns one result per batch in submission order. Empty batches are not
// invoked. Each call gets its own deadline when cfg.Timeout > 0, so a hung
// batch fails alone. Once ctx is done no further batches are started; the
// unstarted ones report ctx.Err().
func Run(ctx context.Context, cfg Config, batches [][]fasta.Record, fn BatchFunc) []BatchResult {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	results := make([]BatchResult, len(batches))
	for i, b := range batches {
		results[i] = BatchResult{Index: i, Size: len(b), Skipped: len(b) == 0}
	}

	jobs := make(chan int, cfg.Workers*2)

	// Workers write to distinct indices, so no lock is needed on results.
	var wg sync.WaitGroup
	wg.Add(cfg.Workers)
	for w := 0; w < cfg.Workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = runOne(ctx, cfg.Timeout, i, batches[i], fn)
				if cfg.OnDone != nil {
					cfg.OnDone(results[i])
				}
			}
		}()
	}

	next := 0
feed:
	for ; next < len(batches); next++ {
		if len(batches[next]) == 0 {
			continue
		}
		select {
		case <-ctx.Done():
			break feed
		case jobs <- next:
		}
	}
	close(jobs)
	wg.Wait()

	for ; next < len(batches); next++ {
		if !results[next].Skipped {
			results[next].Err = ctx.Err()
		}
	}
	return results
}

func runOne(parent context.Context, timeout time.Duration, i int, batch []fasta.Record, fn BatchFunc) BatchResult {
	ctx := parent
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, timeout)
		defer cancel()
	}
	start := time.Now()
	lines, err := fn(ctx, i, batch)
	return BatchResult{
		Index:    i,
		Size:     len(batch),
		Lines:    lines,
		Err:      err,
		Duration: time.Since(start),
	}
}

// Succeeded returns the invoked results that completed without error, in
// batch order.
func Succeeded(results []BatchResult) []BatchResult {
	var out []BatchResult
	for _, r := range results {
		if r.Err == nil && !r.Skipped {
			out = append(out, r)
		}
	}
	return out
}

// Failures returns the results whose invocation failed.
func Failures(results []BatchResult) []BatchResult {
	var out []BatchResult
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}
