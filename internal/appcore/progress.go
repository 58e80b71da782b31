package appcore

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"gslice/internal/pipeline"
)

// progress draws a finished-batches bar; a nil *progress is a no-op.
type progress struct {
	pbs *mpb.Progress
	bar *mpb.Bar
}

func newProgress(w io.Writer, total, workers int) *progress {
	if w == nil || total == 0 {
		return nil
	}
	pbs := mpb.New(mpb.WithWidth(40), mpb.WithOutput(w), mpb.WithAutoRefresh())
	bar := pbs.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("aligned batches: ", decor.WC{W: len("aligned batches: "), C: decor.DindentRight}),
			decor.Name("", decor.WCSyncSpaceR),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
			decor.EwmaETA(decor.ET_STYLE_GO, float64(workers)),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
	return &progress{pbs: pbs, bar: bar}
}

func (p *progress) done(r pipeline.BatchResult) {
	if p == nil {
		return
	}
	p.bar.EwmaIncrBy(1, r.Duration)
}

// wait stops the bar, leaving it in place if some batches never finished.
func (p *progress) wait() {
	if p == nil {
		return
	}
	if !p.bar.Completed() {
		p.bar.Abort(false)
	}
	p.pbs.Wait()
}
