// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"gslice/internal/hits"
	"gslice/internal/jsonlutil"
	"gslice/internal/output"
)

// StartHitJSONLWriter streams each record as one JSON line (v1).
func StartHitJSONLWriter(out io.Writer, bufSize int, useNames bool) (chan<- hits.Record, <-chan error) {
	return jsonlutil.Start[hits.Record](out, bufSize,
		func(enc *json.Encoder, r hits.Record) error {
			return enc.Encode(output.ToAPIHit(r, useNames))
		},
		IsBrokenPipe,
	)
}

// StreamJSONL writes every hit of agg to out in group order and returns the
// number of lines sent.
func StreamJSONL(out io.Writer, agg *hits.Aggregated, useNames bool) (int, error) {
	in, done := StartHitJSONLWriter(out, 0, useNames)
	n := 0
	for _, key := range agg.Keys() {
		for _, r := range agg.Hits(key) {
			select {
			case in <- r:
				n++
			case err := <-done:
				close(in)
				return n, err
			}
		}
	}
	close(in)
	return n, <-done
}
