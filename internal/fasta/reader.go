// Package fasta reads query records, writes batch files for the aligner,
// and counts records in reference collections.
package fasta

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

func init() {
	// Queries may carry IUPAC codes or soft-masking the alphabet check rejects.
	seq.ValidateSeq = false
}

// Record is one FASTA entry. ID is the first token of the header line.
type Record struct {
	ID     string
	Header string
	Seq    []byte
}

// ReadRecords reads every record from path (plain or gzip, "-" for stdin).
// Cancellation is checked between records.
func ReadRecords(ctx context.Context, path string) ([]Record, error) {
	if path != "-" {
		fi, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if fi.Size() == 0 {
			return nil, nil
		}
	}
	r, err := fastx.NewReader(nil, path, "")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer r.Close()

	var out []Record
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		out = append(out, Record{
			ID:     string(rec.ID),
			Header: string(rec.Name),
			Seq:    append([]byte(nil), rec.Seq.Seq...),
		})
	}
	return out, nil
}
