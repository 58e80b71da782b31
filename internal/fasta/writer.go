package fasta

import (
	"bufio"
	"fmt"
	"io"

	"github.com/shenwei356/xopen"
)

// Write renders recs as FASTA, one sequence line per record.
func Write(w io.Writer, recs []Record) error {
	for _, r := range recs {
		hdr := r.Header
		if hdr == "" {
			hdr = r.ID
		}
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", hdr, r.Seq); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes recs to path, creating or truncating it. A ".gz" suffix
// compresses the output.
func WriteFile(path string, recs []Record) (err error) {
	fh, err := xopen.Wopen(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriterSize(fh, 64<<10)
	if err := Write(bw, recs); err != nil {
		return err
	}
	return bw.Flush()
}
