package fasta

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// CountRecords returns the number of '>' header markers in a plain FASTA
// file. The file is memory-mapped read-only; an empty file has no records.
func CountRecords(path string) (int, error) {
	fp, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer fp.Close()

	fi, err := fp.Stat()
	if err != nil {
		return 0, err
	}
	if fi.IsDir() {
		return 0, fmt.Errorf("%s is a directory", path)
	}
	if fi.Size() == 0 {
		return 0, nil
	}

	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return 0, fmt.Errorf("mmap %s: %w", path, err)
	}
	defer mm.Unmap()
	return bytes.Count(mm, []byte(">")), nil
}
