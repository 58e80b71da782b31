package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"gslice/internal/hits"
)

// WriteCSV writes a header row and one row per hit. The first column is a
// 0-based row index with an empty header cell; the rest follow hits.Schema,
// absent fields left empty.
func WriteCSV(w io.Writer, list []hits.Record) error {
	cw := csv.NewWriter(w)
	header := make([]string, 0, hits.SchemaWidth+1)
	header = append(header, "")
	header = append(header, hits.Schema...)
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, hits.SchemaWidth+1)
	for i, r := range list {
		row[0] = strconv.Itoa(i)
		copy(row[1:], r.Values())
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
