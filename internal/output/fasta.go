package output

import (
	"fmt"
	"io"
	"strings"

	"gslice/internal/hits"
)

// UngapSeq removes alignment gap characters.
func UngapSeq(s string) string { return strings.ReplaceAll(s, GapChar, "") }

// FASTAHeader builds the header (without '>') for one hit. With useNames it
// is "<scientific-name>_<taxid>_<accession>" with spaces in the name replaced
// by NameSeparator; otherwise the versioned subject accession.
func FASTAHeader(r hits.Record, useNames bool) string {
	if !useNames {
		return r.Get(hits.FieldSubjectVer)
	}
	name := strings.ReplaceAll(r.Get(hits.FieldSciNames), " ", NameSeparator)
	return name + "_" + r.Get(hits.FieldTaxIDs) + "_" + r.Get(hits.FieldSubjectAcc)
}

// WriteFASTA writes one entry per hit: header, then the ungapped subject
// sequence as aligned.
func WriteFASTA(w io.Writer, list []hits.Record, useNames bool) error {
	for _, r := range list {
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", FASTAHeader(r, useNames), UngapSeq(r.Get(hits.FieldSubjectSeq))); err != nil {
			return err
		}
	}
	return nil
}
