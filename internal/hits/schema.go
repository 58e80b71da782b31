// Package hits decodes tabular aligner output into named records and groups
// them by originating query.
package hits

import "strings"

// Schema is the fixed, ordered column list requested from the aligner
// (BLAST+ tabular output, -outfmt 6). Parser and invoker share it so the
// requested and decoded layouts cannot drift apart.
var Schema = []string{
	"qseqid", "qgi", "qacc", "qaccver", "qlen",
	"sseqid", "sallseqid", "sgi", "sallgi", "sacc", "saccver", "sallacc", "slen",
	"qstart", "qend", "sstart", "send",
	"qseq", "sseq",
	"evalue", "bitscore", "score", "length", "pident", "nident", "mismatch",
	"positive", "gapopen", "gaps", "ppos",
	"frames", "qframe", "sframe", "btop",
	"staxids", "sscinames", "scomnames", "sblastnames", "sskingdoms",
	"stitle", "salltitles", "sstrand", "qcovs", "qcovhsp",
}

// SchemaWidth is the number of columns in one complete row.
const SchemaWidth = 44

// Field names referenced by grouping, validation and export.
const (
	FieldQuerySeqID = "qseqid"
	FieldSubjectAcc = "sacc"
	FieldSubjectVer = "saccver"
	FieldSubjectSeq = "sseq"
	FieldTaxIDs     = "staxids"
	FieldSciNames   = "sscinames"
)

var fieldIndex = func() map[string]int {
	m := make(map[string]int, len(Schema))
	for i, f := range Schema {
		m[f] = i
	}
	return m
}()

// OutFormat renders the aligner's output-format selector for Schema.
func OutFormat() string {
	return "6 " + strings.Join(Schema, " ")
}

// Index returns the column position of field, or -1 when it is not in Schema.
func Index(field string) int {
	if i, ok := fieldIndex[field]; ok {
		return i
	}
	return -1
}
