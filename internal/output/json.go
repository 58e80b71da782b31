package output

import (
	"io"

	"gslice/internal/hits"
	"gslice/internal/jsonutil"
	"gslice/pkg/api"
)

// ToAPIHit converts a parsed record to the stable wire schema (v1).
func ToAPIHit(r hits.Record, useNames bool) api.HitV1 {
	return api.HitV1{
		QueryID:     r.QueryID(),
		Subject:     r.Get(hits.FieldSubjectVer),
		FASTAHeader: FASTAHeader(r, useNames),
		Seq:         UngapSeq(r.Get(hits.FieldSubjectSeq)),
		Fields:      r.Map(),
	}
}

// WriteJSON writes a single JSON array of v1 hits (pretty-indented).
func WriteJSON(w io.Writer, list []hits.Record, useNames bool) error {
	out := make([]api.HitV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIHit(r, useNames))
	}
	return jsonutil.EncodePretty(w, out)
}
