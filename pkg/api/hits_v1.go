// pkg/api/hits_v1.go
package api

// HitV1 is the stable JSON schema for one aligner hit.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type HitV1 struct {
	QueryID     string            `json:"query_id"`
	Subject     string            `json:"subject"`
	FASTAHeader string            `json:"fasta_header"`
	Seq         string            `json:"seq"` // ungapped subject sequence
	Fields      map[string]string `json:"fields"`
}
