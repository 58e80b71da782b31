// Package output renders grouped hits as FASTA, CSV and JSON.
package output

// Export formats.
const (
	FormatCSV   = "csv"
	FormatFASTA = "fasta"
	FormatJSON  = "json"
)

// NameSeparator replaces spaces in scientific names used as FASTA headers.
const NameSeparator = "-"

// GapChar marks an alignment gap in aligned sequences.
const GapChar = "-"

// ArtifactSuffix is appended to every exported file stem.
const ArtifactSuffix = "alignment-output"
