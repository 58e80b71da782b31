package output

import (
	"strconv"
	"strings"
)

var unsafeName = strings.NewReplacer("/", "_", "\\", "_", "\x00", "_")

// SafeName makes a query id usable as a file name component.
func SafeName(s string) string {
	s = unsafeName.Replace(s)
	if s == "" || s == "." || s == ".." {
		return "_" + s
	}
	return s
}

// CSVName is "<tag>_<n>_alignment-output.csv" for the n-th group.
func CSVName(tag string, n int) string {
	return tag + "_" + strconv.Itoa(n) + "_" + ArtifactSuffix + ".csv"
}

// FASTAName is "<query>_alignment-output.fasta".
func FASTAName(queryID string) string {
	return SafeName(queryID) + "_" + ArtifactSuffix + ".fasta"
}

// JSONName is "<query>_alignment-output.json".
func JSONName(queryID string) string {
	return SafeName(queryID) + "_" + ArtifactSuffix + ".json"
}
