// Package writers turns grouped hits into per-query files and streams.
//
// Design:
//   • Each format registers one Artifact (file name + renderer).
//   • output owns presentation; writers owns files and directories.
//   • JSON and JSONL go through pkg/api (v1) for a stable wire format.
package writers
