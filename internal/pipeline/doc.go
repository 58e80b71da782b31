// Package pipeline partitions query records into batches and runs one
// aligner invocation per batch on a bounded worker pool.
//
// The only contract to implement is BatchFunc. This keeps the pool
// independent of the aligner and testable with fakes.
package pipeline
