package pipeline

// Partition splits items into exactly k contiguous batches (k < 1 counts as
// 1). The first k-1 batches hold len(items)/k items each; the last batch also
// takes the remainder. Concatenating the batches in order yields items.
//
// Batches alias items; callers must not append to them.
func Partition[T any](items []T, k int) [][]T {
	if k < 1 {
		k = 1
	}
	base := len(items) / k
	out := make([][]T, k)
	for i := 0; i < k-1; i++ {
		out[i] = items[i*base : (i+1)*base : (i+1)*base]
	}
	out[k-1] = items[(k-1)*base:]
	return out
}

// NonEmpty counts batches holding at least one item.
func NonEmpty[T any](batches [][]T) int {
	n := 0
	for _, b := range batches {
		if len(b) > 0 {
			n++
		}
	}
	return n
}
