// Package merge combines multiple sorted sequences into a single sorted
// sequence. The merge is driven by a pairing-heap priority queue that holds
// one cursor per input, so each step costs O(log k) for k inputs and the
// output is produced lazily.
//
// Key features:
//   - Generic implementation supporting any element type
//   - Iterator-based interface using Go's iter.Seq
//   - Lazy evaluation: inputs are only read as the output is consumed
//   - Convenience helper for merging plain slices
//
// Basic usage:
//
//	// Create sorted sequences
//	seq1 := NewList(1, 3, 5)
//	seq2 := NewList(2, 4, 6)
//	seq3 := NewList(7, 8, 9)
//
//	// Merge them into one sorted stream
//	merged := merge.All(
//	    func(a, b int) bool { return a < b },
//	    seq1, seq2, seq3,
//	)
//
//	for v := range merged {
//	    fmt.Println(v)  // Will print: 1, 2, 3, 4, 5, 6, 7, 8, 9
//	}
//
// Each input must already be sorted under the supplied less function; the
// relative order of equal elements drawn from different inputs is
// unspecified.
package merge
