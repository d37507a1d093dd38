// Package pairing implements a generic priority queue backed by a pairing
// heap: a self-adjusting heap-ordered multiway tree with O(1) amortized
// insertion and O(log n) amortized removal of the highest-priority element.
//
// The ordering is determined by a user-provided comparison function that
// defines the priority relationship between elements. The less function
// should return true if a has higher priority than b.
//
// Key features:
//   - Generic implementation supporting any element type
//   - O(1) push and peek, O(log n) amortized pop
//   - Construction from slices or iter.Seq sequences
//   - Priority-order iteration and export without mutating the queue
//   - Structural deep copies that share no state with the original
//
// Basic usage:
//
//	// Create a max-heap priority queue
//	pq := pairing.NewQueue(func(a, b int) bool {
//	    return a > b
//	})
//
//	// Add items
//	pq.Push(3)
//	pq.Push(7)
//	pq.Push(5)
//
//	// Get highest priority item
//	if value, ok := pq.Peek(); ok {
//	    fmt.Printf("Highest priority: %d\n", value)
//	}
//
//	// Remove and return highest priority item
//	if value, ok := pq.Pop(); ok {
//	    fmt.Printf("Popped: %d\n", value)
//	}
//
//	// Drain the rest in priority order
//	for !pq.IsEmpty() {
//	    fmt.Println(pq.MustPop())
//	}
//
// Implementation Details:
// The queue owns a single heap-ordered tree of nodes linked in
// leftmost-child/right-sibling form, plus a cached element count. Every
// operation reduces to two primitives:
//   - meld: O(1) union of two heap trees. The root with lower priority
//     becomes the leftmost child of the other; its sibling link is
//     reassigned in the same step, so ownership of the subtree moves rather
//     than being shared.
//   - merges: after a pop, the removed root's children form a flat sibling
//     chain that is recombined with the standard two-pass pairing strategy:
//     adjacent siblings are melded left to right, and the resulting pairs
//     are folded into one tree right to left. Both passes are iterative, so
//     stack use is constant even when a root has O(n) children.
//
// Nodes are created only when a value is pushed and are never copied by the
// merge machinery; melds relink existing nodes. Elements that compare equal
// may be returned in either relative order.
//
// Queues are not safe for concurrent use; callers that share a queue across
// goroutines must provide their own synchronization.
package pairing
