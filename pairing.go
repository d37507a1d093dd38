package pairing

import (
	"errors"
	"iter"
)

// ErrEmptyQueue is the panic value of MustPop when the queue holds no
// elements.
var ErrEmptyQueue = errors.New("pairing: pop from empty queue")

// A node is one heap-ordered tree in a multiway forest, encoded
// leftmost-child/right-sibling. Every node is referenced from exactly one
// place: meld and merges transfer ownership of subtrees by relinking, never
// by copying.
type node[T any] struct {
	content T
	sibling *node[T]
	child   *node[T]
}

// Queue is a priority queue implemented as a pairing heap. The zero value is
// not usable; construct queues with NewQueue, NewQueueFromSlice or
// NewQueueFromSeq.
//
// Queues are not safe for concurrent use.
type Queue[T any] struct {
	less func(a, b T) bool
	root *node[T]
	size int
}

// NewQueue returns an empty queue ordered by less. The less function must
// describe a total order over T and should return true if a has higher
// priority than b; for example
//
//	pairing.NewQueue(func(a, b int) bool { return a > b })
//
// pops the largest value first.
func NewQueue[T any](less func(a, b T) bool) *Queue[T] {
	return &Queue[T]{less: less}
}

// NewQueueFromSlice returns a queue ordered by less holding every element of
// values. The slice is read front to back and not retained.
func NewQueueFromSlice[T any](less func(a, b T) bool, values []T) *Queue[T] {
	q := NewQueue(less)
	for _, v := range values {
		q.Push(v)
	}
	return q
}

// NewQueueFromSeq returns a queue ordered by less holding every element
// yielded by seq. Only forward iteration over seq is required.
func NewQueueFromSeq[T any](less func(a, b T) bool, seq iter.Seq[T]) *Queue[T] {
	q := NewQueue(less)
	for v := range seq {
		q.Push(v)
	}
	return q
}

// Push adds v to the queue.
func (q *Queue[T]) Push(v T) {
	q.root = q.meld(q.root, &node[T]{content: v})
	q.size++
}

// Peek returns the highest-priority element without removing it. It returns
// the zero value and false when the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	if q.root == nil {
		var zero T
		return zero, false
	}
	return q.root.content, true
}

// Pop removes and returns the highest-priority element. It returns the zero
// value and false when the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	if q.root == nil {
		var zero T
		return zero, false
	}
	content := q.root.content
	q.root = q.merges(q.root.child)
	q.size--
	return content, true
}

// MustPop removes and returns the highest-priority element. It panics with
// ErrEmptyQueue when the queue is empty; callers that cannot guarantee a
// non-empty queue should use Pop.
func (q *Queue[T]) MustPop() T {
	v, ok := q.Pop()
	if !ok {
		panic(ErrEmptyQueue)
	}
	return v
}

// Clear removes every element from the queue.
func (q *Queue[T]) Clear() {
	q.root = nil
	q.size = 0
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int { return q.size }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

// Copy returns a structural deep copy of the queue. The copy shares no nodes
// with the original, so mutating one never disturbs the other.
func (q *Queue[T]) Copy() *Queue[T] {
	c := &Queue[T]{less: q.less, size: q.size}
	// Explicit stacks rather than recursion: sibling chains can be as long
	// as the queue itself.
	src := []*node[T]{q.root}
	dst := []**node[T]{&c.root}
	for len(src) > 0 {
		n := src[len(src)-1]
		slot := dst[len(dst)-1]
		src = src[:len(src)-1]
		dst = dst[:len(dst)-1]
		if n == nil {
			continue
		}
		cp := &node[T]{content: n.content}
		*slot = cp
		src = append(src, n.child, n.sibling)
		dst = append(dst, &cp.child, &cp.sibling)
	}
	return c
}

// All returns an iterator over the elements of the queue in priority order.
// Iteration drains a copy; the queue itself is never mutated.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := q.Copy()
		for v, ok := c.Pop(); ok; v, ok = c.Pop() {
			if !yield(v) {
				return
			}
		}
	}
}

// ToSlice returns the elements of the queue in priority order.
func (q *Queue[T]) ToSlice() []T {
	out := make([]T, 0, q.size)
	for v := range q.All() {
		out = append(out, v)
	}
	return out
}

// meld unions two heap trees in O(1). Both arguments must be roots with a
// nil sibling link; meld consumes them, so the caller may not reuse either
// operand afterwards. On equal priority the second tree becomes the root.
func (q *Queue[T]) meld(x, y *node[T]) *node[T] {
	if x == nil {
		return y
	}
	if y == nil {
		return x
	}
	if q.less(x.content, y.content) {
		y.sibling = x.child
		x.child = y
		return x
	}
	x.sibling = y.child
	y.child = x
	return y
}

// merges rebuilds one tree from the sibling chain hanging off a removed
// root. Two passes: adjacent siblings are melded left to right, then the
// pair results are folded right to left. The first pass threads its results
// through the already-consumed sibling fields, so a pop allocates nothing
// and stack use stays constant however long the chain is.
func (q *Queue[T]) merges(n *node[T]) *node[T] {
	// Pass one: meld adjacent pairs, prepending each result to a list
	// relinked through the sibling fields. The list comes out reversed, with
	// the rightmost pair at its head.
	var paired *node[T]
	for n != nil {
		first := n
		second := first.sibling
		if second == nil {
			first.sibling = paired
			paired = first
			break
		}
		n = second.sibling
		first.sibling = nil
		second.sibling = nil
		m := q.meld(first, second)
		m.sibling = paired
		paired = m
	}
	// Pass two: fold right to left, melding the combined right-hand tree
	// with each pair result in turn.
	var merged *node[T]
	for paired != nil {
		next := paired.sibling
		paired.sibling = nil
		merged = q.meld(merged, paired)
		paired = next
	}
	return merged
}
