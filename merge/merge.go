package merge

import (
	"iter"

	"github.com/davidvella/pairing"
)

// Sequence is any collection that can be iterated in sorted order.
type Sequence[E any] interface {
	All() iter.Seq[E]
}

// A cursor tracks one input sequence: its current value and the pull
// function that advances it.
type cursor[E any] struct {
	value E
	next  func() (E, bool)
}

// All merges sequences into a single sorted sequence, yielded lazily. Each
// input must already be sorted under less; less should return true if a
// sorts before b. Ties between sequences may yield in either order.
func All[E any](less func(a, b E) bool, sequences ...Sequence[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		q := pairing.NewQueue(func(a, b cursor[E]) bool {
			return less(a.value, b.value)
		})
		for _, s := range sequences {
			next, stop := iter.Pull(s.All())
			//nolint:gocritic // is not a leak.
			defer stop()
			if v, ok := next(); ok {
				q.Push(cursor[E]{value: v, next: next})
			}
		}
		for !q.IsEmpty() {
			c := q.MustPop()
			if !yield(c.value) {
				return
			}
			if v, ok := c.next(); ok {
				c.value = v
				q.Push(c)
			}
		}
	}
}

// Slices merges already-sorted slices into one sorted slice.
func Slices[E any](less func(a, b E) bool, slices ...[]E) []E {
	sequences := make([]Sequence[E], len(slices))
	total := 0
	for i, s := range slices {
		sequences[i] = sliceSequence[E](s)
		total += len(s)
	}
	out := make([]E, 0, total)
	for v := range All(less, sequences...) {
		out = append(out, v)
	}
	return out
}

type sliceSequence[E any] []E

func (s sliceSequence[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}
