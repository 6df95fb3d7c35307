package datastruct

import (
	"cmp"
	"iter"
	"slices"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/slicekit"
)

// Counter is a frequency counter: a map from values to how many times they were seen.
// Counts may go negative through Decrement; that is valid state, not an error,
// and negative counts simply order below zero and the positives.
// Iteration follows the first-seen order of the tracked values.
// The zero value is an empty counter ready for use.
type Counter[T comparable] struct {
	counts map[T]int
	order  []T
}

func NewCounter[T comparable](vs ...T) *Counter[T] {
	var c Counter[T]
	c.Append(vs...)
	return &c
}

var _ KVS[string, int] = (*Counter[string])(nil)

func (c *Counter[T]) init() {
	if c.counts == nil {
		c.counts = make(map[T]int)
	}
}

// Append counts each given value once.
func (c *Counter[T]) Append(vs ...T) {
	for _, v := range vs {
		c.Increment(v, 1)
	}
}

// Increment raises the count of v by the given amount.
// A not yet tracked value starts from zero.
func (c *Counter[T]) Increment(v T, by int) {
	c.init()
	if _, ok := c.counts[v]; !ok {
		c.order = append(c.order, v)
	}
	c.counts[v] += by
}

// Decrement lowers the count of v by the given amount.
// It is free to drive the count negative.
func (c *Counter[T]) Decrement(v T, by int) {
	c.Increment(v, -by)
}

// Get returns the count of v, zero when v was never seen.
func (c *Counter[T]) Get(v T) int {
	return c.counts[v]
}

func (c *Counter[T]) Lookup(v T) (int, bool) {
	n, ok := c.counts[v]
	return n, ok
}

// Delete drops v from the tracked values and reports whether it was tracked.
func (c *Counter[T]) Delete(v T) bool {
	if _, ok := c.counts[v]; !ok {
		return false
	}
	delete(c.counts, v)
	for i, got := range c.order {
		if got == v {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether v is tracked, regardless of its count.
func (c *Counter[T]) Contains(v T) bool {
	_, ok := c.counts[v]
	return ok
}

// Len reports the number of distinct tracked values.
func (c *Counter[T]) Len() int {
	return len(c.counts)
}

// Total returns the sum of all counts.
func (c *Counter[T]) Total() int {
	var sum int
	for _, n := range c.counts {
		sum += n
	}
	return sum
}

// MostCommon yields the k highest counted values in descending count order,
// ties broken by first-seen order. A non-positive k, or a k larger than the
// number of tracked values, yields all of them.
func (c *Counter[T]) MostCommon(k int) iter.Seq2[T, int] {
	top := slicekit.Map(c.order, func(v T) iterkit.KV[T, int] {
		return iterkit.KV[T, int]{K: v, V: c.counts[v]}
	})
	slices.SortStableFunc(top, func(a, b iterkit.KV[T, int]) int {
		return cmp.Compare(b.V, a.V)
	})
	if 0 < k && k < len(top) {
		top = top[:k]
	}
	return iterkit.FromKV(top)
}

// Add merges the counts of the other counters into the receiver.
func (c *Counter[T]) Add(oths ...*Counter[T]) {
	for _, oth := range oths {
		if oth == nil {
			continue
		}
		for _, v := range oth.order {
			c.Increment(v, oth.counts[v])
		}
	}
}

// Subtract deducts the counts of the other counters from the receiver.
// Counts may go negative; entries are kept.
func (c *Counter[T]) Subtract(oths ...*Counter[T]) {
	for _, oth := range oths {
		if oth == nil {
			continue
		}
		for _, v := range oth.order {
			c.Decrement(v, oth.counts[v])
		}
	}
}

// All yields the tracked values with their counts in first-seen order.
func (c *Counter[T]) All() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		for i := 0; i < len(c.order); i++ {
			v := c.order[i]
			if !yield(v, c.counts[v]) {
				return
			}
		}
	}
}

// Keys yields the tracked values in first-seen order.
func (c *Counter[T]) Keys() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(c.order); i++ {
			if !yield(c.order[i]) {
				return
			}
		}
	}
}

// Elements yields each tracked value as many times as its count.
// Values with a zero or negative count are skipped.
func (c *Counter[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(c.order); i++ {
			v := c.order[i]
			for n := c.counts[v]; 0 < n; n-- {
				if !yield(v) {
					return
				}
			}
		}
	}
}

func (c *Counter[T]) ToMap() map[T]int {
	out := make(map[T]int, len(c.counts))
	for v, n := range c.counts {
		out[v] = n
	}
	return out
}

func (c *Counter[T]) Clone() *Counter[T] {
	clone := &Counter[T]{
		counts: make(map[T]int, len(c.counts)),
		order:  slicekit.Clone(c.order),
	}
	for v, n := range c.counts {
		clone.counts[v] = n
	}
	return clone
}

// Equal reports whether both counters track the same values with the same counts.
// First-seen order is bookkeeping, not content, so it is ignored.
func (c *Counter[T]) Equal(oth *Counter[T]) bool {
	if c == nil || oth == nil {
		return c == oth
	}
	if c.Len() != oth.Len() {
		return false
	}
	for v, n := range c.counts {
		on, ok := oth.counts[v]
		if !ok || n != on {
			return false
		}
	}
	return true
}

// Is reports identity: whether both names refer to the same counter instance.
func (c *Counter[T]) Is(oth *Counter[T]) bool {
	return c == oth
}
