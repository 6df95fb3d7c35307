package datastruct

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
)

// NewListFromSeq collects the values of the sequence into a new List.
func NewListFromSeq[T any](seq iter.Seq[T]) *List[T] {
	var l List[T]
	for v := range seq {
		l.Append(v)
	}
	return &l
}

// NewSetFromSeq collects the values of the sequence into a new Set.
// Duplicate values collapse into a single element and the sequence order is not retained.
func NewSetFromSeq[T comparable](seq iter.Seq[T]) *Set[T] {
	var s Set[T]
	for v := range seq {
		s.Append(v)
	}
	return &s
}

// NewCounterFromSeq tallies the values of the sequence into a new Counter.
func NewCounterFromSeq[T comparable](seq iter.Seq[T]) *Counter[T] {
	var c Counter[T]
	for v := range seq {
		c.Append(v)
	}
	return &c
}

// NewSortedListFromSeq collects the values of the sequence into a new SortedList.
// The sequence order is replaced by the sort order.
func NewSortedListFromSeq[T any](seq iter.Seq[T], opts ...SortedListOption[T]) (*SortedList[T], error) {
	l := NewSortedList(opts...)
	if err := l.Add(iterkit.Collect(seq)...); err != nil {
		return nil, err
	}
	return l, nil
}

// NewMapFromSeq2 collects the key value pairs of the sequence into a new Map.
// When a key repeats, the value seen last wins.
func NewMapFromSeq2[K comparable, V any](seq iter.Seq2[K, V]) *Map[K, V] {
	var m Map[K, V]
	m.init()
	for k, v := range seq {
		m.kvs[k] = v
	}
	return &m
}
