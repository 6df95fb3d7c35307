package datastruct

import (
	"iter"
	"slices"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/slicekit"
)

// List is a growable slice backed linear sequence.
// The zero value is an empty list ready for use.
//
// On top of the index addressable Sequence surface, List supplies a stack view
// on its tail (Push, Pop, Last) and a queue view (Enqueue, Dequeue).
// Dequeue shifts the backing slice, so it costs O(n);
// use RingBuffer when O(1) removal is needed on both ends.
type List[T any] struct {
	vs []T
}

func NewList[T any](vs ...T) *List[T] {
	return &List[T]{vs: slicekit.Clone(vs)}
}

var _ Sequence[any] = (*List[any])(nil)

func (l *List[T]) Append(vs ...T) {
	l.vs = append(l.vs, vs...)
}

func (l *List[T]) Len() int {
	return len(l.vs)
}

func (l *List[T]) Lookup(index int) (T, bool) {
	index, ok := slicekit.ResolveIndex(len(l.vs), index)
	if !ok {
		var zero T
		return zero, false
	}
	return l.vs[index], true
}

func (l *List[T]) Set(index int, v T) bool {
	index, ok := slicekit.ResolveIndex(len(l.vs), index)
	if !ok {
		return false
	}
	l.vs[index] = v
	return true
}

// Insert places vs before the element currently at index.
// Index len(list) is accepted and acts as an append.
func (l *List[T]) Insert(index int, vs ...T) bool {
	if len(vs) == 0 {
		return true
	}
	index, ok := slicekit.ResolveIndex(len(l.vs), index)
	if !ok && index != len(l.vs) {
		return false
	}
	l.vs = slices.Insert(l.vs, index, vs...)
	return true
}

func (l *List[T]) Delete(index int) bool {
	index, ok := slicekit.ResolveIndex(len(l.vs), index)
	if !ok {
		return false
	}
	l.vs = append(l.vs[:index], l.vs[index+1:]...)
	return true
}

// Remove deletes the first occurrence of v, and reports whether it was found.
// Absence is not an error, the list is simply left unchanged.
func (l *List[T]) Remove(v T) bool {
	return l.RemoveFunc(func(got T) bool {
		return reflectkit.Equal(got, v)
	})
}

func (l *List[T]) RemoveFunc(match func(v T) bool) bool {
	for i, got := range l.vs {
		if match(got) {
			l.vs = append(l.vs[:i], l.vs[i+1:]...)
			return true
		}
	}
	return false
}

func (l *List[T]) Contains(v T) bool {
	return l.ContainsFunc(func(got T) bool {
		return reflectkit.Equal(got, v)
	})
}

func (l *List[T]) ContainsFunc(match func(v T) bool) bool {
	for _, got := range l.vs {
		if match(got) {
			return true
		}
	}
	return false
}

// Push appends on the tail, making List usable as a stack.
func (l *List[T]) Push(vs ...T) {
	l.Append(vs...)
}

// Pop removes and returns the last element.
func (l *List[T]) Pop() (T, bool) {
	v, ok := l.Last()
	if ok {
		l.vs = l.vs[:len(l.vs)-1]
	}
	return v, ok
}

func (l *List[T]) Last() (T, bool) {
	return slicekit.Last(l.vs)
}

func (l *List[T]) First() (T, bool) {
	return slicekit.First(l.vs)
}

// Enqueue appends on the tail, making List usable as a queue together with Dequeue.
func (l *List[T]) Enqueue(vs ...T) {
	l.Append(vs...)
}

// Dequeue removes and returns the head element.
// It shifts the remaining elements, which costs O(n).
func (l *List[T]) Dequeue() (T, bool) {
	v, ok := l.First()
	if ok {
		l.vs = l.vs[1:]
	}
	return v, ok
}

// Values returns a restartable iterator over the elements in index order.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(l.vs); i++ {
			if !yield(l.vs[i]) {
				return
			}
		}
	}
}

func (l *List[T]) ToSlice() []T {
	return slicekit.Clone(l.vs)
}

// Clone returns an independent copy, mutations on it don't affect the original.
// Elements are copied by assignment.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{vs: slicekit.Clone(l.vs)}
}

func (l *List[T]) Reverse() {
	slices.Reverse(l.vs)
}

func (l *List[T]) Swap(i, j int) bool {
	i, iok := slicekit.ResolveIndex(len(l.vs), i)
	j, jok := slicekit.ResolveIndex(len(l.vs), j)
	if !iok || !jok {
		return false
	}
	l.vs[i], l.vs[j] = l.vs[j], l.vs[i]
	return true
}

// Equal reports structural equality: same length and deeply equal elements in the same order.
func (l *List[T]) Equal(oth *List[T]) bool {
	return l.EqualFunc(oth, func(a, b T) bool {
		return reflectkit.Equal(a, b)
	})
}

func (l *List[T]) EqualFunc(oth *List[T], eq func(a, b T) bool) bool {
	if l == nil || oth == nil {
		return l == oth
	}
	return slices.EqualFunc(l.vs, oth.vs, eq)
}

// Is reports identity: whether both names refer to the same list instance.
func (l *List[T]) Is(oth *List[T]) bool {
	return l == oth
}
