package datastruct

import (
	"iter"

	"go.llib.dev/frameless/pkg/slicekit"
)

// Set is a hash based collection of unique values.
// Appending an already present value is a no-op.
// Iteration order is unspecified; use OrderedSet when order matters.
// The zero value is an empty set ready for use.
type Set[T comparable] struct {
	vs map[T]struct{}
}

func NewSet[T comparable](vs ...T) *Set[T] {
	var s Set[T]
	s.Append(vs...)
	return &s
}

var _ Bag[any] = (*Set[any])(nil)

func (s *Set[T]) init() {
	if s.vs == nil {
		s.vs = make(map[T]struct{})
	}
}

func (s *Set[T]) Append(vs ...T) {
	s.init()
	for _, v := range vs {
		s.vs[v] = struct{}{}
	}
}

func (s *Set[T]) Remove(v T) bool {
	if _, ok := s.vs[v]; !ok {
		return false
	}
	delete(s.vs, v)
	return true
}

func (s *Set[T]) Contains(v T) bool {
	_, ok := s.vs[v]
	return ok
}

func (s *Set[T]) Len() int {
	return len(s.vs)
}

func (s *Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.vs {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *Set[T]) ToSlice() []T {
	out := make([]T, 0, len(s.vs))
	for v := range s.vs {
		out = append(out, v)
	}
	return out
}

func (s *Set[T]) Clone() *Set[T] {
	return NewSet(s.ToSlice()...)
}

// Equal reports whether both sets hold the same values, regardless of iteration order.
func (s *Set[T]) Equal(oth *Set[T]) bool {
	if s == nil || oth == nil {
		return s == oth
	}
	if s.Len() != oth.Len() {
		return false
	}
	for v := range s.vs {
		if !oth.Contains(v) {
			return false
		}
	}
	return true
}

// Is reports identity: whether both names refer to the same set instance.
func (s *Set[T]) Is(oth *Set[T]) bool {
	return s == oth
}

// Union returns a new set with every value that is present in any of the sets.
func (s *Set[T]) Union(oths ...*Set[T]) *Set[T] {
	out := s.Clone()
	for _, oth := range oths {
		out.Append(oth.ToSlice()...)
	}
	return out
}

// Intersect returns a new set with the values present in all of the sets.
func (s *Set[T]) Intersect(oths ...*Set[T]) *Set[T] {
	out := NewSet[T]()
	for v := range s.vs {
		if !allContains(oths, v) {
			continue
		}
		out.Append(v)
	}
	return out
}

func allContains[T comparable](sets []*Set[T], v T) bool {
	for _, set := range sets {
		if !set.Contains(v) {
			return false
		}
	}
	return true
}

// Diff returns a new set with the values of the receiver that none of the others contain.
func (s *Set[T]) Diff(oths ...*Set[T]) *Set[T] {
	out := NewSet[T]()
	for v := range s.vs {
		var found bool
		for _, oth := range oths {
			if oth.Contains(v) {
				found = true
				break
			}
		}
		if !found {
			out.Append(v)
		}
	}
	return out
}

// IsSubset reports whether every value of the receiver is present in oth.
func (s *Set[T]) IsSubset(oth *Set[T]) bool {
	for v := range s.vs {
		if !oth.Contains(v) {
			return false
		}
	}
	return true
}

// OrderedSet is a Set variant that keeps the first insertion order of its values.
// Re-appending an already present value doesn't change its position.
// The zero value is an empty set ready for use.
type OrderedSet[T comparable] struct {
	vs    map[T]struct{}
	order []T
}

func NewOrderedSet[T comparable](vs ...T) *OrderedSet[T] {
	var s OrderedSet[T]
	s.Append(vs...)
	return &s
}

var _ Bag[any] = (*OrderedSet[any])(nil)

func (s *OrderedSet[T]) init() {
	if s.vs == nil {
		s.vs = make(map[T]struct{})
	}
}

func (s *OrderedSet[T]) Append(vs ...T) {
	s.init()
	for _, v := range vs {
		if _, ok := s.vs[v]; ok {
			continue
		}
		s.vs[v] = struct{}{}
		s.order = append(s.order, v)
	}
}

func (s *OrderedSet[T]) Remove(v T) bool {
	if _, ok := s.vs[v]; !ok {
		return false
	}
	delete(s.vs, v)
	for i, got := range s.order {
		if got == v {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *OrderedSet[T]) Contains(v T) bool {
	_, ok := s.vs[v]
	return ok
}

func (s *OrderedSet[T]) Len() int {
	return len(s.vs)
}

// Values yields the elements in first insertion order.
func (s *OrderedSet[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(s.order); i++ {
			if !yield(s.order[i]) {
				return
			}
		}
	}
}

func (s *OrderedSet[T]) ToSlice() []T {
	return slicekit.Clone(s.order)
}

func (s *OrderedSet[T]) Clone() *OrderedSet[T] {
	return NewOrderedSet(s.order...)
}

// Equal reports whether both sets hold the same values.
// Like Set.Equal, it ignores ordering; compare ToSlice results when order matters.
func (s *OrderedSet[T]) Equal(oth *OrderedSet[T]) bool {
	if s == nil || oth == nil {
		return s == oth
	}
	if s.Len() != oth.Len() {
		return false
	}
	for v := range s.vs {
		if !oth.Contains(v) {
			return false
		}
	}
	return true
}

// Is reports identity: whether both names refer to the same set instance.
func (s *OrderedSet[T]) Is(oth *OrderedSet[T]) bool {
	return s == oth
}
