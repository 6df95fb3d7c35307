package datastruct

import (
	"cmp"
	"iter"
	"reflect"
	"slices"
	"sort"

	"go.llib.dev/frameless/pkg/compare"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/slicekit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
)

// SortedList is a list that keeps its values in ascending order as they are added.
// Values that sort equal keep their insertion order.
//
// The ordering is taken from the SortedListCompare option when given.
// Without it the ordering is resolved from the element type:
// a type that implements compare.Interface or compare.ShortInterface orders through its own method,
// while integer, unsigned integer, float and string kinds order naturally.
// For any other element type Add fails with ErrIncomparableType.
//
// The zero value is an empty list ready for use.
type SortedList[T any] struct {
	vs      []T
	compare func(a, b T) int
}

func NewSortedList[T any](opts ...SortedListOption[T]) *SortedList[T] {
	c := option.ToConfig(opts)
	return &SortedList[T]{compare: c.Compare}
}

type SortedListOption[T any] option.Option[SortedListConfig[T]]

type SortedListConfig[T any] struct {
	// Compare overrides how the list orders its values.
	Compare func(a, b T) int
}

var _ SortedListOption[any] = SortedListConfig[any]{}

func (c SortedListConfig[T]) Configure(oth *SortedListConfig[T]) {
	oth.Compare = zerokit.Coalesce(c.Compare, oth.Compare)
}

// SortedListCompare sets the total order the list maintains.
func SortedListCompare[T any](cmp func(a, b T) int) SortedListOption[T] {
	return option.Func[SortedListConfig[T]](func(c *SortedListConfig[T]) {
		c.Compare = cmp
	})
}

var _ interface {
	Len
	Values[any]
	Containable[any]
	SliceConvertable[any]
} = (*SortedList[any])(nil)

// Add inserts the values at the position that keeps the list ordered.
// A value that sorts equal to already stored values is placed after them.
func (l *SortedList[T]) Add(vs ...T) error {
	cmp, err := l.comparator()
	if err != nil {
		return err
	}
	for _, v := range vs {
		i := sort.Search(len(l.vs), func(i int) bool {
			return 0 < cmp(l.vs[i], v)
		})
		slicekit.Insert(&l.vs, i, v)
	}
	return nil
}

// Remove deletes the first occurrence of v and reports whether it was found.
func (l *SortedList[T]) Remove(v T) bool {
	i, ok := l.indexOf(v)
	if !ok {
		return false
	}
	slicekit.Delete(&l.vs, i)
	return true
}

// Contains reports whether v itself is stored in the list.
// Values that merely sort equal to v don't count as an occurrence.
func (l *SortedList[T]) Contains(v T) bool {
	_, ok := l.indexOf(v)
	return ok
}

// Search returns the lowest position where v would insert to keep the order,
// and whether a value sorting equal to v is already stored there.
func (l *SortedList[T]) Search(v T) (int, bool) {
	cmp, err := l.comparator()
	if err != nil {
		return 0, false
	}
	i := sort.Search(len(l.vs), func(i int) bool {
		return 0 <= cmp(l.vs[i], v)
	})
	return i, i < len(l.vs) && cmp(l.vs[i], v) == 0
}

// Lookup returns the value stored at the given position of the sorted order.
// A negative index counts backwards from the end of the list.
func (l *SortedList[T]) Lookup(index int) (T, bool) {
	var zero T
	i, ok := slicekit.ResolveIndex(len(l.vs), index)
	if !ok {
		return zero, false
	}
	return l.vs[i], true
}

// Min returns the smallest value of the list.
func (l *SortedList[T]) Min() (T, bool) {
	return slicekit.First(l.vs)
}

// Max returns the largest value of the list.
func (l *SortedList[T]) Max() (T, bool) {
	return slicekit.Last(l.vs)
}

// Range yields the values that fall within the inclusive [lo, hi] boundary, in ascending order.
func (l *SortedList[T]) Range(lo, hi T) (iter.Seq[T], error) {
	cmp, err := l.comparator()
	if err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		from := sort.Search(len(l.vs), func(i int) bool {
			return 0 <= cmp(l.vs[i], lo)
		})
		for i := from; i < len(l.vs); i++ {
			if 0 < cmp(l.vs[i], hi) {
				return
			}
			if !yield(l.vs[i]) {
				return
			}
		}
	}, nil
}

func (l *SortedList[T]) Len() int {
	return len(l.vs)
}

// Values yields the stored values in ascending order.
// Each call starts a fresh traversal.
func (l *SortedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(l.vs); i++ {
			if !yield(l.vs[i]) {
				return
			}
		}
	}
}

// ToSlice returns the stored values in ascending order as a new slice.
func (l *SortedList[T]) ToSlice() []T {
	return slicekit.Clone(l.vs)
}

// Clone returns an independent copy of the list that keeps the configured ordering.
func (l *SortedList[T]) Clone() *SortedList[T] {
	return &SortedList[T]{vs: slicekit.Clone(l.vs), compare: l.compare}
}

// Equal reports whether both lists hold equal values in the same order.
// The configured ordering is not part of the comparison.
func (l *SortedList[T]) Equal(oth *SortedList[T]) bool {
	return l.EqualFunc(oth, func(a, b T) bool {
		return reflectkit.Equal(a, b)
	})
}

func (l *SortedList[T]) EqualFunc(oth *SortedList[T], eq func(a, b T) bool) bool {
	if l == nil || oth == nil {
		return l == oth
	}
	return slices.EqualFunc(l.vs, oth.vs, eq)
}

// Is reports whether both references point to the same list.
func (l *SortedList[T]) Is(oth *SortedList[T]) bool {
	return l == oth
}

func (l *SortedList[T]) indexOf(v T) (int, bool) {
	cmp, err := l.comparator()
	if err != nil {
		return 0, false
	}
	i := sort.Search(len(l.vs), func(i int) bool {
		return 0 <= cmp(l.vs[i], v)
	})
	for ; i < len(l.vs) && cmp(l.vs[i], v) == 0; i++ {
		if reflectkit.Equal(l.vs[i], v) {
			return i, true
		}
	}
	return 0, false
}

func (l *SortedList[T]) comparator() (func(a, b T) int, error) {
	if l.compare == nil {
		cmp, ok := resolveComparator[T]()
		if !ok {
			return nil, ErrIncomparableType.F("%s values have no total order", reflectkit.TypeOf[T]().String())
		}
		l.compare = cmp
	}
	return l.compare, nil
}

func resolveComparator[T any]() (func(a, b T) int, bool) {
	var probe T
	switch any(probe).(type) {
	case compare.Interface[T]:
		return func(a, b T) int { return any(a).(compare.Interface[T]).Compare(b) }, true
	case compare.ShortInterface[T]:
		return func(a, b T) int { return any(a).(compare.ShortInterface[T]).Cmp(b) }, true
	}
	switch reflectkit.TypeOf[T]().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())
		}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())
		}, true
	case reflect.Float32, reflect.Float64:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}, true
	case reflect.String:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}, true
	}
	return nil, false
}
