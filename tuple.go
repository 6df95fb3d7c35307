package datastruct

import (
	"iter"
	"maps"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/slicekit"
)

// Tuple is an immutable fixed length ordered list of named values.
// Its values are addressable both by field name and by position.
// A tuple cannot be resized or modified after construction,
// updates are expressed with WithValue which leaves the receiver untouched.
type Tuple[V any] struct {
	fields []Field[V]
	index  map[string]int
}

// Field is a single named value of a Tuple.
type Field[V any] struct {
	Name  string
	Value V
}

// F is a shorthand to construct a Tuple Field.
func F[V any](name string, value V) Field[V] {
	return Field[V]{Name: name, Value: value}
}

// NewTuple validates that every field name is unique, and constructs a tuple from the fields.
// A repeated field name is reported with ErrDuplicateKey.
func NewTuple[V any](fields ...Field[V]) (*Tuple[V], error) {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if _, ok := index[f.Name]; ok {
			return nil, ErrDuplicateKey.F("%q field name is used more than once", f.Name)
		}
		index[f.Name] = i
	}
	return &Tuple[V]{fields: slicekit.Clone(fields), index: index}, nil
}

var _ interface {
	Len
	Values[any]
	All[string, any]
	MapConvertable[string, any]
	SliceConvertable[any]
} = (*Tuple[any])(nil)

// Get returns the value of the named field.
func (tup *Tuple[V]) Get(name string) (V, bool) {
	var zero V
	i, ok := tup.index[name]
	if !ok {
		return zero, false
	}
	return tup.fields[i].Value, true
}

// At returns the value stored at the given position.
// A negative position counts backwards from the end of the tuple.
func (tup *Tuple[V]) At(index int) (V, bool) {
	var zero V
	i, ok := slicekit.ResolveIndex(len(tup.fields), index)
	if !ok {
		return zero, false
	}
	return tup.fields[i].Value, true
}

// Name returns the field name at the given position.
func (tup *Tuple[V]) Name(index int) (string, bool) {
	i, ok := slicekit.ResolveIndex(len(tup.fields), index)
	if !ok {
		return "", false
	}
	return tup.fields[i].Name, true
}

// Index returns the position of the named field.
func (tup *Tuple[V]) Index(name string) (int, bool) {
	i, ok := tup.index[name]
	return i, ok
}

// Names returns the field names in tuple order.
func (tup *Tuple[V]) Names() []string {
	return slicekit.Map(tup.fields, func(f Field[V]) string {
		return f.Name
	})
}

func (tup *Tuple[V]) Len() int {
	return len(tup.fields)
}

// Values yields the field values in tuple order.
// Each call starts a fresh traversal.
func (tup *Tuple[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := 0; i < len(tup.fields); i++ {
			if !yield(tup.fields[i].Value) {
				return
			}
		}
	}
}

// All yields the field name value pairs in tuple order.
func (tup *Tuple[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for i := 0; i < len(tup.fields); i++ {
			if !yield(tup.fields[i].Name, tup.fields[i].Value) {
				return
			}
		}
	}
}

// ToMap returns the fields as a new name to value map, losing the field order.
func (tup *Tuple[V]) ToMap() map[string]V {
	kvs := make(map[string]V, len(tup.fields))
	for _, f := range tup.fields {
		kvs[f.Name] = f.Value
	}
	return kvs
}

// ToSlice returns the field values in tuple order as a new slice.
func (tup *Tuple[V]) ToSlice() []V {
	return slicekit.Map(tup.fields, func(f Field[V]) V {
		return f.Value
	})
}

// WithValue returns a new tuple where the named field holds the given value.
// The receiver tuple is left untouched.
// An unknown field name is reported with ErrNotFound.
func (tup *Tuple[V]) WithValue(name string, value V) (*Tuple[V], error) {
	i, ok := tup.index[name]
	if !ok {
		return nil, ErrNotFound.F("%q field name was not found", name)
	}
	fields := slicekit.Clone(tup.fields)
	fields[i].Value = value
	return &Tuple[V]{fields: fields, index: tup.index}, nil
}

// Clone returns an independent copy of the tuple.
func (tup *Tuple[V]) Clone() *Tuple[V] {
	return &Tuple[V]{fields: slicekit.Clone(tup.fields), index: maps.Clone(tup.index)}
}

// Equal reports whether both tuples hold the same field names in the same order with equal values.
func (tup *Tuple[V]) Equal(oth *Tuple[V]) bool {
	return tup.EqualFunc(oth, func(a, b V) bool {
		return reflectkit.Equal(a, b)
	})
}

func (tup *Tuple[V]) EqualFunc(oth *Tuple[V], eq func(a, b V) bool) bool {
	if tup == nil || oth == nil {
		return tup == oth
	}
	if len(tup.fields) != len(oth.fields) {
		return false
	}
	for i := range tup.fields {
		if tup.fields[i].Name != oth.fields[i].Name {
			return false
		}
		if !eq(tup.fields[i].Value, oth.fields[i].Value) {
			return false
		}
	}
	return true
}

// Is reports whether both references point to the same tuple.
func (tup *Tuple[V]) Is(oth *Tuple[V]) bool {
	return tup == oth
}
