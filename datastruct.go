// Package datastruct supplies generic in-memory container types with a uniform
// operation surface: append, remove, contains, length, lazy iteration, deep
// cloning and structural equality.
//
// Containers own their storage exclusively and are not safe for concurrent use;
// a caller who needs concurrent access must serialise it externally, for
// example with one lock per container instance. Iteration is lazy and
// restartable: each range over a Values or All sequence starts a fresh
// traversal. Mutating a container during an active traversal leaves the
// visibility of the change unspecified, but never corrupts the container.
//
// Structural equality (Equal, EqualFunc) compares contents, never storage
// identity. Containers that share storage are reported by Is.
package datastruct

import "iter"

// Len is implemented by every container whose element count can be told in O(1).
type Len interface {
	Len() int
}

type Appendable[T any] interface {
	Append(vs ...T)
}

type Containable[T any] interface {
	Contains(element T) bool
}

// Values is the iteration capability of the single-value container kinds.
// The returned sequence is finite and restartable per range.
type Values[T any] interface {
	Values() iter.Seq[T]
}

// All is the iteration capability of the keyed container kinds.
type All[K, V any] interface {
	All() iter.Seq2[K, V]
}

type Keys[K any] interface {
	Keys() iter.Seq[K]
}

type SliceConvertable[T any] interface {
	ToSlice() []T
}

type MapConvertable[K comparable, V any] interface {
	ToMap() map[K]V
}

// Bag is the smallest surface shared by every single-value container kind.
type Bag[T any] interface {
	Appendable[T]
	Containable[T]
	Values[T]
	Len
}

// Sequence is an index addressable Bag.
// Index arguments follow the slicekit.ResolveIndex convention,
// where negative indexes address from the back.
type Sequence[T any] interface {
	Bag[T]
	Lookup(index int) (T, bool)
	Set(index int, val T) bool
	Insert(index int, vs ...T) bool
	Delete(index int) bool
}

type ReadOnlyKVS[K comparable, V any] interface {
	Lookup(key K) (V, bool)
	Get(key K) V
	All[K, V]
	Len
}

// KVS stands for Key Value Store, the common surface of the map-like kinds.
type KVS[K comparable, V any] interface {
	ReadOnlyKVS[K, V]
	Delete(key K) bool
}
