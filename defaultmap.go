package datastruct

import (
	"iter"

	"go.llib.dev/frameless/pkg/reflectkit"
)

// DefaultMap is a Map adapter that materialises missing values.
// Get on an absent key calls the default factory, stores the produced value,
// then returns it, so a miss is never an error.
// Use Lookup to probe without materialising.
type DefaultMap[K comparable, V any] struct {
	kvs     Map[K, V]
	factory func() V
}

// NewDefaultMap constructs a DefaultMap with the given zero argument factory.
// A nil factory is a programmer error and panics.
func NewDefaultMap[K comparable, V any](factory func() V) *DefaultMap[K, V] {
	if factory == nil {
		panic("datastruct: NewDefaultMap requires a default factory")
	}
	return &DefaultMap[K, V]{factory: factory}
}

var _ KVS[string, any] = (*DefaultMap[string, any])(nil)

// Get returns the stored value of the key,
// or stores and returns a freshly made default when the key is absent.
func (m *DefaultMap[K, V]) Get(key K) V {
	if v, ok := m.kvs.Lookup(key); ok {
		return v
	}
	v := m.factory()
	_ = m.kvs.Set(key, v)
	return v
}

// Lookup probes for the key without materialising a default value.
func (m *DefaultMap[K, V]) Lookup(key K) (V, bool) {
	return m.kvs.Lookup(key)
}

func (m *DefaultMap[K, V]) Set(key K, val V) {
	_ = m.kvs.Set(key, val)
}

func (m *DefaultMap[K, V]) Delete(key K) bool {
	return m.kvs.Delete(key)
}

func (m *DefaultMap[K, V]) Contains(key K) bool {
	return m.kvs.Contains(key)
}

func (m *DefaultMap[K, V]) Len() int {
	return m.kvs.Len()
}

func (m *DefaultMap[K, V]) Keys() iter.Seq[K] {
	return m.kvs.Keys()
}

func (m *DefaultMap[K, V]) All() iter.Seq2[K, V] {
	return m.kvs.All()
}

func (m *DefaultMap[K, V]) ToMap() map[K]V {
	return m.kvs.ToMap()
}

// Clone returns an independent copy of the stored entries.
// The default factory is shared with the original, so it should be stateless.
func (m *DefaultMap[K, V]) Clone() *DefaultMap[K, V] {
	return &DefaultMap[K, V]{kvs: *m.kvs.Clone(), factory: m.factory}
}

// Equal reports whether the stored entries are the same.
// Only materialised values count, the factories are not compared.
func (m *DefaultMap[K, V]) Equal(oth *DefaultMap[K, V]) bool {
	return m.EqualFunc(oth, func(a, b V) bool {
		return reflectkit.Equal(a, b)
	})
}

func (m *DefaultMap[K, V]) EqualFunc(oth *DefaultMap[K, V], eq func(a, b V) bool) bool {
	if m == nil || oth == nil {
		return m == oth
	}
	return m.kvs.EqualFunc(&oth.kvs, eq)
}

// Is reports identity: whether both names refer to the same map instance.
func (m *DefaultMap[K, V]) Is(oth *DefaultMap[K, V]) bool {
	return m == oth
}
