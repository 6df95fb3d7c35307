package datastruct

import (
	"iter"
	"maps"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/option"
)

// Map is a hash based key to value store.
// By default Set overwrites the value of an existing key;
// with the StrictKeys option an overwrite attempt fails with ErrDuplicateKey instead.
// The zero value is an empty non-strict map ready for use.
type Map[K comparable, V any] struct {
	kvs    map[K]V
	strict bool
}

func NewMap[K comparable, V any](opts ...MapOption[K, V]) *Map[K, V] {
	c := option.ToConfig(opts)
	return &Map[K, V]{strict: c.StrictKeys}
}

// NewStrictMap is shorthand for NewMap with the StrictKeys option enabled.
func NewStrictMap[K comparable, V any]() *Map[K, V] {
	return NewMap(MapConfig[K, V]{StrictKeys: true})
}

type MapOption[K comparable, V any] option.Option[MapConfig[K, V]]

type MapConfig[K comparable, V any] struct {
	// StrictKeys makes Set report ErrDuplicateKey instead of overwriting an existing key.
	StrictKeys bool
}

var _ MapOption[string, any] = MapConfig[string, any]{}

func (c MapConfig[K, V]) Configure(o *MapConfig[K, V]) {
	o.StrictKeys = o.StrictKeys || c.StrictKeys
}

var _ KVS[string, any] = (*Map[string, any])(nil)

func (m *Map[K, V]) init() {
	if m.kvs == nil {
		m.kvs = make(map[K]V)
	}
}

func (m *Map[K, V]) Set(key K, val V) error {
	m.init()
	if m.strict {
		if _, ok := m.kvs[key]; ok {
			return ErrDuplicateKey.F("%v key is already set", key)
		}
	}
	m.kvs[key] = val
	return nil
}

func (m *Map[K, V]) Lookup(key K) (V, bool) {
	v, ok := m.kvs[key]
	return v, ok
}

// Get returns the value of the key, or the zero value of V when the key is absent.
func (m *Map[K, V]) Get(key K) V {
	return m.kvs[key]
}

// Delete removes the key and reports whether it was present.
// Deleting an absent key leaves the map unchanged.
func (m *Map[K, V]) Delete(key K) bool {
	if _, ok := m.kvs[key]; !ok {
		return false
	}
	delete(m.kvs, key)
	return true
}

func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.kvs[key]
	return ok
}

func (m *Map[K, V]) Len() int {
	return len(m.kvs)
}

func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.kvs {
			if !yield(k) {
				return
			}
		}
	}
}

func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m.kvs {
			if !yield(k, v) {
				return
			}
		}
	}
}

func (m *Map[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(m.kvs))
	maps.Copy(out, m.kvs)
	return out
}

// Clone returns an independent copy that keeps the strictness setting.
// Values are copied by assignment.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{kvs: m.ToMap(), strict: m.strict}
}

// Merge copies the entries of the given maps into the receiver, in argument order.
// In strict mode a key collision fails with ErrDuplicateKey,
// otherwise the last write wins.
func (m *Map[K, V]) Merge(oths ...*Map[K, V]) error {
	for _, oth := range oths {
		if oth == nil {
			continue
		}
		for k, v := range oth.kvs {
			if err := m.Set(k, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Equal reports whether both maps hold the same keys with deeply equal values.
// Strictness is a write policy, not content, so it is ignored.
func (m *Map[K, V]) Equal(oth *Map[K, V]) bool {
	return m.EqualFunc(oth, func(a, b V) bool {
		return reflectkit.Equal(a, b)
	})
}

func (m *Map[K, V]) EqualFunc(oth *Map[K, V], eq func(a, b V) bool) bool {
	if m == nil || oth == nil {
		return m == oth
	}
	if m.Len() != oth.Len() {
		return false
	}
	for k, v := range m.kvs {
		ov, ok := oth.kvs[k]
		if !ok || !eq(v, ov) {
			return false
		}
	}
	return true
}

// Is reports identity: whether both names refer to the same map instance.
func (m *Map[K, V]) Is(oth *Map[K, V]) bool {
	return m == oth
}
