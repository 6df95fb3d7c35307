package datastruct

import (
	"iter"

	"go.llib.dev/frameless/pkg/reflectkit"
)

// LayeredMap is a front-to-back chain of maps acting as one lookup view,
// the classic way to express configuration resolution with overrides and defaults.
// Reads scan the layers from the front and the first hit wins.
// Writes target the front layer only, unless SetAt names another layer.
//
// The layers are held by reference: changes made directly on a member map
// show through the layered view. Clone is the way to break the sharing.
// The zero value acts as a single empty layer ready for use.
type LayeredMap[K comparable, V any] struct {
	layers []*Map[K, V]
}

// NewLayeredMap chains the given maps, the first argument being the front layer.
// Without arguments it starts with a single fresh empty layer.
func NewLayeredMap[K comparable, V any](layers ...*Map[K, V]) *LayeredMap[K, V] {
	if len(layers) == 0 {
		layers = []*Map[K, V]{NewMap[K, V]()}
	}
	for i, layer := range layers {
		if layer == nil {
			layers[i] = NewMap[K, V]()
		}
	}
	return &LayeredMap[K, V]{layers: layers}
}

// Get scans the layers front-to-back and returns the first value found for the key.
// When every layer misses, it fails with ErrNotFound.
func (m *LayeredMap[K, V]) Get(key K) (V, error) {
	if v, ok := m.Lookup(key); ok {
		return v, nil
	}
	var zero V
	return zero, ErrNotFound.F("%v key was not found in any layer", key)
}

func (m *LayeredMap[K, V]) Lookup(key K) (V, bool) {
	for _, layer := range m.layers {
		if v, ok := layer.Lookup(key); ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

func (m *LayeredMap[K, V]) init() {
	if len(m.layers) == 0 {
		m.layers = []*Map[K, V]{NewMap[K, V]()}
	}
}

// Set writes the key into the front layer,
// shadowing any value the deeper layers hold for it.
func (m *LayeredMap[K, V]) Set(key K, val V) error {
	m.init()
	return m.layers[0].Set(key, val)
}

// SetAt writes the key into the layer at the given index, front layer being 0.
func (m *LayeredMap[K, V]) SetAt(layer int, key K, val V) error {
	if layer < 0 || len(m.layers) <= layer {
		return ErrNotFound.F("no layer at index %d", layer)
	}
	return m.layers[layer].Set(key, val)
}

// Delete removes the key from the front layer and reports whether it was there.
// A shadowed value in a deeper layer becomes visible again.
func (m *LayeredMap[K, V]) Delete(key K) bool {
	m.init()
	return m.layers[0].Delete(key)
}

func (m *LayeredMap[K, V]) Contains(key K) bool {
	_, ok := m.Lookup(key)
	return ok
}

// Len reports the number of distinct keys across all layers.
func (m *LayeredMap[K, V]) Len() int {
	var n int
	for range m.Keys() {
		n++
	}
	return n
}

// Keys yields the distinct keys, layer by layer from the front,
// each key on its first occurrence.
func (m *LayeredMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		seen := make(map[K]struct{})
		for _, layer := range m.layers {
			for k := range layer.Keys() {
				if _, ok := seen[k]; ok {
					continue
				}
				seen[k] = struct{}{}
				if !yield(k) {
					return
				}
			}
		}
	}
}

// All yields the effective view: each distinct key with the value its frontmost layer holds.
func (m *LayeredMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		seen := make(map[K]struct{})
		for _, layer := range m.layers {
			for k, v := range layer.All() {
				if _, ok := seen[k]; ok {
					continue
				}
				seen[k] = struct{}{}
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// ToMap flattens the effective view into a plain map.
func (m *LayeredMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V)
	for k, v := range m.All() {
		out[k] = v
	}
	return out
}

// Layers reports the number of chained maps.
func (m *LayeredMap[K, V]) Layers() int {
	return len(m.layers)
}

// Layer returns the map at the given index, front layer being 0.
// The returned map is the live layer itself, not a copy.
func (m *LayeredMap[K, V]) Layer(index int) (*Map[K, V], bool) {
	if index < 0 || len(m.layers) <= index {
		return nil, false
	}
	return m.layers[index], true
}

// NewChild returns a new view with a fresh front layer pushed on top,
// sharing the existing layers with the receiver.
func (m *LayeredMap[K, V]) NewChild(front ...*Map[K, V]) *LayeredMap[K, V] {
	if len(front) == 0 {
		front = []*Map[K, V]{NewMap[K, V]()}
	}
	layers := make([]*Map[K, V], 0, len(front)+len(m.layers))
	for _, layer := range front {
		if layer == nil {
			layer = NewMap[K, V]()
		}
		layers = append(layers, layer)
	}
	layers = append(layers, m.layers...)
	return &LayeredMap[K, V]{layers: layers}
}

// Parents returns the view without the front layer, sharing the remaining layers.
// On a single layer view it returns an empty one layer view.
func (m *LayeredMap[K, V]) Parents() *LayeredMap[K, V] {
	if len(m.layers) <= 1 {
		return NewLayeredMap[K, V]()
	}
	return &LayeredMap[K, V]{layers: m.layers[1:]}
}

// Clone deep copies every layer, so neither the layer structure nor the
// member maps are shared with the original.
func (m *LayeredMap[K, V]) Clone() *LayeredMap[K, V] {
	layers := make([]*Map[K, V], len(m.layers))
	for i, layer := range m.layers {
		layers[i] = layer.Clone()
	}
	return &LayeredMap[K, V]{layers: layers}
}

// Equal reports whether the effective views hold the same entries.
// Layer structure is not compared, only what a reader would see.
func (m *LayeredMap[K, V]) Equal(oth *LayeredMap[K, V]) bool {
	return m.EqualFunc(oth, func(a, b V) bool {
		return reflectkit.Equal(a, b)
	})
}

func (m *LayeredMap[K, V]) EqualFunc(oth *LayeredMap[K, V], eq func(a, b V) bool) bool {
	if m == nil || oth == nil {
		return m == oth
	}
	if m.Len() != oth.Len() {
		return false
	}
	for k, v := range m.All() {
		ov, ok := oth.Lookup(k)
		if !ok || !eq(v, ov) {
			return false
		}
	}
	return true
}

// Is reports identity: whether both names refer to the same layered view instance.
func (m *LayeredMap[K, V]) Is(oth *LayeredMap[K, V]) bool {
	return m == oth
}
