// Package scope implements the chain map: a parent-linked mapping used
// throughout the checker and lowering pass for lexical scoping. Each
// chain map is independent — the checker keeps one for types and one for
// "is defined", the lowering pass keeps three more for different value
// kinds — all built from this single generic implementation.
package scope

// ChainMap is a mapping from string keys to values of type V, plus an
// optional parent. A lookup that misses locally climbs the parent chain;
// a write always lands in the local map, shadowing any ancestor binding.
type ChainMap[V any] struct {
	parent *ChainMap[V]
	data   map[string]V
}

// New creates a root chain map with no parent.
func New[V any]() *ChainMap[V] {
	return &ChainMap[V]{data: make(map[string]V)}
}

// NewChild returns a fresh map whose parent is m. Discarding the child
// (letting it go out of scope) restores m as the active scope.
func (m *ChainMap[V]) NewChild() *ChainMap[V] {
	return &ChainMap[V]{parent: m, data: make(map[string]V)}
}

// Contains reports whether k is bound in m or any ancestor.
func (m *ChainMap[V]) Contains(k string) bool {
	for c := m; c != nil; c = c.parent {
		if _, ok := c.data[k]; ok {
			return true
		}
	}
	return false
}

// LocalContains reports whether k is bound in m itself, ignoring ancestors.
func (m *ChainMap[V]) LocalContains(k string) bool {
	_, ok := m.data[k]
	return ok
}

// Get returns the nearest binding for k along the chain, and whether one
// was found.
func (m *ChainMap[V]) Get(k string) (V, bool) {
	for c := m; c != nil; c = c.parent {
		if v, ok := c.data[k]; ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// MustGet returns the nearest binding for k, panicking if none exists.
// Callers use this only where a prior Contains check already guarantees
// the binding is present.
func (m *ChainMap[V]) MustGet(k string) V {
	v, ok := m.Get(k)
	if !ok {
		panic("scope: chain map has no binding for " + k)
	}
	return v
}

// Set writes k to m's own local map, shadowing any ancestor binding.
func (m *ChainMap[V]) Set(k string, v V) {
	m.data[k] = v
}
