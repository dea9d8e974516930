package windowmap

import "iter"

// All returns an iterator over every entry in strictly ascending key order:
// occupied window slots by position, then overflow entries by key. The
// ordering is total because every overflow key exceeds every window key. The
// sequence is restartable; the map must not be mutated during a pass.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, b := range m.window {
			if b == nil {
				continue
			}
			if !yield(b.key, b.value) {
				return
			}
		}
		m.overflow.Scan(func(k K, b *pair[K, V]) bool {
			return yield(k, b.value)
		})
	}
}

// Refs is All with pointers to the values in place, for read-modify-write
// passes.
func (m *Map[K, V]) Refs() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for _, b := range m.window {
			if b == nil {
				continue
			}
			if !yield(b.key, &b.value) {
				return
			}
		}
		m.overflow.Scan(func(k K, b *pair[K, V]) bool {
			return yield(k, &b.value)
		})
	}
}

// Extend inserts every pair from the sequence, replacing values for keys
// already present.
func (m *Map[K, V]) Extend(pairs iter.Seq2[K, V]) {
	for k, v := range pairs {
		m.Insert(k, v)
	}
}

// Collect builds a map with New(width) holding every pair from the sequence.
func Collect[K Integer, V any](width int, pairs iter.Seq2[K, V]) *Map[K, V] {
	m := New[K, V](width)
	m.Extend(pairs)
	return m
}
