package windowmap

import "fmt"

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	switch loc := m.locate(key); loc.region {
	case regionBelow:
		var zero V
		return zero, false
	case regionInside:
		if b := m.window[loc.offset]; b != nil {
			return b.value, true
		}
		var zero V
		return zero, false
	default:
		if b, ok := m.overflow.Get(key); ok {
			return b.value, true
		}
		var zero V
		return zero, false
	}
}

// Ref returns a pointer to the value stored for key, or nil. The pointer
// stays valid across shifts, refills and Compact; it is invalidated only by
// removing the key.
func (m *Map[K, V]) Ref(key K) *V {
	switch loc := m.locate(key); loc.region {
	case regionBelow:
		return nil
	case regionInside:
		if b := m.window[loc.offset]; b != nil {
			return &b.value
		}
		return nil
	default:
		if b, ok := m.overflow.Get(key); ok {
			return &b.value
		}
		return nil
	}
}

// MustGet is Get for keys the caller knows are present. It panics if key is
// absent.
func (m *Map[K, V]) MustGet(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic(fmt.Sprintf("windowmap: no entry for key %v", key))
	}
	return v
}

// MustRef is Ref for keys the caller knows are present. It panics if key is
// absent.
func (m *Map[K, V]) MustRef(key K) *V {
	p := m.Ref(key)
	if p == nil {
		panic(fmt.Sprintf("windowmap: no entry for key %v", key))
	}
	return p
}
