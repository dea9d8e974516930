package windowmap

// Remove deletes key and returns the removed value, if one existed. Removing
// an absent key is a no-op.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	var zero V
	switch loc := m.locate(key); loc.region {
	case regionBelow:
		return zero, false
	case regionInside:
		if loc.offset == 0 {
			return m.removeFront(), true
		}
		b := m.window[loc.offset]
		if b == nil {
			return zero, false
		}
		m.window[loc.offset] = nil
		return b.value, true
	default:
		if b, ok := m.overflow.Delete(key); ok {
			return b.value, true
		}
		return zero, false
	}
}

// removeFront takes slot 0, collapses the leading holes it exposes, and
// refills from the overflow store once the window length has dropped to
// minFill. Interior holes are untouched: the overflow can only hand back
// keys in ascending order, so only the contiguous front can be reclaimed
// here.
func (m *Map[K, V]) removeFront() V {
	v := m.window[0].value
	m.window[0] = nil

	i := 0
	for i < len(m.window) && m.window[i] == nil {
		i++
	}
	m.window = m.window[i:]

	if len(m.window) <= m.minFill {
		m.refill()
	}
	return v
}

// refill re-seeds an empty window from the overflow minimum, then pulls
// successive minima into their slots while their offsets stay below minFill.
// For maps built with New, minFill is the full width, restoring the strict
// arrangement: window first, overflow beyond it.
func (m *Map[K, V]) refill() {
	if len(m.window) == 0 {
		_, b, ok := m.overflow.PopMin()
		if !ok {
			return
		}
		m.window = append(m.window, b)
	}
	base := m.window[0].key
	for {
		k, _, ok := m.overflow.Min()
		if !ok {
			return
		}
		off := satInt(uint64(k) - uint64(base))
		if off >= m.minFill {
			return
		}
		_, b, _ := m.overflow.PopMin()
		m.ensure(off)
		m.window[off] = b
	}
}
