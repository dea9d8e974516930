package windowmap

// Insert stores value for key and returns the previous value, if one
// existed.
func (m *Map[K, V]) Insert(key K, value V) (V, bool) {
	return m.Entry(key).Insert(value)
}

// shiftBelow re-baselines the window for a key distance slots below the
// current base. Slots that no longer fit are evicted to the overflow store,
// then the window is shifted right so the caller can occupy the new slot 0.
// When the whole window falls outside the new range, it collapses to that
// single slot. Cost is O(width) in slot moves plus an overflow insert per
// evicted entry.
func (m *Map[K, V]) shiftBelow(distance int) {
	prepend := distance
	if distance <= m.width {
		keep := m.width - distance
		if len(m.window) > keep {
			for _, b := range m.window[keep:] {
				if b != nil {
					m.overflow.Set(b.key, b)
				}
			}
			clear(m.window[keep:])
			m.window = m.window[:keep]
		}
	} else {
		for _, b := range m.window {
			if b != nil {
				m.overflow.Set(b.key, b)
			}
		}
		clear(m.window)
		m.window = m.window[:0]
		prepend = 1
	}

	n := len(m.window)
	m.window = append(m.window, make([]*pair[K, V], prepend)...)
	copy(m.window[prepend:], m.window[:n])
	clear(m.window[:prepend])
}
