package windowmap

import (
	"slices"

	"github.com/tidwall/btree"
)

// Map is an ordered map specialised for keys that cluster near the current
// minimum. The lowest keyed entries live in a window of directly addressable
// slots; slot p holds the key base+p, where base is the key of slot 0. Keys
// whose offset from base reaches width live in an ordered overflow store.
//
// Map is not safe for concurrent use.
type Map[K Integer, V any] struct {
	width   int
	minFill int

	// window[0] is always occupied when the window is non-empty; interior
	// slots may be nil (holes left by removals).
	window []*pair[K, V]

	overflow btree.Map[K, *pair[K, V]]
}

// New returns an empty map whose window covers the key range [base,
// base+width). Removing the front entry refills the window from the overflow
// store up to the full width, so every overflow key always has an offset of
// at least width. A negative width is treated as zero, which degenerates the
// map to the overflow store alone.
func New[K Integer, V any](width int) *Map[K, V] {
	return NewWithMinFill[K, V](width, width)
}

// NewWithMinFill returns a map that refills lazily: after a front removal
// the window is only topped up once its length has dropped to minFill, and
// only back up to minFill. Between refills, window region keys past the
// window length may live in the overflow store; lookups and the entry
// machinery account for this. Compact trims the window back to minFill.
//
// minFill is clamped into [0, width]. NewWithMinFill(w, w) is New(w).
func NewWithMinFill[K Integer, V any](width, minFill int) *Map[K, V] {
	width = max(width, 0)
	minFill = min(max(minFill, 0), width)
	return &Map[K, V]{width: width, minFill: minFill}
}

// Len returns the number of entries across both stores.
func (m *Map[K, V]) Len() int {
	n := m.overflow.Len()
	for _, b := range m.window {
		if b != nil {
			n++
		}
	}
	return n
}

// Clear removes every entry. The width and refill configuration are
// retained, as is the window's slot capacity.
func (m *Map[K, V]) Clear() {
	clear(m.window)
	m.window = m.window[:0]
	m.overflow.Clear()
}

// Reserve grows the window's slot capacity by at least n. It has no
// observable effect on contents.
func (m *Map[K, V]) Reserve(n int) {
	if n <= 0 {
		return
	}
	m.window = slices.Grow(m.window, n)
}

// Compact evicts every slot at position minFill or beyond back into the
// overflow store and truncates the window. For maps built with New, minFill
// equals width and Compact is a no-op. Compact may empty the window entirely
// (minFill 0); the next write below the overflow minimum re-establishes a
// base.
func (m *Map[K, V]) Compact() {
	for len(m.window) > m.minFill {
		n := len(m.window) - 1
		if b := m.window[n]; b != nil {
			m.overflow.Set(b.key, b)
		}
		m.window[n] = nil
		m.window = m.window[:n]
	}
}

// ensure grows the window with holes so that slot off exists.
func (m *Map[K, V]) ensure(off int) {
	if n := off + 1 - len(m.window); n > 0 {
		m.window = append(m.window, make([]*pair[K, V], n)...)
	}
}
