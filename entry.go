package windowmap

// The entry machinery resolves a key's classification exactly once and binds
// the result, so that insert-or-update call sites pay for a single locate
// regardless of which store ends up holding the entry.

type entryKind int

const (
	entryBelow entryKind = iota
	entrySlot
	entryOverflow
)

// Entry is a write handle for one key, bound to a window slot, the overflow
// store, or a pending below-base shift. Obtain one with Map.Entry. Any other
// mutation of the map invalidates the handle.
type Entry[K Integer, V any] struct {
	m        *Map[K, V]
	key      K
	kind     entryKind
	offset   int // entrySlot
	distance int // entryBelow
}

// Entry returns a write handle for key. Obtaining the handle never mutates
// the map; shifts and window growth happen when a write resolves it.
//
// An entry past the current window length binds a slot, unless the overflow
// minimum covers the key, in which case it binds the overflow store; this is
// what keeps reduced-fill maps (NewWithMinFill, Compact) coherent.
func (m *Map[K, V]) Entry(key K) Entry[K, V] {
	switch loc := m.locate(key); loc.region {
	case regionBelow:
		return Entry[K, V]{m: m, key: key, kind: entryBelow, distance: loc.distance}
	case regionInside:
		return Entry[K, V]{m: m, key: key, kind: entrySlot, offset: loc.offset}
	case regionOutside:
		if k, _, ok := m.overflow.Min(); ok && key >= k {
			return Entry[K, V]{m: m, key: key, kind: entryOverflow}
		}
		return Entry[K, V]{m: m, key: key, kind: entrySlot, offset: loc.offset}
	default:
		return Entry[K, V]{m: m, key: key, kind: entryOverflow}
	}
}

// Insert stores value for the entry's key and returns the previous value, if
// one existed. A below-base entry can never have a previous value: its key is
// smaller than every key the map has ever held.
func (e Entry[K, V]) Insert(value V) (V, bool) {
	var zero V
	switch e.kind {
	case entryBelow:
		e.m.shiftBelow(e.distance)
		e.m.window[0] = &pair[K, V]{key: e.key, value: value}
		return zero, false
	case entrySlot:
		e.m.ensure(e.offset)
		if b := e.m.window[e.offset]; b != nil {
			prev := b.value
			b.value = value
			return prev, true
		}
		e.m.window[e.offset] = &pair[K, V]{key: e.key, value: value}
		return zero, false
	default:
		if b, ok := e.m.overflow.Get(e.key); ok {
			prev := b.value
			b.value = value
			return prev, true
		}
		e.m.overflow.Set(e.key, &pair[K, V]{key: e.key, value: value})
		return zero, false
	}
}

// OrInsert stores value if the key is vacant, then returns a pointer to the
// stored value.
func (e Entry[K, V]) OrInsert(value V) *V {
	return e.OrInsertWith(func() V { return value })
}

// OrInsertWith is OrInsert with the default computed only on vacancy.
func (e Entry[K, V]) OrInsertWith(fn func() V) *V {
	switch e.kind {
	case entryBelow:
		e.m.shiftBelow(e.distance)
		b := &pair[K, V]{key: e.key, value: fn()}
		e.m.window[0] = b
		return &b.value
	case entrySlot:
		e.m.ensure(e.offset)
		b := e.m.window[e.offset]
		if b == nil {
			b = &pair[K, V]{key: e.key, value: fn()}
			e.m.window[e.offset] = b
		}
		return &b.value
	default:
		if b, ok := e.m.overflow.Get(e.key); ok {
			return &b.value
		}
		b := &pair[K, V]{key: e.key, value: fn()}
		e.m.overflow.Set(e.key, b)
		return &b.value
	}
}
