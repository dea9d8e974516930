package windowmap

import "math"

// The classifier. Everything else in the package dispatches on the result of
// locate, and only the below and front-removal cases ever move entries
// between the two stores.

type region int

const (
	// regionBelow: key < base. Such a key can never be stored, because base
	// is the minimum of all stored keys whenever the window is non-empty.
	regionBelow region = iota

	// regionInside: the slot for this key exists in the window. It may be a
	// hole.
	regionInside

	// regionOutside: the offset lands in the window region but past the
	// current window length. Writes grow the window to reach it, unless the
	// overflow already covers the key (possible after Compact). Reads fall
	// through to the overflow for the same reason.
	regionOutside

	// regionOverflow: offset >= width, or width is zero.
	regionOverflow
)

type location struct {
	region   region
	offset   int // slot position, regionInside and regionOutside
	distance int // base - key, regionBelow
}

// locate classifies key against the current window. It is read only; get
// paths use it directly without triggering a shift or refill.
//
// The offset is computed as uint64(key) - uint64(base). Conversion to uint64
// is value preserving modulo 2^64 for every Integer type (negative values
// sign extend), so the difference is the exact distance whenever key >= base,
// even when key - base would overflow the key type. Distances that do not fit
// in an int saturate to math.MaxInt; behaviour is uniform for any offset at
// or beyond the window, so saturation cannot change the classification.
func (m *Map[K, V]) locate(key K) location {
	if m.width == 0 {
		return location{region: regionOverflow}
	}
	if len(m.window) == 0 {
		// No base yet. The first write lands at slot 0 unless the entry
		// machinery routes it to a non-empty overflow.
		return location{region: regionOutside}
	}
	base := m.window[0].key
	if key < base {
		return location{region: regionBelow, distance: satInt(uint64(base) - uint64(key))}
	}
	off := satInt(uint64(key) - uint64(base))
	switch {
	case off >= m.width:
		return location{region: regionOverflow}
	case off >= len(m.window):
		return location{region: regionOutside, offset: off}
	default:
		return location{region: regionInside, offset: off}
	}
}

func satInt(u uint64) int {
	if u > uint64(math.MaxInt) {
		return math.MaxInt
	}
	return int(u)
}
