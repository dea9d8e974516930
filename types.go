package windowmap

// Integer is the key constraint. Offsets are derived by integer subtraction,
// so keys must be integers; any size and signedness works, including full
// range values (see offset.go for how wrap around is handled).
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// pair boxes one live entry. Boxes migrate intact between the window and the
// overflow store, which is what keeps Ref and Refs pointers stable across
// shifts and refills.
type pair[K Integer, V any] struct {
	key   K
	value V
}
