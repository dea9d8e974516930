package windowmap

import "fmt"

// debug utilities

// String summarises occupancy. The format is not stable.
func (m *Map[K, V]) String() string {
	occupied := 0
	for _, b := range m.window {
		if b != nil {
			occupied++
		}
	}
	return fmt.Sprintf("windowmap{width %d, minFill %d, window %d/%d, overflow %d}",
		m.width, m.minFill, occupied, len(m.window), m.overflow.Len())
}
