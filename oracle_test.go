package windowmap

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// Differential checks against the obvious model: a builtin map, with key
// order recovered by sorting. Every operation must return exactly what the
// model returns, at every step, and a full iteration must match the model's
// sorted contents at the checkpoints.

func runOracle(t *testing.T, m *Map[int, int], seed uint64, steps int, nextKey func(*rand.Rand) int, compactEvery int) {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, 0))
	oracle := map[int]int{}

	for i := 0; i < steps; i++ {
		key := nextKey(rng)
		switch rng.IntN(3) {
		case 0:
			value := rng.IntN(1 << 16)
			wantPrev, wantOk := oracle[key]
			oracle[key] = value
			prev, ok := m.Insert(key, value)
			require.Equal(t, wantOk, ok, "step %d: insert %d", i, key)
			if wantOk {
				require.Equal(t, wantPrev, prev, "step %d: insert %d", i, key)
			}
		case 1:
			wantPrev, wantOk := oracle[key]
			delete(oracle, key)
			prev, ok := m.Remove(key)
			require.Equal(t, wantOk, ok, "step %d: remove %d", i, key)
			if wantOk {
				require.Equal(t, wantPrev, prev, "step %d: remove %d", i, key)
			}
		case 2:
			want, wantOk := oracle[key]
			got, ok := m.Get(key)
			require.Equal(t, wantOk, ok, "step %d: get %d", i, key)
			if wantOk {
				require.Equal(t, want, got, "step %d: get %d", i, key)
			}
		}

		require.LessOrEqual(t, len(m.window), m.width, "step %d", i)

		if compactEvery > 0 && i%compactEvery == compactEvery-1 {
			m.Compact()
		}
		if i%97 == 0 {
			requireMatchesOracle(t, m, oracle)
		}
	}

	requireMatchesOracle(t, m, oracle)
	require.Equal(t, len(oracle), m.Len())
}

func requireMatchesOracle(t *testing.T, m *Map[int, int], oracle map[int]int) {
	t.Helper()
	wantKeys := make([]int, 0, len(oracle))
	for k := range oracle {
		wantKeys = append(wantKeys, k)
	}
	slices.Sort(wantKeys)

	gotKeys := make([]int, 0, len(oracle))
	for k, v := range m.All() {
		gotKeys = append(gotKeys, k)
		require.Equal(t, oracle[k], v, "iterated key %d", k)
	}
	require.Equal(t, wantKeys, gotKeys)
}

func TestOracle(t *testing.T) {
	clustered := func(rng *rand.Rand) int { return rng.IntN(64) }
	mixed := func(rng *rand.Rand) int { return rng.IntN(2000) - 200 }
	sparse := func(rng *rand.Rand) int { return rng.IntN(1<<20) - (1 << 10) }

	t.Run("strict clustered", func(t *testing.T) {
		runOracle(t, New[int, int](16), 1, 4000, clustered, 0)
	})
	t.Run("strict mixed", func(t *testing.T) {
		runOracle(t, New[int, int](32), 2, 4000, mixed, 0)
	})
	t.Run("strict sparse", func(t *testing.T) {
		runOracle(t, New[int, int](128), 3, 4000, sparse, 0)
	})
	t.Run("strict width zero", func(t *testing.T) {
		runOracle(t, New[int, int](0), 4, 2000, mixed, 0)
	})
	t.Run("strict width one", func(t *testing.T) {
		runOracle(t, New[int, int](1), 5, 2000, clustered, 0)
	})
	t.Run("minfill clustered", func(t *testing.T) {
		runOracle(t, NewWithMinFill[int, int](16, 8), 6, 4000, clustered, 251)
	})
	t.Run("minfill mixed", func(t *testing.T) {
		runOracle(t, NewWithMinFill[int, int](32, 16), 7, 4000, mixed, 113)
	})
	t.Run("minfill zero", func(t *testing.T) {
		runOracle(t, NewWithMinFill[int, int](4, 0), 8, 2000, clustered, 61)
	})
}
