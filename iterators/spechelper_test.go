package iterators_test

import (
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/require"

	"go.llib.dev/primiter"
	"go.llib.dev/primiter/iterators"
)

func randomFloats(n int) []float64 {
	vs := make([]float64, n)
	for i := range vs {
		vs[i] = randomdata.Decimal(0, 100)
	}
	return vs
}

func randomInts(n int) []int {
	vs := make([]int, n)
	for i := range vs {
		vs[i] = randomdata.Number(0, 100)
	}
	return vs
}

func randomBools(n int) []bool {
	vs := make([]bool, n)
	for i := range vs {
		vs[i] = randomdata.Boolean()
	}
	return vs
}

func randomRunes(n int) []rune {
	vs := make([]rune, n)
	for i := range vs {
		vs[i] = rune(randomdata.Number('a', 'z'+1))
	}
	return vs
}

// assertYieldsRange drains a freshly built ranged iterator
// and checks it yields exactly slice[fromIndex:toIndex], in order,
// then stays exhausted.
func assertYieldsRange[T primiter.Primitive](tb testing.TB, slice []T, fromIndex, toIndex int) {
	tb.Helper()

	iter, err := iterators.OfRange(slice, fromIndex, toIndex)
	require.NoError(tb, err)

	for i := fromIndex; i < toIndex; i++ {
		require.True(tb, iter.HasNext())
		v, err := iter.Next()
		require.NoError(tb, err)
		require.Equal(tb, slice[i], v)
	}

	require.False(tb, iter.HasNext())
	_, err = iter.Next()
	require.ErrorIs(tb, err, iterators.ErrExhausted)
}
