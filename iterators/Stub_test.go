package iterators_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"go.llib.dev/primiter/iterators"
)

var _ iterators.Iterator[int] = iterators.NewStub(iterators.Of([]int{42}))

func TestStub_NoOverride_DelegatesToTheWrappedIterator(t *testing.T) {
	t.Parallel()

	stub := iterators.NewStub(iterators.Of([]int{42, 4, 2}))

	for _, expected := range []int{42, 4, 2} {
		require.True(t, stub.HasNext())
		v, err := stub.Next()
		require.NoError(t, err)
		require.Equal(t, expected, v)
	}
	require.False(t, stub.HasNext())
}

func TestStub_StubHasNext_OverridesAndResets(t *testing.T) {
	t.Parallel()

	stub := iterators.NewStub(iterators.Of([]int{42}))

	stub.StubHasNext = func() bool { return false }
	require.False(t, stub.HasNext())

	stub.ResetHasNext()
	require.True(t, stub.HasNext())
}

func TestStub_StubNext_OverridesAndResets(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New(`boom`)
	stub := iterators.NewStub(iterators.Of([]int{42}))

	stub.StubNext = func() (int, error) { return 0, expectedErr }
	_, err := stub.Next()
	require.Equal(t, expectedErr, err)

	stub.ResetNext()
	v, err := stub.Next()
	require.NoError(t, err)
	require.Equal(t, 42, v)
}
