package lazy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJust(t *testing.T) {
	require.Equal(t, 42, Just(42).MustGet())
}

func TestGet_Empty(t *testing.T) {
	_, err := Empty[int]().Get(context.Background())
	require.Error(t, err)
}

func TestGetOptional_Empty(t *testing.T) {
	v, err := Empty[int]().GetOptional(context.Background())
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Error[int](boom).Get(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestOrElse(t *testing.T) {
	require.Equal(t, 7, Empty[int]().MustOrElse(7))
	require.Equal(t, 1, Just(1).MustOrElse(7))
}

func TestOrElseThrow(t *testing.T) {
	custom := errors.New("nothing here")
	_, err := Empty[int]().OrElseThrow(func() error {
		return custom
	}).Get(context.Background())
	require.ErrorIs(t, err, custom)

	require.Equal(t, 3, Just(3).OrElseThrow(func() error {
		return custom
	}).MustGet())
}

func TestIsEmpty(t *testing.T) {
	require.True(t, Empty[int]().MustIsEmpty())
	require.False(t, Just(1).MustIsEmpty())
}

func TestLazyIsDeferred(t *testing.T) {
	computed := 0
	l := NewLazy(func(_ context.Context) (int, error) {
		computed++
		return computed, nil
	})
	require.Equal(t, 0, computed)
	require.Equal(t, 1, l.MustGet())
	// Each Get runs the computation afresh
	require.Equal(t, 2, l.MustGet())
}

func TestMap(t *testing.T) {
	doubled := Map(Just(21), func(i int) int {
		return i * 2
	})
	require.Equal(t, 42, doubled.MustGet())

	require.True(t, Map(Empty[int](), func(i int) int {
		return i * 2
	}).MustIsEmpty())
}
