package stream

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEachCount(t *testing.T) {
	words := strings.Split("one two three four five six seven eight nine ten", " ")
	freqByFirstChar := MustEachCount(
		GroupBy(Just(words...), func(s string) byte {
			return s[0]
		}),
	)

	require.Equal(t, map[byte]int{
		'o': 1,
		't': 3,
		'f': 2,
		's': 2,
		'e': 1,
		'n': 1,
	}, freqByFirstChar)
}

func TestEachCount_EmptySource(t *testing.T) {
	result := MustEachCount(GroupBy(Empty[string](), func(s string) byte {
		return s[0]
	}))
	require.NotNil(t, result)
	require.Empty(t, result)
}

func TestEachCount_IdempotentOverRestartableSource(t *testing.T) {
	src := Just("aa", "ab", "ba")
	keyOf := func(s string) byte {
		return s[0]
	}

	first := MustEachCount(GroupBy(src, keyOf))
	second := MustEachCount(GroupBy(src, keyOf))
	require.Equal(t, first, second)
	require.Equal(t, map[byte]int{'a': 2, 'b': 1}, first)
}

func TestEachCountLazy(t *testing.T) {
	l := EachCountLazy(GroupBy(Just(1, 2, 2, 3, 3, 3), func(i int) int {
		return i
	}))
	require.Equal(t, map[int]int{1: 1, 2: 2, 3: 3}, l.MustGet())
}
