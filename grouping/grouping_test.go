package grouping

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ChAoSUnItY/metamorphosis/stream"
	"github.com/stretchr/testify/require"
)

func firstChar(s string) byte {
	return s[0]
}

func TestEachCount(t *testing.T) {
	words := strings.Split("one two three four five six seven eight nine ten", " ")
	freqByFirstChar := By(words, firstChar).EachCount()

	require.Equal(t, map[byte]int{
		'o': 1,
		't': 3,
		'f': 2,
		's': 2,
		'e': 1,
		'n': 1,
	}, freqByFirstChar)
}

func TestAggregate(t *testing.T) {
	numbers := []int{3, 4, 5, 6, 7, 8, 9}
	aggregated := Aggregate(
		By(numbers, func(i int) int {
			return i % 3
		}),
		func(key int, acc *string, item int) string {
			if acc == nil {
				return fmt.Sprintf("%d:%d", key, item)
			}
			return fmt.Sprintf("%s-%d", *acc, item)
		},
	)

	require.Equal(t, map[int]string{
		0: "0:3-6-9",
		1: "1:4-7",
		2: "2:5-8",
	}, aggregated)
}

func TestFoldWithKey(t *testing.T) {
	fruits := []string{"cherry", "blueberry", "citrus", "apple", "apricot", "banana", "coconut"}
	evenFruits := FoldWithKey(
		By(fruits, firstChar),
		func(_ byte, _ string) []string {
			return nil
		},
		func(_ byte, acc []string, item string) []string {
			if len(item)%2 == 0 {
				return append(acc, item)
			}
			return acc
		},
	)

	require.Equal(t, map[byte][]string{
		'a': nil,
		'b': {"banana"},
		'c': {"cherry", "citrus"},
	}, evenFruits)
}

func TestReduceWithKey(t *testing.T) {
	animals := []string{"raccoon", "reindeer", "cow", "camel", "giraffe", "goat"}
	vowels := func(s string) int {
		count := 0
		for _, r := range s {
			if strings.ContainsRune("aeiou", r) {
				count++
			}
		}
		return count
	}
	maxVowels := ReduceWithKey(
		By(animals, firstChar),
		func(_ byte, acc string, item string) string {
			if vowels(item) > vowels(acc) {
				return item
			}
			return acc
		},
	)

	require.Equal(t, map[byte]string{
		'r': "reindeer",
		'c': "camel",
		'g': "giraffe",
	}, maxVowels)
}

func TestEagerAndLazyFormsAgree(t *testing.T) {
	words := []string{"one", "two", "three", "four", "five"}
	g := By(words, firstChar)

	require.Equal(
		t,
		stream.MustEachCount(stream.GroupBy(stream.Just(words...), firstChar)),
		g.EachCount(),
	)

	sumLengths := func(_ byte, acc *int, item string) int {
		if acc == nil {
			return len(item)
		}
		return *acc + len(item)
	}
	require.Equal(
		t,
		stream.MustAggregate(stream.GroupBy(stream.Just(words...), firstChar), sumLengths),
		Aggregate(g, sumLengths),
	)
}

func TestGrouping_Requeryable(t *testing.T) {
	g := By([]int{1, 2, 3, 4}, func(i int) int {
		return i % 2
	})
	first := g.EachCount()
	second := g.EachCount()
	require.Equal(t, first, second)
	require.Equal(t, map[int]int{0: 2, 1: 2}, first)
}

func TestCollect(t *testing.T) {
	g := By([]string{"ant", "bee", "ape"}, firstChar)
	require.Equal(t, map[byte][]string{
		'a': {"ant", "ape"},
		'b': {"bee"},
	}, g.Collect())
}

func TestString_SingleKey(t *testing.T) {
	g := By([]string{"one", "only"}, firstChar)
	require.Equal(t, "{111=[one, only]}", g.String())
}

func TestString_MultipleKeys(t *testing.T) {
	g := By([]string{"ant", "bee", "ape"}, func(s string) string {
		return s[:1]
	})
	rendered := g.String()
	require.True(t, strings.HasPrefix(rendered, "{"))
	require.True(t, strings.HasSuffix(rendered, "}"))
	require.Contains(t, rendered, "a=[ant, ape]")
	require.Contains(t, rendered, "b=[bee]")
}

func TestFold_IndependentAccumulatorsPerKey(t *testing.T) {
	result := Fold(
		By([]int{1, 2, 3, 4, 5, 6}, func(i int) int {
			return i % 3
		}),
		0,
		func(acc int, item int) int {
			return acc + item
		},
	)
	require.Equal(t, map[int]int{0: 9, 1: 5, 2: 7}, result)
}

func ExampleGrouping_String() {
	g := By([]string{"one", "only"}, func(s string) string {
		return s[:1]
	})
	fmt.Println(g)
	// Output: {o=[one, only]}
}
