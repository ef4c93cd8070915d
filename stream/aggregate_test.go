package stream

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func rangeStream(from, to int) Stream[int] {
	var items []int
	for i := from; i <= to; i++ {
		items = append(items, i)
	}
	return Just(items...)
}

func TestAggregate(t *testing.T) {
	aggregated := MustAggregate(
		GroupBy(rangeStream(3, 9), func(i int) int {
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

func TestAggregate_EmptySource(t *testing.T) {
	result := MustAggregate(
		GroupBy(Empty[int](), func(i int) int {
			return i
		}),
		func(_ int, acc *int, _ int) int {
			if acc == nil {
				return 1
			}
			return *acc + 1
		},
	)
	require.NotNil(t, result)
	require.Empty(t, result)
}

func TestAggregate_OpCalledExactlyOncePerItem(t *testing.T) {
	items := []string{"one", "two", "three", "four", "five"}
	opCalls := 0
	var seen []string
	MustAggregate(
		GroupBy(Just(items...), func(s string) byte {
			return s[0]
		}),
		func(_ byte, acc *int, item string) int {
			opCalls++
			seen = append(seen, item)
			if acc == nil {
				return 1
			}
			return *acc + 1
		},
	)
	require.Equal(t, len(items), opCalls)
	// Source order across the whole pass, not just within a key
	require.Equal(t, items, seen)
}

func TestAggregate_NilAccumulatorOnlyOnFirstOfKey(t *testing.T) {
	nilSeen := make(map[int]int)
	MustAggregate(
		GroupBy(Just(1, 2, 3, 4, 5, 6, 7, 8), func(i int) int {
			return i % 2
		}),
		func(key int, acc *int, item int) int {
			if acc == nil {
				nilSeen[key]++
				return item
			}
			return *acc + item
		},
	)
	require.Equal(t, map[int]int{0: 1, 1: 1}, nilSeen)
}

func TestAggregate_LatestAccumulatorAlwaysObserved(t *testing.T) {
	result := MustAggregate(
		GroupBy(Just(1, 1, 1, 1), func(int) string {
			return "all"
		}),
		func(_ string, acc *int, item int) int {
			if acc == nil {
				return item
			}
			return *acc + item
		},
	)
	require.Equal(t, map[string]int{"all": 4}, result)
}

func TestAggregate_SourceErrorDiscardsPartialResult(t *testing.T) {
	failing := MapWithErr(Just(1, 2, 3, 4), func(i int) (int, error) {
		if i == 3 {
			return 0, errors.New("source failure")
		}
		return i, nil
	})
	result, err := Aggregate(
		context.Background(),
		GroupBy(failing, func(i int) int {
			return i % 2
		}),
		func(_ int, acc *int, item int) int {
			if acc == nil {
				return item
			}
			return *acc + item
		},
	)
	require.Error(t, err)
	require.Nil(t, result)
}

func TestAggregateWithErr_OpErrorDiscardsPartialResult(t *testing.T) {
	opErr := errors.New("op failure")
	result, err := AggregateWithErr(
		context.Background(),
		GroupBy(Just(1, 2, 3), func(i int) int {
			return i
		}),
		func(_ int, _ *int, item int) (int, error) {
			if item == 2 {
				return 0, opErr
			}
			return item, nil
		},
	)
	require.ErrorIs(t, err, opErr)
	require.Nil(t, result)
}

func TestAggregate_OpPanicPropagates(t *testing.T) {
	require.Panics(t, func() {
		MustAggregate(
			GroupBy(Just(1, 2, 3), func(i int) int {
				return i
			}),
			func(_ int, _ *int, item int) int {
				if item == 2 {
					panic("op panic")
				}
				return item
			},
		)
	})
}

func TestAggregate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := Aggregate(
		ctx,
		GroupBy(Just(1, 2, 3), func(i int) int {
			return i
		}),
		func(_ int, _ *int, item int) int {
			return item
		},
	)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, result)
}

func TestAggregateLazy(t *testing.T) {
	l := AggregateLazy(
		GroupBy(Just("a", "b", "aa"), func(s string) byte {
			return s[0]
		}),
		func(_ byte, acc *int, _ string) int {
			if acc == nil {
				return 1
			}
			return *acc + 1
		},
	)
	require.Equal(t, map[byte]int{'a': 2, 'b': 1}, l.MustGet())
}

func ExampleMustAggregate() {
	aggregated := MustAggregate(
		GroupBy(Just(3, 4, 5, 6, 7, 8, 9), func(i int) int {
			return i % 3
		}),
		func(key int, acc *string, item int) string {
			if acc == nil {
				return fmt.Sprintf("%d:%d", key, item)
			}
			return fmt.Sprintf("%s-%d", *acc, item)
		},
	)
	fmt.Println(aggregated)
	// Output: map[0:0:3-6-9 1:1:4-7 2:2:5-8]
}
