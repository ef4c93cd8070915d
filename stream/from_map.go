package stream

import (
	"maps"

	"github.com/ChAoSUnItY/metamorphosis"
)

// FromMapValues creates a stream from the values of the provided map.
func FromMapValues[K comparable, V any](mp map[K]V) Stream[V] {
	return FromIterator(maps.Values(mp))
}

// FromMapKeys creates a stream from the keys of the provided map.
func FromMapKeys[K comparable, V any](mp map[K]V) Stream[K] {
	return FromIterator(maps.Keys(mp))
}

// FromMapEntries creates a keyed stream from the entries of the provided map,
// e.g. to post-process an aggregation result. Entry order is unspecified.
func FromMapEntries[K comparable, V any](mp map[K]V) Stream[metamorphosis.Keyed[K, V]] {
	return FromIterator2(maps.All(mp))
}
