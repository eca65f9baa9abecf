package orderedmap

import (
	"iter"

	"github.com/denismitr/ordered/utils"
)

// All iterates over keys and values in order. Each range over the returned
// sequence starts a fresh traversal.
func (om *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range om.keys {
			if !yield(k, om.m[k]) {
				return
			}
		}
	}
}

func (om *OrderedMap[K, V]) Pairs() iter.Seq[utils.Pair[K, V]] {
	return func(yield func(utils.Pair[K, V]) bool) {
		for _, k := range om.keys {
			if !yield(utils.Pair[K, V]{Key: k, Value: om.m[k]}) {
				return
			}
		}
	}
}

func (om *OrderedMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, k := range om.keys {
			if !yield(om.m[k]) {
				return
			}
		}
	}
}

// Slice is a lazy view over the entries in [lo, hi). Values are looked up
// when the view is ranged over, not when it is created.
func (om *OrderedMap[K, V]) Slice(lo, hi int) (iter.Seq2[K, V], error) {
	if lo < 0 || hi < lo || hi > len(om.keys) {
		return nil, rangeOutOfBounds(lo, hi, len(om.keys))
	}

	window := om.keys[lo:hi:hi]
	return func(yield func(K, V) bool) {
		for _, k := range window {
			if !yield(k, om.m[k]) {
				return
			}
		}
	}, nil
}
