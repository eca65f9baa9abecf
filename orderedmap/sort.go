package orderedmap

import (
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/denismitr/ordered/utils"
)

// SortInPlaceBy - sorts the collection in place, equal pairs may change places
func (om *OrderedMap[K, V]) SortInPlaceBy(lessFn LessPairFn[K, V]) *OrderedMap[K, V] {
	slices.SortFunc(om.keys, func(a, b K) int {
		pa := utils.Pair[K, V]{Key: a, Value: om.m[a]}
		pb := utils.Pair[K, V]{Key: b, Value: om.m[b]}

		switch {
		case lessFn(pa, pb):
			return -1
		case lessFn(pb, pa):
			return 1
		default:
			return 0
		}
	})

	return om
}

// SortBy - sorts a clone of the collection and returns it
func (om *OrderedMap[K, V]) SortBy(lessFn LessPairFn[K, V]) *OrderedMap[K, V] {
	return om.Clone().SortInPlaceBy(lessFn)
}

func SortInPlaceByKey[K constraints.Ordered, V any](om *OrderedMap[K, V]) *OrderedMap[K, V] {
	return om.SortInPlaceBy(lessByKey[K, V])
}

func SortByKey[K constraints.Ordered, V any](om *OrderedMap[K, V]) *OrderedMap[K, V] {
	return om.SortBy(lessByKey[K, V])
}

func lessByKey[K constraints.Ordered, V any](a, b utils.Pair[K, V]) bool {
	return a.Key < b.Key
}
