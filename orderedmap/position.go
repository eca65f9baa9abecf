package orderedmap

import (
	"slices"

	"github.com/denismitr/ordered/internal/debug"
	"github.com/denismitr/ordered/utils"
)

func (om *OrderedMap[K, V]) valid(pos int) bool {
	return pos >= 0 && pos < len(om.keys)
}

// At returns the pair at the given position
func (om *OrderedMap[K, V]) At(pos int) (utils.Pair[K, V], error) {
	if !om.valid(pos) {
		return utils.Pair[K, V]{}, outOfBounds(pos, len(om.keys))
	}

	k := om.keys[pos]
	return utils.Pair[K, V]{Key: k, Value: om.m[k]}, nil
}

func (om *OrderedMap[K, V]) SetAt(pos int, key K, value V) error {
	_, err := om.UpdateAt(pos, key, value)
	return err
}

// UpdateAt replaces the pair at the given position and returns the previous one.
// If the new key already sits at another position, that entry is dropped
// and the map shrinks by one.
func (om *OrderedMap[K, V]) UpdateAt(pos int, key K, value V) (utils.Pair[K, V], error) {
	if !om.valid(pos) {
		return utils.Pair[K, V]{}, outOfBounds(pos, len(om.keys))
	}

	oldKey := om.keys[pos]
	oldValue, found := om.m[oldKey]
	if !found {
		return utils.Pair[K, V]{}, outOfBounds(pos, len(om.keys))
	}

	delete(om.m, oldKey)

	if _, dup := om.m[key]; dup {
		i := slices.Index(om.keys, key)
		om.keys = slices.Delete(om.keys, i, i+1)
		if i < pos {
			pos--
		}

		if debug.Enabled {
			debug.Printf("key %v moved from position %d to %d", key, i, pos)
		}
	}

	om.keys[pos] = key
	om.m[key] = value

	return utils.Pair[K, V]{Key: oldKey, Value: oldValue}, nil
}

// Insert puts the pair at the given position, positions up to and including
// Len() are valid. A key that is already present is moved: it ends up right
// before the entry that occupied pos prior to the call.
func (om *OrderedMap[K, V]) Insert(pos int, key K, value V) error {
	target, n, from := pos, len(om.keys), -1
	if _, found := om.m[key]; found {
		from = slices.Index(om.keys, key)
		n--
		if from < target {
			target--
		}
	}

	if target < 0 || target > n {
		return outOfBounds(pos, len(om.keys))
	}

	if from >= 0 {
		om.keys = slices.Delete(om.keys, from, from+1)
		if debug.Enabled {
			debug.Printf("key %v moved from position %d to %d", key, from, target)
		}
	}

	om.keys = slices.Insert(om.keys, target, key)
	om.m[key] = value
	return nil
}

func (om *OrderedMap[K, V]) RemoveAt(pos int) (utils.Pair[K, V], error) {
	if !om.valid(pos) {
		return utils.Pair[K, V]{}, outOfBounds(pos, len(om.keys))
	}

	k := om.keys[pos]
	v := om.m[k]
	delete(om.m, k)
	om.keys = slices.Delete(om.keys, pos, pos+1)

	return utils.Pair[K, V]{Key: k, Value: v}, nil
}

func (om *OrderedMap[K, V]) RemoveFirst() (utils.Pair[K, V], error) {
	if len(om.keys) == 0 {
		return utils.Pair[K, V]{}, emptyContainer("RemoveFirst")
	}

	return om.RemoveAt(0)
}

func (om *OrderedMap[K, V]) RemoveLast() (utils.Pair[K, V], error) {
	if len(om.keys) == 0 {
		return utils.Pair[K, V]{}, emptyContainer("RemoveLast")
	}

	return om.RemoveAt(len(om.keys) - 1)
}

// ReplaceRange swaps the entries in [lo, hi) for the given pairs, the number
// of pairs does not have to match the size of the range. Keys of the replaced
// range are released before the new pairs are stored, so a pair may reuse one.
// Repeated keys among pairs collapse the way FromPairs does, and a key that
// also lives outside the range is moved into it.
func (om *OrderedMap[K, V]) ReplaceRange(lo, hi int, pairs ...utils.Pair[K, V]) error {
	if lo < 0 || hi < lo || hi > len(om.keys) {
		return rangeOutOfBounds(lo, hi, len(om.keys))
	}

	for _, k := range om.keys[lo:hi] {
		delete(om.m, k)
	}

	incoming := make(map[K]struct{}, len(pairs))
	fresh := make([]K, 0, len(pairs))
	for i := range pairs {
		if _, seen := incoming[pairs[i].Key]; seen {
			continue
		}

		incoming[pairs[i].Key] = struct{}{}
		fresh = append(fresh, pairs[i].Key)
	}

	spliced := make([]K, 0, len(om.keys)-(hi-lo)+len(fresh))
	relocated := 0
	keep := func(keys []K) {
		for _, k := range keys {
			if _, moved := incoming[k]; moved {
				relocated++
				continue
			}

			spliced = append(spliced, k)
		}
	}

	keep(om.keys[:lo])
	spliced = append(spliced, fresh...)
	keep(om.keys[hi:])

	if debug.Enabled {
		debug.Printf("replaced range [%d:%d] with %d keys, %d moved in from outside", lo, hi, len(fresh), relocated)
	}

	om.keys = spliced
	for i := range pairs {
		om.m[pairs[i].Key] = pairs[i].Value
	}

	return nil
}
