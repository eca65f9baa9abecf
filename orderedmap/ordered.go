package orderedmap

import (
	"maps"
	"slices"

	"github.com/denismitr/ordered/internal/debug"
	"github.com/denismitr/ordered/utils"
)

type (
	// OrderedMap keeps its keys in insertion order next to a hash index of values,
	// so it can be read by key as well as by position.
	//
	// OrderedMap is not safe for concurrent use. Callers sharing one between
	// goroutines must serialize access themselves. Mutating the map while
	// ranging over All, Pairs, Values or a Slice view is forbidden.
	OrderedMap[K comparable, V any] struct {
		keys []K
		m    map[K]V
	}

	FilterFn[K comparable, V any]       func(key K, value V, order int) bool
	ForEachFn[K comparable, V any]      func(key K, value V, order int)
	ForEachUntilFn[K comparable, V any] func(key K, value V, order int) bool
	TransformerFn[K comparable, V any]  func(key K, value V, order int) V
	LessPairFn[K comparable, V any]     func(a utils.Pair[K, V], b utils.Pair[K, V]) (less bool)

	options struct {
		capacity int
	}

	Option func(o *options)
)

// WithCapacity pre-reserves room for n entries
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func NewOrderedMap[K comparable, V any](opts ...Option) *OrderedMap[K, V] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &OrderedMap[K, V]{
		keys: make([]K, 0, o.capacity),
		m:    make(map[K]V, o.capacity),
	}
}

// FromPairs builds a map the way a literal does: a repeated key keeps
// the position of its first occurrence and the value of its last one.
func FromPairs[K comparable, V any](pairs ...utils.Pair[K, V]) *OrderedMap[K, V] {
	om := NewOrderedMap[K, V](WithCapacity(len(pairs)))
	for i := range pairs {
		om.Set(pairs[i].Key, pairs[i].Value)
	}

	return om
}

// Set is idempotent, an existing key keeps its position
func (om *OrderedMap[K, V]) Set(key K, value V) {
	if _, found := om.m[key]; !found {
		om.keys = append(om.keys, key)
	}

	om.m[key] = value
}

func (om *OrderedMap[K, V]) SetNX(key K, value V) (added bool) {
	if _, found := om.m[key]; found {
		return false
	}

	om.keys = append(om.keys, key)
	om.m[key] = value
	return true
}

// SetOrRemove sets the value when ok is true and removes the key otherwise,
// mirroring the result of a comma-ok lookup on another map
func (om *OrderedMap[K, V]) SetOrRemove(key K, value V, ok bool) {
	if !ok {
		om.HasRemove(key)
		return
	}

	om.Set(key, value)
}

// UpdateValue upserts the value and returns the one it replaced, if any
func (om *OrderedMap[K, V]) UpdateValue(key K, value V) (V, bool) {
	prev, found := om.m[key]
	if !found {
		om.keys = append(om.keys, key)
	}

	om.m[key] = value
	return prev, found
}

func (om *OrderedMap[K, V]) HasGet(key K) (V, bool) {
	v, found := om.m[key]
	if !found {
		return utils.GetZero[V](), false
	}

	return v, true
}

func (om *OrderedMap[K, V]) Get(key K) V {
	return om.m[key]
}

func (om *OrderedMap[K, V]) Has(key K) bool {
	_, found := om.m[key]
	return found
}

func (om *OrderedMap[K, V]) HasRemove(key K) (V, bool) {
	v, exists := om.m[key]
	if !exists {
		return utils.GetZero[V](), false
	}

	idx := slices.Index(om.keys, key)
	delete(om.m, key)
	om.keys = slices.Delete(om.keys, idx, idx+1)

	return v, true
}

func (om *OrderedMap[K, V]) Remove(key K) V {
	v, _ := om.HasRemove(key)
	return v
}

// IndexOf returns the current position of the key
func (om *OrderedMap[K, V]) IndexOf(key K) (int, bool) {
	if _, found := om.m[key]; !found {
		return -1, false
	}

	return slices.Index(om.keys, key), true
}

func (om *OrderedMap[K, V]) Len() int {
	return len(om.keys)
}

func (om *OrderedMap[K, V]) IsEmpty() bool {
	return len(om.keys) == 0
}

// Keys returns a copy of the keys in order
func (om *OrderedMap[K, V]) Keys() []K {
	return slices.Clone(om.keys)
}

// RemoveAll empties the map, keepCapacity retains the allocated storage
func (om *OrderedMap[K, V]) RemoveAll(keepCapacity bool) {
	if debug.Enabled {
		debug.Printf("removing all %d entries, keep capacity: %t", len(om.keys), keepCapacity)
	}

	if keepCapacity {
		clear(om.keys)
		om.keys = om.keys[:0]
		clear(om.m)
		return
	}

	om.keys = make([]K, 0)
	om.m = make(map[K]V)
}

// Reserve is a hint that the map is about to grow to n entries
func (om *OrderedMap[K, V]) Reserve(n int) {
	if n <= len(om.keys) {
		return
	}

	om.keys = slices.Grow(om.keys, n-len(om.keys))
	if len(om.m) == 0 {
		om.m = make(map[K]V, n)
	}
}

func (om *OrderedMap[K, V]) ForEach(f ForEachFn[K, V]) {
	for order, k := range om.keys {
		f(k, om.m[k], order)
	}
}

func (om *OrderedMap[K, V]) ForEachUntil(ff ForEachUntilFn[K, V]) *OrderedMap[K, V] {
	for order, k := range om.keys {
		if canGoOn := ff(k, om.m[k], order); !canGoOn {
			break
		}
	}

	return om
}

func (om *OrderedMap[K, V]) Transform(f TransformerFn[K, V]) *OrderedMap[K, V] {
	result := NewOrderedMap[K, V](WithCapacity(len(om.keys)))
	for order, k := range om.keys {
		result.Set(k, f(k, om.m[k], order))
	}

	return result
}

func (om *OrderedMap[K, V]) Filter(f FilterFn[K, V]) *OrderedMap[K, V] {
	result := NewOrderedMap[K, V]()
	for order, k := range om.keys {
		v := om.m[k]
		if preserve := f(k, v, order); preserve {
			result.Set(k, v)
		}
	}

	return result
}

// Clone returns an independent copy, mutating one never affects the other
func (om *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		keys: slices.Clone(om.keys),
		m:    maps.Clone(om.m),
	}
}
