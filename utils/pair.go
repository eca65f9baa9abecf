package utils

import "fmt"

// Pair is a single key value entry of an ordered container
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

func NewPair[K comparable, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("%v: %v", p.Key, p.Value)
}

func (p Pair[K, V]) GoString() string {
	return fmt.Sprintf("%#v: %#v", p.Key, p.Value)
}
