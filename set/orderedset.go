package set

import (
	"github.com/denismitr/ordered/orderedmap"
)

// OrderedSet remembers the order in which items were first inserted
type OrderedSet[T comparable] struct {
	om *orderedmap.OrderedMap[T, nothing]
}

var _ Set[int] = (*OrderedSet[int])(nil)

func NewOrderedSet[T comparable](items ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{
		om: orderedmap.NewOrderedMap[T, nothing](orderedmap.WithCapacity(len(items))),
	}

	s.InsertSlice(items)
	return s
}

func (s *OrderedSet[T]) Insert(item T) (modified bool) {
	return s.om.SetNX(item, nothing{})
}

// InsertAt puts the item at the given position, moving it there if it is
// already in the set
func (s *OrderedSet[T]) InsertAt(pos int, item T) error {
	return s.om.Insert(pos, item, nothing{})
}

func (s *OrderedSet[T]) Clear() {
	s.om.RemoveAll(false)
}

func (s *OrderedSet[T]) Remove(item T) bool {
	_, found := s.om.HasRemove(item)
	return found
}

func (s *OrderedSet[T]) Items() []T {
	return s.om.Keys()
}

func (s *OrderedSet[T]) Has(item T) bool {
	return s.om.Has(item)
}

func (s *OrderedSet[T]) At(pos int) (T, error) {
	p, err := s.om.At(pos)
	return p.Key, err
}

func (s *OrderedSet[T]) IndexOf(item T) (int, bool) {
	return s.om.IndexOf(item)
}

func (s *OrderedSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	return s.InsertSlice(sourceSet.Items())
}

func (s *OrderedSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *OrderedSet[T]) Len() int {
	return s.om.Len()
}

func (s *OrderedSet[T]) Clone() *OrderedSet[T] {
	return &OrderedSet[T]{om: s.om.Clone()}
}
