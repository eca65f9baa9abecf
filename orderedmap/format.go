package orderedmap

import (
	"fmt"
	"strings"
)

// String renders the map as [k1: v1, k2: v2], or [:] when it is empty
func (om *OrderedMap[K, V]) String() string {
	return om.describe("%v: %v")
}

// GoString is the %#v form of String, e.g. ["a": 1]
func (om *OrderedMap[K, V]) GoString() string {
	return om.describe("%#v: %#v")
}

func (om *OrderedMap[K, V]) describe(format string) string {
	if len(om.keys) == 0 {
		return "[:]"
	}

	var b strings.Builder
	b.WriteString("[")
	for i, k := range om.keys {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf(format, k, om.m[k]))
	}
	b.WriteString("]")

	return b.String()
}
