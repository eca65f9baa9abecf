package orderedmap

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/lestrrat-go/pdebug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denismitr/ordered/utils"
)

func checkInvariants[K comparable, V any](t *testing.T, om *OrderedMap[K, V]) {
	t.Helper()

	if pdebug.Enabled {
		pdebug.Dump(om.keys, om.m)
	}

	require.Equal(t, len(om.keys), len(om.m), "order and index must hold the same number of keys")

	seen := make(map[K]struct{}, len(om.keys))
	for i, k := range om.keys {
		_, dup := seen[k]
		require.False(t, dup, "key %v repeats at position %d", k, i)
		seen[k] = struct{}{}

		_, indexed := om.m[k]
		require.True(t, indexed, "key %v at position %d is missing from the index", k, i)
	}
}

func TestOrderedMap_Invariants(t *testing.T) {
	const steps = 5_000

	rnd := rand.New(rand.NewSource(42))
	key := func() string { return fmt.Sprintf("k%d", rnd.Intn(40)) }
	pos := func(n int) int { return rnd.Intn(n+3) - 1 }

	om := NewOrderedMap[string, int]()
	for step := 0; step < steps; step++ {
		switch op := rnd.Intn(12); op {
		case 0:
			om.Set(key(), step)
		case 1:
			om.SetNX(key(), step)
		case 2:
			om.UpdateValue(key(), step)
		case 3:
			om.HasRemove(key())
		case 4:
			_ = om.Insert(pos(om.Len()), key(), step)
		case 5:
			_, _ = om.RemoveAt(pos(om.Len()))
		case 6:
			_, _ = om.UpdateAt(pos(om.Len()), key(), step)
		case 7:
			lo := pos(om.Len())
			hi := lo + rnd.Intn(3)
			pairs := make([]utils.Pair[string, int], rnd.Intn(4))
			for i := range pairs {
				pairs[i] = utils.NewPair(key(), step)
			}
			_ = om.ReplaceRange(lo, hi, pairs...)
		case 8:
			_, _ = om.RemoveFirst()
		case 9:
			om.SetOrRemove(key(), step, rnd.Intn(2) == 0)
		case 10:
			SortInPlaceByKey(om)
		default:
			if rnd.Intn(20) == 0 {
				om.RemoveAll(rnd.Intn(2) == 0)
			}
		}

		checkInvariants(t, om)
	}
}

func TestOrderedMap_InsertKeepsOtherKeysInPlace(t *testing.T) {
	om := FromPairs(
		utils.NewPair("a", 1),
		utils.NewPair("b", 2),
		utils.NewPair("c", 3),
		utils.NewPair("d", 4),
	)

	require.NoError(t, om.Insert(3, "b", 20))
	checkInvariants(t, om)

	assert.Equal(t, []string{"a", "c", "b", "d"}, om.keys)
	assert.Equal(t, map[string]int{"a": 1, "b": 20, "c": 3, "d": 4}, om.m)
}

func TestOrderedMap_FailedOperationsDoNotMutate(t *testing.T) {
	om := FromPairs(utils.NewPair("a", 1), utils.NewPair("b", 2))
	keys, m := om.Keys(), map[string]int{"a": 1, "b": 2}

	assert.Error(t, om.Insert(5, "a", 10))
	assert.Error(t, om.ReplaceRange(1, 5, utils.NewPair("z", 0)))
	_, err := om.UpdateAt(2, "a", 10)
	assert.Error(t, err)
	_, err = om.RemoveAt(-1)
	assert.Error(t, err)

	checkInvariants(t, om)
	assert.Equal(t, keys, om.keys)
	assert.Equal(t, m, om.m)
}
