package utils_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/denismitr/ordered/utils"
)

func TestPair_String(t *testing.T) {
	p := utils.NewPair("foo", 1)

	assert.Equal(t, "foo", p.Key)
	assert.Equal(t, 1, p.Value)
	assert.Equal(t, "foo: 1", p.String())
	assert.Equal(t, `"foo": 1`, fmt.Sprintf("%#v", p))
}

func TestGetZero(t *testing.T) {
	assert.Equal(t, 0, utils.GetZero[int]())
	assert.Equal(t, "", utils.GetZero[string]())
	assert.Nil(t, utils.GetZero[*int]())
}
