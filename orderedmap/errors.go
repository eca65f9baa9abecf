package orderedmap

import (
	"github.com/pkg/errors"
)

var (
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

func outOfBounds(pos, length int) error {
	return errors.Wrapf(ErrIndexOutOfBounds, "position %d, length %d", pos, length)
}

func rangeOutOfBounds(lo, hi, length int) error {
	return errors.Wrapf(ErrIndexOutOfBounds, "range [%d:%d], length %d", lo, hi, length)
}

func emptyContainer(op string) error {
	return errors.Wrapf(ErrIndexOutOfBounds, "%s on empty ordered map", op)
}
