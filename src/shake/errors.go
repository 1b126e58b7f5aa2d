package shake

import (
	"errors"
	"fmt"
)

// ErrInvalidVariant is returned for a selector other than 128 or 256.
type ErrInvalidVariant struct {
	Bits int
}

func (e ErrInvalidVariant) Error() string {
	return fmt.Sprintf("invalid SHAKE variant: %d", e.Bits)
}

func IsErrInvalidVariant(err error) bool {
	return errors.As(err, &ErrInvalidVariant{})
}

type ErrInvalidLength struct {
	Len int
}

func (e ErrInvalidLength) Error() string {
	return fmt.Sprintf("invalid output length: %d", e.Len)
}

func IsErrInvalidLength(err error) bool {
	return errors.As(err, &ErrInvalidLength{})
}
