package sponge

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an operation is not allowed in the sponge's current phase.
type ErrInvalidTransition struct {
	Op    string
	Phase Phase
}

func (e ErrInvalidTransition) Error() string {
	return fmt.Sprintf("sponge: cannot %s while %v", e.Op, e.Phase)
}

func IsErrInvalidTransition(err error) bool {
	return errors.As(err, &ErrInvalidTransition{})
}

// ErrInvalidRate is returned by New for a rate outside (0, StateSize).
type ErrInvalidRate struct {
	Rate int
}

func (e ErrInvalidRate) Error() string {
	return fmt.Sprintf("sponge: invalid rate %d", e.Rate)
}

func IsErrInvalidRate(err error) bool {
	return errors.As(err, &ErrInvalidRate{})
}
