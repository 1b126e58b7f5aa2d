// Package sponge implements the absorb, pad, squeeze protocol over Keccak-f[1600].
package sponge

import (
	"go.keccak.dev/shake/src/keccakf"
)

// StateSize is the width of the sponge in bytes.
const StateSize = keccakf.StateSize

// Phase is the stage of the sponge's lifecycle.
type Phase uint8

const (
	Absorbing Phase = iota
	Finalized
	Squeezing
)

func (p Phase) String() string {
	switch p {
	case Absorbing:
		return "absorbing"
	case Finalized:
		return "finalized"
	case Squeezing:
		return "squeezing"
	default:
		return "unknown"
	}
}

// Sponge holds a Keccak state, the rate and a cursor into the rate region.
// A Sponge must not be used by more than one goroutine at a time.
type Sponge struct {
	a        keccakf.State1600
	rate     int
	position int
	phase    Phase
}

// New returns a Sponge in the Absorbing phase.
// rate is in bytes and must satisfy 0 < rate < StateSize.
func New(rate int) (*Sponge, error) {
	if rate <= 0 || rate >= StateSize {
		return nil, ErrInvalidRate{Rate: rate}
	}
	return &Sponge{rate: rate}, nil
}

// Rate returns the number of state bytes exposed to absorb and squeeze.
func (s *Sponge) Rate() int { return s.rate }

// Capacity returns the number of state bytes never touched by absorb or squeeze.
func (s *Sponge) Capacity() int { return StateSize - s.rate }

// Position returns the cursor into the rate region.
func (s *Sponge) Position() int { return s.position }

func (s *Sponge) Phase() Phase { return s.phase }

// Absorb XORs data into the state, permuting each time a full block has been absorbed.
// The result does not depend on how the input is split across calls.
func (s *Sponge) Absorb(data []byte) error {
	if s.phase != Absorbing {
		return ErrInvalidTransition{Op: "absorb", Phase: s.phase}
	}
	for _, b := range data {
		s.xorByte(s.position, b)
		s.position++
		if s.position == s.rate {
			s.permute()
		}
	}
	return nil
}

// Finalize applies the domain separation byte and the final padding bit, then permutes.
// It may be called exactly once.
func (s *Sponge) Finalize(dsbyte byte) error {
	if s.phase != Absorbing {
		return ErrInvalidTransition{Op: "finalize", Phase: s.phase}
	}
	if s.position == s.rate {
		s.permute()
	}
	// When position == rate-1 both of these land on the same byte and must both apply.
	s.xorByte(s.position, dsbyte)
	s.xorByte(s.rate-1, 0x80)
	s.permute()
	s.phase = Finalized
	return nil
}

// Squeeze fills out with output bytes.
// Successive calls continue the same output stream.
func (s *Sponge) Squeeze(out []byte) error {
	if s.phase == Absorbing {
		return ErrInvalidTransition{Op: "squeeze", Phase: s.phase}
	}
	s.phase = Squeezing
	for i := range out {
		if s.position == s.rate {
			s.permute()
		}
		out[i] = s.byteAt(s.position)
		s.position++
	}
	return nil
}

func (s *Sponge) permute() {
	keccakf.Permute1600(&s.a)
	s.position = 0
}

// byteAt returns byte i of the state, reading lanes as little endian.
func (s *Sponge) byteAt(i int) byte {
	return byte(s.a[i/8] >> (8 * (i % 8)))
}

// xorByte XORs b into byte i of the state, writing lanes as little endian.
func (s *Sponge) xorByte(i int, b byte) {
	s.a[i/8] ^= uint64(b) << (8 * (i % 8))
}
