// Package shake implements the SHAKE128 and SHAKE256 extendable output functions from FIPS 202.
package shake

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"go.keccak.dev/shake/src/sponge"
)

const (
	// Rate128 is the SHAKE128 rate in bytes
	Rate128 = 168
	// Rate256 is the SHAKE256 rate in bytes
	Rate256 = 136

	// DomainSeparator is the SHAKE suffix merged with the first padding bit.
	DomainSeparator = 0x1f
)

// Variant selects one of the two SHAKE functions by its security level in bits.
type Variant int

const (
	SHAKE128 Variant = 128
	SHAKE256 Variant = 256
)

// Variants lists every supported Variant.
var Variants = []Variant{SHAKE128, SHAKE256}

// Rate returns the rate of v in bytes, or 0 if v is not supported.
func (v Variant) Rate() int {
	switch v {
	case SHAKE128:
		return Rate128
	case SHAKE256:
		return Rate256
	default:
		return 0
	}
}

func (v Variant) String() string {
	return fmt.Sprintf("SHAKE%d", int(v))
}

// ParseVariant accepts "128", "256", "shake128" and "SHAKE256" style names.
func ParseVariant(x string) (Variant, error) {
	s := strings.TrimPrefix(strings.ToLower(x), "shake")
	bits, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing variant %q", x)
	}
	v := Variant(bits)
	if v.Rate() == 0 {
		return 0, ErrInvalidVariant{Bits: bits}
	}
	return v, nil
}

// New returns a sponge configured for v, ready to absorb.
func New(v Variant) (*sponge.Sponge, error) {
	rate := v.Rate()
	if rate == 0 {
		return nil, ErrInvalidVariant{Bits: int(v)}
	}
	return sponge.New(rate)
}

// XOF absorbs in, finalizes and squeezes outLen bytes.
func XOF(v Variant, in []byte, outLen int) ([]byte, error) {
	if outLen < 0 {
		return nil, ErrInvalidLength{Len: outLen}
	}
	out := make([]byte, outLen)
	if err := Sum(v, out, in); err != nil {
		return nil, err
	}
	return out, nil
}

// Sum fills out with the output of v on input in.
func Sum(v Variant, out, in []byte) error {
	s, err := New(v)
	if err != nil {
		return err
	}
	if err := s.Absorb(in); err != nil {
		return err
	}
	if err := s.Finalize(DomainSeparator); err != nil {
		return err
	}
	return s.Squeeze(out)
}

// Sum128 returns outLen bytes of SHAKE128 output for in.
func Sum128(in []byte, outLen int) []byte {
	return mustXOF(SHAKE128, in, outLen)
}

// Sum256 returns outLen bytes of SHAKE256 output for in.
func Sum256(in []byte, outLen int) []byte {
	return mustXOF(SHAKE256, in, outLen)
}

// Sum256Fixed reads 256 bits of SHAKE256 output for in.
func Sum256Fixed(in []byte) (ret [32]byte) {
	if err := Sum(SHAKE256, ret[:], in); err != nil {
		panic(err)
	}
	return ret
}

func mustXOF(v Variant, in []byte, outLen int) []byte {
	out, err := XOF(v, in, outLen)
	if err != nil {
		panic(err)
	}
	return out
}
