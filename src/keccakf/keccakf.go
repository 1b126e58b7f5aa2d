// Package keccakf implements the Keccak-f[1600] permutation.
package keccakf

import "math/bits"

const (
	// Rounds is the number of rounds in Keccak-f[1600]
	Rounds = 24
	// Lanes is the number of 64 bit lanes in the state
	Lanes = 25
	// StateSize is the size of the state in bytes
	StateSize = Lanes * 8
)

// State1600 is the 5x5 array of lanes. Lane (x, y) is at index y*5 + x.
type State1600 = [Lanes]uint64

// RoundConstants are XORed into lane (0, 0) by the iota step, one per round.
var RoundConstants = [Rounds]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

// RotationOffsets are the rho step rotation amounts, indexed like the state.
var RotationOffsets = [Lanes]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// Index returns the linear index of lane (x, y).
func Index(x, y int) int {
	return y*5 + x
}

// Permute1600 applies Keccak-f[1600] to a in place.
func Permute1600(a *State1600) {
	for round := 0; round < Rounds; round++ {
		permuteRound(a, RoundConstants[round])
	}
}

func permuteRound(a *State1600, rc uint64) {
	var c, d [5]uint64
	var b State1600

	// theta
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	for x := 0; x < 5; x++ {
		d[x] = c[(x+4)%5] ^ rotl(c[(x+1)%5], 1)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			a[Index(x, y)] ^= d[x]
		}
	}

	// rho and pi. b is scratch so sources are never overwritten before they are read.
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			src := Index(x, y)
			dst := Index(y, (2*x+3*y)%5)
			b[dst] = rotl(a[src], RotationOffsets[src])
		}
	}

	// chi
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			a[Index(x, y)] = b[Index(x, y)] ^ (^b[Index((x+1)%5, y)] & b[Index((x+2)%5, y)])
		}
	}

	// iota
	a[0] ^= rc
}

// rotl rotates v left by n bits. n == 0 leaves v unchanged.
func rotl(v uint64, n int) uint64 {
	if n == 0 {
		return v
	}
	return bits.RotateLeft64(v, n)
}
