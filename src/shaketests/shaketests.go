// Package shaketests contains a property test suite for extendable output functions.
package shaketests

import (
	"context"
	"fmt"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
)

func Context(t testing.TB) context.Context {
	l, err := zap.NewDevelopment()
	require.NoError(t, err)
	ctx := context.Background()
	ctx = logctx.NewContext(ctx, l)
	return ctx
}

// XOF computes outLen bytes of output for in.
type XOF = func(in []byte, outLen int) []byte

// TestXOF runs every property test against x.
// rate is the block size of x in bytes and is used to pick boundary lengths.
func TestXOF(t *testing.T, rate int, x XOF) {
	t.Run("Determinism", func(t *testing.T) {
		rng := mrand.New(mrand.NewSource(0))
		for i := 0; i < 10; i++ {
			in := randBytes(rng, rng.Intn(3*rate))
			n := rng.Intn(3 * rate)
			require.Equal(t, x(in, n), x(in, n))
		}
	})
	t.Run("Prefix", func(t *testing.T) {
		in := []byte("prefix property")
		long := x(in, 4*rate+3)
		for _, n := range []int{0, 1, 16, rate - 1, rate, rate + 1, 2 * rate, 4*rate + 3} {
			require.Equal(t, long[:n], x(in, n), "n=%d", n)
		}
	})
	t.Run("ZeroLength", func(t *testing.T) {
		out := x(nil, 0)
		require.Len(t, out, 0)
		require.Len(t, x(nil, 1), 1)
	})
	t.Run("BlockBoundary", func(t *testing.T) {
		empty := x(nil, 32)
		outs := map[string]int{}
		for _, n := range []int{rate - 1, rate, rate + 1, 2 * rate} {
			out := x(make([]byte, n), 32)
			require.NotEqual(t, empty, out, "len=%d", n)
			k := fmt.Sprintf("%x", out)
			_, exists := outs[k]
			require.False(t, exists, "len=%d collides with len=%d", n, outs[k])
			outs[k] = n
		}
	})
	t.Run("InputSensitivity", func(t *testing.T) {
		in := []byte("sensitive")
		a := x(in, 32)
		in[0] ^= 1
		require.NotEqual(t, a, x(in, 32))
	})
}

// TestOracle checks x against a reference implementation for a range of lengths.
func TestOracle(t *testing.T, rate int, x, oracle XOF) {
	rng := mrand.New(mrand.NewSource(1))
	lengths := []int{0, 1, 3, rate - 2, rate - 1, rate, rate + 1, 2*rate - 1, 2 * rate, 5*rate + 7}
	for _, inLen := range lengths {
		in := randBytes(rng, inLen)
		for _, outLen := range []int{0, 32, rate, rate + 1, 3*rate + 5} {
			require.Equal(t, oracle(in, outLen), x(in, outLen), "in=%d out=%d", inLen, outLen)
		}
	}
}

func randBytes(rng *mrand.Rand, n int) []byte {
	buf := make([]byte, n)
	rng.Read(buf)
	return buf
}
