package shake

import (
	"encoding/hex"
	"testing"

	"github.com/cloudflare/circl/xof"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"go.keccak.dev/shake/src/shaketests"
	"go.keccak.dev/shake/src/sponge"
)

func TestKnownVectors(t *testing.T) {
	tcs := []struct {
		V        Variant
		In       string
		Expected string
	}{
		{SHAKE128, "", "7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26"},
		{SHAKE256, "", "46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762f"},
	}
	for _, tc := range tcs {
		out, err := XOF(tc.V, []byte(tc.In), 32)
		require.NoError(t, err)
		require.Equal(t, tc.Expected, hex.EncodeToString(out), "%v(%q)", tc.V, tc.In)
	}
	require.Equal(t, tcs[0].Expected, hex.EncodeToString(Sum128(nil, 32)))
	require.Equal(t, tcs[1].Expected, hex.EncodeToString(Sum256(nil, 32)))
	fixed := Sum256Fixed(nil)
	require.Equal(t, tcs[1].Expected, hex.EncodeToString(fixed[:]))
}

func TestSHAKE128(t *testing.T) {
	shaketests.TestXOF(t, Rate128, Sum128)
	t.Run("XCrypto", func(t *testing.T) {
		shaketests.TestOracle(t, Rate128, Sum128, func(in []byte, n int) []byte {
			out := make([]byte, n)
			sha3.ShakeSum128(out, in)
			return out
		})
	})
	t.Run("CIRCL", func(t *testing.T) {
		shaketests.TestOracle(t, Rate128, Sum128, circlOracle(xof.SHAKE128))
	})
}

func TestSHAKE256(t *testing.T) {
	shaketests.TestXOF(t, Rate256, Sum256)
	t.Run("XCrypto", func(t *testing.T) {
		shaketests.TestOracle(t, Rate256, Sum256, func(in []byte, n int) []byte {
			out := make([]byte, n)
			sha3.ShakeSum256(out, in)
			return out
		})
	})
	t.Run("CIRCL", func(t *testing.T) {
		shaketests.TestOracle(t, Rate256, Sum256, circlOracle(xof.SHAKE256))
	})
}

func TestRateSensitivity(t *testing.T) {
	for _, in := range []string{"", "a", "Hello, Dilithium!"} {
		require.NotEqual(t, Sum128([]byte(in), 64), Sum256([]byte(in), 64))
	}
}

func TestExactBlockDiffersFromEmpty(t *testing.T) {
	for _, v := range Variants {
		block, err := XOF(v, make([]byte, v.Rate()), 32)
		require.NoError(t, err)
		empty, err := XOF(v, nil, 32)
		require.NoError(t, err)
		require.NotEqual(t, empty, block)

		expected := make([]byte, 32)
		h := sha3.NewShake128()
		if v == SHAKE256 {
			h = sha3.NewShake256()
		}
		h.Write(make([]byte, v.Rate()))
		h.Read(expected)
		require.Equal(t, expected, block)
	}
}

func TestInvalidVariant(t *testing.T) {
	for _, bits := range []int{0, 1, 224, 384, 512} {
		s, err := New(Variant(bits))
		require.Nil(t, s)
		require.True(t, IsErrInvalidVariant(err))
		_, err = XOF(Variant(bits), []byte("x"), 32)
		require.True(t, IsErrInvalidVariant(err))
	}
}

func TestInvalidLength(t *testing.T) {
	_, err := XOF(SHAKE128, nil, -1)
	require.True(t, IsErrInvalidLength(err))
}

func TestParseVariant(t *testing.T) {
	for x, expected := range map[string]Variant{
		"128":      SHAKE128,
		"256":      SHAKE256,
		"shake128": SHAKE128,
		"SHAKE256": SHAKE256,
	} {
		v, err := ParseVariant(x)
		require.NoError(t, err)
		require.Equal(t, expected, v)
	}
	_, err := ParseVariant("512")
	require.True(t, IsErrInvalidVariant(err))
	_, err = ParseVariant("sha3")
	require.Error(t, err)
	require.Equal(t, "SHAKE128", SHAKE128.String())
}

func TestSchemeChainedAbsorb(t *testing.T) {
	sch := Scheme{Variant: SHAKE256}
	s, err := sch.New()
	require.NoError(t, err)
	require.NoError(t, sch.Absorb(s, []byte("Hello, ")))
	require.NoError(t, sch.Absorb(s, []byte("Dilithium!")))
	out := make([]byte, 64)
	require.NoError(t, sch.Expand(s, out[:10]))
	require.NoError(t, sch.Expand(s, out[10:]))
	require.Equal(t, Sum256([]byte("Hello, Dilithium!"), 64), out)

	require.True(t, sponge.IsErrInvalidTransition(sch.Absorb(s, []byte("late"))))
}

func TestDeriveKey256(t *testing.T) {
	sch := Scheme{Variant: SHAKE256}
	base := [32]byte{1, 2, 3}
	a := make([]byte, 48)
	b := make([]byte, 48)
	require.NoError(t, sch.DeriveKey256(a, &base, []byte("info-a")))
	require.NoError(t, sch.DeriveKey256(b, &base, []byte("info-b")))
	require.NotEqual(t, a, b)
	require.Equal(t, Sum256(append(base[:], "info-a"...), 48), a)
}

func TestSumAll(t *testing.T) {
	ctx := shaketests.Context(t)
	inputs := [][]byte{nil, []byte("a"), make([]byte, Rate128), []byte("Hello, Dilithium!")}
	outs, err := SumAll(ctx, SHAKE128, inputs, 40)
	require.NoError(t, err)
	require.Len(t, outs, len(inputs))
	for i := range inputs {
		require.Equal(t, Sum128(inputs[i], 40), outs[i])
	}

	_, err = SumAll(ctx, Variant(7), inputs, 40)
	require.True(t, IsErrInvalidVariant(err))
}

func circlOracle(id xof.ID) shaketests.XOF {
	return func(in []byte, n int) []byte {
		h := id.New()
		_, err := h.Write(in)
		if err != nil {
			panic(err)
		}
		out := make([]byte, n)
		if _, err := h.Read(out); err != nil {
			panic(err)
		}
		return out
	}
}
