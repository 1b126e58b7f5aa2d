package keygen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlgos(t *testing.T) {
	require.Equal(t, []string{Algo_Dilithium2, Algo_Ed25519, Algo_Hybrid}, DefaultDeriver.Algos())
}

func TestDeriveKey(t *testing.T) {
	d := DefaultDeriver
	for _, algo := range d.Algos() {
		algo := algo
		t.Run(algo, func(t *testing.T) {
			t.Parallel()
			pub1, priv1, err := d.DeriveKey(algo, []byte("passphrase"))
			require.NoError(t, err)
			pub2, _, err := d.DeriveKey(algo, []byte("passphrase"))
			require.NoError(t, err)
			pub3, _, err := d.DeriveKey(algo, []byte("other passphrase"))
			require.NoError(t, err)
			require.True(t, pub1.Equal(pub2))
			require.False(t, pub1.Equal(pub3))

			msg := []byte("test data")
			sig := d.Sign(priv1, msg)
			require.True(t, d.Verify(pub1, msg, sig))
			require.False(t, d.Verify(pub3, msg, sig))
		})
	}
}

func TestDeriveSeedPerAlgo(t *testing.T) {
	d := DefaultDeriver
	a, err := d.DeriveSeed(Algo_Ed25519, []byte("x"))
	require.NoError(t, err)
	b, err := d.DeriveSeed(Algo_Dilithium2, []byte("x"))
	require.NoError(t, err)
	require.NotEqual(t, a, b)
	require.Len(t, a, d.Schemes[Algo_Ed25519].SeedSize())
}

func TestUnknownAlgo(t *testing.T) {
	_, _, err := DeriveKey("rsa", []byte("x"))
	require.True(t, IsErrUnknownAlgo(err))
	_, err = DefaultDeriver.ParsePublicKey(writeTag(nil, "rsa"))
	require.True(t, IsErrUnknownAlgo(err))
}

func TestMarshalPublicKey(t *testing.T) {
	d := DefaultDeriver
	for _, algo := range d.Algos() {
		pub, _, err := d.DeriveKey(algo, []byte("marshal"))
		require.NoError(t, err)
		data, err := d.MarshalPublicKey(nil, pub)
		require.NoError(t, err)
		pub2, err := d.ParsePublicKey(data)
		require.NoError(t, err)
		require.True(t, pub.Equal(pub2))

		fp1, err := d.Fingerprint(pub)
		require.NoError(t, err)
		fp2, err := d.Fingerprint(pub2)
		require.NoError(t, err)
		require.Equal(t, fp1, fp2)
	}
	_, err := d.ParsePublicKey([]byte{1})
	require.Error(t, err)
}
