package keygen

import (
	"crypto"
	"encoding/binary"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/cloudflare/circl/sign"

	"go.keccak.dev/shake/src/shake"
)

// HybridSeedSize is the seed size of every HybridScheme.
// Component seeds are expanded from it with SHAKE256.
const HybridSeedSize = 32

// HybridScheme signs with every one of a set of schemes.
// A signature is the concatenation of the component signatures, and is valid only if all of them are.
type HybridScheme []sign.Scheme

var _ sign.Scheme = HybridScheme{}

func (sch HybridScheme) Name() string {
	names := make([]string, len(sch))
	for i := range sch {
		names[i] = sch[i].Name()
	}
	return strings.Join(names, "+")
}

func (sch HybridScheme) GenerateKey() (sign.PublicKey, sign.PrivateKey, error) {
	pub := HybridPublicKey{Schemes: sch, Keys: make([]sign.PublicKey, len(sch))}
	priv := HybridPrivateKey{Schemes: sch, Keys: make([]sign.PrivateKey, len(sch))}
	for i := range sch {
		var err error
		pub.Keys[i], priv.Keys[i], err = sch[i].GenerateKey()
		if err != nil {
			return nil, nil, err
		}
	}
	return pub, priv, nil
}

func (sch HybridScheme) Sign(sk sign.PrivateKey, message []byte, opts *sign.SignatureOpts) []byte {
	priv := sk.(HybridPrivateKey)
	var sig []byte
	for i := range sch {
		sig = append(sig, sch[i].Sign(priv.Keys[i], message, opts)...)
	}
	return sig
}

func (sch HybridScheme) Verify(pk sign.PublicKey, message []byte, sig []byte, opts *sign.SignatureOpts) bool {
	if len(sig) != sch.SignatureSize() {
		return false
	}
	pub, ok := pk.(HybridPublicKey)
	if !ok || len(pub.Keys) != len(sch) {
		return false
	}
	var offset int
	for i := range sch {
		end := offset + sch[i].SignatureSize()
		if !sch[i].Verify(pub.Keys[i], message, sig[offset:end], opts) {
			return false
		}
		offset = end
	}
	return true
}

// DeriveKey expands seed into one seed per component with SHAKE256.
//
// Panics if seed is not of length SeedSize().
func (sch HybridScheme) DeriveKey(seed []byte) (sign.PublicKey, sign.PrivateKey) {
	if len(seed) != HybridSeedSize {
		panic(fmt.Sprintf("hybrid: wrong seed size %d", len(seed)))
	}
	pub := HybridPublicKey{Schemes: sch, Keys: make([]sign.PublicKey, len(sch))}
	priv := HybridPrivateKey{Schemes: sch, Keys: make([]sign.PrivateKey, len(sch))}
	for i := range sch {
		in := binary.LittleEndian.AppendUint16(nil, uint16(i))
		in = append(in, seed...)
		pub.Keys[i], priv.Keys[i] = sch[i].DeriveKey(shake.Sum256(in, sch[i].SeedSize()))
	}
	return pub, priv
}

func (sch HybridScheme) UnmarshalBinaryPublicKey(data []byte) (sign.PublicKey, error) {
	if len(data) != sch.PublicKeySize() {
		return nil, fmt.Errorf("wrong size for public key. HAVE:%d WANT:%d", len(data), sch.PublicKeySize())
	}
	pub := HybridPublicKey{Schemes: sch}
	var offset int
	for i := range sch {
		end := offset + sch[i].PublicKeySize()
		k, err := sch[i].UnmarshalBinaryPublicKey(data[offset:end])
		if err != nil {
			return nil, err
		}
		pub.Keys = append(pub.Keys, k)
		offset = end
	}
	return pub, nil
}

func (sch HybridScheme) UnmarshalBinaryPrivateKey(data []byte) (sign.PrivateKey, error) {
	if len(data) != sch.PrivateKeySize() {
		return nil, fmt.Errorf("wrong size for private key. HAVE:%d WANT:%d", len(data), sch.PrivateKeySize())
	}
	priv := HybridPrivateKey{Schemes: sch}
	var offset int
	for i := range sch {
		end := offset + sch[i].PrivateKeySize()
		k, err := sch[i].UnmarshalBinaryPrivateKey(data[offset:end])
		if err != nil {
			return nil, err
		}
		priv.Keys = append(priv.Keys, k)
		offset = end
	}
	return priv, nil
}

func (sch HybridScheme) PublicKeySize() (ret int) {
	for i := range sch {
		ret += sch[i].PublicKeySize()
	}
	return ret
}

func (sch HybridScheme) PrivateKeySize() (ret int) {
	for i := range sch {
		ret += sch[i].PrivateKeySize()
	}
	return ret
}

func (sch HybridScheme) SignatureSize() (ret int) {
	for i := range sch {
		ret += sch[i].SignatureSize()
	}
	return ret
}

func (sch HybridScheme) SeedSize() int {
	return HybridSeedSize
}

func (sch HybridScheme) SupportsContext() bool {
	for i := range sch {
		if !sch[i].SupportsContext() {
			return false
		}
	}
	return true
}

type HybridPublicKey struct {
	Schemes HybridScheme
	Keys    []sign.PublicKey
}

func (pk HybridPublicKey) Scheme() sign.Scheme {
	return pk.Schemes
}

func (pk HybridPublicKey) Equal(x crypto.PublicKey) bool {
	pk2, ok := x.(HybridPublicKey)
	if !ok {
		return false
	}
	return slices.EqualFunc(pk.Keys, pk2.Keys, func(a, b sign.PublicKey) bool {
		return a.Equal(b)
	})
}

func (pk HybridPublicKey) MarshalBinary() ([]byte, error) {
	return marshalAll(pk.Keys)
}

type HybridPrivateKey struct {
	Schemes HybridScheme
	Keys    []sign.PrivateKey
}

func (sk HybridPrivateKey) Scheme() sign.Scheme {
	return sk.Schemes
}

func (sk HybridPrivateKey) Public() crypto.PublicKey {
	pub := HybridPublicKey{Schemes: sk.Schemes, Keys: make([]sign.PublicKey, len(sk.Keys))}
	for i := range sk.Keys {
		pub.Keys[i] = sk.Keys[i].Public().(sign.PublicKey)
	}
	return pub
}

func (sk HybridPrivateKey) Sign(r io.Reader, msg []byte, opts crypto.SignerOpts) ([]byte, error) {
	var ret []byte
	for i := range sk.Keys {
		sig, err := sk.Keys[i].Sign(r, msg, opts)
		if err != nil {
			return nil, err
		}
		ret = append(ret, sig...)
	}
	return ret, nil
}

func (sk HybridPrivateKey) Equal(x crypto.PrivateKey) bool {
	sk2, ok := x.(HybridPrivateKey)
	if !ok {
		return false
	}
	return slices.EqualFunc(sk.Keys, sk2.Keys, func(a, b sign.PrivateKey) bool {
		return a.Equal(b)
	})
}

func (sk HybridPrivateKey) MarshalBinary() ([]byte, error) {
	return marshalAll(sk.Keys)
}

func marshalAll[K interface{ MarshalBinary() ([]byte, error) }](keys []K) ([]byte, error) {
	var ret []byte
	for i := range keys {
		data, err := keys[i].MarshalBinary()
		if err != nil {
			return nil, err
		}
		ret = append(ret, data...)
	}
	return ret, nil
}
