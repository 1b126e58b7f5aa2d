// Package keygen derives signing keys deterministically from a passphrase.
// SHAKE256 expands the passphrase into the seed each scheme expects.
package keygen

import (
	"encoding/binary"
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/cloudflare/circl/sign"
	dilithium2 "github.com/cloudflare/circl/sign/dilithium/mode2"
	"github.com/cloudflare/circl/sign/ed25519"
	"golang.org/x/exp/maps"

	"go.keccak.dev/shake/src/shake"
)

const (
	Algo_Ed25519    = "ed25519"
	Algo_Dilithium2 = "dilithium2"
	Algo_Hybrid     = Algo_Ed25519 + "+" + Algo_Dilithium2
)

// seedLabel separates seed derivation from every other use of SHAKE256 on a passphrase.
const seedLabel = "shake/keygen/seed"

type ErrUnknownAlgo struct {
	Algo string
}

func (e ErrUnknownAlgo) Error() string {
	return fmt.Sprintf("unknown algorithm %q", e.Algo)
}

func IsErrUnknownAlgo(err error) bool {
	return errors.As(err, &ErrUnknownAlgo{})
}

var DefaultDeriver = Deriver{
	Schemes: map[string]sign.Scheme{
		Algo_Ed25519:    ed25519.Scheme(),
		Algo_Dilithium2: dilithium2.Scheme(),
		Algo_Hybrid:     HybridScheme{ed25519.Scheme(), dilithium2.Scheme()},
	},
}

// DeriveKey calls DeriveKey on the DefaultDeriver
func DeriveKey(algo string, passphrase []byte) (sign.PublicKey, sign.PrivateKey, error) {
	return DefaultDeriver.DeriveKey(algo, passphrase)
}

// Deriver holds a set of named signing schemes.
type Deriver struct {
	Schemes map[string]sign.Scheme
}

// Algos returns the sorted names of the schemes.
func (d *Deriver) Algos() []string {
	names := maps.Keys(d.Schemes)
	slices.Sort(names)
	return names
}

// DeriveSeed returns SeedSize bytes for algo, expanded from passphrase with SHAKE256.
func (d *Deriver) DeriveSeed(algo string, passphrase []byte) ([]byte, error) {
	sch, found := d.Schemes[algo]
	if !found {
		return nil, ErrUnknownAlgo{Algo: algo}
	}
	var in []byte
	in = writeTag(in, seedLabel)
	in = writeTag(in, algo)
	in = append(in, passphrase...)
	return shake.XOF(shake.SHAKE256, in, sch.SeedSize())
}

func (d *Deriver) DeriveKey(algo string, passphrase []byte) (sign.PublicKey, sign.PrivateKey, error) {
	seed, err := d.DeriveSeed(algo, passphrase)
	if err != nil {
		return nil, nil, err
	}
	pub, priv := d.Schemes[algo].DeriveKey(seed)
	return pub, priv, nil
}

// MarshalPublicKey appends a tagged public key to out
func (d *Deriver) MarshalPublicKey(out []byte, pubKey sign.PublicKey) ([]byte, error) {
	tag, err := d.findTag(pubKey.Scheme())
	if err != nil {
		return nil, err
	}
	out = writeTag(out, tag)
	data, err := pubKey.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(out, data...), nil
}

func (d *Deriver) ParsePublicKey(data []byte) (sign.PublicKey, error) {
	tag, data, err := readTag(data)
	if err != nil {
		return nil, err
	}
	sch, found := d.Schemes[tag]
	if !found {
		return nil, ErrUnknownAlgo{Algo: tag}
	}
	return sch.UnmarshalBinaryPublicKey(data)
}

// Fingerprint is 256 bits of SHAKE256 output over the tagged public key.
func (d *Deriver) Fingerprint(pubKey sign.PublicKey) ([32]byte, error) {
	data, err := d.MarshalPublicKey(nil, pubKey)
	if err != nil {
		return [32]byte{}, err
	}
	return shake.Sum256Fixed(data), nil
}

// Sign signs a 64 byte SHAKE256 digest of msg.
func (d *Deriver) Sign(privateKey sign.PrivateKey, msg []byte) []byte {
	input := shake.Sum256(msg, 64)
	return privateKey.Scheme().Sign(privateKey, input, nil)
}

func (d *Deriver) Verify(pubKey sign.PublicKey, msg, sig []byte) bool {
	input := shake.Sum256(msg, 64)
	return pubKey.Scheme().Verify(pubKey, input, sig, nil)
}

func (d *Deriver) findTag(target sign.Scheme) (string, error) {
	for tag, sch := range d.Schemes {
		if reflect.DeepEqual(sch, target) {
			return tag, nil
		}
	}
	return "", fmt.Errorf("no scheme found for %v :: %T", target, target)
}

func writeTag(out []byte, tag string) []byte {
	out = binary.LittleEndian.AppendUint16(out, uint16(len(tag)))
	return append(out, tag...)
}

func readTag(data []byte) (string, []byte, error) {
	if len(data) < 2 {
		return "", nil, fmt.Errorf("too short to be a key")
	}
	tagLen := binary.LittleEndian.Uint16(data[:2])
	data = data[2:]
	if len(data) < int(tagLen) {
		return "", nil, fmt.Errorf("too short to contain type tag of len %d", tagLen)
	}
	return string(data[:tagLen]), data[tagLen:], nil
}
