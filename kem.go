package mlkem

import (
	"crypto/rand"
	"errors"
	"io"
)

// EncapsulationKey is the public key used to produce a ciphertext and a
// shared secret. It is opaque; use Bytes to obtain its wire form.
type EncapsulationKey struct {
	bytes [EncapsulationKeySize]byte
}

// Bytes returns the 1568-byte wire encoding of the encapsulation key.
func (ek *EncapsulationKey) Bytes() []byte {
	b := make([]byte, EncapsulationKeySize)
	copy(b, ek.bytes[:])
	return b
}

// NewEncapsulationKey parses the 1568-byte wire encoding of an
// encapsulation key.
func NewEncapsulationKey(b []byte) (*EncapsulationKey, error) {
	if len(b) != EncapsulationKeySize {
		return nil, errors.New("mlkem: invalid encapsulation key length")
	}
	ek := &EncapsulationKey{}
	copy(ek.bytes[:], b)
	return ek, nil
}

// DecapsulationKey is the secret key used to decapsulate a shared secret
// from a ciphertext. It must be kept secret.
type DecapsulationKey struct {
	dkPKE [pkeSecretKeySize]byte     // s, coefficient domain, ByteEncode_12
	ek    [EncapsulationKeySize]byte // the matching encapsulation key
	h     [32]byte                  // H(ek)
	z     [32]byte                  // implicit-rejection seed
}

// GenerateKey generates a new ML-KEM-1024 key pair, drawing 64 bytes of
// randomness (d and z, 32 bytes each) from rand.
func GenerateKey(rand io.Reader) (*DecapsulationKey, error) {
	var d, z [32]byte
	if _, err := io.ReadFull(rand, d[:]); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(rand, z[:]); err != nil {
		return nil, err
	}
	return newKeyFromSeeds(d, z), nil
}

// NewKeyFromSeed deterministically derives a key pair from a 64-byte seed
// in "d || z" form. Identical seeds always yield identical key pairs.
func NewKeyFromSeed(seed []byte) (*DecapsulationKey, error) {
	if len(seed) != 2*SeedSize {
		return nil, errors.New("mlkem: invalid seed length")
	}
	var d, z [32]byte
	copy(d[:], seed[:32])
	copy(z[:], seed[32:])
	return newKeyFromSeeds(d, z), nil
}

func newKeyFromSeeds(d, z [32]byte) *DecapsulationKey {
	ekPKE, dkPKE := pkeKeyGen(d)

	dk := &DecapsulationKey{z: z}
	copy(dk.dkPKE[:], dkPKE)
	copy(dk.ek[:], ekPKE)
	dk.h = hashH(ekPKE)
	return dk
}

// EncapsulationKey returns the public key matching dk.
func (dk *DecapsulationKey) EncapsulationKey() *EncapsulationKey {
	ek := &EncapsulationKey{}
	copy(ek.bytes[:], dk.ek[:])
	return ek
}

// Bytes returns the 3168-byte wire encoding of the decapsulation key:
// dk_pke || ek || H(ek) || z.
func (dk *DecapsulationKey) Bytes() []byte {
	b := make([]byte, DecapsulationKeySize)
	copy(b[dkPKEOffset:], dk.dkPKE[:])
	copy(b[ekOffset:], dk.ek[:])
	copy(b[hOffset:], dk.h[:])
	copy(b[zOffset:], dk.z[:])
	return b
}

// NewDecapsulationKey parses the 3168-byte wire encoding of a decapsulation
// key. As a parsing sanity check (not a new security property), it
// verifies that the embedded H(ek) field matches SHA3-256 of the embedded
// encapsulation key.
func NewDecapsulationKey(b []byte) (*DecapsulationKey, error) {
	if len(b) != DecapsulationKeySize {
		return nil, errors.New("mlkem: invalid decapsulation key length")
	}
	dk := &DecapsulationKey{}
	copy(dk.dkPKE[:], b[dkPKEOffset:ekOffset])
	copy(dk.ek[:], b[ekOffset:hOffset])
	copy(dk.h[:], b[hOffset:zOffset])
	copy(dk.z[:], b[zOffset:])

	want := hashH(dk.ek[:])
	if !ctEqual(want[:], dk.h[:]) {
		return nil, errors.New("mlkem: decapsulation key H(ek) field does not match ek")
	}
	return dk, nil
}

// Encapsulate generates a shared secret and an associated ciphertext from
// an encapsulation key, drawing 32 bytes of randomness from crypto/rand.
func Encapsulate(encapsulationKey []byte) (sharedSecret, ciphertext []byte, err error) {
	if len(encapsulationKey) != EncapsulationKeySize {
		return nil, nil, errors.New("mlkem: invalid encapsulation key length")
	}
	var m [32]byte
	if _, err := io.ReadFull(rand.Reader, m[:]); err != nil {
		return nil, nil, err
	}
	return encapsulateInternal(encapsulationKey, m)
}

// encapsulateInternal implements ML-KEM.Encaps_internal given the
// encapsulation key and an explicit message m, separated out so that
// deterministic tests can drive it directly without touching the global
// randomness source.
func encapsulateInternal(ek []byte, m [32]byte) (sharedSecret, ciphertext []byte, err error) {
	hEk := hashH(ek)
	seed := make([]byte, 0, 64)
	seed = append(seed, m[:]...)
	seed = append(seed, hEk[:]...)

	kShared, r := hashG(seed)

	var rSeed [32]byte
	copy(rSeed[:], r[:])

	c := pkeEncrypt(ek, m, rSeed)
	return kShared[:], c, nil
}

// Decapsulate recovers the shared secret associated with ciphertext under
// dk. It never reports a ciphertext as invalid: a malformed or tampered
// ciphertext yields a deterministic, pseudorandom shared secret derived
// from dk's implicit-rejection seed z instead of an error, so Decapsulate
// by itself cannot be used as a decryption-failure oracle. A length
// mismatch is rejected before any cryptographic work, since it is a
// caller programming error rather than a property of the ciphertext.
func Decapsulate(dk *DecapsulationKey, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) != CiphertextSize {
		return nil, errors.New("mlkem: invalid ciphertext length")
	}

	mPrime := pkeDecrypt(dk.dkPKE[:], ciphertext)

	seed := make([]byte, 0, 64)
	seed = append(seed, mPrime[:]...)
	seed = append(seed, dk.h[:]...)
	kPrime, rPrime := hashG(seed)

	var rSeed [32]byte
	copy(rSeed[:], rPrime[:])
	cPrime := pkeEncrypt(dk.ek[:], mPrime, rSeed)

	rejectInput := make([]byte, 0, 32+CiphertextSize)
	rejectInput = append(rejectInput, dk.z[:]...)
	rejectInput = append(rejectInput, ciphertext...)
	kReject := hashJ(rejectInput)

	mask := ctEqualMask(ciphertext, cPrime)
	out := make([]byte, SharedKeySize)
	for i := range out {
		out[i] = (kPrime[i] & mask) | (kReject[i] &^ mask)
	}
	return out, nil
}
