// Package mlkem implements ML-KEM-1024, the post-quantum key-encapsulation
// mechanism standardized in [NIST FIPS 203].
//
// ML-KEM-1024 is the highest-security parameter set of the module-lattice
// KEM formerly known as Kyber. Only that parameter set is provided; there
// is no support for ML-KEM-512 or ML-KEM-768 in this package.
//
// Basic usage:
//
//	dk, err := mlkem.GenerateKey(rand.Reader)
//	if err != nil {
//	    // handle error
//	}
//	ek := dk.EncapsulationKey().Bytes()
//
//	sharedSecret, ciphertext, err := mlkem.Encapsulate(ek)
//	if err != nil {
//	    // handle error
//	}
//
//	sharedSecret2, err := mlkem.Decapsulate(dk, ciphertext)
//	if err != nil {
//	    // handle error
//	}
//	// sharedSecret == sharedSecret2
//
// [NIST FIPS 203]: https://doi.org/10.6028/NIST.FIPS.203
package mlkem

// Global ML-KEM-1024 constants from FIPS 203.
const (
	// n is the number of coefficients in a polynomial.
	n = 256

	// q is the modulus: q = 3329.
	q = 3329

	// k is the module rank. ML-KEM-1024 fixes k = 4; this package
	// implements no other parameter set.
	k = 4

	// eta1 is the CBD parameter used for the secret and error vectors in
	// K-PKE.KeyGen and for the r vector in K-PKE.Encrypt.
	eta1 = 2

	// eta2 is the CBD parameter used for e1 and e2 in K-PKE.Encrypt.
	eta2 = 2

	// du, dv are the compression widths for the ciphertext components
	// u and v. These are the ML-KEM-1024 values; do not confuse with the
	// ML-KEM-768 values (du=10, dv=4).
	du = 11
	dv = 5

	// SeedSize is the size in bytes of the random seeds d and z consumed
	// by GenerateKey, and of the seed m consumed by Encapsulate.
	SeedSize = 32

	// SharedKeySize is the size in bytes of the shared secret produced by
	// Encapsulate and Decapsulate.
	SharedKeySize = 32

	// EncapsulationKeySize is the size in bytes of the encapsulation
	// (public) key.
	EncapsulationKeySize = 384*k + 32 // 1568

	// DecapsulationKeySize is the size in bytes of the decapsulation
	// (secret) key.
	DecapsulationKeySize = 384*k + EncapsulationKeySize + 32 + 32 // 3168

	// CiphertextSize is the size in bytes of a ciphertext.
	CiphertextSize = 32*du*k + 32*dv // 1568

	// pkePublicKeySize and pkeSecretKeySize are the sizes of the inner
	// K-PKE key material, encoded before the ML-KEM wrapper adds ek, H(ek)
	// and z to form the decapsulation key.
	pkePublicKeySize = 384*k + 32 // 1568, same shape as EncapsulationKeySize
	pkeSecretKeySize = 384 * k    // 1536

	// dkPKEOffset, ekOffset, hOffset, zOffset are the byte offsets of the
	// four fields packed into a decapsulation key: dkPKE || ek || H(ek) || z.
	dkPKEOffset = 0
	ekOffset    = pkeSecretKeySize             // 1536
	hOffset     = ekOffset + pkePublicKeySize  // 3104
	zOffset     = hOffset + 32                 // 3136
)
