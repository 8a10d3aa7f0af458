package mlkem

import "golang.org/x/crypto/sha3"

// G is SHA3-512(x), returning 64 bytes usually split into two 32-byte
// halves (ρ, σ).
func hashG(x []byte) (rho, sigma [32]byte) {
	h := sha3.Sum512(x)
	copy(rho[:], h[:32])
	copy(sigma[:], h[32:])
	return rho, sigma
}

// H is SHA3-256(x), returning 32 bytes.
func hashH(x []byte) [32]byte {
	return sha3.Sum256(x)
}

// J is SHAKE-256(x) with a 32-byte output, used as the implicit-rejection
// PRF.
func hashJ(x []byte) [32]byte {
	h := sha3.NewShake256()
	h.Write(x)
	var out [32]byte
	h.Read(out[:])
	return out
}

// prfCBD is SHAKE-256(sigma || nonce), squeezing 64*eta bytes for use by
// SamplePolyCBD.
func prfCBD(sigma []byte, nonce byte, eta int) []byte {
	h := sha3.NewShake256()
	h.Write(sigma)
	h.Write([]byte{nonce})
	out := make([]byte, 64*eta)
	h.Read(out)
	return out
}

// xofA opens a SHAKE-128 stream seeded with ρ || byte(j) || byte(i), the
// framing FIPS 203 uses to sample matrix entry A[i][j]: column index j is
// fed before row index i. Both K-PKE.KeyGen and K-PKE.Encrypt must call
// this with the same (j, i) order for the regenerated matrix to match.
func xofA(rho []byte, j, i byte) sha3.ShakeHash {
	h := sha3.NewShake128()
	h.Write(rho)
	h.Write([]byte{j, i})
	return h
}
