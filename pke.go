package mlkem

// This file implements the K-PKE inner public-key encryption scheme
// (FIPS 203 Algorithms 13-15). It is not exported: the public surface is
// the ML-KEM wrapper in kem.go, which is the only caller of these three
// functions.

// pkeKeyGen implements K-PKE.KeyGen. d must be exactly 32 bytes. It returns
// the encoded public key ek_pke = ByteEncode_12(t̂) || ρ (1568 bytes) and
// the encoded secret key dk_pke = ByteEncode_12(s) (1536 bytes), with s
// stored in coefficient domain as required by the secret-key layout
// invariant.
func pkeKeyGen(d [32]byte) (ekPKE, dkPKE []byte) {
	gSeed := make([]byte, 33)
	copy(gSeed, d[:])
	gSeed[32] = byte(k)
	rho, sigma := hashG(gSeed)

	a := sampleMatrix(rho[:])

	var s, e vector
	nonce := byte(0)
	for i := 0; i < k; i++ {
		s[i] = samplePolyCBD(prfCBD(sigma[:], nonce, eta1), eta1)
		nonce++
	}
	for i := 0; i < k; i++ {
		e[i] = samplePolyCBD(prfCBD(sigma[:], nonce, eta1), eta1)
		nonce++
	}

	sHat := nttOf(s)
	eHat := nttOf(e)
	tHat := vecAdd(matVec(a, sHat), eHat)

	// t̂ is kept in NTT domain per the public-key layout invariant.
	ekPKE = append(byteEncodeNTTVector(tHat, 12), rho[:]...)
	dkPKE = byteEncodeVector(s, 12)
	return ekPKE, dkPKE
}

// byteEncodeNTTVector encodes an NTT-domain vector the same way
// byteEncodeVector encodes a coefficient-domain one; the bit layout does
// not depend on which domain the values came from, only on their numeric
// range, so the same per-polynomial packer is reused via a domain cast.
func byteEncodeNTTVector(v nttVector, d int) []byte {
	var cv vector
	for i := range v {
		cv[i] = poly(v[i])
	}
	return byteEncodeVector(cv, d)
}

func byteDecodeNTTVector(b []byte, d int) nttVector {
	cv := byteDecodeVector(b, d)
	var v nttVector
	for i := range cv {
		v[i] = nttPoly(cv[i])
	}
	return v
}

// pkeEncrypt implements K-PKE.Encrypt. ekPKE is the 1568-byte encoded
// public key, m is the 32-byte message, and rSeed is the 32-byte
// randomness (called r in FIPS 203, renamed here to avoid clashing with
// the sampled vector rVec). Returns the 1568-byte ciphertext c1 || c2.
func pkeEncrypt(ekPKE []byte, m [32]byte, rSeed [32]byte) []byte {
	tHat := byteDecodeNTTVector(ekPKE[:384*k], 12)
	rho := ekPKE[384*k:]

	a := sampleMatrix(rho)

	var rVec, e1 vector
	nonce := byte(0)
	for i := 0; i < k; i++ {
		rVec[i] = samplePolyCBD(prfCBD(rSeed[:], nonce, eta1), eta1)
		nonce++
	}
	for i := 0; i < k; i++ {
		e1[i] = samplePolyCBD(prfCBD(rSeed[:], nonce, eta2), eta2)
		nonce++
	}
	e2 := samplePolyCBD(prfCBD(rSeed[:], nonce, eta2), eta2)

	rHat := nttOf(rVec)

	u := vecAdd(inverseNTTOf(matVecTranspose(a, rHat)), e1)

	mu := encodeMessage(m)
	v := polyAdd(polyAdd(inverseNTT(dot(tHat, rHat)), e2), mu)

	c1 := byteEncodeVector(compressVector(u, du), du)
	c2 := byteEncode(compressPoly(v, dv), dv)

	c := make([]byte, 0, CiphertextSize)
	c = append(c, c1...)
	c = append(c, c2...)
	return c
}

// pkeDecrypt implements K-PKE.Decrypt. dkPKE is the 1536-byte encoded
// secret key and c is the 1568-byte ciphertext. Returns the 32-byte
// recovered message.
func pkeDecrypt(dkPKE []byte, c []byte) [32]byte {
	c1Size := 32 * du * k
	c1, c2 := c[:c1Size], c[c1Size:]

	uCompressed := byteDecodeVector(c1, du)
	u := decompressVector(uCompressed, du)

	vCompressed := byteDecode(c2, dv)
	v := decompressPoly(vCompressed, dv)

	s := byteDecodeVector(dkPKE, 12)
	sHat := nttOf(s)

	uHat := nttOf(u)
	w := polySub(v, inverseNTT(dot(sHat, uHat)))

	return decodeMessage(w)
}
