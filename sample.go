package mlkem

import "golang.org/x/crypto/sha3"

// samplePolyCBD draws a polynomial from the centered binomial distribution
// of parameter eta (2 or 3) from exactly 64*eta bytes of input. For each
// coefficient i it reads 2*eta bits starting at bit 2*eta*i, splits them
// into two eta-bit halves, and subtracts their popcounts. The result is
// constant-time with respect to the input bytes: every coefficient is
// produced by the same fixed sequence of bit extractions and subtractions,
// with no data-dependent branch.
func samplePolyCBD(buf []byte, eta int) poly {
	var p poly
	for i := 0; i < n; i++ {
		a := sumBits(buf, 2*eta*i, eta)
		b := sumBits(buf, 2*eta*i+eta, eta)
		// a - b is in [-eta, eta]; add q via a sign mask, not a branch.
		r := int32(a) - int32(b)
		r += (r >> 31) & q
		p[i] = fieldElement(r)
	}
	return p
}

// sumBits counts the set bits among count consecutive bits of buf starting
// at bit offset start, reading bits little-endian within each byte (bit 0
// of buf[0] is the first bit of the stream).
func sumBits(buf []byte, start, count int) int {
	sum := 0
	for i := 0; i < count; i++ {
		bit := start + i
		byteIdx := bit / 8
		bitIdx := uint(bit % 8)
		sum += int((buf[byteIdx] >> bitIdx) & 1)
	}
	return sum
}

// sampleNTT performs rejection sampling of a uniform NTT-domain polynomial
// from an open SHAKE-128 stream, implementing FIPS 203's SampleNTT. Each
// group of 3 bytes yields two 12-bit candidates (the low nibble of the
// middle byte belongs to the first candidate, the high nibble to the
// second); a candidate is accepted iff it is less than q. The loop is
// variable-time, but it depends only on the bytes of the stream, which in
// every caller of this function are derived solely from the public seed ρ
// (never from secret material), so there is no secret-dependent timing
// leak.
func sampleNTT(xof sha3.ShakeHash) nttPoly {
	var a nttPoly
	var buf [168]byte // SHAKE-128 rate
	j := 0
	for j < n {
		xof.Read(buf[:])
		for i := 0; i+3 <= len(buf) && j < n; i += 3 {
			d1 := uint16(buf[i]) | uint16(buf[i+1]&0x0f)<<8
			d2 := uint16(buf[i+1]>>4) | uint16(buf[i+2])<<4
			if d1 < q {
				a[j] = fieldElement(d1)
				j++
			}
			if j < n && d2 < q {
				a[j] = fieldElement(d2)
				j++
			}
		}
	}
	return a
}

// sampleMatrix regenerates Â from the public seed ρ: Â[i][j] =
// SampleNTT(XOF(ρ, j, i)), using the (column, row) byte order FIPS 203
// requires. Called identically by K-PKE.KeyGen and K-PKE.Encrypt so both
// reproduce the same matrix.
func sampleMatrix(rho []byte) matrix {
	var a matrix
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			a[i][j] = sampleNTT(xofA(rho, byte(j), byte(i)))
		}
	}
	return a
}
