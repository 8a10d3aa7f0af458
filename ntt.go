package mlkem

// poly is a polynomial in coefficient domain: 256 coefficients of
// R_q = Z_q[X]/(X^256 + 1), indexed 0..255.
type poly [n]fieldElement

// nttPoly is a polynomial in NTT domain. It has the same backing shape as
// poly but a distinct type, so the two domains cannot be mixed without an
// explicit call to ntt or inverseNTT; the compiler rejects the mistake
// rather than producing silently wrong output.
type nttPoly [n]fieldElement

// zetas[k] = 17^bitrev7(k) mod q, for k = 0..127. zetas[0] is unused by the
// transform (FIPS 203 indexes the twiddle counter starting at 1) but is
// computed for completeness. Generated at package init from the primitive
// 256th root of unity ζ = 17 rather than transcribed as a literal table,
// so correctness follows from the definition instead of from copying 128
// numbers by hand.
var zetas = computeZetas()

// gammas[i] = 17^(2*bitrev7(i)+1) mod q, for i = 0..127. These are the
// per-pair twiddles used by the base-case multiplication that implements
// pointwise multiplication of NTT-domain polynomials.
var gammas = computeGammas()

func bitrev7(x uint8) uint8 {
	var r uint8
	for i := 0; i < 7; i++ {
		r |= ((x >> i) & 1) << (6 - i)
	}
	return r
}

func computeZetas() [n / 2]fieldElement {
	var z [n / 2]fieldElement
	for i := 0; i < n/2; i++ {
		z[i] = fieldElement(modPow(17, uint32(bitrev7(uint8(i))), q))
	}
	return z
}

func computeGammas() [n / 2]fieldElement {
	var g [n / 2]fieldElement
	for i := 0; i < n/2; i++ {
		exp := 2*uint32(bitrev7(uint8(i))) + 1
		g[i] = fieldElement(modPow(17, exp, q))
	}
	return g
}

// ntt performs the forward Number-Theoretic Transform in place,
// implementing the FIPS 203 NTT algorithm: 7 Cooley-Tukey layers with
// butterfly length 128, 64, ..., 2.
func ntt(f poly) nttPoly {
	k := 1
	for length := 128; length >= 2; length /= 2 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := fieldMul(zeta, f[j+length])
				f[j+length] = fieldSub(f[j], t)
				f[j] = fieldAdd(f[j], t)
			}
		}
	}
	return nttPoly(f)
}

// invN is n^-1 mod q = 3303, the normalization factor applied after the
// inverse transform.
const invN = 3303

// inverseNTT performs the inverse Number-Theoretic Transform in place,
// implementing the FIPS 203 NTT^-1 algorithm: 7 Gentleman-Sande layers with
// butterfly length 2, 4, ..., 128, consuming the same twiddle table as ntt
// but in reverse order, followed by scaling by n^-1.
func inverseNTT(f nttPoly) poly {
	k := 127
	for length := 2; length <= 128; length *= 2 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := f[j]
				f[j] = fieldAdd(t, f[j+length])
				f[j+length] = fieldMul(zeta, fieldSub(f[j+length], t))
			}
		}
	}
	for i := range f {
		f[i] = fieldMul(f[i], invN)
	}
	return poly(f)
}

// baseCaseMultiply computes the NTT-domain pointwise product of a and b: for
// each of the 128 degree-2 factors of R_q, it multiplies the corresponding
// pair of coefficients modulo (X^2 - gammas[i]).
func baseCaseMultiply(a, b nttPoly) nttPoly {
	var c nttPoly
	for i := 0; i < n/2; i++ {
		a0, a1 := a[2*i], a[2*i+1]
		b0, b1 := b[2*i], b[2*i+1]
		gamma := gammas[i]
		c[2*i] = fieldAdd(fieldMul(a0, b0), fieldMul(gamma, fieldMul(a1, b1)))
		c[2*i+1] = fieldAdd(fieldMul(a0, b1), fieldMul(a1, b0))
	}
	return c
}
