package mlkem

import "testing"

func TestReduceRange(t *testing.T) {
	inputs := []int32{
		0, 1, -1, q, -q, q - 1, -(q - 1), 2 * q, -2 * q,
		1 << 20, -(1 << 20), 1 << 26, -(1 << 26),
		(q - 1) * (q - 1), -(q - 1) * (q - 1),
	}
	for _, x := range inputs {
		r := reduce(x)
		if int32(r) < 0 || int32(r) >= q {
			t.Errorf("reduce(%d) = %d, want value in [0, %d)", x, r, q)
		}
		// r must be congruent to x mod q.
		diff := (int64(x) - int64(r)) % q
		if diff < 0 {
			diff += q
		}
		if diff != 0 {
			t.Errorf("reduce(%d) = %d is not congruent to x mod q", x, r)
		}
	}
}

func TestFieldAddSub(t *testing.T) {
	for a := fieldElement(0); a < q; a += 37 {
		for b := fieldElement(0); b < q; b += 53 {
			sum := fieldAdd(a, b)
			if int(sum) != (int(a)+int(b))%q {
				t.Fatalf("fieldAdd(%d,%d) = %d, want %d", a, b, sum, (int(a)+int(b))%q)
			}
			diff := fieldSub(a, b)
			want := ((int(a)-int(b))%q + q) % q
			if int(diff) != want {
				t.Fatalf("fieldSub(%d,%d) = %d, want %d", a, b, diff, want)
			}
		}
	}
}

func TestFieldMul(t *testing.T) {
	for a := fieldElement(0); a < q; a += 11 {
		for b := fieldElement(0); b < q; b += 13 {
			got := fieldMul(a, b)
			want := fieldElement((int(a) * int(b)) % q)
			if got != want {
				t.Fatalf("fieldMul(%d,%d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestFieldNeg(t *testing.T) {
	for a := fieldElement(0); a < q; a++ {
		if fieldAdd(a, fieldNeg(a)) != 0 {
			t.Fatalf("fieldNeg(%d) is not an additive inverse", a)
		}
	}
}

func TestModPow(t *testing.T) {
	// 17 is claimed to be a primitive 256th root of unity mod q: its
	// order must be exactly 256, so 17^256 == 1 and 17^128 == q-1 (the
	// unique square root of 1 other than 1 itself).
	if modPow(17, 256, q) != 1 {
		t.Fatalf("17^256 mod q != 1")
	}
	if modPow(17, 128, q) != q-1 {
		t.Fatalf("17^128 mod q != q-1, order of 17 is not 256")
	}
	for i := uint32(1); i < 256; i++ {
		if modPow(17, i, q) == 1 {
			t.Fatalf("17^%d mod q == 1, order of 17 divides %d, not exactly 256", i, i)
		}
	}
}
