package mlkem

// ctEqual reports whether a and b (assumed equal length, as both are
// fixed-size 32-byte hashes in its caller) are byte-for-byte equal, without
// branching on the comparison result: every byte pair is XORed into a
// running accumulator, and only the final zero-check of that accumulator
// is data-dependent. The accumulator is a known-distribution aggregate of
// the compared bytes, not a secret byte itself.
func ctEqual(a, b []byte) bool {
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}

// ctEqualMask returns 0xff if a and b are byte-for-byte equal, 0x00
// otherwise, computed without any data-dependent branch: the XOR
// accumulator is widened to int16, decremented, and its sign bit is
// spread across the byte by an arithmetic shift.
func ctEqualMask(a, b []byte) byte {
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	// isZero(diff): if diff == 0, diff-1 is -1 (0xffff) and the arithmetic
	// shift yields all ones; for diff in [1, 255] it is non-negative and
	// the shift yields zero.
	v := int16(diff) - 1
	return byte(v >> 15)
}
