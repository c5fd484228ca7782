package block

// gfMul multiplies two bytes in GF(2^8) modulo the AES reducing
// polynomial (0x11B), using the standard carry-and-reduce loop.
func gfMul(a, b byte) byte {
	var result byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			result ^= a
		}
		hiBitSet := a&0x80 != 0
		a <<= 1
		if hiBitSet {
			a ^= 0x1B
		}
		b >>= 1
	}
	return result
}

// gfMulRegister multiplies every byte of reg by the same scalar in GF(2^8).
func gfMulRegister(reg *Register, scalar byte) Register {
	var result Register
	for i, b := range reg {
		result[i] = gfMul(b, scalar)
	}
	return result
}
