package sm4

import "encoding/binary"

// keySchedule expands a 16-byte key into the 32 forward round keys and
// their reversal (used directly as the decryption round-key schedule,
// since SM4 decryption is encryption with the round keys applied in
// reverse order).
func keySchedule(key []byte) (rk, rkRev [32]uint32) {
	a := binary.BigEndian.Uint32(key[0:4]) ^ fk[0]
	b := binary.BigEndian.Uint32(key[4:8]) ^ fk[1]
	c := binary.BigEndian.Uint32(key[8:12]) ^ fk[2]
	d := binary.BigEndian.Uint32(key[12:16]) ^ fk[3]

	for i := 0; i < 32; i += 4 {
		t := tau(b ^ c ^ d ^ ck[i])
		a ^= lPrime(t)
		rk[i] = a
		rkRev[31-i] = a

		t = tau(a ^ c ^ d ^ ck[i+1])
		b ^= lPrime(t)
		rk[i+1] = b
		rkRev[31-i-1] = b

		t = tau(b ^ a ^ d ^ ck[i+2])
		c ^= lPrime(t)
		rk[i+2] = c
		rkRev[31-i-2] = c

		t = tau(b ^ c ^ a ^ ck[i+3])
		d ^= lPrime(t)
		rk[i+3] = d
		rkRev[31-i-3] = d
	}
	return rk, rkRev
}

func loadBlock(src []byte) (a, b, c, d uint32) {
	return binary.BigEndian.Uint32(src[0:4]), binary.BigEndian.Uint32(src[4:8]),
		binary.BigEndian.Uint32(src[8:12]), binary.BigEndian.Uint32(src[12:16])
}

func storeBlock(dst []byte, a, b, c, d uint32) {
	binary.BigEndian.PutUint32(dst[0:4], d)
	binary.BigEndian.PutUint32(dst[4:8], c)
	binary.BigEndian.PutUint32(dst[8:12], b)
	binary.BigEndian.PutUint32(dst[12:16], a)
}

// blockGeneric encrypts (or decrypts, with rk reversed) exactly one block.
// The first and last four rounds use ltSlow (direct S-box substitution);
// the middle 24 use the table-driven ltFast, per spec.md §4.9.
func blockGeneric(dst, src []byte, rk *[32]uint32) {
	a, b, c, d := loadBlock(src)

	a ^= ltSlow(b ^ c ^ d ^ rk[0])
	b ^= ltSlow(c ^ d ^ a ^ rk[1])
	c ^= ltSlow(d ^ a ^ b ^ rk[2])
	d ^= ltSlow(a ^ b ^ c ^ rk[3])

	for i := 1; i < 7; i++ {
		a ^= ltFast(b ^ c ^ d ^ rk[4*i])
		b ^= ltFast(c ^ d ^ a ^ rk[4*i+1])
		c ^= ltFast(d ^ a ^ b ^ rk[4*i+2])
		d ^= ltFast(a ^ b ^ c ^ rk[4*i+3])
	}

	a ^= ltSlow(b ^ c ^ d ^ rk[28])
	b ^= ltSlow(c ^ d ^ a ^ rk[29])
	c ^= ltSlow(d ^ a ^ b ^ rk[30])
	d ^= ltSlow(a ^ b ^ c ^ rk[31])

	storeBlock(dst, a, b, c, d)
}

// blockNGeneric runs blockGeneric over n independent blocks. Unlike the
// reference's block2/block4 variants (which interleave two or four blocks
// in wider lanes to expose SIMD parallelism), this portable path has no
// lanes to fill — see SPEC_FULL.md's note on SIMD bodies — so it is a
// straightforward loop; the surrounding Blocks dispatch table still
// greedily batches by count, matching the reference's call shape.
func blockNGeneric(dst, src []byte, rk *[32]uint32, n int) {
	for i := 0; i < n; i++ {
		blockGeneric(dst[i*BlockSize:], src[i*BlockSize:], rk)
	}
}

func block2Generic(dst, src []byte, rk *[32]uint32) { blockNGeneric(dst, src, rk, 2) }
func block4Generic(dst, src []byte, rk *[32]uint32) { blockNGeneric(dst, src, rk, 4) }
func block8Generic(dst, src []byte, rk *[32]uint32) { blockNGeneric(dst, src, rk, 8) }
func block16Generic(dst, src []byte, rk *[32]uint32) { blockNGeneric(dst, src, rk, 16) }
func block1Generic(dst, src []byte, rk *[32]uint32) { blockGeneric(dst, src, rk) }
