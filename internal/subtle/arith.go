// Package subtle implements constant-time 256-bit limb arithmetic shared by
// sm2's GF(p) and GF(n) element types. Everything here operates on plain
// [4]uint64 little-endian limb arrays with no notion of a modulus; the
// modulus-specific reduction lives in package sm2.
package subtle

import "math/bits"

// Add256 computes sum = a + b over 256-bit integers and returns the carry
// out of the top limb.
func Add256(a, b [4]uint64) (sum [4]uint64, carry uint64) {
	sum[0], carry = bits.Add64(a[0], b[0], 0)
	sum[1], carry = bits.Add64(a[1], b[1], carry)
	sum[2], carry = bits.Add64(a[2], b[2], carry)
	sum[3], carry = bits.Add64(a[3], b[3], carry)
	return
}

// Sub256 computes diff = a - b over 256-bit integers and returns the borrow
// out of the top limb.
func Sub256(a, b [4]uint64) (diff [4]uint64, borrow uint64) {
	diff[0], borrow = bits.Sub64(a[0], b[0], 0)
	diff[1], borrow = bits.Sub64(a[1], b[1], borrow)
	diff[2], borrow = bits.Sub64(a[2], b[2], borrow)
	diff[3], borrow = bits.Sub64(a[3], b[3], borrow)
	return
}

// Mul256 computes the full 512-bit product of two 256-bit integers, least
// significant limb first.
func Mul256(a, b [4]uint64) (product [8]uint64) {
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			lo, hi := Mac(product[i+j], a[i], b[j], carry)
			product[i+j] = lo
			carry = hi
		}
		product[i+4] = carry
	}
	return
}

// Square256 computes a^2 as a 512-bit product, exploiting symmetry: the
// cross terms a[i]*a[j] (i != j) are accumulated once and doubled, then the
// squared diagonal a[i]*a[i] is added as a final correction.
func Square256(a [4]uint64) (product [8]uint64) {
	var t [8]uint64

	// Cross products, i < j, accumulated un-doubled.
	for i := 0; i < 3; i++ {
		var carry uint64
		for j := i + 1; j < 4; j++ {
			lo, hi := Mac(t[i+j], a[i], a[j], carry)
			t[i+j] = lo
			carry = hi
		}
		k := i + 4
		for carry != 0 && k < 8 {
			var c uint64
			t[k], c = bits.Add64(t[k], carry, 0)
			carry = c
			k++
		}
	}

	// Double the cross-product accumulator.
	var carry uint64
	for i := range t {
		next := t[i] >> 63
		t[i] = (t[i] << 1) | carry
		carry = next
	}

	// Add the squared diagonal a[i]^2.
	var dc uint64
	for i := 0; i < 4; i++ {
		hi, lo := bits.Mul64(a[i], a[i])
		var c0, c1 uint64
		t[2*i], c0 = bits.Add64(t[2*i], lo, dc)
		t[2*i+1], c1 = bits.Add64(t[2*i+1], hi, c0)
		dc = c1
	}

	return t
}

// Mac computes t = a + (b*c) as a double-wide (hi, lo) pair plus carry-in,
// the "multiply-add-carry" primitive used by Montgomery reduction loops.
func Mac(a, b, c, carryIn uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(b, c)
	var c0, c1 uint64
	lo, c0 = bits.Add64(lo, a, 0)
	lo, c1 = bits.Add64(lo, carryIn, 0)
	hi, _ = bits.Add64(hi, c0, c1)
	return lo, hi
}

// Adc is the single-limb add-with-carry primitive: sum = a + b + carryIn.
func Adc(a, b, carryIn uint64) (sum, carryOut uint64) {
	return bits.Add64(a, b, carryIn)
}

// Sbb is the single-limb subtract-with-borrow primitive: diff = a - b - borrowIn.
func Sbb(a, b, borrowIn uint64) (diff, borrowOut uint64) {
	return bits.Sub64(a, b, borrowIn)
}

// SubConditional returns a-m if (a, carryIn) >= m (as a 257-bit value with
// carryIn as the top bit), else returns a unchanged. The comparison and
// selection are data-independent: a constant-time mask is derived from the
// final borrow rather than branching on the comparison result.
func SubConditional(a [4]uint64, carryIn uint64, m [4]uint64) [4]uint64 {
	diff, borrow := Sub256(a, m)
	_, borrow = bits.Sub64(carryIn, 0, borrow) // borrows only if a < m even counting carryIn
	mask := borrow - 1                         // all-ones if no borrow (a >= m), else all-zero
	var out [4]uint64
	for i := range out {
		out[i] = a[i] ^ ((a[i] ^ diff[i]) & mask)
	}
	return out
}

// AddConditional returns a+m if borrowIn is set (nonzero), else a, computed
// with a data-independent mask rather than a branch.
func AddConditional(a [4]uint64, borrowIn uint64, m [4]uint64) [4]uint64 {
	sum, _ := Add256(a, m)
	mask := -(borrowIn & 1)
	var out [4]uint64
	for i := range out {
		out[i] = a[i] ^ ((a[i] ^ sum[i]) & mask)
	}
	return out
}

// CmpEqual returns 1 if a == b, 0 otherwise, without branching on individual
// limbs.
func CmpEqual(a, b [4]uint64) int {
	var diff uint64
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	if diff == 0 {
		return 1
	}
	return 0
}

// IsZero returns true iff a is the all-zero 256-bit value.
func IsZero(a [4]uint64) bool {
	return a[0]|a[1]|a[2]|a[3] == 0
}
