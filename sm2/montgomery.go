package sm2

import (
	"math/bits"

	"github.com/opengm-libs/opengm-crypto/internal/subtle"
)

// montgomeryMul computes (a*b)*R^-1 mod m via separate-multiply-then-REDC:
// widen a*b to 512 bits, then reduce one limb at a time exactly as spec.md
// §4.2 describes — "process one input limb at a time... (a + a0*m)/B...
// repeat four times... add the upper half of the product and
// conditional-subtract m once." nPrime is -m^-1 mod 2^64.
func montgomeryMul(a, b, m [4]uint64, nPrime uint64) [4]uint64 {
	t := subtle.Mul256(a, b)
	return montgomeryReduce(t, m, nPrime)
}

// montgomerySquare is montgomeryMul(a, a, ...) using the doubled
// cross-product squaring primitive instead of general multiplication.
func montgomerySquare(a, m [4]uint64, nPrime uint64) [4]uint64 {
	t := subtle.Square256(a)
	return montgomeryReduce(t, m, nPrime)
}

// montgomeryReduce implements REDC on an 8-limb (512-bit) value, producing
// a value strictly less than m.
func montgomeryReduce(t [8]uint64, m [4]uint64, nPrime uint64) [4]uint64 {
	var overflow uint64
	for i := 0; i < 4; i++ {
		u := t[i] * nPrime

		var carry uint64
		for j := 0; j < 4; j++ {
			lo, hi := subtle.Mac(t[i+j], u, m[j], carry)
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
		overflow += carry
	}

	var result [4]uint64
	copy(result[:], t[4:8])
	return subtle.SubConditional(result, overflow, m)
}

// montgomeryToMont converts a plain integer x into Montgomery form x*R mod m
// by multiplying with RR = R^2 mod m (itself stored in Montgomery-adjacent
// form so that a single montgomeryMul produces x*R mod m).
func montgomeryToMont(x, m [4]uint64, nPrime uint64, rr [4]uint64) [4]uint64 {
	return montgomeryMul(x, rr, m, nPrime)
}

// montgomeryFromMont converts a Montgomery-form value back to a plain
// integer by multiplying by 1 (REDC of x alone, treating x as the low half
// of a 512-bit value with a zero high half is equivalent to one reduction
// pass — montgomeryMul(x, one, ...) achieves the same result without a
// second code path).
func montgomeryFromMont(x, m [4]uint64, nPrime uint64) [4]uint64 {
	return montgomeryMul(x, [4]uint64{1, 0, 0, 0}, m, nPrime)
}
