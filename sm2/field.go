package sm2

import (
	"encoding/binary"

	"github.com/opengm-libs/opengm-crypto/internal/subtle"
)

// FieldElement is an element of GF(p) for the SM2 recommended curve,
// p = 2^256 - 2^224 - 2^96 + 2^64 - 1. It is always stored in Montgomery
// form: the semantic integer is limbs*R^-1 mod p with R = 2^256. The
// zero value is the field element 0 (in Montgomery form 0 == 0).
type FieldElement struct {
	limbs [4]uint64
}

// fieldP is the SM2 field modulus, little-endian 64-bit limbs.
var fieldP = [4]uint64{
	0xFFFFFFFFFFFFFFFF,
	0xFFFFFFFF00000000,
	0xFFFFFFFFFFFFFFFF,
	0xFFFFFFFEFFFFFFFF,
}

// fieldNPrime = -p^-1 mod 2^64. Because p's least significant limb is
// 2^64-1 (p ≡ -1 mod 2^64), this constant collapses to 1 — the same
// special-form optimization NIST P-256-family primes use.
const fieldNPrime = 1

// fieldRR = R^2 mod p, used to carry a plain integer into Montgomery form.
var fieldRR = [4]uint64{0x0000000200000003, 0x00000002FFFFFFFF, 0x0000000100000001, 0x0000000400000002}

// FieldOne is the field element 1, in Montgomery form (R mod p).
var FieldOne = FieldElement{limbs: [4]uint64{0x1, 0x00000000FFFFFFFF, 0x0, 0x0000000100000000}}

// FieldB is the SM2 curve's b coefficient (y^2 = x^3 - 3x + b), Montgomery form.
var FieldB = FieldElement{limbs: [4]uint64{0x90d230632bc0dd42, 0x71cf379ae9b537ab, 0x527981505ea51c3c, 0x240fe188ba20e2c8}}

// NewFieldElementFromUint64 builds a field element from a small plain integer.
func NewFieldElementFromUint64(v uint64) FieldElement {
	return fieldToMont([4]uint64{v, 0, 0, 0})
}

func fieldToMont(plain [4]uint64) FieldElement {
	return FieldElement{limbs: montgomeryToMont(plain, fieldP, fieldNPrime, fieldRR)}
}

func (e FieldElement) toPlain() [4]uint64 {
	return montgomeryFromMont(e.limbs, fieldP, fieldNPrime)
}

// SetBytes parses a 32-byte big-endian integer into Montgomery form. The
// input is reduced mod p if out of range (callers that must reject
// out-of-range inputs should check against p themselves, e.g. when parsing
// a serialized point coordinate).
func (e *FieldElement) SetBytes(b []byte) *FieldElement {
	var plain [4]uint64
	plain[3] = binary.BigEndian.Uint64(b[0:8])
	plain[2] = binary.BigEndian.Uint64(b[8:16])
	plain[1] = binary.BigEndian.Uint64(b[16:24])
	plain[0] = binary.BigEndian.Uint64(b[24:32])
	// Reduce mod p if the raw value is out of range; a single conditional
	// subtraction suffices since the input is always < 2^256 < 2p.
	plain = subtle.SubConditional(plain, 0, fieldP)
	*e = fieldToMont(plain)
	return e
}

// Bytes serializes the field element as a 32-byte big-endian plain integer.
func (e FieldElement) Bytes() [32]byte {
	plain := e.toPlain()
	var out [32]byte
	binary.BigEndian.PutUint64(out[0:8], plain[3])
	binary.BigEndian.PutUint64(out[8:16], plain[2])
	binary.BigEndian.PutUint64(out[16:24], plain[1])
	binary.BigEndian.PutUint64(out[24:32], plain[0])
	return out
}

// Add returns a+b mod p.
func (a FieldElement) Add(b FieldElement) FieldElement {
	sum, carry := subtle.Add256(a.limbs, b.limbs)
	return FieldElement{limbs: subtle.SubConditional(sum, carry, fieldP)}
}

// Sub returns a-b mod p.
func (a FieldElement) Sub(b FieldElement) FieldElement {
	diff, borrow := subtle.Sub256(a.limbs, b.limbs)
	return FieldElement{limbs: subtle.AddConditional(diff, borrow, fieldP)}
}

// Negate returns -a mod p.
func (a FieldElement) Negate() FieldElement {
	return FieldElement{}.Sub(a)
}

// Mul returns a*b mod p.
func (a FieldElement) Mul(b FieldElement) FieldElement {
	return FieldElement{limbs: montgomeryMul(a.limbs, b.limbs, fieldP, fieldNPrime)}
}

// Square returns a^2 mod p.
func (a FieldElement) Square() FieldElement {
	return FieldElement{limbs: montgomerySquare(a.limbs, fieldP, fieldNPrime)}
}

// MulSmall returns a*n mod p for a small plain multiplier n (used by the
// Jacobian doubling and addition formulas' "2*", "3*", "4*" and "8*" steps).
func (a FieldElement) MulSmall(n uint64) FieldElement {
	return a.Mul(NewFieldElementFromUint64(n))
}

// Half returns a/2 mod p.
func (a FieldElement) Half() FieldElement {
	plain := a.toPlain()
	if plain[0]&1 == 0 {
		return fieldToMont(shiftRight1(plain))
	}
	sum, carry := subtle.Add256(plain, fieldP)
	shifted := shiftRight1(sum)
	if carry != 0 {
		shifted[3] |= 1 << 63
	}
	return fieldToMont(shifted)
}

func shiftRight1(a [4]uint64) [4]uint64 {
	var out [4]uint64
	out[0] = (a[0] >> 1) | (a[1] << 63)
	out[1] = (a[1] >> 1) | (a[2] << 63)
	out[2] = (a[2] >> 1) | (a[3] << 63)
	out[3] = a[3] >> 1
	return out
}

// IsZero reports whether a == 0.
func (a FieldElement) IsZero() bool {
	return subtle.IsZero(a.limbs)
}

// Equal reports whether a == b.
func (a FieldElement) Equal(b FieldElement) bool {
	return subtle.CmpEqual(a.limbs, b.limbs) == 1
}

// IsOdd reports whether the plain-integer value of a is odd.
func (a FieldElement) IsOdd() bool {
	return a.toPlain()[0]&1 == 1
}

// Invert returns a^-1 mod p via Fermat's little theorem (a^(p-2)), 0 maps
// to 0. Every step is a fixed sequence of squarings and multiplies with no
// data-dependent branch, so it runs in constant time with respect to a.
func (a FieldElement) Invert() FieldElement {
	return fieldPow(a, fieldPMinus2)
}

// Invert2 returns a^-2 mod p.
func (a FieldElement) Invert2() FieldElement {
	inv := a.Invert()
	return inv.Square()
}

// Invert3 returns a^-3 mod p.
func (a FieldElement) Invert3() FieldElement {
	inv := a.Invert()
	inv2 := inv.Square()
	return inv2.Mul(inv)
}

// Sqrt returns a square root of a modulo p, if one exists. Since p ≡ 3
// (mod 4), sqrt(a) = a^((p+1)/4) when a is a quadratic residue.
func (a FieldElement) Sqrt() (FieldElement, bool) {
	root := fieldPow(a, fieldPPlus1Div4)
	if root.Square().Equal(a) {
		return root, true
	}
	return FieldElement{}, false
}

// fieldPMinus2 and fieldPPlus1Div4 are plain-integer exponents derived from
// the field modulus, used by Invert and Sqrt respectively.
var fieldPMinus2 = [4]uint64{0xFFFFFFFFFFFFFFFD, 0xFFFFFFFF00000000, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFEFFFFFFFF}
var fieldPPlus1Div4 = [4]uint64{0x4000000000000000, 0xFFFFFFFFC0000000, 0xFFFFFFFFFFFFFFFF, 0x3FFFFFFFBFFFFFFF}

// fieldPow computes base^exp mod p via fixed-schedule square-and-multiply:
// every iteration squares the accumulator and computes a candidate
// multiply, then selects between "keep" and "multiply in" with a
// constant-time mask rather than branching on the exponent bit.
func fieldPow(base FieldElement, exp [4]uint64) FieldElement {
	result := FieldOne
	for i := 255; i >= 0; i-- {
		result = result.Square()
		bit := (exp[i/64] >> uint(i%64)) & 1
		mult := result.Mul(base)
		result = fieldSelect(bit, mult, result)
	}
	return result
}

func fieldSelect(bit uint64, a, b FieldElement) FieldElement {
	mask := -bit
	var out FieldElement
	for i := range out.limbs {
		out.limbs[i] = b.limbs[i] ^ ((a.limbs[i] ^ b.limbs[i]) & mask)
	}
	return out
}

// gteU256 reports whether a >= b for plain 256-bit integers.
func gteU256(a, b [4]uint64) (bool, int) {
	for i := 3; i >= 0; i-- {
		if a[i] > b[i] {
			return true, i
		}
		if a[i] < b[i] {
			return false, i
		}
	}
	return true, -1
}
