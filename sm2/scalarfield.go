package sm2

import (
	"encoding/binary"

	"github.com/opengm-libs/opengm-crypto/internal/subtle"
)

// ScalarField is an element of GF(n), the SM2 curve's group order field.
// It has the exact same Montgomery-form shape as FieldElement but is a
// distinct Go type so that mixing a GF(p) and a GF(n) value is a
// compile-time error rather than a silent bug.
type ScalarField struct {
	limbs [4]uint64
}

// scalarN is the SM2 curve group order, little-endian 64-bit limbs.
var scalarN = [4]uint64{
	0x53BBF40939D54123,
	0x7203DF6B21C6052B,
	0xFFFFFFFFFFFFFFFF,
	0xFFFFFFFEFFFFFFFF,
}

// scalarNPrime = -n^-1 mod 2^64, specified directly in spec.md §4.3.
const scalarNPrime = 0x327f9e8872350975

var scalarRR = [4]uint64{0x901192af7c114f20, 0x3464504ade6fa2fa, 0x620fc84c3affe0d4, 0x1eb5e412a22b3d3b}

// ScalarOne is the scalar field element 1, Montgomery form (R mod n).
var ScalarOne = ScalarField{limbs: [4]uint64{0xac440bf6c62abedd, 0x8dfc2094de39fad4, 0x0, 0x0000000100000000}}

func NewScalarFieldFromUint64(v uint64) ScalarField {
	return scalarToMont([4]uint64{v, 0, 0, 0})
}

func scalarToMont(plain [4]uint64) ScalarField {
	return ScalarField{limbs: montgomeryToMont(plain, scalarN, scalarNPrime, scalarRR)}
}

func (e ScalarField) toPlain() [4]uint64 {
	return montgomeryFromMont(e.limbs, scalarN, scalarNPrime)
}

// SetBytes parses a 32-byte big-endian integer into Montgomery form,
// reducing mod n if out of range, and reports whether the raw value was
// >= n (an overflow, mirroring the teacher's Scalar.setB32 contract).
func (e *ScalarField) SetBytes(b []byte) (overflow bool) {
	var plain [4]uint64
	plain[3] = binary.BigEndian.Uint64(b[0:8])
	plain[2] = binary.BigEndian.Uint64(b[8:16])
	plain[1] = binary.BigEndian.Uint64(b[16:24])
	plain[0] = binary.BigEndian.Uint64(b[24:32])
	overflow, _ = gteU256(plain, scalarN)
	plain = subtle.SubConditional(plain, 0, scalarN)
	*e = scalarToMont(plain)
	return overflow
}

// Bytes serializes the scalar as a 32-byte big-endian plain integer.
func (e ScalarField) Bytes() [32]byte {
	plain := e.toPlain()
	var out [32]byte
	binary.BigEndian.PutUint64(out[0:8], plain[3])
	binary.BigEndian.PutUint64(out[8:16], plain[2])
	binary.BigEndian.PutUint64(out[16:24], plain[1])
	binary.BigEndian.PutUint64(out[24:32], plain[0])
	return out
}

func (a ScalarField) Add(b ScalarField) ScalarField {
	sum, carry := subtle.Add256(a.limbs, b.limbs)
	return ScalarField{limbs: subtle.SubConditional(sum, carry, scalarN)}
}

func (a ScalarField) Sub(b ScalarField) ScalarField {
	diff, borrow := subtle.Sub256(a.limbs, b.limbs)
	return ScalarField{limbs: subtle.AddConditional(diff, borrow, scalarN)}
}

func (a ScalarField) Negate() ScalarField {
	return ScalarField{}.Sub(a)
}

func (a ScalarField) Mul(b ScalarField) ScalarField {
	return ScalarField{limbs: montgomeryMul(a.limbs, b.limbs, scalarN, scalarNPrime)}
}

func (a ScalarField) Square() ScalarField {
	return ScalarField{limbs: montgomerySquare(a.limbs, scalarN, scalarNPrime)}
}

func (a ScalarField) IsZero() bool {
	return subtle.IsZero(a.limbs)
}

func (a ScalarField) Equal(b ScalarField) bool {
	return subtle.CmpEqual(a.limbs, b.limbs) == 1
}

// Invert returns a^-1 mod n via Fermat's little theorem, using the same
// fixed-schedule constant-time exponentiation as FieldElement.Invert.
func (a ScalarField) Invert() ScalarField {
	result := ScalarOne
	for i := 255; i >= 0; i-- {
		result = result.Square()
		bit := (scalarNMinus2[i/64] >> uint(i%64)) & 1
		mult := result.Mul(a)
		result = scalarSelect(bit, mult, result)
	}
	return result
}

var scalarNMinus2 = [4]uint64{0x53BBF40939D54121, 0x7203DF6B21C6052B, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFEFFFFFFFF}

func scalarSelect(bit uint64, a, b ScalarField) ScalarField {
	mask := -bit
	var out ScalarField
	for i := range out.limbs {
		out.limbs[i] = b.limbs[i] ^ ((a.limbs[i] ^ b.limbs[i]) & mask)
	}
	return out
}
