package sm2

import "encoding/binary"

// U256 is a plain (non-Montgomery) little-endian 256-bit integer, used to
// carry private keys, nonces, and serialized coordinates — anything that
// isn't itself a live field-arithmetic operand.
type U256 [4]uint64

// U256FromBytes parses a 32-byte big-endian integer verbatim (no modular
// reduction).
func U256FromBytes(b []byte) U256 {
	var u U256
	u[3] = binary.BigEndian.Uint64(b[0:8])
	u[2] = binary.BigEndian.Uint64(b[8:16])
	u[1] = binary.BigEndian.Uint64(b[16:24])
	u[0] = binary.BigEndian.Uint64(b[24:32])
	return u
}

// Bytes serializes the integer as 32 big-endian bytes.
func (u U256) Bytes() [32]byte {
	var out [32]byte
	binary.BigEndian.PutUint64(out[0:8], u[3])
	binary.BigEndian.PutUint64(out[8:16], u[2])
	binary.BigEndian.PutUint64(out[16:24], u[1])
	binary.BigEndian.PutUint64(out[24:32], u[0])
	return out
}

// fieldFromU256 / scalarFromU256 interpret a plain U256 as a field element
// in its respective ring, reducing modulo that ring's modulus if needed.
func fieldFromU256(u U256) FieldElement {
	var f FieldElement
	b := u.Bytes()
	f.SetBytes(b[:])
	return f
}

func scalarFromU256(u U256) ScalarField {
	var s ScalarField
	b := u.Bytes()
	s.SetBytes(b[:])
	return s
}

func u256FromField(f FieldElement) U256 {
	return U256(U256FromBytesArray(f.Bytes()))
}

func u256FromScalar(s ScalarField) U256 {
	return U256(U256FromBytesArray(s.Bytes()))
}

// U256FromBytesArray is the fixed-size-array sibling of U256FromBytes.
func U256FromBytesArray(b [32]byte) U256 {
	return U256FromBytes(b[:])
}
