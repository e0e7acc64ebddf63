package cryptobyte

import "math/big"

const sm2HashSize = 32

// MarshalSM2Signature DER-encodes an SM2 signature as
// SM2Signature ::= SEQUENCE { r INTEGER, s INTEGER }, per spec.md §6 and
// grounded on the original Rust src/cms/sm2.rs codec.
func MarshalSM2Signature(r, s *big.Int) ([]byte, error) {
	b := NewBuilder(nil)
	b.AddASN1Sequence(func(c *Builder) {
		c.AddASN1BigInt(r)
		c.AddASN1BigInt(s)
	})
	return b.Bytes()
}

// ParseSM2Signature parses the DER encoding MarshalSM2Signature produces.
func ParseSM2Signature(der []byte) (r, s *big.Int, err error) {
	input := String(der)
	var seq String
	if !input.ReadASN1Sequence(&seq) || !input.Empty() {
		return nil, nil, ErrASN1Truncated
	}

	r, s = new(big.Int), new(big.Int)
	if !seq.ReadASN1BigInt(r) || !seq.ReadASN1BigInt(s) || !seq.Empty() {
		return nil, nil, ErrASN1Truncated
	}
	if r.Sign() < 0 || s.Sign() < 0 {
		return nil, nil, ErrASN1InvalidOid
	}
	return r, s, nil
}

// MarshalSM2Cipher DER-encodes an SM2 ciphertext as
// SM2Cipher ::= SEQUENCE { x INTEGER, y INTEGER, hash OCTET STRING (SIZE(32)), cipherText OCTET STRING },
// where x, y are C1's affine coordinates, hash is C3, and cipherText is C2.
func MarshalSM2Cipher(x, y *big.Int, hash [sm2HashSize]byte, cipherText []byte) ([]byte, error) {
	b := NewBuilder(nil)
	b.AddASN1Sequence(func(c *Builder) {
		c.AddASN1BigInt(x)
		c.AddASN1BigInt(y)
		c.AddASN1OctetString(hash[:])
		c.AddASN1OctetString(cipherText)
	})
	return b.Bytes()
}

// ParseSM2Cipher parses the DER encoding MarshalSM2Cipher produces,
// rejecting a hash field that is not exactly 32 bytes.
func ParseSM2Cipher(der []byte) (x, y *big.Int, hash [sm2HashSize]byte, cipherText []byte, err error) {
	input := String(der)
	var seq String
	if !input.ReadASN1Sequence(&seq) || !input.Empty() {
		return nil, nil, hash, nil, ErrASN1Truncated
	}

	x, y = new(big.Int), new(big.Int)
	if !seq.ReadASN1BigInt(x) || !seq.ReadASN1BigInt(y) {
		return nil, nil, hash, nil, ErrASN1Truncated
	}

	var hashBytes []byte
	if !seq.ReadASN1OctetString(&hashBytes) || len(hashBytes) != sm2HashSize {
		return nil, nil, hash, nil, ErrASN1InvalidBitString
	}
	copy(hash[:], hashBytes)

	if !seq.ReadASN1OctetString(&cipherText) || !seq.Empty() {
		return nil, nil, hash, nil, ErrASN1Truncated
	}
	return x, y, hash, cipherText, nil
}
