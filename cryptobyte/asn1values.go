package cryptobyte

import "math/big"

// AddASN1Int64 appends a DER-encoded ASN.1 INTEGER from a signed int64.
func (b *Builder) AddASN1Int64(v int64) { b.addASN1Signed(TagInteger, v) }

// AddASN1Enum appends a DER-encoded ASN.1 ENUMERATED.
func (b *Builder) AddASN1Enum(v int64) { b.addASN1Signed(TagEnum, v) }

func (b *Builder) addASN1Signed(tag Tag, v int64) {
	b.AddASN1(tag, func(c *Builder) {
		length := 1
		for i := v; i >= 0x80 || i < -0x80; i >>= 8 {
			length++
		}
		for ; length > 0; length-- {
			c.AddUint8(byte(v >> uint((length-1)*8)))
		}
	})
}

// AddASN1BigInt appends a DER-encoded ASN.1 INTEGER, matching spec.md §6's
// rule: strip leading zero bytes unless the next byte's high bit is set, in
// which case keep a single zero prefix.
func (b *Builder) AddASN1BigInt(n *big.Int) {
	b.AddASN1(TagInteger, func(c *Builder) {
		switch n.Sign() {
		case 0:
			c.AddUint8(0)
		case -1:
			c.AddBytes(twosComplementBytes(n))
		default:
			bytes := n.Bytes()
			if len(bytes) == 0 || bytes[0]&0x80 != 0 {
				c.AddUint8(0)
			}
			c.AddBytes(bytes)
		}
	})
}

// twosComplementBytes returns n's minimal big-endian two's-complement
// encoding for n < 0, mirroring Rust's BigInt::to_signed_bytes_be: take
// |n|-1 and invert its bytes, then pad with 0xff if the sign bit isn't
// already set.
func twosComplementBytes(n *big.Int) []byte {
	nMinus1 := new(big.Int).Neg(n)
	nMinus1.Sub(nMinus1, big.NewInt(1))
	bytes := nMinus1.Bytes()
	for i := range bytes {
		bytes[i] ^= 0xff
	}
	if len(bytes) == 0 || bytes[0]&0x80 == 0 {
		bytes = append([]byte{0xff}, bytes...)
	}
	return bytes
}

// ReadASN1Int64 reads an ASN.1 INTEGER into a signed int64.
func (s *String) ReadASN1Int64(out *int64) bool {
	v, ok := s.ReadASN1(TagInteger)
	if !ok || len(v) == 0 {
		return false
	}
	if len(v) > 1 && v[0] == 0xff && v[1]&0x80 != 0 {
		return false
	}
	result := int64(int8(v[0]))
	for _, b := range v[1:] {
		result = result<<8 + int64(b)
	}
	*out = result
	return true
}

// ReadASN1BigInt reads an ASN.1 INTEGER into a big.Int, interpreting the
// bytes as two's-complement per DER.
func (s *String) ReadASN1BigInt(out *big.Int) bool {
	v, ok := s.ReadASN1(TagInteger)
	if !ok || len(v) == 0 {
		return false
	}
	if len(v) > 1 && v[0] == 0xff && v[1]&0x80 != 0 {
		return false
	}

	if v[0]&0x80 == 0 {
		out.SetBytes(v)
		return true
	}

	// negative: decode two's complement.
	inverted := make([]byte, len(v))
	for i, x := range v {
		inverted[i] = ^x
	}
	magnitude := new(big.Int).SetBytes(inverted)
	magnitude.Add(magnitude, big.NewInt(1))
	out.Neg(magnitude)
	return true
}

// AddASN1ObjectIdentifier appends a DER-encoded OBJECT IDENTIFIER.
func (b *Builder) AddASN1ObjectIdentifier(oid ObjectIdentifier) {
	b.AddASN1(TagOID, func(c *Builder) {
		if !oid.IsValid() {
			c.setError(ErrASN1InvalidOid)
			return
		}
		c.AddBytes(oid.AsDER())
	})
}

// ReadASN1ObjectIdentifier reads an OBJECT IDENTIFIER.
func (s *String) ReadASN1ObjectIdentifier(out *ObjectIdentifier) bool {
	v, ok := s.ReadASN1(TagOID)
	if !ok {
		return false
	}
	oid, err := OIDFromDER(v)
	if err != nil {
		return false
	}
	*out = oid
	return true
}

// AddASN1Boolean appends a DER-encoded ASN.1 BOOLEAN.
func (b *Builder) AddASN1Boolean(v bool) {
	if v {
		b.AddBytes([]byte{uint8(TagBoolean), 1, 0xff})
	} else {
		b.AddBytes([]byte{uint8(TagBoolean), 1, 0})
	}
}

// AddASN1NULL appends a DER-encoded ASN.1 NULL.
func (b *Builder) AddASN1NULL() { b.AddBytes([]byte{uint8(TagNull), 0}) }

// AddASN1OctetString appends a DER-encoded ASN.1 OCTET STRING.
func (b *Builder) AddASN1OctetString(v []byte) {
	b.AddASN1(TagOctetString, func(c *Builder) { c.AddBytes(v) })
}
