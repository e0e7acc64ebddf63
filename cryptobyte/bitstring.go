package cryptobyte

// BitString is an ASN.1 BIT STRING: bytes padded up to a byte boundary with
// the count of valid bits recorded separately. Ported from bit_string.rs.
type BitString struct {
	Bytes     []byte
	BitLength int
}

// At returns the i-th bit (0 or 1), counting from the most significant bit
// of Bytes[0].
func (b BitString) At(i int) (uint8, bool) {
	if i < 0 || i >= b.BitLength {
		return 0, false
	}
	byteIndex := i / 8
	shift := 7 - uint(i%8)
	return (b.Bytes[byteIndex] >> shift) & 1, true
}

// bitStringFromASN1 parses an ASN.1 BIT STRING value (leading pad-count
// byte followed by the padded content), rejecting non-zero padding bits.
func bitStringFromASN1(v []byte) (BitString, error) {
	if len(v) == 0 {
		return BitString{}, ErrASN1InvalidBitString
	}
	padLength := int(v[0])
	if padLength > 7 || (len(v) == 1 && padLength > 0) {
		return BitString{}, ErrASN1InvalidPadding
	}
	if len(v) > 1 && v[len(v)-1]&((1<<uint(padLength))-1) != 0 {
		return BitString{}, ErrASN1InvalidPadding
	}
	bitLength := 8*(len(v)-1) - padLength
	return BitString{Bytes: v[1:], BitLength: bitLength}, nil
}

// AddASN1BitString appends a BIT STRING with zero padding bits (the
// reference's Builder only ever emits byte-aligned bit strings).
func (b *Builder) AddASN1BitString(v BitString) {
	b.AddASN1(TagBitString, func(c *Builder) {
		c.AddUint8(0)
		c.AddBytes(v.Bytes)
	})
}

// ReadASN1BitString reads a BIT STRING.
func (s *String) ReadASN1BitString(out *BitString) bool {
	v, ok := s.ReadASN1(TagBitString)
	if !ok {
		return false
	}
	bs, err := bitStringFromASN1(v)
	if err != nil {
		return false
	}
	*out = bs
	return true
}
