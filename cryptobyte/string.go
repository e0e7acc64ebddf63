package cryptobyte

// String is a parser over a byte slice, consumed from the front as values
// are read. Ported from parser.rs (itself modeled on
// golang.org/x/crypto/cryptobyte.String).
type String []byte

// Len returns the number of unread bytes.
func (s *String) Len() int { return len(*s) }

// Empty reports whether all bytes have been consumed.
func (s *String) Empty() bool { return len(*s) == 0 }

func (s *String) read(n int) ([]byte, bool) {
	if len(*s) < n {
		return nil, false
	}
	v := (*s)[:n]
	*s = (*s)[n:]
	return v, true
}

// Skip advances past n bytes, reporting whether that many remained.
func (s *String) Skip(n int) bool {
	_, ok := s.read(n)
	return ok
}

// ReadBytes reads n raw bytes.
func (s *String) ReadBytes(n int) ([]byte, bool) { return s.read(n) }

// CopyBytes reads len(out) bytes into out.
func (s *String) CopyBytes(out []byte) bool {
	v, ok := s.read(len(out))
	if !ok {
		return false
	}
	copy(out, v)
	return true
}

// ReadUint8 reads a single byte.
func (s *String) ReadUint8(out *uint8) bool {
	v, ok := s.read(1)
	if !ok {
		return false
	}
	*out = v[0]
	return true
}

// ReadUint16 reads a big-endian uint16.
func (s *String) ReadUint16(out *uint16) bool {
	v, ok := s.read(2)
	if !ok {
		return false
	}
	*out = uint16(v[0])<<8 | uint16(v[1])
	return true
}

// ReadUint32 reads a big-endian uint32.
func (s *String) ReadUint32(out *uint32) bool {
	v, ok := s.read(4)
	if !ok {
		return false
	}
	*out = uint32(v[0])<<24 | uint32(v[1])<<16 | uint32(v[2])<<8 | uint32(v[3])
	return true
}

func (s *String) readUnsigned(length int) (uint32, bool) {
	v, ok := s.read(length)
	if !ok || length > 4 {
		return 0, false
	}
	var res uint32
	for _, b := range v {
		res = res<<8 | uint32(b)
	}
	return res, true
}

func (s *String) readLengthPrefixed(lenLen int) (String, bool) {
	lenBytes, ok := s.read(lenLen)
	if !ok {
		return nil, false
	}
	var length int
	for _, b := range lenBytes {
		length = length<<8 | int(b)
	}
	v, ok := s.read(length)
	if !ok {
		return nil, false
	}
	return String(v), true
}

// ReadUint8LengthPrefixed reads an 8-bit-length-prefixed value into out.
func (s *String) ReadUint8LengthPrefixed(out *String) bool {
	v, ok := s.readLengthPrefixed(1)
	if ok {
		*out = v
	}
	return ok
}

// ReadUint16LengthPrefixed reads a 16-bit-length-prefixed value into out.
func (s *String) ReadUint16LengthPrefixed(out *String) bool {
	v, ok := s.readLengthPrefixed(2)
	if ok {
		*out = v
	}
	return ok
}

// peekASN1Header reports whether at least a tag+length-byte pair remain.
func (s *String) peekASN1Header() bool { return len(*s) >= 2 }

// asn1Object is the raw tag/length/value split of one ASN.1 TLV.
type asn1Object struct {
	raw   []byte
	tag   Tag
	value []byte
}

// readASN1Object parses one DER TLV, enforcing minimal-length encoding and
// low-tag-number form, matching read_asn1_object in parser.rs.
func (s *String) readASN1Object() (asn1Object, bool) {
	if !s.peekASN1Header() {
		return asn1Object{}, false
	}
	raw := []byte(*s)
	tag := Tag(raw[0])
	if tag.highTag() {
		return asn1Object{}, false
	}
	lenByte := raw[1]

	var length, headerLen int
	if lenByte&0x80 == 0 {
		length = int(lenByte) + 2
		headerLen = 2
	} else {
		lenLen := int(lenByte & 0x7f)
		if lenLen == 0 || lenLen > 4 || len(*s) < lenLen+2 {
			return asn1Object{}, false
		}
		lenSlice := String(raw[2 : 2+lenLen])
		len32, ok := lenSlice.readUnsigned(lenLen)
		if !ok || len32 < 128 {
			// a value < 128 must have used short form — non-minimal.
			return asn1Object{}, false
		}
		if len32>>uint((lenLen-1)*8) == 0 {
			// a zero leading length byte — non-minimal.
			return asn1Object{}, false
		}
		headerLen = 2 + lenLen
		if uint32(headerLen)+len32 < len32 {
			return asn1Object{}, false
		}
		length = headerLen + int(len32)
	}

	full, ok := s.read(length)
	if !ok {
		return asn1Object{}, false
	}
	return asn1Object{raw: raw[:length], tag: tag, value: full[headerLen:]}, true
}

// ReadASN1 reads one ASN.1 element of the given tag, returning its value
// (without tag/length header).
func (s *String) ReadASN1(tag Tag) ([]byte, bool) {
	obj, ok := s.readASN1Object()
	if !ok || obj.tag != tag {
		return nil, false
	}
	return obj.value, true
}

// ReadASN1Element reads one ASN.1 element's full raw encoding (tag, length,
// and value together), for callers that need to re-serialize it verbatim.
func (s *String) ReadASN1Element(tag Tag) ([]byte, bool) {
	obj, ok := s.readASN1Object()
	if !ok || obj.tag != tag {
		return nil, false
	}
	return obj.raw, true
}

// ReadASN1Sequence reads a SEQUENCE and returns a String over its contents.
func (s *String) ReadASN1Sequence(out *String) bool {
	v, ok := s.ReadASN1(TagSequence)
	if !ok {
		return false
	}
	*out = String(v)
	return true
}

// ReadASN1OctetString reads an OCTET STRING's contents.
func (s *String) ReadASN1OctetString(out *[]byte) bool {
	v, ok := s.ReadASN1(TagOctetString)
	if !ok {
		return false
	}
	*out = v
	return true
}

// ReadASN1Boolean reads a BOOLEAN.
func (s *String) ReadASN1Boolean(out *bool) bool {
	v, ok := s.ReadASN1(TagBoolean)
	if !ok || len(v) != 1 {
		return false
	}
	switch v[0] {
	case 0x00:
		*out = false
	case 0xff:
		*out = true
	default:
		return false
	}
	return true
}

// ReadASN1UnsignedBytes reads an INTEGER's big-endian, minimal-encoding
// content bytes without interpreting sign, rejecting values whose leading
// byte indicates a negative integer (SM2 signature/cipher components are
// always non-negative).
func (s *String) ReadASN1UnsignedBytes(out *[]byte) bool {
	v, ok := s.ReadASN1(TagInteger)
	if !ok || len(v) == 0 {
		return false
	}
	if v[0]&0x80 != 0 {
		return false
	}
	if len(v) > 1 && v[0] == 0 && v[1]&0x80 == 0 {
		// non-minimal: a redundant leading zero where it wasn't needed.
		return false
	}
	*out = v
	return true
}
