package cryptobyte

import (
	"fmt"
	"strconv"
	"strings"
)

const oidMaxSize = 63

// ObjectIdentifier is an ASN.1 OBJECT IDENTIFIER, stored pre-encoded in its
// DER base-128 form in a fixed buffer. Ported from object_identifier.rs.
type ObjectIdentifier struct {
	der    [oidMaxSize]byte
	derLen uint8
}

// OIDFromInts encodes arcs (e.g. {1, 2, 156, 10197, 1, 301} for SM2) as an
// ObjectIdentifier, per the base-128 varint rule: the first two arcs are
// combined into 40*a+b in one byte, as specified in spec.md §6.
func OIDFromInts(parts ...uint32) (ObjectIdentifier, error) {
	var oid ObjectIdentifier
	if len(parts) < 2 {
		return oid, ErrASN1InvalidOid
	}
	if parts[0] > 2 || (parts[0] < 2 && parts[1] >= 40) {
		return oid, ErrASN1InvalidOid
	}

	oid.der[0] = byte(40*parts[0] + parts[1])
	n := 1
	for _, part := range parts[2:] {
		if part == 0 {
			oid.der[n] = 0
			n++
			continue
		}
		length := 0
		for p := part; p > 0; p >>= 7 {
			length++
		}
		for j := length - 1; j > 0; j-- {
			oid.der[n] = byte(0x80 | (part >> (7 * uint(j))))
			n++
		}
		oid.der[n] = byte(part & 0x7f)
		n++
		if n > oidMaxSize {
			return ObjectIdentifier{}, ErrASN1InvalidOid
		}
	}
	oid.derLen = uint8(n)
	return oid, nil
}

// OIDFromDER wraps an already-DER-encoded OID body (as read from an
// ASN.1 OBJECT IDENTIFIER's value bytes).
func OIDFromDER(der []byte) (ObjectIdentifier, error) {
	var oid ObjectIdentifier
	if len(der) == 0 || len(der) > oidMaxSize {
		return oid, ErrASN1InvalidOidEncoding
	}
	copy(oid.der[:], der)
	oid.derLen = uint8(len(der))
	if !oid.IsValid() {
		return ObjectIdentifier{}, ErrASN1InvalidOidEncoding
	}
	return oid, nil
}

// AsDER returns the OID's raw DER body (no tag/length header).
func (o ObjectIdentifier) AsDER() []byte { return o.der[:o.derLen] }

// IsValid reports whether the stored encoding decodes to a legal arc-0/1/2
// first component.
func (o ObjectIdentifier) IsValid() bool {
	if o.derLen < 1 {
		return false
	}
	a0, a1 := o.der[0]/40, o.der[0]%40
	if a0 > 2 || (a0 <= 1 && a1 >= 40) {
		return false
	}
	return true
}

// Equal reports whether two OIDs encode the same value.
func (o ObjectIdentifier) Equal(other ObjectIdentifier) bool {
	return o.derLen == other.derLen && o.der == other.der
}

// String renders the OID in dotted-decimal form, e.g. "1.2.840.113549".
func (o ObjectIdentifier) String() string {
	if o.derLen == 0 {
		return ""
	}
	var b strings.Builder
	v := o.der[0]
	fmt.Fprintf(&b, "%d.%d", v/40, v%40)

	var n uint32
	for _, x := range o.der[1:o.derLen] {
		if x&0x80 == 0 {
			n = n<<7 + uint32(x)
			b.WriteByte('.')
			b.WriteString(strconv.FormatUint(uint64(n), 10))
			n = 0
		} else {
			n = n<<7 + uint32(x&0x7f)
		}
	}
	return b.String()
}
