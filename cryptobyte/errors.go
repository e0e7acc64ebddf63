// Package cryptobyte contains types that help with parsing and constructing
// length-prefixed binary messages, including ASN.1 DER, in the style of
// golang.org/x/crypto/cryptobyte — a String for reading and a Builder for
// writing. NewBuilder grows its buffer as needed; NewFixedBuilder writes
// into a caller-supplied buffer of fixed capacity.
package cryptobyte

import "errors"

var (
	ErrLengthOverflow          = errors.New("cryptobyte: length overflow")
	ErrFixedSizeBufferOverflow = errors.New("cryptobyte: builder exceeded its fixed-size buffer")
	ErrASN1HighTag             = errors.New("cryptobyte: high ASN.1 tag numbers not supported")
	ErrASN1PendingChildTooLong = errors.New("cryptobyte: pending ASN.1 child too long")
	ErrASN1InvalidOid          = errors.New("cryptobyte: invalid OID")
	ErrASN1InvalidOidEncoding  = errors.New("cryptobyte: invalid OID encoding")
	ErrASN1InvalidBitString    = errors.New("cryptobyte: invalid ASN.1 BIT STRING length")
	ErrASN1InvalidPadding      = errors.New("cryptobyte: invalid ASN.1 BIT STRING padding")
	ErrASN1NonMinimalLength    = errors.New("cryptobyte: non-minimal ASN.1 length encoding")
	ErrASN1UnexpectedTag       = errors.New("cryptobyte: unexpected ASN.1 tag")
	ErrASN1Truncated           = errors.New("cryptobyte: truncated ASN.1 data")
	ErrASN1TrailingData        = errors.New("cryptobyte: trailing data after ASN.1 element")
)
