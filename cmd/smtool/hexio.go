package main

import "github.com/templexxx/xhex"

// encodeHex and decodeHex wrap templexxx/xhex with the convenience
// EncodeToString/DecodeString shape of encoding/hex, which xhex itself
// omits in favor of the lower-level Encode/Decode/EncodedLen/DecodedLen
// primitives it shares with the standard library.
func encodeHex(src []byte) string {
	dst := make([]byte, xhex.EncodedLen(len(src)))
	xhex.Encode(dst, src)
	return string(dst)
}

func decodeHex(s string) ([]byte, error) {
	dst := make([]byte, xhex.DecodedLen(len(s)))
	n, err := xhex.Decode(dst, []byte(s))
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}
