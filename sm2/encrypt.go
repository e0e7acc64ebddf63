package sm2

import (
	"encoding/binary"
	"io"

	"github.com/opengm-libs/opengm-crypto/sm3"
)

// kdf implements the SM2 key derivation function: SM3 in counter mode,
// truncated to the requested byte length, per spec.md §4.7.
func kdf(z []byte, outLen int) []byte {
	out := make([]byte, 0, outLen)
	var ct uint32 = 1
	for len(out) < outLen {
		h := sm3.New()
		h.Write(z)
		var ctBytes [4]byte
		binary.BigEndian.PutUint32(ctBytes[:], ct)
		h.Write(ctBytes[:])
		out = h.Sum(out)
		ct++
	}
	return out[:outLen]
}

// Encrypt implements SM2 public-key encryption per spec.md §4.7, producing
// the GB/T 32918.4-2016 C1||C3||C2 encoding: C1 is the uncompressed
// ephemeral point, C3 is the 32-byte integrity hash, C2 is the masked
// plaintext.
func Encrypt(randSource io.Reader, pub *PublicKey, plaintext []byte) ([]byte, error) {
	for {
		var buf [32]byte
		if _, err := io.ReadFull(randSource, buf[:]); err != nil {
			return nil, err
		}
		var k ScalarField
		overflow := k.SetBytes(buf[:])
		if overflow || k.IsZero() {
			continue
		}

		c1Point := ScalarBaseMult(k)
		shared := ScalarMult(k, pub.Point)
		if shared.Infinity {
			continue
		}
		x2 := shared.X.Bytes()
		y2 := shared.Y.Bytes()

		z := make([]byte, 0, 64)
		z = append(z, x2[:]...)
		z = append(z, y2[:]...)
		t := kdf(z, len(plaintext))
		if allZero(t) {
			continue
		}

		c2 := make([]byte, len(plaintext))
		for i := range plaintext {
			c2[i] = plaintext[i] ^ t[i]
		}

		h := sm3.New()
		h.Write(x2[:])
		h.Write(plaintext)
		h.Write(y2[:])
		c3 := h.Sum(nil)

		c1 := c1Point.Encode()

		out := make([]byte, 0, len(c1)+len(c3)+len(c2))
		out = append(out, c1...)
		out = append(out, c3...)
		out = append(out, c2...)
		return out, nil
	}
}

// Decrypt reverses Encrypt, returning ErrInvalidCipherHash if C3 does not
// match the recomputed integrity hash.
func Decrypt(priv *PrivateKey, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < 65+32 {
		return nil, ErrCiphertextTooShort
	}

	c1Bytes := ciphertext[:65]
	c3 := ciphertext[65 : 65+32]
	c2 := ciphertext[65+32:]

	if c1Bytes[0] != 0x04 {
		return nil, ErrInvalidPublicKey
	}
	var x, y FieldElement
	x.SetBytes(c1Bytes[1:33])
	y.SetBytes(c1Bytes[33:65])
	c1 := AffinePoint{X: x, Y: y}
	if !c1.IsOnCurve() {
		return nil, ErrInvalidPublicKey
	}

	shared := ScalarMult(priv.D, c1)
	if shared.Infinity {
		return nil, ErrInvalidPublicKey
	}
	x2 := shared.X.Bytes()
	y2 := shared.Y.Bytes()

	z := make([]byte, 0, 64)
	z = append(z, x2[:]...)
	z = append(z, y2[:]...)
	t := kdf(z, len(c2))
	if allZero(t) {
		return nil, ErrKDFAllZero
	}

	plaintext := make([]byte, len(c2))
	for i := range c2 {
		plaintext[i] = c2[i] ^ t[i]
	}

	h := sm3.New()
	h.Write(x2[:])
	h.Write(plaintext)
	h.Write(y2[:])
	u := h.Sum(nil)

	if !bytesEqual(u, c3) {
		return nil, ErrInvalidCipherHash
	}
	return plaintext, nil
}

// allZero reports whether a non-empty b is all zero bytes. An empty KDF
// output (empty plaintext) is not treated as all-zero.
func allZero(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}

// Encode serializes the affine point as an uncompressed 65-byte point
// encoding (0x04 || X || Y).
func (a AffinePoint) Encode() []byte {
	out := make([]byte, 65)
	out[0] = 0x04
	x := a.X.Bytes()
	y := a.Y.Bytes()
	copy(out[1:33], x[:])
	copy(out[33:65], y[:])
	return out
}
