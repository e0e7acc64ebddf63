package sm2

import (
	"io"

	"github.com/opengm-libs/opengm-crypto/sm3"
)

// PublicKey is an SM2 public key: a point on the curve. Z_A is recomputed
// from it on each DigestMessage call; nothing derived from it is cached.
type PublicKey struct {
	Point AffinePoint
}

// PrivateKey is an SM2 private key. InvDPlus1 caches (1+d)^-1 mod n, the
// quantity Sign needs on every call; computing it once at construction
// avoids a modular inversion per signature.
type PrivateKey struct {
	D         ScalarField
	Public    PublicKey
	InvDPlus1 ScalarField
}

// GenerateKey produces a fresh SM2 private key using rand as the entropy
// source (typically crypto/rand.Reader).
func GenerateKey(rand io.Reader) (*PrivateKey, error) {
	for {
		var buf [32]byte
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			return nil, err
		}
		var d ScalarField
		overflow := d.SetBytes(buf[:])
		if overflow || d.IsZero() {
			continue
		}
		return NewPrivateKey(d), nil
	}
}

// NewPrivateKey builds a PrivateKey from an already-validated nonzero
// scalar, deriving and caching the public key and (1+d)^-1.
func NewPrivateKey(d ScalarField) *PrivateKey {
	pub := ScalarBaseMult(d)
	one := NewScalarFieldFromUint64(1)
	invDPlus1 := d.Add(one).Invert()
	return &PrivateKey{
		D:         d,
		Public:    PublicKey{Point: pub},
		InvDPlus1: invDPlus1,
	}
}

// PrivateKeyFromBytes parses a 32-byte big-endian scalar into a PrivateKey,
// rejecting zero and out-of-range values.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	var d ScalarField
	overflow := d.SetBytes(b)
	if overflow || d.IsZero() {
		return nil, ErrInvalidPrivateKey
	}
	return NewPrivateKey(d), nil
}

// Bytes serializes the private scalar as 32 big-endian bytes.
func (k *PrivateKey) Bytes() [32]byte {
	return k.D.Bytes()
}

// PublicKeyFromBytes parses an uncompressed SM2 public key encoding
// (0x04 || X || Y, 65 bytes) and validates curve membership.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != 65 || b[0] != 0x04 {
		return nil, ErrInvalidPublicKey
	}
	var x, y FieldElement
	x.SetBytes(b[1:33])
	y.SetBytes(b[33:65])
	p := AffinePoint{X: x, Y: y}
	if !p.IsOnCurve() {
		return nil, ErrInvalidPublicKey
	}
	return &PublicKey{Point: p}, nil
}

// Bytes serializes the public key in uncompressed form.
func (pk *PublicKey) Bytes() [65]byte {
	var out [65]byte
	out[0] = 0x04
	x := pk.Point.X.Bytes()
	y := pk.Point.Y.Bytes()
	copy(out[1:33], x[:])
	copy(out[33:65], y[:])
	return out
}

// zA computes the SM2 Z_A value: SM3(ENTL||ID||a||b||Gx||Gy||PKx||PKy).
// Only the default identifier "1234567812345678" is supported — the
// prefix ENTL||ID||a||b||Gx||Gy is pre-absorbed into the digest via
// sm3.NewWithDefaultID, per spec.md §3, so only PKx||PKy is written here.
func zA(pk *PublicKey) [32]byte {
	h := sm3.NewWithDefaultID()
	pkx := pk.Point.X.Bytes()
	pky := pk.Point.Y.Bytes()
	h.Write(pkx[:])
	h.Write(pky[:])
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// DigestMessage computes e = SM3(Z_A || M), the hash Sign and Verify both
// operate on.
func DigestMessage(pk *PublicKey, message []byte) [32]byte {
	z := zA(pk)
	h := sm3.New()
	h.Write(z[:])
	h.Write(message)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
