package sm2

import "io"

// Signature is an SM2 signature (r, s), both elements of GF(n).
type Signature struct {
	R, S ScalarField
}

// Sign computes an SM2 signature over digest e (normally DigestMessage's
// output) using private key d and ephemeral nonce k, per spec.md §4.5:
//
//	(x1, y1) = k*G
//	r = (e + x1) mod n
//	s = (1+d)^-1 * (k - r*d) mod n
//
// Returns ErrZeroSignature if r == 0, r+k == n, or s == 0 — per OQ-2 the
// caller is expected to retry with a fresh k rather than have Sign loop
// internally.
func Sign(e [32]byte, priv *PrivateKey, k ScalarField) (*Signature, error) {
	if k.IsZero() {
		return nil, ErrZeroSignature
	}

	kg := ScalarBaseMult(k)
	x1 := scalarFromU256(u256FromField(kg.X))

	var eScalar ScalarField
	eScalar.SetBytes(e[:])

	r := eScalar.Add(x1)
	if r.IsZero() {
		return nil, ErrZeroSignature
	}

	rPlusK := r.Add(k)
	if rPlusK.IsZero() {
		return nil, ErrZeroSignature
	}

	rd := r.Mul(priv.D)
	s := priv.InvDPlus1.Mul(k.Sub(rd))
	if s.IsZero() {
		return nil, ErrZeroSignature
	}

	return &Signature{R: r, S: s}, nil
}

// SignWithRand signs digest e with a freshly drawn nonce, retrying
// internally on the rare ErrZeroSignature condition so callers get a
// simple infallible-looking API. randSource is typically crypto/rand.Reader.
func SignWithRand(randSource io.Reader, e [32]byte, priv *PrivateKey) (*Signature, error) {
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
		sig, err := Sign(e, priv, k)
		if err == ErrZeroSignature {
			continue
		}
		return sig, err
	}
}
