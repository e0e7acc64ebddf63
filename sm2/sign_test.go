package sm2

import (
	"crypto/rand"
	"testing"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	priv, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	e := DigestMessage(&priv.Public, []byte("message to sign"))
	sig, err := SignWithRand(rand.Reader, e, priv)
	if err != nil {
		t.Fatal(err)
	}
	if !Verify(e, &priv.Public, sig) {
		t.Fatal("Verify rejected a freshly produced signature")
	}
}

func TestVerifyRejectsWrongMessage(t *testing.T) {
	priv, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	e := DigestMessage(&priv.Public, []byte("original message"))
	sig, err := SignWithRand(rand.Reader, e, priv)
	if err != nil {
		t.Fatal(err)
	}
	wrongE := DigestMessage(&priv.Public, []byte("tampered message"))
	if Verify(wrongE, &priv.Public, sig) {
		t.Fatal("Verify accepted a signature over a different message")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	priv, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	other, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	e := DigestMessage(&priv.Public, []byte("message"))
	sig, err := SignWithRand(rand.Reader, e, priv)
	if err != nil {
		t.Fatal(err)
	}
	if Verify(e, &other.Public, sig) {
		t.Fatal("Verify accepted a signature under an unrelated public key")
	}
}

func TestSignRejectsZeroNonce(t *testing.T) {
	priv, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	e := DigestMessage(&priv.Public, []byte("message"))
	_, err = Sign(e, priv, ScalarField{})
	if err != ErrZeroSignature {
		t.Fatalf("Sign with k=0: got err %v, want ErrZeroSignature", err)
	}
}

// TestSignWithDPlain signs with the private key d=1, recomputing Z_A with
// the default identifier, and checks the signature verifies — the smallest
// nontrivial private key exercises the full Sign/Verify path end to end.
func TestSignWithDPlain(t *testing.T) {
	d := NewScalarFieldFromUint64(1)
	priv := NewPrivateKey(d)

	if !priv.Public.Point.Equal(Generator) {
		t.Fatalf("public key for d=1 is not the generator: got (%x, %x)",
			priv.Public.Point.X.Bytes(), priv.Public.Point.Y.Bytes())
	}

	e := DigestMessage(&priv.Public, []byte("sm2 test message"))
	sig, err := SignWithRand(rand.Reader, e, priv)
	if err != nil {
		t.Fatal(err)
	}
	if !Verify(e, &priv.Public, sig) {
		t.Fatal("Verify rejected a d=1 signature")
	}
}

func TestSignatureBytesRoundTrip(t *testing.T) {
	priv, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	e := DigestMessage(&priv.Public, []byte("message"))
	sig, err := SignWithRand(rand.Reader, e, priv)
	if err != nil {
		t.Fatal(err)
	}

	rBytes := sig.R.Bytes()
	sBytes := sig.S.Bytes()

	var decoded Signature
	if decoded.R.SetBytes(rBytes[:]) {
		t.Fatal("r overflowed while decoding a value produced by Bytes()")
	}
	if decoded.S.SetBytes(sBytes[:]) {
		t.Fatal("s overflowed while decoding a value produced by Bytes()")
	}
	if !Verify(e, &priv.Public, &decoded) {
		t.Fatal("signature re-parsed from its byte encoding does not verify")
	}
}
