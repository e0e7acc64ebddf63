package sm2

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	priv, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	plaintext := []byte("SM2 public key encryption round trip test message")

	ciphertext, err := Encrypt(rand.Reader, &priv.Public, plaintext)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decrypt(priv, ciphertext)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip mismatch: got %q, want %q", got, plaintext)
	}
}

func TestEncryptDecryptEmptyPlaintext(t *testing.T) {
	priv, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	ciphertext, err := Encrypt(rand.Reader, &priv.Public, nil)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decrypt(priv, ciphertext)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty plaintext, got %x", got)
	}
}

func TestDecryptRejectsTamperedCiphertext(t *testing.T) {
	priv, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	ciphertext, err := Encrypt(rand.Reader, &priv.Public, []byte("message"))
	if err != nil {
		t.Fatal(err)
	}
	tampered := bytes.Clone(ciphertext)
	tampered[len(tampered)-1] ^= 0xff

	if _, err := Decrypt(priv, tampered); err != ErrInvalidCipherHash {
		t.Fatalf("Decrypt(tampered): got err %v, want ErrInvalidCipherHash", err)
	}
}

func TestDecryptRejectsShortCiphertext(t *testing.T) {
	priv, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decrypt(priv, make([]byte, 10)); err != ErrCiphertextTooShort {
		t.Fatalf("Decrypt(short): got err %v, want ErrCiphertextTooShort", err)
	}
}

func TestPublicKeyBytesRoundTrip(t *testing.T) {
	priv, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	encoded := priv.Public.Bytes()
	pub, err := PublicKeyFromBytes(encoded[:])
	if err != nil {
		t.Fatal(err)
	}
	if !pub.Point.Equal(priv.Public.Point) {
		t.Fatal("public key did not survive a Bytes/PublicKeyFromBytes round trip")
	}
}

func TestPrivateKeyBytesRoundTrip(t *testing.T) {
	priv, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	encoded := priv.Bytes()
	decoded, err := PrivateKeyFromBytes(encoded[:])
	if err != nil {
		t.Fatal(err)
	}
	if !decoded.D.Equal(priv.D) {
		t.Fatal("private scalar did not survive a Bytes/PrivateKeyFromBytes round trip")
	}
}

func TestPrivateKeyFromBytesRejectsZero(t *testing.T) {
	var zero [32]byte
	if _, err := PrivateKeyFromBytes(zero[:]); err != ErrInvalidPrivateKey {
		t.Fatalf("PrivateKeyFromBytes(0): got err %v, want ErrInvalidPrivateKey", err)
	}
}
