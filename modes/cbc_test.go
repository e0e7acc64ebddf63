package modes

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/opengm-libs/opengm-crypto/sm4"
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func TestCBCRoundTrip(t *testing.T) {
	key := mustHex("D54B4C962526A7A6F873695DF032BF21")
	iv := mustHex("C5FBC0E3B1F7324E256A827F91CC0D3E")

	block, err := sm4.NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}

	plaintext := bytes.Repeat([]byte{0x11}, 48)

	enc, err := NewCBCEncrypter(block, iv)
	if err != nil {
		t.Fatal(err)
	}
	ciphertext := make([]byte, len(plaintext))
	enc.CryptBlocks(ciphertext, plaintext)

	dec, err := NewCBCDecrypter(block, iv)
	if err != nil {
		t.Fatal(err)
	}
	roundTrip := make([]byte, len(ciphertext))
	dec.CryptBlocks(roundTrip, ciphertext)

	if !bytes.Equal(roundTrip, plaintext) {
		t.Fatalf("CBC round trip mismatch: got % x, want % x", roundTrip, plaintext)
	}
}

func TestCBCRejectsBadIVLength(t *testing.T) {
	block, err := sm4.NewCipher(bytes.Repeat([]byte{0x42}, 16))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewCBCEncrypter(block, make([]byte, 15)); err != ErrInvalidInputSize {
		t.Fatalf("expected ErrInvalidInputSize, got %v", err)
	}
}

func TestCBCChainingAdvancesIV(t *testing.T) {
	block, err := sm4.NewCipher(bytes.Repeat([]byte{0x7a}, 16))
	if err != nil {
		t.Fatal(err)
	}
	iv := bytes.Repeat([]byte{0x00}, 16)

	plaintext := bytes.Repeat([]byte{0xAB}, 32)
	enc, err := NewCBCEncrypter(block, iv)
	if err != nil {
		t.Fatal(err)
	}
	out := make([]byte, len(plaintext))
	enc.CryptBlocks(out, plaintext)

	if bytes.Equal(out[:16], out[16:]) {
		t.Fatal("CBC chaining did not vary repeated identical plaintext blocks")
	}
}
