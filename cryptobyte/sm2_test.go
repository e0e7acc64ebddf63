package cryptobyte

import (
	"bytes"
	"math/big"
	"testing"
)

func TestSM2SignatureRoundTrip(t *testing.T) {
	r := big.NewInt(0x1234567890abcdef)
	s := new(big.Int).SetUint64(0xfedcba0987654321)

	der, err := MarshalSM2Signature(r, s)
	if err != nil {
		t.Fatal(err)
	}

	gotR, gotS, err := ParseSM2Signature(der)
	if err != nil {
		t.Fatal(err)
	}
	if gotR.Cmp(r) != 0 || gotS.Cmp(s) != 0 {
		t.Fatalf("round trip mismatch: got r=%v s=%v, want r=%v s=%v", gotR, gotS, r, s)
	}
}

func TestSM2SignatureRejectsTrailingData(t *testing.T) {
	der, err := MarshalSM2Signature(big.NewInt(1), big.NewInt(2))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := ParseSM2Signature(append(der, 0x00)); err == nil {
		t.Fatal("expected error for trailing data")
	}
}

func TestSM2CipherRoundTrip(t *testing.T) {
	x := new(big.Int).SetBytes(bytes.Repeat([]byte{0x11}, 32))
	y := new(big.Int).SetBytes(bytes.Repeat([]byte{0x22}, 32))
	var hash [32]byte
	for i := range hash {
		hash[i] = byte(i)
	}
	cipherText := []byte("the quick brown fox")

	der, err := MarshalSM2Cipher(x, y, hash, cipherText)
	if err != nil {
		t.Fatal(err)
	}

	gotX, gotY, gotHash, gotCipherText, err := ParseSM2Cipher(der)
	if err != nil {
		t.Fatal(err)
	}
	if gotX.Cmp(x) != 0 || gotY.Cmp(y) != 0 {
		t.Fatal("x/y mismatch")
	}
	if gotHash != hash {
		t.Fatal("hash mismatch")
	}
	if !bytes.Equal(gotCipherText, cipherText) {
		t.Fatal("cipherText mismatch")
	}
}

func TestSM2CipherRejectsWrongHashLength(t *testing.T) {
	b := NewBuilder(nil)
	b.AddASN1Sequence(func(c *Builder) {
		c.AddASN1BigInt(big.NewInt(1))
		c.AddASN1BigInt(big.NewInt(2))
		c.AddASN1OctetString([]byte("too short"))
		c.AddASN1OctetString([]byte("ct"))
	})
	der, err := b.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	if _, _, _, _, err := ParseSM2Cipher(der); err == nil {
		t.Fatal("expected error for wrong-length hash field")
	}
}
