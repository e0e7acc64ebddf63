package sm4

import (
	"bytes"
	"testing"
)

func sampleKey() []byte {
	return []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10}
}

func wantCipher() []byte {
	return []byte{0x68, 0x1e, 0xdf, 0x34, 0xd2, 0x06, 0x96, 0x5e, 0x86, 0xb3, 0xe9, 0x4f, 0x53, 0x6e, 0x42, 0x46}
}

func TestEncryptKnownVector(t *testing.T) {
	key := sampleKey()
	c, err := NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	dst := make([]byte, BlockSize)
	c.Encrypt(dst, key) // GM/T 0002-2012 sample uses the key bytes as plaintext too
	if !bytes.Equal(dst, wantCipher()) {
		t.Fatalf("got % x, want % x", dst, wantCipher())
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := sampleKey()
	c, err := NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	plain := []byte("0123456789abcdef")
	var cipherText, roundTrip [BlockSize]byte
	c.Encrypt(cipherText[:], plain)
	c.Decrypt(roundTrip[:], cipherText[:])
	if !bytes.Equal(roundTrip[:], plain) {
		t.Fatalf("round trip mismatch: got % x, want % x", roundTrip, plain)
	}
}

func TestEncryptBlocksMatchesSingleBlock(t *testing.T) {
	c, err := NewCipher(sampleKey())
	if err != nil {
		t.Fatal(err)
	}
	src := bytes.Repeat(sampleKey(), 5)
	dstBatch := make([]byte, len(src))
	c.EncryptBlocks(dstBatch, src)

	dstSingle := make([]byte, len(src))
	for i := 0; i < 5; i++ {
		c.Encrypt(dstSingle[i*BlockSize:], src[i*BlockSize:(i+1)*BlockSize])
	}
	if !bytes.Equal(dstBatch, dstSingle) {
		t.Fatalf("batched path diverges from single-block path")
	}
}
