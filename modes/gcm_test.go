package modes

import (
	"bytes"
	"testing"

	"github.com/opengm-libs/opengm-crypto/sm4"
)

type gcmVector struct {
	key, nonce, plain, add, expected []byte
}

func TestGCMStandardNonce(t *testing.T) {
	vecs := []gcmVector{
		{
			key:      mustHex("11754cd72aec309bf52f7687212e8957"),
			nonce:    mustHex("3c819d9a9bed087615030b65"),
			plain:    []byte("plaintext"),
			add:      []byte("additional message not need encrypt, empty is ok"),
			expected: mustHex("6111f78f2f82b913c20e333160bfec034c3720ac133a6203b1"),
		},
		{
			key:      mustHex("11754cd72aec309bf52f7687212e8957"),
			nonce:    mustHex("3c819d9a9bed087615030b65"),
			plain:    []byte("plaintext"),
			add:      []byte{},
			expected: mustHex("6111f78f2f82b913c29c2e12d652d7dd0d1930120b7788281d"),
		},
		{
			key:      mustHex("11754cd72aec309bf52f7687212e8957"),
			nonce:    mustHex("3c819d9a9bed087615030b65"),
			plain:    []byte("plaintext"),
			add:      nil,
			expected: mustHex("6111f78f2f82b913c29c2e12d652d7dd0d1930120b7788281d"),
		},
	}

	for i, v := range vecs {
		block, err := sm4.NewCipher(v.key)
		if err != nil {
			t.Fatal(err)
		}
		g, err := NewGCM(block)
		if err != nil {
			t.Fatal(err)
		}

		out := g.Seal(nil, v.nonce, v.plain, v.add)
		if !bytes.Equal(out, v.expected) {
			t.Fatalf("vector %d: Seal = % x, want % x", i, out, v.expected)
		}

		plain, err := g.Open(nil, v.nonce, out, v.add)
		if err != nil {
			t.Fatalf("vector %d: Open failed: %v", i, err)
		}
		if !bytes.Equal(plain, v.plain) {
			t.Fatalf("vector %d: Open = % x, want % x", i, plain, v.plain)
		}
	}
}

func TestGCMNonStandardNonce(t *testing.T) {
	key := mustHex("11754cd72aec309bf52f7687212e8957")
	nonce := mustHex("3c819d9a9bed08761503")
	plain := []byte("plaintext")
	expected := mustHex("7705c6569e9ada5811d8b7523617ca62ce1aa4a924de38a31d")

	block, err := sm4.NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	g, err := NewGCMWithNonceSize(block, len(nonce))
	if err != nil {
		t.Fatal(err)
	}

	out := g.Seal(nil, nonce, plain, nil)
	if !bytes.Equal(out, expected) {
		t.Fatalf("Seal = % x, want % x", out, expected)
	}

	got, err := g.Open(nil, nonce, out, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !bytes.Equal(got, plain) {
		t.Fatalf("Open = % x, want % x", got, plain)
	}
}

func TestGCMRejectsTamperedTag(t *testing.T) {
	block, err := sm4.NewCipher(mustHex("11754cd72aec309bf52f7687212e8957"))
	if err != nil {
		t.Fatal(err)
	}
	g, err := NewGCM(block)
	if err != nil {
		t.Fatal(err)
	}
	nonce := mustHex("3c819d9a9bed087615030b65")
	out := g.Seal(nil, nonce, []byte("plaintext"), nil)
	out[len(out)-1] ^= 0xff

	if _, err := g.Open(nil, nonce, out, nil); err != ErrAuthenticationFailed {
		t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
	}
}

func TestGCMLongPlaintextRoundTrip(t *testing.T) {
	block, err := sm4.NewCipher(bytes.Repeat([]byte{0x5a}, 16))
	if err != nil {
		t.Fatal(err)
	}
	g, err := NewGCM(block)
	if err != nil {
		t.Fatal(err)
	}
	nonce := bytes.Repeat([]byte{0x01}, 12)
	plain := bytes.Repeat([]byte{0x42}, 257) // spans several full blocks plus a partial one

	out := g.Seal(nil, nonce, plain, []byte("aad"))
	got, err := g.Open(nil, nonce, out, []byte("aad"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, plain) {
		t.Fatal("long-plaintext GCM round trip mismatch")
	}
}
