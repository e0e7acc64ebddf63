package cryptobyte

import (
	"bytes"
	"math/big"
	"testing"
)

func TestLengthPrefixedNesting(t *testing.T) {
	parent := NewBuilder(nil)
	parent.AddUint8LengthPrefixed(func(child *Builder) {
		child.AddUint8(1)
		child.AddUint16LengthPrefixed(func(grandchild *Builder) {
			grandchild.AddUint8(2)
			grandchild.AddUint24LengthPrefixed(func(ggc *Builder) {
				ggc.AddUint8(3)
				ggc.AddBytes([]byte{4, 5, 6})
			})
		})
	})

	got, err := parent.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{11, 1, 0, 8, 2, 0, 0, 4, 3, 4, 5, 6}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestAddASN1Int64ShortForm(t *testing.T) {
	b := NewBuilder(nil)
	b.AddASN1Int64(1)
	got, err := b.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{2, 1, 1}) {
		t.Fatalf("got % x", got)
	}
}

func TestASN1LongFormLength(t *testing.T) {
	b := NewBuilder(nil)
	b.AddASN1Sequence(func(c *Builder) {
		c.AddBytes(bytes.Repeat([]byte{0x42}, 200))
	})
	got, err := b.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	// 0x30, 0x81, 0xc8 (=200), then 200 payload bytes.
	if got[0] != byte(TagSequence) || got[1] != 0x81 || got[2] != 200 {
		t.Fatalf("unexpected long-form header: % x", got[:3])
	}
	if len(got) != 3+200 {
		t.Fatalf("unexpected total length %d", len(got))
	}

	var s String = got
	var seq String
	if !s.ReadASN1Sequence(&seq) || !s.Empty() {
		t.Fatal("failed to parse back long-form sequence")
	}
	if len(seq) != 200 {
		t.Fatalf("parsed payload length %d, want 200", len(seq))
	}
}

func TestASN1BigIntRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 127, 128, -128, -129, 255, 256, 1 << 40, -(1 << 40)}
	for _, c := range cases {
		n := big.NewInt(c)
		b := NewBuilder(nil)
		b.AddASN1BigInt(n)
		der, err := b.Bytes()
		if err != nil {
			t.Fatalf("case %d: %v", c, err)
		}

		s := String(der)
		var got big.Int
		if !s.ReadASN1BigInt(&got) || !s.Empty() {
			t.Fatalf("case %d: failed to parse back % x", c, der)
		}
		if got.Int64() != c {
			t.Fatalf("case %d: round trip got %d", c, got.Int64())
		}
	}
}

func TestASN1BigIntMinimalNegativeEncoding(t *testing.T) {
	// -1125 DER-encodes as 02 02 fb 9b (confirmed against the reference).
	b := NewBuilder(nil)
	b.AddASN1BigInt(big.NewInt(-1125))
	got, err := b.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{2, 2, 0xfb, 0x9b}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestObjectIdentifierRoundTrip(t *testing.T) {
	oid := OIDSM2ECC()
	want := []byte{0x2A, 0x81, 0x1C, 0xCF, 0x55, 0x01, 0x82, 0x2D}
	if !bytes.Equal(oid.AsDER(), want) {
		t.Fatalf("got % x, want % x", oid.AsDER(), want)
	}

	b := NewBuilder(nil)
	b.AddASN1ObjectIdentifier(oid)
	der, err := b.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	s := String(der)
	var parsed ObjectIdentifier
	if !s.ReadASN1ObjectIdentifier(&parsed) || !s.Empty() {
		t.Fatal("failed to parse OID back")
	}
	if !parsed.Equal(oid) {
		t.Fatal("round-tripped OID does not match original")
	}
}

func TestASN1BooleanRoundTrip(t *testing.T) {
	b := NewBuilder(nil)
	b.AddASN1Boolean(false)
	b.AddASN1Boolean(true)
	der, err := b.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	s := String(der)
	var v bool
	if !s.ReadASN1Boolean(&v) || v {
		t.Fatal("expected false")
	}
	if !s.ReadASN1Boolean(&v) || !v {
		t.Fatal("expected true")
	}
	if !s.Empty() {
		t.Fatal("trailing data")
	}
}

func TestASN1RejectsNonMinimalLength(t *testing.T) {
	// tag INTEGER, long-form length "0x81 0x01" encoding 1, which should
	// have used short form; readASN1Object must reject this.
	der := []byte{2, 0x81, 0x01, 0x05}
	s := String(der)
	if _, ok := s.ReadASN1(TagInteger); ok {
		t.Fatal("accepted a non-minimal length encoding")
	}
}
