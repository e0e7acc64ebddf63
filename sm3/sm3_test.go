package sm3

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestSumAbc(t *testing.T) {
	got := Sum256([]byte("abc"))
	want := [Size]byte{
		0x66, 0xc7, 0xf0, 0xf4, 0x62, 0xee, 0xed, 0xd9, 0xd1, 0xf2, 0xd4, 0x6b, 0xdc, 0x10, 0xe4, 0xe2,
		0x41, 0x67, 0xc4, 0x87, 0x5c, 0xf2, 0xf7, 0xa2, 0x29, 0x7d, 0xa0, 0x2b, 0x8f, 0x4b, 0xa8, 0xe0,
	}
	if got != want {
		t.Fatalf("Sum256(abc) = % x, want % x", got, want)
	}
}

func TestWriteSplitMatchesSingleShot(t *testing.T) {
	msg := bytes.Repeat([]byte{0x01}, 64)

	d1 := New()
	d1.Write(msg[:32])
	d1.Write(msg[32:])

	d2 := New()
	d2.Write(msg)

	if !bytes.Equal(d1.Sum(nil), d2.Sum(nil)) {
		t.Fatal("incremental Write diverges from single-shot Write")
	}
}

func TestSumDoesNotMutateState(t *testing.T) {
	d := New()
	d.Write([]byte("abc"))
	first := d.Sum(nil)
	second := d.Sum(nil)
	if !bytes.Equal(first, second) {
		t.Fatal("Sum mutated digest state between calls")
	}
}

func TestNewWithDefaultIDMatchesManualPrefix(t *testing.T) {
	manual := New()
	// ENTL || "1234567812345678" || a || b || Gx || Gy: the 146-byte Z_A
	// prefix for the SM2 default user identifier.
	prefix, err := hex.DecodeString("0080" + "31323334353637383132333435363738" +
		"FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF00000000FFFFFFFFFFFFFFFC" +
		"28E9FA9E9D9F5E344D5A9E4BCF6509A7F39789F515AB8F92DDBCBD414D940E93" +
		"32C4AE2C1F1981195F9904466A39C9948FE30BBFF2660BE1715A4589334C74C7" +
		"BC3736A2F4F6779C59BDCEE36B692153D0A9877CC62A474002DF32E52139F0A0")
	if err != nil {
		t.Fatal(err)
	}
	manual.Write(prefix)
	manual.Write([]byte("rest of message"))

	seeded := NewWithDefaultID()
	seeded.Write([]byte("rest of message"))

	if !bytes.Equal(manual.Sum(nil), seeded.Sum(nil)) {
		t.Fatal("NewWithDefaultID's precomputed state diverges from hashing the identifier manually")
	}
}
