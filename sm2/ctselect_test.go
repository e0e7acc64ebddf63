package sm2

import "testing"

func TestCtAbsSign(t *testing.T) {
	cases := []struct {
		d       int8
		wantMag uint8
		wantNeg uint64
	}{
		{0, 0, 0},
		{1, 1, 0},
		{15, 15, 0},
		{-1, 1, 1},
		{-15, 15, 1},
	}
	for _, c := range cases {
		mag, neg := ctAbsSign(c.d)
		if mag != c.wantMag || neg != c.wantNeg {
			t.Fatalf("ctAbsSign(%d) = (%d, %d), want (%d, %d)", c.d, mag, neg, c.wantMag, c.wantNeg)
		}
	}
}

func TestCtEqByte(t *testing.T) {
	if ctEqByte(5, 5) != 1 {
		t.Fatal("ctEqByte(5,5) != 1")
	}
	if ctEqByte(5, 6) != 0 {
		t.Fatal("ctEqByte(5,6) != 0")
	}
	if ctEqByte(0, 0) != 1 {
		t.Fatal("ctEqByte(0,0) != 1")
	}
	if ctEqByte(255, 0) != 0 {
		t.Fatal("ctEqByte(255,0) != 0")
	}
}

func TestSelectBoothTermMatchesDirectLookup(t *testing.T) {
	tbl := buildEcmultTable(Generator)

	for i := 0; i < 8; i++ {
		d := int8(2*i + 1)
		got := selectBoothTerm(tbl, d)
		want := JacobianFromAffine(tbl.odd[i])
		if !got.ToAffine().Equal(want.ToAffine()) {
			t.Fatalf("selectBoothTerm(%d) = %x, want table entry %d", d, got.ToAffine().X.Bytes(), i)
		}

		neg := selectBoothTerm(tbl, -d)
		wantNeg := JacobianFromAffine(tbl.odd[i]).Negate()
		if !neg.ToAffine().Equal(wantNeg.ToAffine()) {
			t.Fatalf("selectBoothTerm(%d) did not negate table entry %d", -d, i)
		}
	}
}

func TestSelectBoothTermZeroIsInfinity(t *testing.T) {
	tbl := buildEcmultTable(Generator)
	got := selectBoothTerm(tbl, 0)
	if !got.IsInfinity() {
		t.Fatal("selectBoothTerm(0) is not the point at infinity")
	}
}
