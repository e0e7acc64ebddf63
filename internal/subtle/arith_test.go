package subtle

import "testing"

func TestAddSub256RoundTrip(t *testing.T) {
	a := [4]uint64{1, 2, 3, 4}
	b := [4]uint64{5, 6, 7, 8}
	sum, carry := Add256(a, b)
	if carry != 0 {
		t.Fatalf("unexpected carry")
	}
	back, borrow := Sub256(sum, b)
	if borrow != 0 || back != a {
		t.Fatalf("sub(add(a,b),b) != a: got %v borrow=%d", back, borrow)
	}
}

func TestMul256MatchesSquare256(t *testing.T) {
	a := [4]uint64{0xFFFFFFFFFFFFFFFF, 0x1, 0xDEADBEEFCAFEBABE, 0x0123456789ABCDEF}
	gotMul := Mul256(a, a)
	gotSquare := Square256(a)
	if gotMul != gotSquare {
		t.Fatalf("Square256(a) != Mul256(a,a)\n  mul=%x\n  sqr=%x", gotMul, gotSquare)
	}
}

func TestMul256Zero(t *testing.T) {
	a := [4]uint64{0, 0, 0, 0}
	b := [4]uint64{1, 2, 3, 4}
	got := Mul256(a, b)
	if got != ([8]uint64{}) {
		t.Fatalf("0*b != 0: %v", got)
	}
}

func TestMul256One(t *testing.T) {
	one := [4]uint64{1, 0, 0, 0}
	b := [4]uint64{0x1111111111111111, 0x2222222222222222, 0x3333333333333333, 0x4444444444444444}
	got := Mul256(one, b)
	want := [8]uint64{b[0], b[1], b[2], b[3], 0, 0, 0, 0}
	if got != want {
		t.Fatalf("1*b != b: got %x want %x", got, want)
	}
}

func TestSubConditional(t *testing.T) {
	m := [4]uint64{10, 0, 0, 0}
	// a >= m: should subtract.
	a := [4]uint64{20, 0, 0, 0}
	got := SubConditional(a, 0, m)
	if got != ([4]uint64{10, 0, 0, 0}) {
		t.Fatalf("expected subtraction, got %v", got)
	}
	// a < m: should not subtract.
	a = [4]uint64{5, 0, 0, 0}
	got = SubConditional(a, 0, m)
	if got != a {
		t.Fatalf("expected no-op, got %v", got)
	}
}

func TestAddConditional(t *testing.T) {
	m := [4]uint64{10, 0, 0, 0}
	a := [4]uint64{5, 0, 0, 0}
	got := AddConditional(a, 1, m)
	if got != ([4]uint64{15, 0, 0, 0}) {
		t.Fatalf("expected addition, got %v", got)
	}
	got = AddConditional(a, 0, m)
	if got != a {
		t.Fatalf("expected no-op, got %v", got)
	}
}

func TestCmpEqualIsZero(t *testing.T) {
	a := [4]uint64{1, 2, 3, 4}
	b := a
	if CmpEqual(a, b) != 1 {
		t.Fatalf("expected equal")
	}
	b[3]++
	if CmpEqual(a, b) != 0 {
		t.Fatalf("expected not equal")
	}
	if !IsZero([4]uint64{}) {
		t.Fatalf("expected zero")
	}
	if IsZero(a) {
		t.Fatalf("expected nonzero")
	}
}
