package sm2

import "testing"

func TestGeneratorIsOnCurve(t *testing.T) {
	if !Generator.IsOnCurve() {
		t.Fatal("Generator is not on curve")
	}
}

func TestInfinityIsOnCurve(t *testing.T) {
	if !InfinityAffine.IsOnCurve() {
		t.Fatal("InfinityAffine.IsOnCurve() = false")
	}
}

func TestJacobianAffineRoundTrip(t *testing.T) {
	j := JacobianFromAffine(Generator)
	got := j.ToAffine()
	if !got.Equal(Generator) {
		t.Fatalf("round trip mismatch: got (%x, %x), want Generator", got.X.Bytes(), got.Y.Bytes())
	}
}

func TestDoubleMatchesAdd(t *testing.T) {
	g := JacobianFromAffine(Generator)
	doubled := g.Double()
	added := g.Add(g)
	if !doubled.ToAffine().Equal(added.ToAffine()) {
		t.Fatal("Double(G) != Add(G, G)")
	}
}

func TestAddInfinityIsIdentity(t *testing.T) {
	g := JacobianFromAffine(Generator)
	var inf JacobianPoint
	if !inf.IsInfinity() {
		t.Fatal("zero-value JacobianPoint is not infinity")
	}
	if !g.Add(inf).ToAffine().Equal(Generator) {
		t.Fatal("G + infinity != G")
	}
	if !inf.Add(g).ToAffine().Equal(Generator) {
		t.Fatal("infinity + G != G")
	}
}

func TestAddNegationIsInfinity(t *testing.T) {
	g := JacobianFromAffine(Generator)
	sum := g.Add(g.Negate())
	if !sum.IsInfinity() {
		t.Fatal("G + (-G) is not infinity")
	}
}

func TestScalarMultAgreesWithBaseMult(t *testing.T) {
	k := NewScalarFieldFromUint64(12345)
	base := ScalarBaseMult(k)
	slow := ScalarMultGeneratorSlow(k)
	if !base.Equal(slow) {
		t.Fatalf("ScalarBaseMult and ScalarMult(k, G) disagree: %x vs %x", base.X.Bytes(), slow.X.Bytes())
	}
}

func TestScalarMultResultIsOnCurve(t *testing.T) {
	k := NewScalarFieldFromUint64(987654321)
	p := ScalarMult(k, Generator)
	if !p.IsOnCurve() {
		t.Fatal("k*G is not on curve")
	}
}

func TestScalarMultZeroIsInfinity(t *testing.T) {
	p := ScalarMult(ScalarField{}, Generator)
	if !p.Infinity {
		t.Fatal("0*G is not infinity")
	}
}

func TestSetXOddRecoversGenerator(t *testing.T) {
	odd := Generator.Y.IsOdd()
	p, ok := SetXOdd(Generator.X, odd)
	if !ok {
		t.Fatal("SetXOdd failed to recover a point from Generator.X")
	}
	if !p.Equal(Generator) {
		t.Fatalf("SetXOdd(Generator.X, %v) = (%x, %x), want Generator", odd, p.X.Bytes(), p.Y.Bytes())
	}
}
