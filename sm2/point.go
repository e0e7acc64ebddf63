package sm2

// AffinePoint is a point on the SM2 curve in affine coordinates. When
// Infinity is true, X and Y are unspecified and must not be read.
type AffinePoint struct {
	X, Y     FieldElement
	Infinity bool
}

// JacobianPoint is a point in Jacobian projective coordinates, representing
// the affine point (X/Z^2, Y/Z^3). Z == 0 (or the all-zero triple) denotes
// infinity. Jacobian is the working representation for all curve
// arithmetic; AffinePoint exists only at the API boundary.
type JacobianPoint struct {
	X, Y, Z FieldElement
}

// InfinityAffine is the fixed affine representative of the point at infinity.
var InfinityAffine = AffinePoint{Infinity: true}

// Generator is the SM2 recommended base point G, in affine coordinates.
var Generator = AffinePoint{
	X: FieldElement{limbs: [4]uint64{0x61328990f418029e, 0x3e7981eddca6c050, 0xd6a1ed99ac24c3c3, 0x91167a5ee1c13b05}},
	Y: FieldElement{limbs: [4]uint64{0xc1354e593c2d0ddd, 0xc1f5e5788d3295fa, 0x8d4cfb066e2a48f8, 0x63cd65d481d735bd}},
}

// IsInfinity reports whether j is the point at infinity.
func (j JacobianPoint) IsInfinity() bool {
	return j.Z.IsZero()
}

// JacobianFromAffine lifts an affine point into Jacobian coordinates.
func JacobianFromAffine(a AffinePoint) JacobianPoint {
	if a.Infinity {
		return JacobianPoint{}
	}
	return JacobianPoint{X: a.X, Y: a.Y, Z: FieldOne}
}

// ToAffine converts j to affine coordinates: (X*Z^-2, Y*Z^-3). For
// infinity it returns InfinityAffine. Invert2 and Invert3 each run a full
// Invert of Z and then square (and, for Invert3, multiply) the result, so
// one conversion costs two field inversions.
func (j JacobianPoint) ToAffine() AffinePoint {
	if j.IsInfinity() {
		return InfinityAffine
	}
	zInv2 := j.Z.Invert2()
	zInv3 := j.Z.Invert3()
	return AffinePoint{
		X: j.X.Mul(zInv2),
		Y: j.Y.Mul(zInv3),
	}
}

// Negate returns -j (mirrored around the X axis).
func (j JacobianPoint) Negate() JacobianPoint {
	if j.IsInfinity() {
		return j
	}
	return JacobianPoint{X: j.X, Y: j.Y.Negate(), Z: j.Z}
}

// Double returns 2*j using the standard Jacobian doubling formulas
// specialized for a == -3 (spec.md §4.4): M = 3(X-Z^2)(X+Z^2),
// S = 4XY^2, X' = M^2 - 2S, Y' = M(S-X') - 8Y^4, Z' = 2YZ.
func (j JacobianPoint) Double() JacobianPoint {
	if j.IsInfinity() {
		return j
	}

	z2 := j.Z.Square()
	m := j.X.Sub(z2).Mul(j.X.Add(z2)).MulSmall(3)

	y2 := j.Y.Square()
	xy2 := j.X.Mul(y2)
	s := xy2.MulSmall(4)

	x3 := m.Square().Sub(s.MulSmall(2))

	y4 := y2.Square()
	y3 := m.Mul(s.Sub(x3)).Sub(y4.MulSmall(8))

	z3 := j.Y.Mul(j.Z).MulSmall(2)

	return JacobianPoint{X: x3, Y: y3, Z: z3}
}

// Add returns a+b in Jacobian coordinates using the textbook formulas of
// spec.md §4.4. The textbook formulas fail when a == b (H and R are both
// zero), so that case is detected explicitly below and redispatched to
// Double, matching the teacher's addVar contract; a == -b (H zero, R
// nonzero) returns the point at infinity.
func (a JacobianPoint) Add(b JacobianPoint) JacobianPoint {
	if a.IsInfinity() {
		return b
	}
	if b.IsInfinity() {
		return a
	}

	z1z1 := a.Z.Square()
	z2z2 := b.Z.Square()
	u1 := a.X.Mul(z2z2)
	u2 := b.X.Mul(z1z1)
	s1 := a.Y.Mul(z2z2).Mul(b.Z)
	s2 := b.Y.Mul(z1z1).Mul(a.Z)

	h := u2.Sub(u1)
	r := s2.Sub(s1)

	if h.IsZero() {
		if r.IsZero() {
			return a.Double()
		}
		return JacobianPoint{} // negatives: result is infinity
	}

	h2 := h.Square()
	h3 := h2.Mul(h)
	u1h2 := u1.Mul(h2)

	x3 := r.Square().Sub(h3).Sub(u1h2.MulSmall(2))
	y3 := r.Mul(u1h2.Sub(x3)).Sub(s1.Mul(h3))
	z3 := a.Z.Mul(b.Z).Mul(h)

	return JacobianPoint{X: x3, Y: y3, Z: z3}
}

// AddAffine returns a (Jacobian) + b (affine) by lifting b to Jacobian
// form (Z_b == 1) and calling the generic Add; it is not a specialized
// mixed-coordinate add.
func (a JacobianPoint) AddAffine(b AffinePoint) JacobianPoint {
	if b.Infinity {
		return a
	}
	return a.Add(JacobianFromAffine(b))
}

// Equal reports whether a and b represent the same curve point.
func (a AffinePoint) Equal(b AffinePoint) bool {
	if a.Infinity && b.Infinity {
		return true
	}
	if a.Infinity != b.Infinity {
		return false
	}
	return a.X.Equal(b.X) && a.Y.Equal(b.Y)
}

// IsOnCurve reports whether a satisfies y^2 = x^3 - 3x + b.
func (a AffinePoint) IsOnCurve() bool {
	if a.Infinity {
		return true
	}
	lhs := a.Y.Square()
	three := a.X.MulSmall(3)
	rhs := a.X.Square().Mul(a.X).Sub(three).Add(FieldB)
	return lhs.Equal(rhs)
}

// SetXOdd recovers the affine point with the given X coordinate and Y
// parity (used when decompressing a compressed public key encoding).
func SetXOdd(x FieldElement, odd bool) (AffinePoint, bool) {
	three := x.MulSmall(3)
	rhs := x.Square().Mul(x).Sub(three).Add(FieldB)
	y, ok := rhs.Sqrt()
	if !ok {
		return AffinePoint{}, false
	}
	if y.IsOdd() != odd {
		y = y.Negate()
	}
	return AffinePoint{X: x, Y: y}, true
}
