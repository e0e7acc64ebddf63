package sm2

// Verify checks signature sig over digest e against public key pub, per
// spec.md §4.6:
//
//	t = (r + s) mod n        (reject if t == 0)
//	(x1, y1) = s*G + t*PA
//	R = (e + x1) mod n       accept iff R == r
func Verify(e [32]byte, pub *PublicKey, sig *Signature) bool {
	var eScalar ScalarField
	eScalar.SetBytes(e[:])

	t := sig.R.Add(sig.S)
	if t.IsZero() {
		return false
	}

	sg := ScalarBaseMult(sig.S)
	tpa := ScalarMult(t, pub.Point)
	sum := JacobianFromAffine(sg).Add(JacobianFromAffine(tpa)).ToAffine()
	if sum.Infinity {
		return false
	}

	x1 := scalarFromU256(u256FromField(sum.X))
	r := eScalar.Add(x1)

	return r.Equal(sig.R)
}
