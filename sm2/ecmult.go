package sm2

// ecmultTable holds odd multiples 1*P, 3*P, 5*P, ..., 15*P of a point,
// stored affine; selectBoothTerm lifts the chosen entry to Jacobian form
// and the main loop adds it with the generic Jacobian Add. Used by
// ScalarMult for a fixed-window signed-digit multiplication, grounded on
// the teacher's ecmult.go strategy table but windowed at 4 bits (8 entries,
// odd multiples only) rather than the teacher's wider secp256k1-tuned
// tables.
type ecmultTable struct {
	odd [8]AffinePoint // 1P, 3P, 5P, ..., 15P
}

func buildEcmultTable(p AffinePoint) ecmultTable {
	var tbl ecmultTable
	j := JacobianFromAffine(p)
	doubled := j.Double() // 2P, used to step between consecutive odd multiples

	tbl.odd[0] = p
	cur := j
	for i := 1; i < 8; i++ {
		cur = cur.Add(doubled)
		tbl.odd[i] = cur.ToAffine()
	}
	return tbl
}

// booth4 extracts a width-5 signed digit window (4-bit magnitude, one sign
// bit folded via carry) from a 256-bit scalar's plain limb representation,
// per the Booth recoding spec.md §4.4 calls for. windows runs from the
// least-significant group to the most-significant; ScalarMult consumes them
// high-to-low.
func booth4Windows(k [4]uint64) (digits [64]int8) {
	var borrow uint64
	for w := 0; w < 64; w++ {
		bitpos := w * 4
		raw := extractBits(k, bitpos, 5) + borrow
		borrow = 0
		d := int8(raw)
		if d > 16 {
			d -= 32
			borrow = 1
		}
		digits[w] = d
	}
	return digits
}

// extractBits returns the `width` bits of k starting at bit index `start`
// (width <= 64, may straddle two limbs).
func extractBits(k [4]uint64, start, width int) uint64 {
	limb := start / 64
	off := uint(start % 64)
	lo := k[limb] >> off
	if off+uint(width) > 64 && limb+1 < 4 {
		lo |= k[limb+1] << (64 - off)
	}
	return lo & ((1 << uint(width)) - 1)
}

// ScalarMult computes k*P for an arbitrary point P using a signed 5-bit
// Booth-windowed double-and-add, consulting a small precomputed odd-
// multiple table. Every window runs the identical sequence — four doublings
// then one selectBoothTerm scan and add — regardless of the digit's value,
// so neither the doubling count nor the table access pattern depends on k.
// Doubling the accumulator before its first nonzero term is a harmless
// no-op (Double of the point at infinity is the point at infinity), so the
// loop need not special-case the most significant window.
func ScalarMult(k ScalarField, p AffinePoint) AffinePoint {
	if p.Infinity {
		return InfinityAffine
	}
	kPlain := k.toPlain()

	tbl := buildEcmultTable(p)
	digits := booth4Windows(kPlain)

	var acc JacobianPoint
	for w := 63; w >= 0; w-- {
		for i := 0; i < 4; i++ {
			acc = acc.Double()
		}
		acc = acc.Add(selectBoothTerm(tbl, digits[w]))
	}
	return acc.ToAffine()
}

// ScalarMultGeneratorSlow computes k*G the same general way as ScalarMult,
// without the precomputed wide table ScalarBaseMult uses. Exposed for
// tests that cross-check ScalarBaseMult against a simple, obviously-correct
// reference path.
func ScalarMultGeneratorSlow(k ScalarField) AffinePoint {
	return ScalarMult(k, Generator)
}
