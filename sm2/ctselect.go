package sm2

// ctAbsSign splits a signed Booth digit into its unsigned magnitude and a
// 0/1 sign bit without branching on the digit's sign, so callers operating
// on secret digits (nonce or private-key windows) don't leak the sign
// through control flow.
func ctAbsSign(d int8) (mag uint8, negBit uint64) {
	sign := int32(d) >> 31 // all-ones if d < 0, else all-zero
	mag = uint8((int32(d) ^ sign) - sign)
	negBit = uint64(sign & 1)
	return
}

// ctEqByte returns 1 if a == b, 0 otherwise, computed without a branch.
func ctEqByte(a, b uint8) uint64 {
	d := uint32(a) ^ uint32(b)
	neq := (d | -d) >> 31 // top bit set iff d != 0
	return 1 - uint64(neq)
}

// selectBoothTerm scans every one of tbl's eight odd-multiple entries and
// selects the one matching d's magnitude, conditionally negates it, and
// substitutes the Jacobian point at infinity (Z == 0) when d == 0 — every
// digit value runs the same full table scan, masked negate, and Jacobian
// build, so the scalar's digits can't be distinguished by which table slot
// got touched or which branch ran. Shared by ScalarMult and ScalarBaseMult,
// whose secret inputs include private keys (ScalarBaseMult in
// NewPrivateKey, ScalarMult in Decrypt) and per-operation nonces
// (ScalarBaseMult in Sign and Encrypt, ScalarMult in Encrypt).
func selectBoothTerm(tbl ecmultTable, d int8) JacobianPoint {
	mag, negBit := ctAbsSign(d)

	var x, y FieldElement
	for i := 0; i < 8; i++ {
		bit := ctEqByte(mag, uint8(2*i+1))
		x = fieldSelect(bit, tbl.odd[i].X, x)
		y = fieldSelect(bit, tbl.odd[i].Y, y)
	}
	y = fieldSelect(negBit, y.Negate(), y)

	zeroBit := ctEqByte(mag, 0)
	z := fieldSelect(zeroBit, FieldElement{}, FieldOne)

	return JacobianPoint{X: x, Y: y, Z: z}
}
