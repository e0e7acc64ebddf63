package sm3

import "encoding/binary"

// finalizeState pads the buffered tail (fewer than BlockSize bytes) and
// runs the closing compress pass(es) on a copy of s via compress, writing
// the digest to out. Shared by Digest.finalize (which passes the
// dispatched backend) and the multi-lane Sum* functions below (which have
// no per-lane backend to dispatch and always pass compressGeneric), so
// every caller pads and emits identically.
func finalizeState(s [8]uint32, tail []byte, lenBits uint64, compress compressFunc, out *[32]byte) {
	var buf [BlockSize * 2]byte
	copy(buf[:], tail)
	n := len(tail)
	buf[n] = 0x80
	n++
	nn := BlockSize
	if n > BlockSize-8 {
		nn += BlockSize
	}
	binary.BigEndian.PutUint64(buf[nn-8:nn], lenBits)

	compress(&s, buf[:nn])
	for i := 0; i < 8; i++ {
		binary.BigEndian.PutUint32(out[4*i:], s[i])
	}
}

// sumEqualLanes hashes n independent messages of identical length in
// lockstep: every lane advances one block at a time through its own
// chaining state, the way the reference's SSE2/AVX2/AVX512/NEON lane
// backends step one vector-register-wide block per iteration instead of
// looping over messages one at a time. The portable-Go body here runs each
// lane's compressGeneric in an ordinary loop rather than an actual wide
// vector instruction (see sm3/dispatch.go's note on backend bodies), but
// preserves the lockstep structure and produces bit-identical output to
// hashing each message alone — the property spec.md §8 invariant 8 checks.
func sumEqualLanes(msgs [][]byte) [][32]byte {
	n := len(msgs)
	length := len(msgs[0])
	for _, m := range msgs {
		if len(m) != length {
			panic("sm3: sumEqualLanes requires equal-length messages")
		}
	}

	states := make([][8]uint32, n)
	for i := range states {
		states[i] = iv
	}

	blocks := length / BlockSize
	for b := 0; b < blocks; b++ {
		off := b * BlockSize
		for lane := 0; lane < n; lane++ {
			compressGeneric(&states[lane], msgs[lane][off:off+BlockSize])
		}
	}

	lenBits := uint64(length) * 8
	out := make([][32]byte, n)
	for lane := 0; lane < n; lane++ {
		finalizeState(states[lane], msgs[lane][blocks*BlockSize:], lenBits, compressGeneric, &out[lane])
	}
	return out
}

// SumEqual4 computes the SM3 digest of four messages of identical length,
// stepping all four lanes through the same block offset in lockstep —
// grounded on the reference's sum_equal4 (sm3_simd/aarch64.rs).
func SumEqual4(m [4][]byte) [4][32]byte {
	res := sumEqualLanes(m[:])
	var out [4][32]byte
	copy(out[:], res)
	return out
}

// SumEqual8 is SumEqual4 widened to eight lanes, grounded on the
// reference's sum_equal8 (sm3_simd/amd64/avx2.rs).
func SumEqual8(m [8][]byte) [8][32]byte {
	res := sumEqualLanes(m[:])
	var out [8][32]byte
	copy(out[:], res)
	return out
}

// SumEqual16 is SumEqual4 widened to sixteen lanes, grounded on the
// reference's sum_equal16 (sm3_simd/amd64/avx512.rs).
func SumEqual16(m [16][]byte) [16][32]byte {
	res := sumEqualLanes(m[:])
	var out [16][32]byte
	copy(out[:], res)
	return out
}

// Sum4 hashes four messages of possibly unequal length in parallel,
// grounded on the reference's sum4 (sm3_simd/aarch64.rs): lanes advance
// together through their shared whole-block prefix, then a masked drain
// loop lets the lanes with leftover whole blocks keep advancing while
// shorter lanes idle — their chaining state untouched — until every lane
// has fewer than BlockSize bytes left, at which point each lane pads and
// finalizes independently against its own total length.
func Sum4(m [4][]byte) [4][32]byte {
	var states [4][8]uint32
	for i := range states {
		states[i] = iv
	}

	minLen := len(m[0])
	for _, mi := range m[1:] {
		if len(mi) < minLen {
			minLen = len(mi)
		}
	}

	blocks := minLen / BlockSize
	for b := 0; b < blocks; b++ {
		off := b * BlockSize
		for lane := 0; lane < 4; lane++ {
			compressGeneric(&states[lane], m[lane][off:off+BlockSize])
		}
	}

	var rest [4][]byte
	for lane := range rest {
		rest[lane] = m[lane][blocks*BlockSize:]
	}

	for {
		var mask uint32
		for lane := 0; lane < 4; lane++ {
			if len(rest[lane]) >= BlockSize {
				mask |= 1 << uint(lane)
			}
		}
		if mask == 0 {
			break
		}
		for lane := 0; lane < 4; lane++ {
			if mask&(1<<uint(lane)) == 0 {
				continue
			}
			compressGeneric(&states[lane], rest[lane][:BlockSize])
			rest[lane] = rest[lane][BlockSize:]
		}
	}

	var out [4][32]byte
	for lane := 0; lane < 4; lane++ {
		lenBits := uint64(len(m[lane])) * 8
		finalizeState(states[lane], rest[lane], lenBits, compressGeneric, &out[lane])
	}
	return out
}
