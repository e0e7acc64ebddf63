package sm3

import "math/bits"

func ff0(x, y, z uint32) uint32 { return x ^ y ^ z }
func gg0(x, y, z uint32) uint32 { return x ^ y ^ z }

func ff1(x, y, z uint32) uint32 { return ((x | z) & y) | (x & z) }
func gg1(x, y, z uint32) uint32 { return z ^ (x & (y ^ z)) }

func p0(x uint32) uint32 { return x ^ bits.RotateLeft32(x, 9) ^ bits.RotateLeft32(x, 17) }
func p1(x uint32) uint32 { return x ^ bits.RotateLeft32(x, 15) ^ bits.RotateLeft32(x, 23) }

// compressGeneric runs the SM3 compression function over as many whole
// 64-byte blocks of p as are present, updating s in place, and returns the
// unconsumed tail. Grounded on the reference compress_generic routine:
// message expansion W/W' interleaved with the round transform, FF0/GG0 for
// rounds 0-15 and FF1/GG1 for rounds 16-63.
func compressGeneric(s *[8]uint32, p []byte) []byte {
	var w [68]uint32
	var wp [64]uint32

	for len(p) >= BlockSize {
		block := p[:BlockSize]

		for i := 0; i < 16; i++ {
			w[i] = uint32(block[i*4])<<24 | uint32(block[i*4+1])<<16 | uint32(block[i*4+2])<<8 | uint32(block[i*4+3])
		}
		for j := 16; j < 68; j++ {
			w[j] = p1(w[j-16]^w[j-9]^bits.RotateLeft32(w[j-3], 15)) ^ bits.RotateLeft32(w[j-13], 7) ^ w[j-6]
		}
		for j := 0; j < 64; j++ {
			wp[j] = w[j] ^ w[j+4]
		}

		a, b, c, d, e, f, g, h := s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]

		for j := 0; j < 64; j++ {
			ff, gg := ff1, gg1
			if j < 16 {
				ff, gg = ff0, gg0
			}
			ss1 := bits.RotateLeft32(bits.RotateLeft32(a, 12)+e+t[j], 7)
			ss2 := ss1 ^ bits.RotateLeft32(a, 12)
			tt1 := ff(a, b, c) + d + ss2 + wp[j]
			tt2 := gg(e, f, g) + h + ss1 + w[j]
			d = c
			c = bits.RotateLeft32(b, 9)
			b = a
			a = tt1
			h = g
			g = bits.RotateLeft32(f, 19)
			f = e
			e = p0(tt2)
		}

		s[0] ^= a
		s[1] ^= b
		s[2] ^= c
		s[3] ^= d
		s[4] ^= e
		s[5] ^= f
		s[6] ^= g
		s[7] ^= h

		p = p[BlockSize:]
	}
	return p
}
