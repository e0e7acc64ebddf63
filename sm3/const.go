package sm3

// BlockSize is the SM3 compression function's input block size in bytes.
const BlockSize = 64

// Size is the SM3 digest size in bytes.
const Size = 32

// iv is the initial chaining value, GM/T 0004-2012 section 4.1.
var iv = [8]uint32{
	0x7380166f, 0x4914b2b9, 0x172442d7, 0xda8a0600,
	0xa96f30bc, 0x163138aa, 0xe38dee4d, 0xb0fb0e4e,
}

// defaultIDState and defaultIDBlock are the chaining value and partial
// final block that result from hashing the 146-byte Z_A prefix
// ENTL || "1234567812345678" || a || b || Gx || Gy of the SM2 default user
// identifier, per spec.md §3: two compressed blocks plus 18 buffered bytes,
// precomputed so NewWithDefaultID need not hash 146 bytes on every call.
var defaultIDState = [8]uint32{
	0xadadedb5, 0x0446043f,
	0x08a87ace, 0xe86d2243,
	0x8e232383, 0xbfc81fe2,
	0xcf9117c8, 0x4707011d,
}

var defaultIDBlock = [18]byte{
	0x21, 0x53, 0xd0, 0xa9, 0x87, 0x7c, 0xc6, 0x2a, 0x47, 0x40, 0x02, 0xdf, 0x32, 0xe5, 0x21, 0x39, 0xf0, 0xa0,
}

// t holds the per-round constant Tj already pre-rotated by (j mod 32) bits,
// so compress can add t[j] directly with no further rotation (Tj =
// 0x79cc4519 for j<16, 0x7a879d8a for j>=16).
var t = [64]uint32{
	0x79cc4519, 0xf3988a32, 0xe7311465, 0xce6228cb, 0x9cc45197, 0x3988a32f, 0x7311465e, 0xe6228cbc,
	0xcc451979, 0x988a32f3, 0x311465e7, 0x6228cbce, 0xc451979c, 0x88a32f39, 0x11465e73, 0x228cbce6,
	0x9d8a7a87, 0x3b14f50f, 0x7629ea1e, 0xec53d43c, 0xd8a7a879, 0xb14f50f3, 0x629ea1e7, 0xc53d43ce,
	0x8a7a879d, 0x14f50f3b, 0x29ea1e76, 0x53d43cec, 0xa7a879d8, 0x4f50f3b1, 0x9ea1e762, 0x3d43cec5,
	0x7a879d8a, 0xf50f3b14, 0xea1e7629, 0xd43cec53, 0xa879d8a7, 0x50f3b14f, 0xa1e7629e, 0x43cec53d,
	0x879d8a7a, 0x0f3b14f5, 0x1e7629ea, 0x3cec53d4, 0x79d8a7a8, 0xf3b14f50, 0xe7629ea1, 0xcec53d43,
	0x9d8a7a87, 0x3b14f50f, 0x7629ea1e, 0xec53d43c, 0xd8a7a879, 0xb14f50f3, 0x629ea1e7, 0xc53d43ce,
	0x8a7a879d, 0x14f50f3b, 0x29ea1e76, 0x53d43cec, 0xa7a879d8, 0x4f50f3b1, 0x9ea1e762, 0x3d43cec5,
}
