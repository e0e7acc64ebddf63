//go:build arm64

package sm3

// compressNEON is the arm64 dispatch target selected by selectCompress
// when the host supports NEON. Portable Go body, per SPEC_FULL.md's note
// on SIMD backends.
func compressNEON(s *[8]uint32, p []byte) []byte { return compressGeneric(s, p) }

// compressAVX512, compressAVX2, and compressSSE2 never dispatch on arm64
// but must exist so dispatch.go compiles for every platform.
func compressAVX512(s *[8]uint32, p []byte) []byte { return compressGeneric(s, p) }
func compressAVX2(s *[8]uint32, p []byte) []byte   { return compressGeneric(s, p) }
func compressSSE2(s *[8]uint32, p []byte) []byte   { return compressGeneric(s, p) }
