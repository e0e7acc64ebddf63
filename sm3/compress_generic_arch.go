//go:build !amd64 && !arm64

package sm3

// On architectures with no SIMD backend wired, every dispatch target
// collapses to the portable implementation.
func compressAVX512(s *[8]uint32, p []byte) []byte { return compressGeneric(s, p) }
func compressAVX2(s *[8]uint32, p []byte) []byte   { return compressGeneric(s, p) }
func compressSSE2(s *[8]uint32, p []byte) []byte   { return compressGeneric(s, p) }
func compressNEON(s *[8]uint32, p []byte) []byte   { return compressGeneric(s, p) }
