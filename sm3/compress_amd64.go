//go:build amd64

package sm3

// compressAVX512, compressAVX2, and compressSSE2 are the amd64 dispatch
// targets selected by selectCompress. Per SPEC_FULL.md's note on SIMD
// bodies, these are portable Go rather than hand-written vector assembly;
// the dispatch table and capability detection they sit behind are real.
func compressAVX512(s *[8]uint32, p []byte) []byte { return compressGeneric(s, p) }
func compressAVX2(s *[8]uint32, p []byte) []byte   { return compressGeneric(s, p) }
func compressSSE2(s *[8]uint32, p []byte) []byte   { return compressGeneric(s, p) }

// compressNEON never dispatches on amd64 (selectCompress only reaches it
// when cpu.Features.HasNEON is set, which detect() never sets on this
// arch) but must exist so dispatch.go compiles for every platform.
func compressNEON(s *[8]uint32, p []byte) []byte { return compressGeneric(s, p) }
