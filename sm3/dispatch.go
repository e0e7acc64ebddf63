package sm3

import (
	"sync"

	"github.com/opengm-libs/opengm-crypto/internal/cpu"
)

// compressFunc matches compressGeneric's signature: compress whole blocks
// of p into s, return the unconsumed tail.
type compressFunc func(s *[8]uint32, p []byte) []byte

var (
	dispatchOnce sync.Once
	activeCompress compressFunc
)

// getCompress selects the compression backend once per process, in
// priority order AVX512F+BW > AVX2+AVX > SSSE3+SSE2 > NEON > generic, per
// spec.md §4.8.
// Every named backend below is implemented as portable Go rather than
// hand-written vector assembly (see SPEC_FULL.md's note on SIMD bodies);
// the dispatch and caching machinery itself is real.
func getCompress() compressFunc {
	dispatchOnce.Do(func() {
		activeCompress = selectCompress()
	})
	return activeCompress
}

func selectCompress() compressFunc {
	f := cpu.Get()
	switch {
	case f.HasAVX512F && f.HasAVX512BW:
		return compressAVX512
	case f.HasAVX2 && f.HasAVX:
		return compressAVX2
	case f.HasSSSE3 && f.HasSSE2:
		return compressSSE2
	case f.HasNEON:
		return compressNEON
	default:
		return compressGeneric
	}
}
