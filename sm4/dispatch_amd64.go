//go:build amd64

package sm4

import "github.com/opengm-libs/opengm-crypto/internal/cpu"

// selectBlocks picks the widest batch backend the host supports, in
// priority order GFNI+AVX512F+BW > VAES+AVX512F+BW > AES-NI (SSE2+SSSE3) >
// AVX512F+BW > generic, per spec.md §4.9. Every named backend is portable
// Go, per SPEC_FULL.md's note on SIMD bodies; only the dispatch/capability-
// detection layer is real.
func selectBlocks() Blocks {
	f := cpu.Get()
	avx512 := f.HasAVX512F && f.HasAVX512BW
	switch {
	case f.HasGFNI && avx512:
		return gfniBlocks()
	case f.HasVAES && avx512:
		return vaesBlocks()
	case f.HasAESNI && f.HasSSE2 && f.HasSSSE3:
		return aesniBlocks()
	case avx512:
		return avx512Blocks()
	default:
		return genericBlocks()
	}
}

func genericBlocks() Blocks {
	return Blocks{block16: block16Generic, block8: block8Generic, block4: block4Generic, block2: block2Generic, block1: block1Generic}
}

func aesniBlocks() Blocks { return genericBlocks() }
func gfniBlocks() Blocks  { return genericBlocks() }
func vaesBlocks() Blocks  { return genericBlocks() }
func avx512Blocks() Blocks { return genericBlocks() }
