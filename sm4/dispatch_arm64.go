//go:build arm64

package sm4

import "github.com/opengm-libs/opengm-crypto/internal/cpu"

// selectBlocks picks the NEON backend when available, else the generic
// path. Portable Go body, per SPEC_FULL.md's note on SIMD backends.
func selectBlocks() Blocks {
	f := cpu.Get()
	if f.HasNEON {
		return neonBlocks()
	}
	return genericBlocks()
}

func genericBlocks() Blocks {
	return Blocks{block16: block16Generic, block8: block8Generic, block4: block4Generic, block2: block2Generic, block1: block1Generic}
}

func neonBlocks() Blocks { return genericBlocks() }
