//go:build !amd64 && !arm64

package sm4

// selectBlocks has no SIMD candidate to consider on architectures outside
// amd64/arm64; it always returns the portable path.
func selectBlocks() Blocks {
	return Blocks{block16: block16Generic, block8: block8Generic, block4: block4Generic, block2: block2Generic, block1: block1Generic}
}
