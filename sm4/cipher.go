// Package sm4 implements the GM/T 0002-2012 SM4 block cipher as a
// standard library cipher.Block.
package sm4

import (
	"crypto/cipher"
	"strconv"
)

// KeySizeError is returned by NewCipher when the key is not KeySize bytes,
// mirroring crypto/aes.KeySizeError.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "sm4: invalid key size " + strconv.Itoa(int(k))
}

// Cipher is an SM4 block cipher instance.
type Cipher struct {
	rk, rkRev [32]uint32
	blocks    Blocks
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher builds a Cipher from a 16-byte key.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}
	rk, rkRev := keySchedule(key)
	return &Cipher{rk: rk, rkRev: rkRev, blocks: newBlocks()}, nil
}

// BlockSize implements cipher.Block.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt implements cipher.Block.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("sm4: input/output buffer too small")
	}
	blockGeneric(dst, src, &c.rk)
}

// Decrypt implements cipher.Block.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("sm4: input/output buffer too small")
	}
	blockGeneric(dst, src, &c.rkRev)
}

// EncryptBlocks encrypts as many whole blocks of src as possible using the
// dispatch table's widest available batch backend, returning the number of
// bytes processed. Used by modes.GCM instead of Encrypt's single-block
// path.
func (c *Cipher) EncryptBlocks(dst, src []byte) int {
	return c.blocks.Process(dst, src, &c.rk)
}

// DecryptBlocks is EncryptBlocks's decryption counterpart.
func (c *Cipher) DecryptBlocks(dst, src []byte) int {
	return c.blocks.Process(dst, src, &c.rkRev)
}

// Zeroize clears the round-key schedule, mirroring the reference's Drop impl.
func (c *Cipher) Zeroize() {
	for i := range c.rk {
		c.rk[i] = 0
		c.rkRev[i] = 0
	}
}
