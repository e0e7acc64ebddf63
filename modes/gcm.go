package modes

import (
	"crypto/cipher"
	"crypto/subtle"
)

const (
	gcmBlockSize         = 16
	gcmStandardNonceSize = 12
	gcmMinTagSize        = 12
	gcmMaxTagSize        = 16
)

// blockBatcher is implemented by ciphers (like sm4.Cipher) that can encrypt
// several blocks per call; GCM uses it to generate keystream faster than
// one cipher.Block.Encrypt call per block.
type blockBatcher interface {
	EncryptBlocks(dst, src []byte) int
}

// gcm implements cipher.AEAD over any cipher.Block, grounded on the
// reference GCMMode: derive_counter picks the 96-bit fast path or the
// GHASH-based slow path for other nonce sizes, counter_crypt XORs CTR-mode
// keystream, and auth computes GHASH(aad, ciphertext) xor E_K(J0).
type gcm struct {
	cipher    cipher.Block
	batcher   blockBatcher
	nonceSize int
	tagSize   int
	hashKey   [16]byte
}

// NewGCM wraps block in GCM with the standard 12-byte nonce and 16-byte tag.
func NewGCM(block cipher.Block) (cipher.AEAD, error) {
	return NewGCMWithNonceAndTagSize(block, gcmStandardNonceSize, gcmMaxTagSize)
}

// NewGCMWithNonceSize is as NewGCM but with a custom nonce size.
func NewGCMWithNonceSize(block cipher.Block, nonceSize int) (cipher.AEAD, error) {
	return NewGCMWithNonceAndTagSize(block, nonceSize, gcmMaxTagSize)
}

// NewGCMWithTagSize is as NewGCM but with a custom tag size.
func NewGCMWithTagSize(block cipher.Block, tagSize int) (cipher.AEAD, error) {
	return NewGCMWithNonceAndTagSize(block, gcmStandardNonceSize, tagSize)
}

// NewGCMWithNonceAndTagSize builds a GCM AEAD with explicit nonce and tag
// sizes. block.BlockSize() must be 16 (GHASH's block width).
func NewGCMWithNonceAndTagSize(block cipher.Block, nonceSize, tagSize int) (cipher.AEAD, error) {
	if block.BlockSize() != gcmBlockSize {
		return nil, ErrInvalidInputSize
	}
	if nonceSize <= 0 {
		return nil, ErrInvalidNonceSize
	}
	if tagSize < gcmMinTagSize || tagSize > gcmMaxTagSize {
		return nil, ErrInvalidTagSize
	}
	g := &gcm{cipher: block, nonceSize: nonceSize, tagSize: tagSize}
	if b, ok := block.(blockBatcher); ok {
		g.batcher = b
	}
	block.Encrypt(g.hashKey[:], make([]byte, gcmBlockSize))
	return g, nil
}

func (g *gcm) NonceSize() int { return g.nonceSize }
func (g *gcm) Overhead() int  { return g.tagSize }

// deriveCounter computes J0: the nonce padded to a full block with a
// trailing counter of 1 for the standard 96-bit case, or GHASH(nonce) for
// any other nonce length, per the reference's derive_counter.
func (g *gcm) deriveCounter(nonce []byte) [16]byte {
	var j0 [16]byte
	if len(nonce) == gcmStandardNonceSize {
		copy(j0[:12], nonce)
		j0[15] = 1
		return j0
	}
	return computeGHASH(&g.hashKey, nil, nonce)
}

func inc32(counter *[16]byte) {
	for i := 15; i >= 12; i-- {
		counter[i]++
		if counter[i] != 0 {
			break
		}
	}
}

// counterCrypt XORs CTR-mode keystream seeded at counter+1 (the reference
// always starts encryption at inc32(J0)) into src, writing to dst, using
// the batching path when the wrapped cipher supports it.
func (g *gcm) counterCrypt(dst, src []byte, counter [16]byte) {
	var mask [16]byte
	inc32(&counter)

	if g.batcher != nil {
		const batch = 8
		buf := make([]byte, 0, batch*gcmBlockSize)
		ks := make([]byte, batch*gcmBlockSize)
		for len(src) >= gcmBlockSize {
			n := len(src) / gcmBlockSize
			if n > batch {
				n = batch
			}
			buf = buf[:0]
			for i := 0; i < n; i++ {
				buf = append(buf, counter[:]...)
				inc32(&counter)
			}
			g.batcher.EncryptBlocks(ks, buf)
			for i := 0; i < n*gcmBlockSize; i++ {
				dst[i] = src[i] ^ ks[i]
			}
			dst = dst[n*gcmBlockSize:]
			src = src[n*gcmBlockSize:]
		}
	} else {
		for len(src) >= gcmBlockSize {
			g.cipher.Encrypt(mask[:], counter[:])
			for i := 0; i < gcmBlockSize; i++ {
				dst[i] = src[i] ^ mask[i]
			}
			inc32(&counter)
			dst = dst[gcmBlockSize:]
			src = src[gcmBlockSize:]
		}
	}

	if len(src) > 0 {
		g.cipher.Encrypt(mask[:], counter[:])
		for i := range src {
			dst[i] = src[i] ^ mask[i]
		}
	}
}

func (g *gcm) tag(additionalData, ciphertext []byte, j0 [16]byte) [16]byte {
	h := computeGHASH(&g.hashKey, additionalData, ciphertext)
	var mask [16]byte
	g.cipher.Encrypt(mask[:], j0[:])
	for i := range h {
		h[i] ^= mask[i]
	}
	var out [16]byte
	copy(out[:], h[:])
	return out
}

// Seal implements cipher.AEAD.
func (g *gcm) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != g.nonceSize {
		panic("modes: invalid nonce size")
	}

	ret, out := sliceForAppend(dst, len(plaintext)+g.tagSize)
	ciphertext, tagOut := out[:len(plaintext)], out[len(plaintext):]

	j0 := g.deriveCounter(nonce)
	g.counterCrypt(ciphertext, plaintext, j0)

	full := g.tag(additionalData, ciphertext, j0)
	copy(tagOut, full[:g.tagSize])

	return ret
}

// Open implements cipher.AEAD.
func (g *gcm) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != g.nonceSize {
		return nil, ErrInvalidNonceSize
	}
	if len(ciphertext) < g.tagSize {
		return nil, ErrCiphertextTooShort
	}

	tagIn := ciphertext[len(ciphertext)-g.tagSize:]
	ciphertext = ciphertext[:len(ciphertext)-g.tagSize]

	j0 := g.deriveCounter(nonce)
	want := g.tag(additionalData, ciphertext, j0)
	if subtle.ConstantTimeCompare(want[:g.tagSize], tagIn) != 1 {
		return nil, ErrAuthenticationFailed
	}

	ret, out := sliceForAppend(dst, len(ciphertext))
	g.counterCrypt(out, ciphertext, j0)
	return ret, nil
}

// sliceForAppend extends or allocates buf so that it has room for n more
// bytes after len(buf), mirroring crypto/cipher's internal helper of the
// same name.
func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}
