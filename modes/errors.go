// Package modes implements block cipher modes of operation (CBC, GCM) over
// any cipher.Block, as used with sm4.Cipher.
package modes

import "errors"

var (
	// ErrInvalidInputSize is returned by NewCBCEncrypter/NewCBCDecrypter
	// when the IV length is not the block size, per OQ-3 — the reference
	// asserts here instead — and by the GCM constructor for a cipher whose
	// block size is not 16. CryptBlocks does not return it: an input that
	// is not a whole number of blocks makes CryptBlocks panic.
	ErrInvalidInputSize = errors.New("modes: input length is not a multiple of the block size")

	// ErrInvalidNonceSize is returned by GCM.Open when the nonce length
	// doesn't match the configured size (GCM.Seal panics in that case
	// instead), and by the GCM constructor for a non-positive nonce size.
	ErrInvalidNonceSize = errors.New("modes: invalid nonce size")

	// ErrAuthenticationFailed is returned by GCM.Open on a tag mismatch.
	ErrAuthenticationFailed = errors.New("modes: authentication failed")

	// ErrCiphertextTooShort is returned by GCM.Open when the ciphertext
	// is shorter than the configured tag size.
	ErrCiphertextTooShort = errors.New("modes: ciphertext too short")

	// ErrInvalidTagSize is returned by NewGCMWithTagSize for an
	// out-of-range tag length.
	ErrInvalidTagSize = errors.New("modes: invalid tag size")
)
