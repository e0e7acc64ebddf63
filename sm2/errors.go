package sm2

import "errors"

var (
	// ErrZeroSignature is returned by Sign when the randomly chosen nonce k
	// produces r == 0 or s == 0. Per OQ-2, callers are expected to retry
	// with a freshly generated k rather than have Sign loop internally.
	ErrZeroSignature = errors.New("sm2: signature component is zero, retry with a new nonce")

	// ErrInvalidCipherHash is returned by Decrypt when the recomputed C3
	// hash does not match the ciphertext's embedded hash.
	ErrInvalidCipherHash = errors.New("sm2: ciphertext hash verification failed")

	// ErrInvalidPublicKey is returned when a public key fails curve
	// membership or infinity checks.
	ErrInvalidPublicKey = errors.New("sm2: invalid public key")

	// ErrInvalidPrivateKey is returned when a private key scalar is zero or
	// out of range.
	ErrInvalidPrivateKey = errors.New("sm2: invalid private key")

	// ErrCiphertextTooShort is returned by Decrypt when the input is
	// shorter than the minimum possible C1||C3||C2 encoding.
	ErrCiphertextTooShort = errors.New("sm2: ciphertext too short")

	// ErrKDFAllZero is returned when the SM2 KDF produces an all-zero
	// keystream, an astronomically unlikely event the standard still
	// requires callers to detect and react to (by trying a new ephemeral
	// key), per spec.md §4.7.
	ErrKDFAllZero = errors.New("sm2: KDF output was all-zero, retry with a new ephemeral key")
)
