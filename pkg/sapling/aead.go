package sapling

// ChaCha20-Poly1305 (IETF) sealing/opening with a fixed all-zero nonce, and
// raw ChaCha20 compact decryption that skips the tag check entirely. The
// fixed nonce is safe only because the key is a fresh per-note derivation;
// this invariant must never be relaxed.

import (
	"errors"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/chacha20poly1305"
)

var zeroNonce [chacha20poly1305.NonceSize]byte

// ErrAEADOpenFailed is returned when the authentication tag does not match.
var ErrAEADOpenFailed = errors.New("sapling: AEAD tag verification failed")

// AEADSeal encrypts plaintext under key with the fixed zero nonce and empty
// associated data, appending a 16-byte authentication tag.
func AEADSeal(key [32]byte, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, zeroNonce[:], plaintext, nil), nil
}

// AEADOpen verifies and decrypts ciphertext under key with the fixed zero
// nonce, returning ErrAEADOpenFailed on any tag mismatch.
func AEADOpen(key [32]byte, ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, zeroNonce[:], ciphertext, nil)
	if err != nil {
		return nil, ErrAEADOpenFailed
	}
	return pt, nil
}

// CompactDecrypt decrypts the first n bytes of ciphertext with raw ChaCha20
// starting at block counter 1 (skipping the block that would hold the
// Poly1305 one-time key), without any tag verification. Callers MUST
// corroborate the result via commitment re-derivation; this function alone
// does not authenticate anything.
func CompactDecrypt(key [32]byte, ciphertext []byte) ([]byte, error) {
	c, err := chacha20.NewUnauthenticatedCipher(key[:], zeroNonce[:])
	if err != nil {
		return nil, err
	}
	c.SetCounter(1)
	out := make([]byte, len(ciphertext))
	c.XORKeyStream(out, ciphertext)
	return out, nil
}
