package sapling

// Key derivation and the outgoing-cipher-key PRF, both BLAKE2b-256 wrappers
// over a fixed personalization tag and an input built by the caller.
//
// golang.org/x/crypto/blake2b exposes BLAKE2b's key parameter but not its
// distinct personalization field, so the 16-byte personalization string is
// passed through the key parameter instead.

import (
	"math/big"

	"golang.org/x/crypto/blake2b"

	"github.com/shieldedkit/sapling-crypto/pkg/jubjub"
)

const (
	kdfPersonalization = "Zcash_SaplingKDF"
	ockPersonalization = "Zcash_Derive_ock"
)

func blake2b256(personalization string, parts ...[]byte) [32]byte {
	var key [16]byte
	copy(key[:], []byte(personalization))
	h, err := blake2b.New(32, key[:])
	if err != nil {
		panic(err)
	}
	for _, p := range parts {
		h.Write(p)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// SaplingKAAgree computes (8*point)*scalar, the mandatory-cofactor-clearing
// Diffie-Hellman agreement used for both the sender and recipient sides of
// note encryption.
func SaplingKAAgree(scalar jubjub.Fs, point *jubjub.Point) *jubjub.Point {
	return point.ClearCofactor().ScalarMulFs(scalar)
}

// KDFSapling derives the 32-byte note encryption key from a Diffie-Hellman
// shared secret and the ephemeral public key.
func KDFSapling(shared, epk *jubjub.Point) [32]byte {
	sharedBytes := shared.Bytes()
	epkBytes := epk.Bytes()
	return blake2b256(kdfPersonalization, sharedBytes[:], epkBytes[:])
}

// PRFOck derives the outgoing cipher key from the outgoing viewing key, the
// serialized value commitment, the note commitment, and the ephemeral
// public key.
func PRFOck(ovk [32]byte, cv [32]byte, cmu *big.Int, epk *jubjub.Point) [32]byte {
	cmuBytes := frBytes32(cmu)
	epkBytes := epk.Bytes()
	return blake2b256(ockPersonalization, ovk[:], cv[:], cmuBytes[:], epkBytes[:])
}

func frBytes32(v *big.Int) [32]byte {
	var out [32]byte
	be := v.Bytes()
	copy(out[32-len(be):], be)
	var le [32]byte
	for i, j := 0, 31; j >= 0; i, j = i+1, j-1 {
		le[i] = out[j]
	}
	return le
}
