package jubjub

// Group hashing: maps an arbitrary byte string into the Jubjub prime-order
// subgroup by hashing with a personalization tag, treating the digest as a
// compressed point, and clearing the cofactor. This is how Sapling derives
// a diversified base point g_d from an 11-byte diversifier: the diversifier
// is "invalid" exactly when no valid point decodes from its hash.

import "golang.org/x/crypto/blake2b"

const groupHashPersonalization = "SaplingToolkit_gd"

// GroupHash maps (personalization, input) to a point in the prime-order
// subgroup, or false if the hash does not decode to a curve point.
//
// golang.org/x/crypto/blake2b does not expose BLAKE2b's distinct
// personalization parameter, only a key; the personalization tag is passed
// through the key parameter instead.
func GroupHash(personalization string, input []byte) (*Point, bool) {
	var key [16]byte
	copy(key[:], []byte(personalization))
	h, err := blake2b.New(32, key[:])
	if err != nil {
		panic(err)
	}
	h.Write(input)
	digest := h.Sum(nil)

	var b [32]byte
	copy(b[:], digest)
	p, ok := FromBytes(b)
	if !ok {
		return nil, false
	}
	cleared := p.ClearCofactor()
	if cleared.IsIdentity() {
		return nil, false
	}
	return cleared, true
}

// DiversifierToPoint derives the diversified base point g_d from an
// 11-byte diversifier tag.
func DiversifierToPoint(diversifier [11]byte) (*Point, bool) {
	return GroupHash(groupHashPersonalization, diversifier[:])
}
