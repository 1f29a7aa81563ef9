package bls12381

// Fr is the 255-bit scalar field of G1, G2 and Gt (the prime r = groupOrder).

import (
	"crypto/rand"
	"math/big"
)

// FrBytes encodes a scalar to 32-byte little-endian canonical form.
func FrBytes(a *big.Int) [32]byte {
	var out [32]byte
	v := new(big.Int).Mod(a, groupOrder).Bytes() // big-endian
	for i, j := 0, len(v)-1; j >= 0; i, j = i+1, j-1 {
		out[i] = v[j]
	}
	return out
}

// FrFromBytes decodes a 32-byte little-endian scalar, rejecting values >= r.
func FrFromBytes(b [32]byte) (*big.Int, bool) {
	be := make([]byte, 32)
	for i := 0; i < 32; i++ {
		be[31-i] = b[i]
	}
	v := new(big.Int).SetBytes(be)
	if v.Cmp(groupOrder) >= 0 {
		return nil, false
	}
	return v, true
}

// FrRandom draws a nonzero scalar in [1, r) from a 512-bit CSPRNG draw
// reduced mod r, drawing again whenever the reduced value is zero.
func FrRandom() (*big.Int, error) {
	for {
		buf := make([]byte, 64)
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		v := new(big.Int).SetBytes(buf)
		v.Mod(v, groupOrder)
		if v.Sign() != 0 {
			return v, nil
		}
	}
}

// GroupOrder returns the scalar field order r.
func GroupOrder() *big.Int { return new(big.Int).Set(groupOrder) }
