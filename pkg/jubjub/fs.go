// Package jubjub implements the Jubjub twisted Edwards curve embedded over
// the BLS12-381 scalar field Fr, and its own scalar field Fs, used for
// Sapling key agreement and diversified address derivation.
package jubjub

import (
	"crypto/rand"
	"math/big"

	"github.com/holiman/uint256"
)

// scalarModulus is the order of the Jubjub prime-order subgroup.
var scalarModulus = func() *uint256.Int {
	m, err := uint256.FromDecimal("6554484396890773809930967563523245729705921265872317281365359162392183254199")
	if err != nil {
		panic(err)
	}
	return m
}()

// Fs is an element of the Jubjub scalar field.
type Fs struct {
	v *uint256.Int
}

// FsZero returns the additive identity.
func FsZero() Fs { return Fs{v: new(uint256.Int)} }

// FsFromUint64 lifts a small integer into Fs.
func FsFromUint64(x uint64) Fs { return Fs{v: new(uint256.Int).SetUint64(x)} }

// Equal reports whether a and b are the same scalar.
func (a Fs) Equal(b Fs) bool { return a.v.Eq(b.v) }

// IsZero reports whether a is zero.
func (a Fs) IsZero() bool { return a.v.IsZero() }

// Add returns a+b mod the scalar order.
func (a Fs) Add(b Fs) Fs {
	r := new(uint256.Int).AddMod(a.v, b.v, scalarModulus)
	return Fs{v: r}
}

// Mul returns a*b mod the scalar order.
func (a Fs) Mul(b Fs) Fs {
	r := new(uint256.Int).MulMod(a.v, b.v, scalarModulus)
	return Fs{v: r}
}

// Neg returns -a mod the scalar order.
func (a Fs) Neg() Fs {
	if a.v.IsZero() {
		return a
	}
	r := new(uint256.Int).Sub(scalarModulus, a.v)
	return Fs{v: r}
}

// bigInt returns the scalar as a math/big.Int, for use with curve scalar
// multiplication (which walks bits via big.Int.Bit).
func (a Fs) bigInt() *big.Int { return a.v.ToBig() }

// FsBytes encodes a to 32-byte canonical little-endian form.
func FsBytes(a Fs) [32]byte {
	be := a.v.Bytes32() // big-endian, zero-padded to 32 bytes
	var out [32]byte
	for i, j := 0, 31; j >= 0; i, j = i+1, j-1 {
		out[i] = be[j]
	}
	return out
}

// FsFromBytes decodes a 32-byte little-endian scalar, rejecting values at or
// above the scalar field order.
func FsFromBytes(b [32]byte) (Fs, bool) {
	var be [32]byte
	for i, j := 0, 31; j >= 0; i, j = i+1, j-1 {
		be[i] = b[j]
	}
	v := new(uint256.Int).SetBytes(be[:])
	if v.Cmp(scalarModulus) >= 0 {
		return Fs{}, false
	}
	return Fs{v: v}, true
}

// FsRandom draws a uniform scalar by rejection sampling from a 512-bit
// CSPRNG draw reduced mod the scalar order.
func FsRandom() (Fs, error) {
	for {
		buf := make([]byte, 64)
		if _, err := rand.Read(buf); err != nil {
			return Fs{}, err
		}
		v := new(big.Int).SetBytes(buf)
		m := scalarModulus.ToBig()
		v.Mod(v, m)
		if v.Sign() != 0 {
			u, overflow := uint256.FromBig(v)
			if overflow {
				continue
			}
			return Fs{v: u}, nil
		}
	}
}

// FsFromWideBytes reduces an arbitrary-length byte string, interpreted as a
// big-endian integer, modulo the scalar order. Unlike FsFromBytes this
// never rejects: it is the PRF-expand path (deriving esk/rcm from a
// ZIP-212 rseed) where the input is already uniformly-distributed hash
// output, not a value that must itself be canonical.
func FsFromWideBytes(b []byte) Fs {
	v := new(big.Int).SetBytes(b)
	v.Mod(v, scalarModulus.ToBig())
	u, overflow := uint256.FromBig(v)
	if overflow {
		panic("jubjub: reduced value unexpectedly overflows uint256")
	}
	return Fs{v: u}
}
