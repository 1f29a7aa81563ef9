// Package bls12381 implements the BLS12-381 pairing-friendly curve: the
// tower of field extensions Fq -> Fq2 -> Fq6 -> Fq12, the two source groups
// G1 and G2, the target group Gt, and the optimal-ate pairing (multi-Miller
// loop plus final exponentiation).
package bls12381

import "math/big"

// Fq is the base field GF(p), p the 381-bit BLS12-381 prime. Elements are
// value types backed by math/big.Int, following the teacher's style for
// BLS12-381 field arithmetic rather than a flat-limb Montgomery form.
var (
	// modulus is the base field prime.
	//   p = 0x1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab
	modulus, _ = new(big.Int).SetString(
		"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab", 16)

	// groupOrder is the prime order r of G1, G2 and Gt.
	groupOrder, _ = new(big.Int).SetString(
		"73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)

	// curveB is the G1 curve coefficient b = 4 for E: y^2 = x^3 + 4.
	curveB = big.NewInt(4)

	// blsX is the BLS12-381 parameter's magnitude; the true parameter is
	// negative: x = -0xd201000000010000.
	blsX, _ = new(big.Int).SetString("d201000000010000", 16)
)

// fqAdd returns (a + b) mod p.
func fqAdd(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, modulus)
}

// fqSub returns (a - b) mod p.
func fqSub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, modulus)
}

// fqMul returns (a * b) mod p.
func fqMul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, modulus)
}

// fqNeg returns (-a) mod p.
func fqNeg(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	return new(big.Int).Sub(modulus, new(big.Int).Mod(a, modulus))
}

// fqInv returns a^(-1) mod p. The caller guarantees a != 0; inversion of
// zero is a programmer bug, not a runtime error (spec §7.5).
func fqInv(a *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, modulus)
}

// fqSqr returns a^2 mod p.
func fqSqr(a *big.Int) *big.Int {
	r := new(big.Int).Mul(a, a)
	return r.Mod(r, modulus)
}

// fqExp returns a^e mod p. Variable-time in e; only ever used with public
// exponents (square roots and quadratic-residue tests).
func fqExp(a, e *big.Int) *big.Int {
	return new(big.Int).Exp(a, e, modulus)
}

// fqSqrt returns a square root of a mod p, or nil if none exists. p = 3 mod 4
// for BLS12-381, so sqrt(a) = a^((p+1)/4).
func fqSqrt(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	exp := new(big.Int).Add(modulus, big.NewInt(1))
	exp.Rsh(exp, 2)
	r := fqExp(a, exp)
	if fqSqr(r).Cmp(new(big.Int).Mod(a, modulus)) != 0 {
		return nil
	}
	return r
}

// fqIsSquare reports whether a is a quadratic residue mod p (Euler's
// criterion).
func fqIsSquare(a *big.Int) bool {
	if a.Sign() == 0 {
		return true
	}
	exp := new(big.Int).Sub(modulus, big.NewInt(1))
	exp.Rsh(exp, 1)
	return fqExp(a, exp).Cmp(big.NewInt(1)) == 0
}

// fqEqual reports whether a and b represent the same residue mod p.
func fqEqual(a, b *big.Int) bool {
	return new(big.Int).Mod(a, modulus).Cmp(new(big.Int).Mod(b, modulus)) == 0
}

// fqCanonical reports whether a is already reduced, 0 <= a < p.
func fqCanonical(a *big.Int) bool {
	return a.Sign() >= 0 && a.Cmp(modulus) < 0
}

// fqCmov returns b if flag, else a. It selects with an ordinary branch on
// flag and is not constant-time; no point or scalar selection in this
// package is built on it.
func fqCmov(a, b *big.Int, flag bool) *big.Int {
	if flag {
		return new(big.Int).Set(b)
	}
	return new(big.Int).Set(a)
}

// FqBytes encodes a to the 48-byte big-endian canonical form (ZIP 216 / spec
// §6 Fq encoding).
func FqBytes(a *big.Int) [48]byte {
	var out [48]byte
	b := new(big.Int).Mod(a, modulus).Bytes()
	copy(out[48-len(b):], b)
	return out
}

// FqFromBytes decodes a 48-byte big-endian Fq element, rejecting values >= p.
func FqFromBytes(b [48]byte) (*big.Int, bool) {
	v := new(big.Int).SetBytes(b[:])
	if !fqCanonical(v) {
		return nil, false
	}
	return v, true
}
