package bls12381

// Fq2 = Fq[u]/(u^2+1), used for G2 coordinates and the pairing tower.

import "math/big"

// fq2 represents an element c0 + c1*u of Fq2.
type fq2 struct {
	c0, c1 *big.Int
}

func newFq2(c0, c1 *big.Int) *fq2 {
	return &fq2{c0: new(big.Int).Set(c0), c1: new(big.Int).Set(c1)}
}

func fq2Zero() *fq2 { return &fq2{c0: new(big.Int), c1: new(big.Int)} }
func fq2One() *fq2  { return &fq2{c0: big.NewInt(1), c1: new(big.Int)} }

func (e *fq2) isZero() bool { return e.c0.Sign() == 0 && e.c1.Sign() == 0 }

func (e *fq2) equal(f *fq2) bool {
	return fqEqual(e.c0, f.c0) && fqEqual(e.c1, f.c1)
}

func (e *fq2) clone() *fq2 { return newFq2(e.c0, e.c1) }

func fq2Add(e, f *fq2) *fq2 { return &fq2{c0: fqAdd(e.c0, f.c0), c1: fqAdd(e.c1, f.c1)} }
func fq2Sub(e, f *fq2) *fq2 { return &fq2{c0: fqSub(e.c0, f.c0), c1: fqSub(e.c1, f.c1)} }
func fq2Neg(e *fq2) *fq2    { return &fq2{c0: fqNeg(e.c0), c1: fqNeg(e.c1)} }

// fq2Mul computes (a0+a1 u)(b0+b1 u) = (a0 b0 - a1 b1) + (a0 b1 + a1 b0) u via
// a single Karatsuba cross term (3 Fq muls instead of 4).
func fq2Mul(e, f *fq2) *fq2 {
	v0 := fqMul(e.c0, f.c0)
	v1 := fqMul(e.c1, f.c1)
	return &fq2{
		c0: fqSub(v0, v1),
		c1: fqSub(fqMul(fqAdd(e.c0, e.c1), fqAdd(f.c0, f.c1)), fqAdd(v0, v1)),
	}
}

func fq2Sqr(e *fq2) *fq2 {
	ab := fqMul(e.c0, e.c1)
	return &fq2{
		c0: fqMul(fqAdd(e.c0, e.c1), fqSub(e.c0, e.c1)),
		c1: fqAdd(ab, ab),
	}
}

// fq2Conj is the degree-1 Frobenius on Fq2: (a+bu)^p = a-bu, since p = 3 mod 4.
func fq2Conj(e *fq2) *fq2 { return &fq2{c0: new(big.Int).Set(e.c0), c1: fqNeg(e.c1)} }

func fq2Inv(e *fq2) *fq2 {
	t := fqAdd(fqSqr(e.c0), fqSqr(e.c1))
	inv := fqInv(t)
	return &fq2{c0: fqMul(e.c0, inv), c1: fqMul(fqNeg(e.c1), inv)}
}

func fq2MulScalar(e *fq2, s *big.Int) *fq2 {
	return &fq2{c0: fqMul(e.c0, s), c1: fqMul(e.c1, s)}
}

// fq2MulByNonResidue multiplies by the Fq6 non-residue xi = 1+u:
// (1+u)(a+bu) = (a-b) + (a+b)u.
func fq2MulByNonResidue(e *fq2) *fq2 {
	return &fq2{c0: fqSub(e.c0, e.c1), c1: fqAdd(e.c0, e.c1)}
}

// fq2Exp computes e^k for a non-negative k, variable-time. Used only to
// precompute the public Frobenius-coefficient constants at init time.
func fq2Exp(e *fq2, k *big.Int) *fq2 {
	result := fq2One()
	base := e.clone()
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = fq2Mul(result, base)
		}
		base = fq2Sqr(base)
	}
	return result
}

func fq2Sgn0(e *fq2) int {
	sign0 := int(new(big.Int).Mod(e.c0, modulus).Bit(0))
	zero0 := 0
	if new(big.Int).Mod(e.c0, modulus).Sign() == 0 {
		zero0 = 1
	}
	sign1 := int(new(big.Int).Mod(e.c1, modulus).Bit(0))
	return sign0 | (zero0 & sign1)
}

// fq2Sqrt returns a square root of e, or nil if none exists.
func fq2Sqrt(e *fq2) *fq2 {
	if e.isZero() {
		return fq2Zero()
	}
	norm := fqAdd(fqSqr(e.c0), fqSqr(e.c1))
	if !fqIsSquare(norm) {
		return nil
	}
	sqrtNorm := fqSqrt(norm)
	twoInv := fqInv(big.NewInt(2))

	tryHalf := func(sum *big.Int) *fq2 {
		x0 := fqMul(sum, twoInv)
		if !fqIsSquare(x0) {
			return nil
		}
		sqrtX0 := fqSqrt(x0)
		x1 := fqMul(e.c1, fqInv(fqAdd(sqrtX0, sqrtX0)))
		cand := &fq2{c0: sqrtX0, c1: x1}
		if fq2Sqr(cand).equal(e) {
			return cand
		}
		return nil
	}
	if r := tryHalf(fqAdd(e.c0, sqrtNorm)); r != nil {
		return r
	}
	return tryHalf(fqSub(e.c0, sqrtNorm))
}

// fq2FromBytes decodes 96 bytes (c1 || c0, big-endian per coordinate,
// matching the G2 wire convention where the imaginary part precedes the
// real part) into an Fq2 element.
func fq2FromBytes(b []byte) (*fq2, bool) {
	if len(b) != 96 {
		return nil, false
	}
	var c1b, c0b [48]byte
	copy(c1b[:], b[:48])
	copy(c0b[:], b[48:])
	c1, ok1 := FqFromBytes(c1b)
	c0, ok0 := FqFromBytes(c0b)
	if !ok0 || !ok1 {
		return nil, false
	}
	return &fq2{c0: c0, c1: c1}, true
}

func fq2Bytes(e *fq2) [96]byte {
	var out [96]byte
	c1 := FqBytes(e.c1)
	c0 := FqBytes(e.c0)
	copy(out[:48], c1[:])
	copy(out[48:], c0[:])
	return out
}
