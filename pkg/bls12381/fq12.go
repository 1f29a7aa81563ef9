package bls12381

// Fq12 = Fq6[w]/(w^2 - v), the full pairing target-field tower.

import "math/big"

// Fq12 is the degree-12 extension field element underlying Gt.
type Fq12 struct {
	c0, c1 *fq6
}

func fq12Zero() *Fq12 { return &Fq12{c0: fq6Zero(), c1: fq6Zero()} }
func fq12One() *Fq12  { return &Fq12{c0: fq6One(), c1: fq6Zero()} }

// Equal reports whether f and g are the same Fq12 element.
func (f *Fq12) Equal(g *Fq12) bool { return f.c0.equal(g.c0) && f.c1.equal(g.c1) }

// IsOne reports whether f is the multiplicative identity.
func (f *Fq12) IsOne() bool { return f.Equal(fq12One()) }

func fq12Mul(a, b *Fq12) *Fq12 {
	t0 := fq6Mul(a.c0, b.c0)
	t1 := fq6Mul(a.c1, b.c1)

	c0 := fq6Add(t0, fq6MulByV(t1))
	c1 := fq6Sub(fq6Sub(fq6Mul(fq6Add(a.c0, a.c1), fq6Add(b.c0, b.c1)), t0), t1)
	return &Fq12{c0: c0, c1: c1}
}

func fq12Sqr(a *Fq12) *Fq12 {
	ab := fq6Mul(a.c0, a.c1)
	c0 := fq6Add(fq6Mul(fq6Add(a.c0, a.c1), fq6Add(a.c0, fq6MulByV(a.c1))),
		fq6Neg(fq6Add(ab, fq6MulByV(ab))))
	c1 := fq6Add(ab, ab)
	return &Fq12{c0: c0, c1: c1}
}

func fq12Inv(a *Fq12) *Fq12 {
	t := fq6Sub(fq6Sqr(a.c0), fq6MulByV(fq6Sqr(a.c1)))
	t = fq6Inv(t)
	return &Fq12{c0: fq6Mul(a.c0, t), c1: fq6Neg(fq6Mul(a.c1, t))}
}

// fq12Conj is conjugation over the w-extension: (c0+c1 w) -> (c0 - c1 w).
// This equals the degree-6 Frobenius p^6 on the unitary (norm-1) subgroup
// Gt lives in, which is why the easy part of final exponentiation can use
// conjugation as a stand-in for f^(p^6).
func fq12Conj(a *Fq12) *Fq12 { return &Fq12{c0: a.c0, c1: fq6Neg(a.c1)} }

// fq12FrobeniusP1 computes f^p via precomputed tower coefficients rather
// than exponentiation.
func fq12FrobeniusP1(f *Fq12) *Fq12 {
	c0 := fq6FrobeniusP1(f.c0)
	c1pre := fq6FrobeniusP1(f.c1)
	return &Fq12{
		c0: c0,
		c1: &fq6{
			c0: fq2Mul(c1pre.c0, gammaFq12C1),
			c1: fq2Mul(c1pre.c1, gammaFq12C1),
			c2: fq2Mul(c1pre.c2, gammaFq12C1),
		},
	}
}

// gammaFq12C1 = xi^((p-1)/6); gammaFq12C1^2 = gammaFq6C1.
var gammaFq12C1 = func() *fq2 {
	exp := new(big.Int).Sub(modulus, big.NewInt(1))
	exp.Div(exp, big.NewInt(6))
	return fq2Exp(nonResidueXi, exp)
}()

// FrobeniusP computes f^(p^k) for k in {1,2,3,6} by repeated application of
// the degree-1 Frobenius (or conjugation for k=6, which is cheaper and
// equivalent on Gt).
func (f *Fq12) FrobeniusP(k int) *Fq12 {
	switch k {
	case 1:
		return fq12FrobeniusP1(f)
	case 2:
		return fq12FrobeniusP1(fq12FrobeniusP1(f))
	case 3:
		return fq12FrobeniusP1(fq12FrobeniusP1(fq12FrobeniusP1(f)))
	case 6:
		return fq12Conj(f)
	default:
		panic("bls12381: unsupported Frobenius power")
	}
}

// powVartime computes f^e for a non-negative big.Int exponent e, variable
// time. Used for the public final-exponentiation exponent and for test
// helpers; never used on secret exponents.
func (f *Fq12) powVartime(e *big.Int) *Fq12 {
	result := fq12One()
	base := f
	for i := 0; i < e.BitLen(); i++ {
		if e.Bit(i) == 1 {
			result = fq12Mul(result, base)
		}
		base = fq12Sqr(base)
	}
	return result
}

// mulBy014 computes f * l where l has the sparse shape (c0 + c1 v) +
// (c4 v) w -- i.e. only the c0.c0 ("c0"), c0.c1 ("c1") and c1.c1 ("c4")
// Fq2 coefficients (of the six that make up a general Fq12 element) are
// nonzero. This is the line-function multiplication used by the Miller
// loop; exploiting the sparsity takes 13 Fq2 muls instead of 18.
func (f *Fq12) mulBy014(c0, c1, c4 *fq2) *Fq12 {
	aa := fq6MulBy01(f.c0, c0, c1)
	bb := fq6MulBy1(f.c1, c4)

	o := fq2Add(c1, c4)
	t1 := fq6Add(f.c1, f.c0)
	t1 = fq6MulBy01(t1, c0, o)
	t1 = fq6Sub(t1, aa)
	t1 = fq6Sub(t1, bb)

	t0 := fq6MulByV(bb)
	t0 = fq6Add(t0, aa)

	return &Fq12{c0: t0, c1: t1}
}
