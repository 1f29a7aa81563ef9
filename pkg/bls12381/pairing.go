package bls12381

// The optimal-ate pairing e: G1 x G2 -> Gt, built from a multi-Miller loop
// over precomputed G2Prepared line coefficients followed by a final
// exponentiation to the (p^12-1)/r power.

import "math/big"

// ell folds one precomputed line-function coefficient triple into the
// Miller-loop accumulator f, scaled against the affine G1 point (px, py).
func ell(f *Fq12, c g2LineCoeffs, px, py *big.Int) *Fq12 {
	c0 := fq2MulScalar(c.c0, py)
	c1 := fq2MulScalar(c.c1, px)
	return f.mulBy014(c.c2, c1, c0)
}

// pairingTerm is one (G1, G2Prepared) factor of a MultiPairing product;
// MultiPairing runs all terms through a single combined Miller loop, which is
// cheaper than computing each pairing separately and multiplying the Gt
// results.
type pairingTerm struct {
	g1 *G1Point
	g2 *G2Prepared
}

// PairingTerm pairs a G1 point with a precomputed G2 point for MultiPairing.
func PairingTerm(g1 *G1Point, g2 *G2Prepared) pairingTerm {
	return pairingTerm{g1: g1, g2: g2}
}

// MultiPairing returns the product, in Gt, of e(g1_i, g2_i) for each term.
// Identity factors (either side the identity) contribute 1 and are skipped.
func MultiPairing(terms ...pairingTerm) *Gt {
	type active struct {
		px, py *big.Int
		prep   *G2Prepared
	}
	var live []active
	for _, t := range terms {
		if t.g1.IsIdentity() || t.g2.infinity {
			continue
		}
		px, py := t.g1.Affine()
		live = append(live, active{px: px, py: py, prep: t.g2})
	}
	if len(live) == 0 {
		return gtOne()
	}

	f := fq12One()
	idx := make([]int, len(live))
	foundOne := false
	for _, bit := range blsXBits() {
		if !foundOne {
			foundOne = bit
			continue
		}
		for li := range live {
			c := live[li].prep.coeffs[idx[li]]
			idx[li]++
			f = ell(f, c, live[li].px, live[li].py)
			if bit {
				c = live[li].prep.coeffs[idx[li]]
				idx[li]++
				f = ell(f, c, live[li].px, live[li].py)
			}
		}
		f = fq12Sqr(f)
	}
	for li := range live {
		c := live[li].prep.coeffs[idx[li]]
		idx[li]++
		f = ell(f, c, live[li].px, live[li].py)
	}

	f = fq12Conj(f) // BLS_X is negative: the loop computes f^|x|, conjugate for f^x.
	return &Gt{v: finalExponentiation(f)}
}

// Pairing computes the single optimal-ate pairing e(p, q).
func Pairing(p *G1Point, q *G2Point) *Gt {
	return MultiPairing(PairingTerm(p, PrepareG2(q)))
}

// finalExponentiation raises f to (p^12 - 1)/r, mapping the Miller-loop
// output into the cyclotomic subgroup that is Gt.
//
// The easy part, f^((p^6-1)(p^2+1)), is computed directly: conjugate/invert
// (the p^6 Frobenius is conjugation on this tower) then multiply by the
// degree-2 Frobenius image.
//
// The hard part exponent (p^4-p^2+1)/r is applied by plain variable-time
// exponentiation rather than the Fuentes-Castañeda addition chain: both
// compute the identical power, and without the ability to run the test
// suite the simpler, unambiguous formula is the safer choice.
func finalExponentiation(f *Fq12) *Fq12 {
	// Easy part: r = f^(p^6) * f^-1, then r * r^(p^2).
	r := fq12Mul(fq12Conj(f), fq12Inv(f))
	r = fq12Mul(r, r.FrobeniusP(2))

	return r.powVartime(hardPartExponent)
}

// hardPartExponent = (p^4 - p^2 + 1) / r, the hard part of the final
// exponentiation once the easy part has placed the element in the order
// (p^6-1)(p^2+1) subgroup.
var hardPartExponent = func() *big.Int {
	p2 := new(big.Int).Mul(modulus, modulus)
	p4 := new(big.Int).Mul(p2, p2)
	e := new(big.Int).Sub(p4, p2)
	e.Add(e, big.NewInt(1))
	e.Div(e, groupOrder)
	return e
}()
