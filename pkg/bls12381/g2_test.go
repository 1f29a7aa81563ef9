package bls12381

import (
	"math/big"
	"testing"
)

func TestG2GeneratorOnCurve(t *testing.T) {
	g := G2Generator()
	x, y := g.Affine()
	if !g2IsOnCurve(x, y) {
		t.Fatal("generator not on curve")
	}
}

func TestG2AddDoubleConsistency(t *testing.T) {
	g := G2Generator()
	sum := g.Add(g)
	dbl := g.Double()
	x1, y1 := sum.Affine()
	x2, y2 := dbl.Affine()
	if !x1.equal(x2) || !y1.equal(y2) {
		t.Fatal("g+g != 2g")
	}
}

func TestG2ScalarMulDistributesOverAdd(t *testing.T) {
	g := G2Generator()
	three := g.ScalarMul(big.NewInt(3))
	manual := g.Add(g).Add(g)
	x1, y1 := three.Affine()
	x2, y2 := manual.Affine()
	if !x1.equal(x2) || !y1.equal(y2) {
		t.Fatal("3*g != g+g+g")
	}
}

func TestG2NegCancels(t *testing.T) {
	g := G2Generator()
	sum := g.Add(g.Neg())
	if !sum.IsIdentity() {
		t.Fatal("g + (-g) != identity")
	}
}

func TestG2CompressedRoundTrip(t *testing.T) {
	g := G2Generator().ScalarMul(big.NewInt(123456789))
	b := g.CompressedBytes()
	got, ok := G2FromCompressed(b)
	if !ok {
		t.Fatal("decode failed")
	}
	x1, y1 := g.Affine()
	x2, y2 := got.Affine()
	if !x1.equal(x2) || !y1.equal(y2) {
		t.Fatal("round trip mismatch")
	}
}

func TestG2UncompressedRoundTrip(t *testing.T) {
	g := G2Generator().ScalarMul(big.NewInt(42))
	b := g.UncompressedBytes()
	got, ok := G2FromUncompressed(b)
	if !ok {
		t.Fatal("decode failed")
	}
	x1, y1 := g.Affine()
	x2, y2 := got.Affine()
	if !x1.equal(x2) || !y1.equal(y2) {
		t.Fatal("round trip mismatch")
	}
}

func TestG2InSubgroup(t *testing.T) {
	g := G2Generator()
	if !g.InSubgroup() {
		t.Fatal("generator should be in the prime-order subgroup")
	}
}

func TestG2ScalarMulByGroupOrderIsIdentity(t *testing.T) {
	g := G2Generator()
	if !g.ScalarMul(GroupOrder()).IsIdentity() {
		t.Fatal("r*g should be the identity")
	}
}
