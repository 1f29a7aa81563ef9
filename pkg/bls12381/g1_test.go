package bls12381

import (
	"math/big"
	"testing"
)

func TestG1GeneratorOnCurve(t *testing.T) {
	g := G1Generator()
	x, y := g.Affine()
	if !g1IsOnCurve(x, y) {
		t.Fatal("generator not on curve")
	}
}

func TestG1AddDoubleConsistency(t *testing.T) {
	g := G1Generator()
	sum := g.Add(g)
	dbl := g.Double()
	x1, y1 := sum.Affine()
	x2, y2 := dbl.Affine()
	if x1.Cmp(x2) != 0 || y1.Cmp(y2) != 0 {
		t.Fatal("g+g != 2g")
	}
}

func TestG1ScalarMulDistributesOverAdd(t *testing.T) {
	g := G1Generator()
	three := g.ScalarMul(big.NewInt(3))
	manual := g.Add(g).Add(g)
	x1, y1 := three.Affine()
	x2, y2 := manual.Affine()
	if x1.Cmp(x2) != 0 || y1.Cmp(y2) != 0 {
		t.Fatal("3*g != g+g+g")
	}
}

func TestG1IdentityIsAdditiveUnit(t *testing.T) {
	g := G1Generator()
	id := G1Identity()
	sum := g.Add(id)
	x1, y1 := sum.Affine()
	x2, y2 := g.Affine()
	if x1.Cmp(x2) != 0 || y1.Cmp(y2) != 0 {
		t.Fatal("g+identity != g")
	}
}

func TestG1NegCancels(t *testing.T) {
	g := G1Generator()
	sum := g.Add(g.Neg())
	if !sum.IsIdentity() {
		t.Fatal("g + (-g) != identity")
	}
}

func TestG1CompressedRoundTrip(t *testing.T) {
	g := G1Generator().ScalarMul(big.NewInt(123456789))
	b := g.CompressedBytes()
	got, ok := G1FromCompressed(b)
	if !ok {
		t.Fatal("decode failed")
	}
	x1, y1 := g.Affine()
	x2, y2 := got.Affine()
	if x1.Cmp(x2) != 0 || y1.Cmp(y2) != 0 {
		t.Fatal("round trip mismatch")
	}
}

func TestG1CompressedIdentityRoundTrip(t *testing.T) {
	id := G1Identity()
	b := id.CompressedBytes()
	got, ok := G1FromCompressed(b)
	if !ok || !got.IsIdentity() {
		t.Fatal("identity round trip failed")
	}
}

func TestG1UncompressedRoundTrip(t *testing.T) {
	g := G1Generator().ScalarMul(big.NewInt(42))
	b := g.UncompressedBytes()
	got, ok := G1FromUncompressed(b)
	if !ok {
		t.Fatal("decode failed")
	}
	x1, y1 := g.Affine()
	x2, y2 := got.Affine()
	if x1.Cmp(x2) != 0 || y1.Cmp(y2) != 0 {
		t.Fatal("round trip mismatch")
	}
}

func TestG1InSubgroup(t *testing.T) {
	g := G1Generator()
	if !g.InSubgroup() {
		t.Fatal("generator should be in the prime-order subgroup")
	}
}

func TestG1ScalarMulByGroupOrderIsIdentity(t *testing.T) {
	g := G1Generator()
	if !g.ScalarMul(GroupOrder()).IsIdentity() {
		t.Fatal("r*g should be the identity")
	}
}
