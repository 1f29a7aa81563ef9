package bls12381

import (
	"math/big"
	"testing"
)

func TestFqArithmeticLaws(t *testing.T) {
	a := big.NewInt(12345)
	b := big.NewInt(67890)
	c := big.NewInt(13579)

	if fqAdd(a, b).Cmp(fqAdd(b, a)) != 0 {
		t.Fatal("addition not commutative")
	}
	if fqMul(a, fqAdd(b, c)).Cmp(fqAdd(fqMul(a, b), fqMul(a, c))) != 0 {
		t.Fatal("distributivity failed")
	}
	inv := fqInv(a)
	if fqMul(a, inv).Cmp(big.NewInt(1)) != 0 {
		t.Fatal("inverse failed")
	}
	if fqAdd(a, fqNeg(a)).Sign() != 0 {
		t.Fatal("negation failed")
	}
}

func TestFqSqrtRoundTrip(t *testing.T) {
	a := big.NewInt(42)
	sq := fqSqr(a)
	root := fqSqrt(sq)
	if root == nil {
		t.Fatal("expected square root to exist")
	}
	if fqSqr(root).Cmp(sq) != 0 {
		t.Fatal("sqrt(a)^2 != a")
	}
}

func TestFqBytesRoundTrip(t *testing.T) {
	a := big.NewInt(987654321)
	b := FqBytes(a)
	got, ok := FqFromBytes(b)
	if !ok || got.Cmp(a) != 0 {
		t.Fatalf("round trip failed: got %v, ok %v", got, ok)
	}
}

func TestFqFromBytesRejectsNonCanonical(t *testing.T) {
	var b [48]byte
	for i := range b {
		b[i] = 0xff
	}
	if _, ok := FqFromBytes(b); ok {
		t.Fatal("expected rejection of value >= modulus")
	}
}
