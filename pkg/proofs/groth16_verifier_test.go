package proofs

import (
	"math/big"
	"testing"

	"github.com/shieldedkit/sapling-crypto/pkg/bls12381"
)

// trivialVerifyingKey builds a verifying key with no public inputs and
// vk_x forced to the G1 identity, so the pairing equation reduces to
// e(-A,B) * e(Alpha,Beta) * e(C,Delta) == 1.
func trivialVerifyingKey() *VerifyingKey {
	return &VerifyingKey{
		Alpha: bls12381.G1Generator().ScalarMul(big.NewInt(5)),
		Beta:  bls12381.G2Generator().ScalarMul(big.NewInt(7)),
		Gamma: bls12381.G2Generator(),
		Delta: bls12381.G2Generator().ScalarMul(big.NewInt(3)),
		IC:    []*bls12381.G1Point{bls12381.G1Identity()},
	}
}

func TestPureGoBackendAcceptsValidProof(t *testing.T) {
	vk := trivialVerifyingKey()
	proof := &Proof{
		A: vk.Alpha,
		B: vk.Beta,
		C: bls12381.G1Identity(),
	}

	ok, err := (&PureGoBackend{}).Verify(vk, proof, nil)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("expected a trivially-constructed valid proof to verify")
	}
}

func TestPureGoBackendRejectsTamperedC(t *testing.T) {
	vk := trivialVerifyingKey()
	proof := &Proof{
		A: vk.Alpha,
		B: vk.Beta,
		C: bls12381.G1Generator(), // nonzero, breaks the equation
	}

	ok, err := (&PureGoBackend{}).Verify(vk, proof, nil)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatal("expected verification to fail once C is tampered with")
	}
}

func TestPureGoBackendRejectsWrongPublicInputCount(t *testing.T) {
	vk := trivialVerifyingKey()
	proof := &Proof{A: vk.Alpha, B: vk.Beta, C: bls12381.G1Identity()}

	if _, err := (&PureGoBackend{}).Verify(vk, proof, []*big.Int{big.NewInt(1)}); err == nil {
		t.Fatal("expected an IC-length mismatch error")
	}
}

func TestValidateProofRejectsNilFields(t *testing.T) {
	if err := validateProof(nil); err != ErrNilProof {
		t.Fatalf("got %v, want ErrNilProof", err)
	}
	if err := validateProof(&Proof{}); err != ErrInvalidA {
		t.Fatalf("got %v, want ErrInvalidA", err)
	}
}

func TestDefaultBackendRoundTrip(t *testing.T) {
	if DefaultBackend().Name() != "pure-go-bls12381" {
		t.Fatalf("unexpected default backend: %s", DefaultBackend().Name())
	}
	SetBackend(&PureGoBackend{})
	defer SetBackend(nil)

	vk := trivialVerifyingKey()
	proof := &Proof{A: vk.Alpha, B: vk.Beta, C: bls12381.G1Identity()}
	ok, err := Verify(vk, proof, nil)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("expected the trivial proof to verify through the package-level Verify")
	}
}
