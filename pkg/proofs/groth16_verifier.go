// Package proofs implements a Groth16 verification façade over this
// module's own BLS12-381 pairing, following the teacher's pluggable-backend
// pattern: a Backend interface with a default pure-Go implementation and a
// package-level registry so an alternate (e.g. blst-accelerated) backend can
// be swapped in without touching callers.
//
// There is no prover, no trusted-setup machinery, and no parameter loading
// here: this package only checks the one pairing equation a Groth16 proof
// must satisfy against a verifying key the caller already has.
package proofs

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/shieldedkit/sapling-crypto/pkg/bls12381"
)

var (
	ErrNilProof         = errors.New("groth16: nil proof")
	ErrNilVerifyingKey  = errors.New("groth16: nil verifying key")
	ErrInvalidA         = errors.New("groth16: invalid A (G1)")
	ErrInvalidB         = errors.New("groth16: invalid B (G2)")
	ErrInvalidC         = errors.New("groth16: invalid C (G1)")
	ErrInvalidAlpha     = errors.New("groth16: invalid Alpha (G1)")
	ErrInvalidBeta      = errors.New("groth16: invalid Beta (G2)")
	ErrInvalidGamma     = errors.New("groth16: invalid Gamma (G2)")
	ErrInvalidDelta     = errors.New("groth16: invalid Delta (G2)")
	ErrNoIC             = errors.New("groth16: no IC points")
	ErrICMismatch       = errors.New("groth16: IC length mismatch")
	ErrVerificationFail = errors.New("groth16: pairing check failed")
)

// Proof is a Groth16 proof over BLS12-381: A, C in G1 and B in G2.
type Proof struct {
	A *bls12381.G1Point
	B *bls12381.G2Point
	C *bls12381.G1Point
}

// VerifyingKey is a Groth16 verifying key over BLS12-381. IC[0] is the
// constant term; IC[1:] pair one-to-one with the public inputs.
type VerifyingKey struct {
	Alpha *bls12381.G1Point
	Beta  *bls12381.G2Point
	Gamma *bls12381.G2Point
	Delta *bls12381.G2Point
	IC    []*bls12381.G1Point
}

// Backend verifies a Groth16 proof against a verifying key and public
// inputs. Swappable so an accelerated pairing implementation can be used
// without changing call sites.
type Backend interface {
	Verify(vk *VerifyingKey, proof *Proof, publicInputs []*big.Int) (bool, error)
	Name() string
}

var (
	backendMu      sync.RWMutex
	activeBackend  Backend
	defaultBackend = &PureGoBackend{}
)

// DefaultBackend returns the currently active backend, or the pure-Go
// backend if none has been set.
func DefaultBackend() Backend {
	backendMu.RLock()
	defer backendMu.RUnlock()
	if activeBackend != nil {
		return activeBackend
	}
	return defaultBackend
}

// SetBackend installs b as the active backend for Verify.
func SetBackend(b Backend) {
	backendMu.Lock()
	defer backendMu.Unlock()
	activeBackend = b
}

// Verify checks proof against vk and publicInputs using the active backend.
func Verify(vk *VerifyingKey, proof *Proof, publicInputs []*big.Int) (bool, error) {
	return DefaultBackend().Verify(vk, proof, publicInputs)
}

func validateProof(proof *Proof) error {
	if proof == nil {
		return ErrNilProof
	}
	if proof.A == nil {
		return ErrInvalidA
	}
	if proof.B == nil {
		return ErrInvalidB
	}
	if proof.C == nil {
		return ErrInvalidC
	}
	return nil
}

func validateVerifyingKey(vk *VerifyingKey) error {
	if vk == nil {
		return ErrNilVerifyingKey
	}
	if vk.Alpha == nil {
		return ErrInvalidAlpha
	}
	if vk.Beta == nil {
		return ErrInvalidBeta
	}
	if vk.Gamma == nil {
		return ErrInvalidGamma
	}
	if vk.Delta == nil {
		return ErrInvalidDelta
	}
	if len(vk.IC) == 0 {
		return ErrNoIC
	}
	return nil
}

// PureGoBackend verifies directly against this module's bls12381 package.
type PureGoBackend struct{}

func (b *PureGoBackend) Name() string { return "pure-go-bls12381" }

// Verify checks e(-A,B) * e(Alpha,Beta) * e(vk_x,Gamma) * e(C,Delta) == 1,
// where vk_x = IC[0] + sum_i publicInputs[i]*IC[i+1].
func (b *PureGoBackend) Verify(vk *VerifyingKey, proof *Proof, publicInputs []*big.Int) (bool, error) {
	if err := validateProof(proof); err != nil {
		return false, err
	}
	if err := validateVerifyingKey(vk); err != nil {
		return false, err
	}
	if len(vk.IC) != len(publicInputs)+1 {
		return false, fmt.Errorf("%w: got %d inputs, need %d", ErrICMismatch, len(publicInputs), len(vk.IC)-1)
	}

	vkx := computeVKX(vk.IC, publicInputs)

	result := bls12381.MultiPairing(
		bls12381.PairingTerm(proof.A.Neg(), bls12381.PrepareG2(proof.B)),
		bls12381.PairingTerm(vk.Alpha, bls12381.PrepareG2(vk.Beta)),
		bls12381.PairingTerm(vkx, bls12381.PrepareG2(vk.Gamma)),
		bls12381.PairingTerm(proof.C, bls12381.PrepareG2(vk.Delta)),
	)
	return result.IsIdentity(), nil
}

func computeVKX(ic []*bls12381.G1Point, publicInputs []*big.Int) *bls12381.G1Point {
	result := ic[0]
	for i, input := range publicInputs {
		result = result.Add(ic[i+1].ScalarMul(input))
	}
	return result
}

// EstimateVerifyGas returns a rough gas-equivalent cost estimate for a
// Groth16 verification with the given number of public inputs, following
// the teacher's per-pairing/per-scalar-mul cost model.
func EstimateVerifyGas(numPublicInputs int) uint64 {
	if numPublicInputs < 0 {
		numPublicInputs = 0
	}
	return 21000 + 113000*4 + 12500*uint64(numPublicInputs)
}
