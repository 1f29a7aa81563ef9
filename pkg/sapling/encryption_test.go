package sapling

import (
	"math/big"
	"testing"

	"github.com/shieldedkit/sapling-crypto/pkg/consensus"
	"github.com/shieldedkit/sapling-crypto/pkg/jubjub"
)

// testNote builds a self-consistent note, with its ivk and ovk, for a fresh
// random ivk and the first valid diversifier, using a ZIP-212 (AfterZip212)
// rseed when afterZip212 is true. Callers that need a BeforeZip212 note pass
// afterZip212 = false and supply esk explicitly to EncryptNote.
func testNote(t *testing.T, value uint64, afterZip212 bool) (Note, jubjub.Fs, [32]byte) {
	t.Helper()

	var diversifier [11]byte
	var gd *jubjub.Point
	for i := 0; ; i++ {
		diversifier[0] = byte(i)
		if p, ok := jubjub.DiversifierToPoint(diversifier); ok {
			gd = p
			break
		}
	}

	ivk, err := jubjub.FsRandom()
	if err != nil {
		t.Fatalf("FsRandom: %v", err)
	}
	pkd := gd.ScalarMulFs(ivk)

	var rseed Rseed
	if afterZip212 {
		var seed [32]byte
		seed[0] = 0x42
		rseed = RseedAfterZip212(seed)
	} else {
		rcm, err := jubjub.FsRandom()
		if err != nil {
			t.Fatalf("FsRandom: %v", err)
		}
		rseed = RseedBeforeZip212(rcm)
	}

	rcm := rseed.rcmValue(diversifier)
	cmu := NoteCommitment(gd, pkd, value, rcm)

	note := Note{
		Value:        value,
		Diversifier:  diversifier,
		Gd:           gd,
		Pkd:          pkd,
		Rseed:        rseed,
		CommitmentFr: cmu,
	}
	var ovk [32]byte
	ovk[0] = 0x07
	return note, ivk, ovk
}

func encryptTestNote(t *testing.T, note Note, ovk [32]byte, esk *jubjub.Fs) *EncryptedOutput {
	t.Helper()
	memo, _ := NewMemoFromUTF8("hello")
	var cv [32]byte
	cv[0] = 0x09
	out, err := EncryptNote(note, memo, ovk, cv, esk)
	if err != nil {
		t.Fatalf("EncryptNote: %v", err)
	}
	return out
}

func TestFullTrialDecryptionRoundTrip(t *testing.T) {
	note, ivk, ovk := testNote(t, 12345, true)
	out := encryptTestNote(t, note, ovk, nil)

	params := consensus.RegtestParameters()
	decrypted, err := TrySaplingNoteDecryption(params, 100, ivk, out.Epk, out.EncCiphertext, note.CommitmentFr, note.Pkd)
	if err != nil {
		t.Fatalf("TrySaplingNoteDecryption: %v", err)
	}
	if decrypted.Note.Value != note.Value {
		t.Fatalf("value mismatch: got %d want %d", decrypted.Note.Value, note.Value)
	}
	if got, _ := decrypted.Memo.ToUTF8(); got != "hello" {
		t.Fatalf("memo mismatch: got %q", got)
	}
}

func TestCompactTrialDecryptionRoundTrip(t *testing.T) {
	note, ivk, ovk := testNote(t, 777, true)
	out := encryptTestNote(t, note, ovk, nil)

	var compact [CompactPlaintextSize]byte
	copy(compact[:], out.EncCiphertext[:CompactPlaintextSize])

	got, err := TrySaplingCompactNoteDecryption(ivk, out.Epk, compact, note.CommitmentFr, note.Pkd)
	if err != nil {
		t.Fatalf("TrySaplingCompactNoteDecryption: %v", err)
	}
	if got.Value != note.Value {
		t.Fatalf("value mismatch: got %d want %d", got.Value, note.Value)
	}
}

func TestCompactDecryptionAgreesWithFullDecryption(t *testing.T) {
	note, ivk, ovk := testNote(t, 555, true)
	out := encryptTestNote(t, note, ovk, nil)

	params := consensus.RegtestParameters()
	full, err := TrySaplingNoteDecryption(params, 100, ivk, out.Epk, out.EncCiphertext, note.CommitmentFr, note.Pkd)
	if err != nil {
		t.Fatalf("full decryption: %v", err)
	}

	var compact [CompactPlaintextSize]byte
	copy(compact[:], out.EncCiphertext[:CompactPlaintextSize])
	compactResult, err := TrySaplingCompactNoteDecryption(ivk, out.Epk, compact, note.CommitmentFr, note.Pkd)
	if err != nil {
		t.Fatalf("compact decryption: %v", err)
	}

	if full.Note.Value != compactResult.Value || !full.Note.Gd.Equal(compactResult.Gd) {
		t.Fatal("compact and full decryption disagree")
	}
}

func TestOutputRecoveryRoundTrip(t *testing.T) {
	note, _, ovk := testNote(t, 999, true)
	memo, _ := NewMemoFromUTF8("memo")
	var cv [32]byte
	cv[0] = 0x09
	out, err := EncryptNote(note, memo, ovk, cv, nil)
	if err != nil {
		t.Fatalf("EncryptNote: %v", err)
	}

	recovered, err := TrySaplingOutputRecovery(ovk, cv, note.CommitmentFr, out.Epk, out.EncCiphertext, out.OutCiphertext)
	if err != nil {
		t.Fatalf("TrySaplingOutputRecovery: %v", err)
	}
	if recovered.Note.Value != note.Value {
		t.Fatalf("value mismatch: got %d want %d", recovered.Note.Value, note.Value)
	}
	if got, _ := recovered.Memo.ToUTF8(); got != "memo" {
		t.Fatalf("memo mismatch: got %q", got)
	}
}

func TestBeforeZip212NoteRequiresExplicitEsk(t *testing.T) {
	note, _, ovk := testNote(t, 1, false)
	memo, _ := NewMemoFromUTF8("")
	var cv [32]byte
	if _, err := EncryptNote(note, memo, ovk, cv, nil); err == nil {
		t.Fatal("expected an error when esk is omitted for a BeforeZip212 note")
	}

	esk, err := jubjub.FsRandom()
	if err != nil {
		t.Fatalf("FsRandom: %v", err)
	}
	if _, err := EncryptNote(note, memo, ovk, cv, &esk); err != nil {
		t.Fatalf("EncryptNote with explicit esk: %v", err)
	}
}

func TestTrialDecryptionRejectsWrongIvk(t *testing.T) {
	note, _, ovk := testNote(t, 1, true)
	out := encryptTestNote(t, note, ovk, nil)

	wrongIvk, err := jubjub.FsRandom()
	if err != nil {
		t.Fatalf("FsRandom: %v", err)
	}
	params := consensus.RegtestParameters()
	if _, err := TrySaplingNoteDecryption(params, 100, wrongIvk, out.Epk, out.EncCiphertext, note.CommitmentFr, note.Pkd); err == nil {
		t.Fatal("expected decryption with the wrong ivk to fail")
	}
}

func TestTrialDecryptionRejectsWrongEpk(t *testing.T) {
	note, ivk, ovk := testNote(t, 1, true)
	out := encryptTestNote(t, note, ovk, nil)

	var otherDiversifier [11]byte
	otherDiversifier[0] = 0xff
	wrongEpk, ok := jubjub.DiversifierToPoint(otherDiversifier)
	if !ok {
		t.Skip("diversifier did not map to a point")
	}

	params := consensus.RegtestParameters()
	if _, err := TrySaplingNoteDecryption(params, 100, ivk, wrongEpk, out.EncCiphertext, note.CommitmentFr, note.Pkd); err == nil {
		t.Fatal("expected decryption with the wrong epk to fail")
	}
}

func TestTrialDecryptionRejectsWrongCmu(t *testing.T) {
	note, ivk, ovk := testNote(t, 1, true)
	out := encryptTestNote(t, note, ovk, nil)

	wrongCmu := new(big.Int).Add(note.CommitmentFr, big.NewInt(1))
	params := consensus.RegtestParameters()
	if _, err := TrySaplingNoteDecryption(params, 100, ivk, out.Epk, out.EncCiphertext, wrongCmu, note.Pkd); err == nil {
		t.Fatal("expected decryption with the wrong cmu to fail")
	}
}

func TestTrialDecryptionRejectsFlippedCiphertextByte(t *testing.T) {
	note, ivk, ovk := testNote(t, 1, true)
	out := encryptTestNote(t, note, ovk, nil)
	out.EncCiphertext[len(out.EncCiphertext)-1] ^= 0x01

	params := consensus.RegtestParameters()
	if _, err := TrySaplingNoteDecryption(params, 100, ivk, out.Epk, out.EncCiphertext, note.CommitmentFr, note.Pkd); err == nil {
		t.Fatal("expected decryption to fail after flipping the last enc ciphertext byte")
	}
}

func TestOutputRecoveryRejectsFlippedCiphertextByte(t *testing.T) {
	note, _, ovk := testNote(t, 1, true)
	memo, _ := NewMemoFromUTF8("")
	var cv [32]byte
	out, err := EncryptNote(note, memo, ovk, cv, nil)
	if err != nil {
		t.Fatalf("EncryptNote: %v", err)
	}
	out.OutCiphertext[len(out.OutCiphertext)-1] ^= 0x01

	if _, err := TrySaplingOutputRecovery(ovk, cv, note.CommitmentFr, out.Epk, out.EncCiphertext, out.OutCiphertext); err == nil {
		t.Fatal("expected output recovery to fail after flipping the last out ciphertext byte")
	}
}

// reencryptWithSplicedDiversifier decrypts out's enc ciphertext under the
// recipient's own key (as the test stands in for the sender, who has the
// same kEnc), overwrites the diversifier field, and reseals it with the
// unmodified kEnc. This mirrors the reference implementation's
// reencrypt_enc_ciphertext test helper: it produces a ciphertext that is
// only wrong in its diversifier field, isolating that field as the cause of
// any decryption failure.
func reencryptWithSplicedDiversifier(t *testing.T, ivk jubjub.Fs, out *EncryptedOutput, newDiversifier [11]byte) [EncCiphertextSize]byte {
	t.Helper()
	shared := SaplingKAAgree(ivk, out.Epk)
	kEnc := KDFSapling(shared, out.Epk)

	plaintext, err := AEADOpen(kEnc, out.EncCiphertext[:])
	if err != nil {
		t.Fatalf("AEADOpen: %v", err)
	}
	copy(plaintext[1:12], newDiversifier[:])

	resealed, err := AEADSeal(kEnc, plaintext)
	if err != nil {
		t.Fatalf("AEADSeal: %v", err)
	}
	var spliced [EncCiphertextSize]byte
	copy(spliced[:], resealed)
	return spliced
}

func TestInvalidDiversifierHasNoValidGd(t *testing.T) {
	var invalidDiversifier [11]byte
	found := false
	for i := 0; i < 256; i++ {
		invalidDiversifier[0] = byte(i)
		invalidDiversifier[1] = 0xff
		if _, ok := jubjub.DiversifierToPoint(invalidDiversifier); !ok {
			found = true
			break
		}
	}
	if !found {
		t.Skip("did not find a rejected diversifier in the sampled range")
	}

	note, ivk, ovk := testNote(t, 1, true)
	out := encryptTestNote(t, note, ovk, nil)
	out.EncCiphertext = reencryptWithSplicedDiversifier(t, ivk, out, invalidDiversifier)

	params := consensus.RegtestParameters()
	if _, err := TrySaplingNoteDecryption(params, 100, ivk, out.Epk, out.EncCiphertext, note.CommitmentFr, note.Pkd); err == nil {
		t.Fatal("expected decryption to fail for a plaintext whose diversifier has no valid g_d")
	}

	var compact [CompactPlaintextSize]byte
	copy(compact[:], out.EncCiphertext[:CompactPlaintextSize])
	if _, err := TrySaplingCompactNoteDecryption(ivk, out.Epk, compact, note.CommitmentFr, note.Pkd); err == nil {
		t.Fatal("expected compact decryption to fail for a plaintext whose diversifier has no valid g_d")
	}
}

func TestDistinctDiversifiersYieldDistinctGd(t *testing.T) {
	var d1, d2 [11]byte
	d1[0] = 1
	d2[0] = 2
	g1, ok1 := jubjub.DiversifierToPoint(d1)
	g2, ok2 := jubjub.DiversifierToPoint(d2)
	if !ok1 || !ok2 {
		t.Skip("one of the sampled diversifiers did not map to a point")
	}
	if g1.Equal(g2) {
		t.Fatal("distinct diversifiers produced the same g_d")
	}

	note, ivk, ovk := testNote(t, 1, true)
	out := encryptTestNote(t, note, ovk, nil)

	var substitute [11]byte
	for i := 0; i < 256; i++ {
		substitute[0] = byte(i)
		if substitute == note.Diversifier {
			continue
		}
		if _, ok := jubjub.DiversifierToPoint(substitute); ok {
			break
		}
	}
	out.EncCiphertext = reencryptWithSplicedDiversifier(t, ivk, out, substitute)

	params := consensus.RegtestParameters()
	if _, err := TrySaplingNoteDecryption(params, 100, ivk, out.Epk, out.EncCiphertext, note.CommitmentFr, note.Pkd); err == nil {
		t.Fatal("expected decryption to fail when the plaintext's diversifier is substituted for a distinct valid one")
	}

	var compact [CompactPlaintextSize]byte
	copy(compact[:], out.EncCiphertext[:CompactPlaintextSize])
	if _, err := TrySaplingCompactNoteDecryption(ivk, out.Epk, compact, note.CommitmentFr, note.Pkd); err == nil {
		t.Fatal("expected compact decryption to fail when the plaintext's diversifier is substituted for a distinct valid one")
	}
}

func TestZip212GracePeriodAcceptsBothLeadBytes(t *testing.T) {
	params := consensus.MainNetParameters()
	canopyHeight, ok := params.ActivationHeight(consensus.NUCanopy)
	if !ok {
		t.Fatal("mainnet parameters must define a Canopy activation height")
	}
	heightInGrace := canopyHeight + 1

	if !plaintextVersionIsValid(params, heightInGrace, 0x01) {
		t.Fatal("0x01 must remain valid during the Canopy grace period")
	}
	if !plaintextVersionIsValid(params, heightInGrace, 0x02) {
		t.Fatal("0x02 must be valid during the Canopy grace period")
	}
	if plaintextVersionIsValid(params, heightInGrace, 0x03) {
		t.Fatal("an unrecognized lead byte must never be valid")
	}

	heightAfterGrace := canopyHeight + consensus.CanopyGracePeriod + 1
	if plaintextVersionIsValid(params, heightAfterGrace, 0x01) {
		t.Fatal("0x01 must be rejected once the grace period has elapsed")
	}
	if !plaintextVersionIsValid(params, heightAfterGrace, 0x02) {
		t.Fatal("0x02 must remain valid after the grace period")
	}
}

func TestPreCanopyOnlyAcceptsLegacyLeadByte(t *testing.T) {
	params := consensus.MainNetParameters()
	canopyHeight, _ := params.ActivationHeight(consensus.NUCanopy)
	if !plaintextVersionIsValid(params, canopyHeight-1, 0x01) {
		t.Fatal("0x01 must be valid before Canopy activation")
	}
	if plaintextVersionIsValid(params, canopyHeight-1, 0x02) {
		t.Fatal("0x02 must be rejected before Canopy activation")
	}
}
