package sapling

// Sender-side note encryption: deriving the ephemeral key pair, wrapping the
// full note plaintext under the shared-secret-derived key, and wrapping the
// sender's own recovery data under the outgoing cipher key.

import (
	"errors"

	"github.com/shieldedkit/sapling-crypto/pkg/jubjub"
)

// errMissingEsk is returned when encrypting a BeforeZip212 note without an
// explicit ephemeral secret key.
var errMissingEsk = errors.New("sapling: a BeforeZip212 note requires an explicit ephemeral secret key")

// EncryptedOutput bundles everything a transaction output needs to carry for
// a single encrypted note: the ephemeral public key and the two ciphertexts.
type EncryptedOutput struct {
	Epk           *jubjub.Point
	EncCiphertext [EncCiphertextSize]byte
	OutCiphertext [OutCiphertextSize]byte
}

// deriveEsk returns the ephemeral secret key to use for note: for
// AfterZip212 notes esk is derived deterministically from the rseed and
// diversifier; for BeforeZip212 notes the caller must supply one (typically
// freshly random, via jubjub.FsRandom).
func deriveEsk(note Note, eskForBeforeZip212 *jubjub.Fs) (jubjub.Fs, bool) {
	if note.Rseed.IsAfterZip212() {
		return note.Rseed.deriveEskAfterZip212(note.Diversifier), true
	}
	if eskForBeforeZip212 == nil {
		return jubjub.Fs{}, false
	}
	return *eskForBeforeZip212, true
}

// EncryptNote seals note for its recipient and produces the sender's
// recovery ciphertext, following §4.L steps 1-7: derive esk and epk, agree on
// a shared secret with pk_d, derive k_enc, seal the full plaintext, derive
// k_out from the outgoing viewing key and cv/cmu/epk, and seal (pk_d, esk).
//
// eskForBeforeZip212 is only consulted for notes whose Rseed predates
// ZIP-212; AfterZip212 notes always derive esk deterministically and this
// parameter is ignored for them. cv is the note's serialized value
// commitment, supplied by the caller's value-commitment scheme.
func EncryptNote(note Note, memo Memo, ovk [32]byte, cv [32]byte, eskForBeforeZip212 *jubjub.Fs) (*EncryptedOutput, error) {
	esk, ok := deriveEsk(note, eskForBeforeZip212)
	if !ok {
		return nil, errMissingEsk
	}

	epk := note.Gd.ScalarMulFs(esk)
	shared := SaplingKAAgree(esk, note.Pkd)
	kEnc := KDFSapling(shared, epk)

	rseedOrRcm := note.Rseed.plaintextBytes()
	plaintext := encodeFullPlaintext(note.Rseed.versionByte(), note, rseedOrRcm, memo)
	encCiphertextSlice, err := AEADSeal(kEnc, plaintext[:])
	if err != nil {
		return nil, err
	}
	var encCiphertext [EncCiphertextSize]byte
	copy(encCiphertext[:], encCiphertextSlice)

	kOut := PRFOck(ovk, cv, note.CommitmentFr, epk)
	outPlaintext := encodeOutPlaintext(note.Pkd, esk)
	outCiphertextSlice, err := AEADSeal(kOut, outPlaintext[:])
	if err != nil {
		return nil, err
	}
	var outCiphertext [OutCiphertextSize]byte
	copy(outCiphertext[:], outCiphertextSlice)

	return &EncryptedOutput{Epk: epk, EncCiphertext: encCiphertext, OutCiphertext: outCiphertext}, nil
}

func encodeOutPlaintext(pkd *jubjub.Point, esk jubjub.Fs) [OutPlaintextSize]byte {
	var out [OutPlaintextSize]byte
	pkdBytes := pkd.Bytes()
	eskBytes := jubjub.FsBytes(esk)
	copy(out[:32], pkdBytes[:])
	copy(out[32:], eskBytes[:])
	return out
}
