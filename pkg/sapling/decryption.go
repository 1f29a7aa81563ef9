package sapling

// Recipient-side trial decryption and sender-side output recovery.
//
// TrySaplingNoteDecryption and TrySaplingCompactNoteDecryption both use the
// incoming viewing key to recompute the same shared secret the sender used,
// then reject outputs that were never meant for this recipient. The compact
// path has no authentication tag to check; it relies entirely on the
// recomputed note commitment (and, for ZIP-212 notes, the recomputed esk)
// matching what the sender committed to on-chain.

import (
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/shieldedkit/sapling-crypto/pkg/consensus"
	"github.com/shieldedkit/sapling-crypto/pkg/jubjub"
)

// ErrNotDecryptable is returned when trial decryption fails: wrong key, a
// forbidden plaintext version byte, or a commitment/derived-key mismatch.
var ErrNotDecryptable = errors.New("sapling: note is not decryptable with the given key")

// DecryptedNote is the recipient's view of a successfully decrypted output.
type DecryptedNote struct {
	Note Note
	Memo Memo
}

func decodePlaintext(plaintext []byte, epk *jubjub.Point, cmu *big.Int) (Note, bool) {
	if len(plaintext) < CompactPlaintextSize {
		return Note{}, false
	}
	leadByte := plaintext[0]
	var diversifier [11]byte
	copy(diversifier[:], plaintext[1:12])
	value := binary.LittleEndian.Uint64(plaintext[12:20])
	var rseedOrRcm [32]byte
	copy(rseedOrRcm[:], plaintext[20:52])

	gd, ok := jubjub.DiversifierToPoint(diversifier)
	if !ok {
		return Note{}, false
	}

	var rseed Rseed
	switch leadByte {
	case 0x01:
		rcm, ok := jubjub.FsFromBytes(rseedOrRcm)
		if !ok {
			return Note{}, false
		}
		rseed = RseedBeforeZip212(rcm)
	case 0x02:
		rseed = RseedAfterZip212(rseedOrRcm)
	default:
		return Note{}, false
	}

	// pk_d is not transmitted in the plaintext; the caller recovers it by
	// deriving the note from context (it is whatever point the shared
	// secret was agreed against). Decoding alone cannot populate it, so the
	// caller fills it in once decodePlaintext succeeds.
	return Note{
		Value:        value,
		Diversifier:  diversifier,
		Gd:           gd,
		Rseed:        rseed,
		CommitmentFr: cmu,
	}, true
}

// TrySaplingNoteDecryption attempts full trial decryption of an output using
// the recipient's incoming viewing key ivk. height and params gate which
// plaintext lead bytes are acceptable at the current chain height.
func TrySaplingNoteDecryption(params consensus.Parameters, height uint32, ivk jubjub.Fs, epk *jubjub.Point, encCiphertext [EncCiphertextSize]byte, cmu *big.Int, pkd *jubjub.Point) (*DecryptedNote, error) {
	shared := SaplingKAAgree(ivk, epk)
	kEnc := KDFSapling(shared, epk)

	plaintext, err := AEADOpen(kEnc, encCiphertext[:])
	if err != nil {
		return nil, ErrNotDecryptable
	}
	if len(plaintext) != FullPlaintextSize {
		return nil, ErrNotDecryptable
	}
	if !plaintextVersionIsValid(params, height, plaintext[0]) {
		return nil, ErrNotDecryptable
	}

	note, ok := decodePlaintext(plaintext, epk, cmu)
	if !ok {
		return nil, ErrNotDecryptable
	}
	note.Pkd = pkd

	memo, err := NewMemoFromBytes(plaintext[CompactPlaintextSize:FullPlaintextSize])
	if err != nil {
		return nil, ErrNotDecryptable
	}

	if !noteMatchesCommitment(note, cmu) {
		return nil, ErrNotDecryptable
	}
	if note.Rseed.IsAfterZip212() {
		derivedEsk := note.Rseed.deriveEskAfterZip212(note.Diversifier)
		if !note.Gd.ScalarMulFs(derivedEsk).Equal(epk) {
			return nil, ErrNotDecryptable
		}
	}

	return &DecryptedNote{Note: note, Memo: memo}, nil
}

// TrySaplingCompactNoteDecryption attempts trial decryption of only the
// leading CompactPlaintextSize bytes of a note's encrypted payload (as
// carried in a compact block), with no authentication tag available. The
// commitment and (for ZIP-212 notes) derived-esk checks are load-bearing
// here: they are what rejects an output not meant for this recipient.
func TrySaplingCompactNoteDecryption(ivk jubjub.Fs, epk *jubjub.Point, compactCiphertext [CompactPlaintextSize]byte, cmu *big.Int, pkd *jubjub.Point) (*Note, error) {
	shared := SaplingKAAgree(ivk, epk)
	kEnc := KDFSapling(shared, epk)

	plaintext, err := CompactDecrypt(kEnc, compactCiphertext[:])
	if err != nil {
		return nil, ErrNotDecryptable
	}

	note, ok := decodePlaintext(plaintext, epk, cmu)
	if !ok {
		return nil, ErrNotDecryptable
	}
	note.Pkd = pkd

	if !noteMatchesCommitment(note, cmu) {
		return nil, ErrNotDecryptable
	}
	if note.Rseed.IsAfterZip212() {
		derivedEsk := note.Rseed.deriveEskAfterZip212(note.Diversifier)
		if !note.Gd.ScalarMulFs(derivedEsk).Equal(epk) {
			return nil, ErrNotDecryptable
		}
	}

	return &note, nil
}

func noteMatchesCommitment(note Note, cmu *big.Int) bool {
	rcm := note.Rseed.rcmValue(note.Diversifier)
	computed := NoteCommitment(note.Gd, note.Pkd, note.Value, rcm)
	return computed.Cmp(cmu) == 0
}

// TrySaplingOutputRecoveryWithOCK recovers the sender's own view of an
// output using an already-derived outgoing cipher key.
func TrySaplingOutputRecoveryWithOCK(ock [32]byte, epk *jubjub.Point, encCiphertext [EncCiphertextSize]byte, outCiphertext [OutCiphertextSize]byte, cmu *big.Int) (*DecryptedNote, error) {
	outPlaintext, err := AEADOpen(ock, outCiphertext[:])
	if err != nil || len(outPlaintext) != OutPlaintextSize {
		return nil, ErrNotDecryptable
	}
	var pkdBytes [32]byte
	copy(pkdBytes[:], outPlaintext[:32])
	pkd, ok := jubjub.FromBytes(pkdBytes)
	if !ok {
		return nil, ErrNotDecryptable
	}
	var eskBytes [32]byte
	copy(eskBytes[:], outPlaintext[32:])
	esk, ok := jubjub.FsFromBytes(eskBytes)
	if !ok {
		return nil, ErrNotDecryptable
	}

	shared := SaplingKAAgree(esk, pkd)
	kEnc := KDFSapling(shared, epk)
	plaintext, err := AEADOpen(kEnc, encCiphertext[:])
	if err != nil || len(plaintext) != FullPlaintextSize {
		return nil, ErrNotDecryptable
	}

	note, ok := decodePlaintext(plaintext, epk, cmu)
	if !ok {
		return nil, ErrNotDecryptable
	}
	note.Pkd = pkd

	memo, err := NewMemoFromBytes(plaintext[CompactPlaintextSize:FullPlaintextSize])
	if err != nil {
		return nil, ErrNotDecryptable
	}
	if !noteMatchesCommitment(note, cmu) {
		return nil, ErrNotDecryptable
	}

	return &DecryptedNote{Note: note, Memo: memo}, nil
}

// TrySaplingOutputRecovery derives the outgoing cipher key from ovk and the
// output's own fields, then delegates to TrySaplingOutputRecoveryWithOCK.
func TrySaplingOutputRecovery(ovk [32]byte, cv [32]byte, cmu *big.Int, epk *jubjub.Point, encCiphertext [EncCiphertextSize]byte, outCiphertext [OutCiphertextSize]byte) (*DecryptedNote, error) {
	ock := PRFOck(ovk, cv, cmu, epk)
	return TrySaplingOutputRecoveryWithOCK(ock, epk, encCiphertext, outCiphertext, cmu)
}
