package sapling

import (
	"encoding/binary"
	"math/big"

	"github.com/shieldedkit/sapling-crypto/pkg/jubjub"
)

// CompactPlaintextSize is the length of a compact note plaintext.
const CompactPlaintextSize = 1 + 11 + 8 + 32

// FullPlaintextSize is the length of a full note plaintext (compact + memo).
const FullPlaintextSize = CompactPlaintextSize + MemoSize

// EncCiphertextSize is the length of the sealed full plaintext.
const EncCiphertextSize = FullPlaintextSize + 16

// OutPlaintextSize is the length of the sender-side recovery plaintext.
const OutPlaintextSize = 32 + 32

// OutCiphertextSize is the length of the sealed out plaintext.
const OutCiphertextSize = OutPlaintextSize + 16

// Rseed is the tagged union of the pre- and post-ZIP-212 note randomness.
type Rseed struct {
	afterZip212 bool
	rcm         jubjub.Fs // valid when !afterZip212
	rseed       [32]byte  // valid when afterZip212
}

// RseedBeforeZip212 wraps a legacy note-commitment-randomness scalar.
func RseedBeforeZip212(rcm jubjub.Fs) Rseed {
	return Rseed{afterZip212: false, rcm: rcm}
}

// RseedAfterZip212 wraps a ZIP-212 32-byte seed.
func RseedAfterZip212(seed [32]byte) Rseed {
	return Rseed{afterZip212: true, rseed: seed}
}

// IsAfterZip212 reports which variant of the tagged union this is.
func (r Rseed) IsAfterZip212() bool { return r.afterZip212 }

// versionByte returns the plaintext leading version byte for this Rseed.
func (r Rseed) versionByte() byte {
	if r.afterZip212 {
		return 0x02
	}
	return 0x01
}

// zip212PRFExpandPersonalization is the domain separator for deriving esk
// and rcm from a ZIP-212 rseed.
const zip212PRFExpandPersonalization = "Zcash_ExpandSeed"

// deriveEskAfterZip212 returns the ephemeral secret key for this note: for
// BeforeZip212 notes esk is supplied independently by the caller (random or
// test-vector-fixed), so this only applies to AfterZip212 notes, where esk
// is derived from the rseed and the note's diversifier.
func (r Rseed) deriveEskAfterZip212(diversifier [11]byte) jubjub.Fs {
	digest := blake2b256(zip212PRFExpandPersonalization, []byte{0x81}, r.rseed[:], diversifier[:])
	return jubjub.FsFromWideBytes(digest[:])
}

// deriveRcmAfterZip212 returns the note-commitment randomness for a
// ZIP-212 note.
func (r Rseed) deriveRcmAfterZip212() jubjub.Fs {
	digest := blake2b256(zip212PRFExpandPersonalization, []byte{0x82}, r.rseed[:])
	return jubjub.FsFromWideBytes(digest[:])
}

// rcmValue returns the note-commitment randomness regardless of Rseed variant.
func (r Rseed) rcmValue(diversifier [11]byte) jubjub.Fs {
	if r.afterZip212 {
		return r.deriveRcmAfterZip212()
	}
	return r.rcm
}

// Rcm returns the note-commitment randomness for this Rseed, deriving it
// from the seed for AfterZip212 notes. Callers building a Note by hand (as
// opposed to decoding one) use this to compute NoteCommitment's rcm input.
func (r Rseed) Rcm(diversifier [11]byte) jubjub.Fs {
	return r.rcmValue(diversifier)
}

// plaintextBytes returns the 32 bytes this Rseed contributes to the note
// plaintext: the raw seed for AfterZip212 notes, or the serialized rcm
// scalar for BeforeZip212 notes.
func (r Rseed) plaintextBytes() [32]byte {
	if r.afterZip212 {
		return r.rseed
	}
	return jubjub.FsBytes(r.rcm)
}

// Note is a Sapling shielded note.
type Note struct {
	Value        uint64
	Diversifier  [11]byte
	Gd           *jubjub.Point
	Pkd          *jubjub.Point
	Rseed        Rseed
	CommitmentFr *big.Int // the note commitment cmu, an Fr element
}

// EphemeralKeypair is the sender's per-note ephemeral key pair.
type EphemeralKeypair struct {
	Esk jubjub.Fs
	Epk *jubjub.Point // esk * g_d, in the prime-order subgroup
}

func encodeFullPlaintext(versionByte byte, n Note, rseedOrRcm [32]byte, memo Memo) [FullPlaintextSize]byte {
	var out [FullPlaintextSize]byte
	out[0] = versionByte
	copy(out[1:12], n.Diversifier[:])
	binary.LittleEndian.PutUint64(out[12:20], n.Value)
	copy(out[20:52], rseedOrRcm[:])
	copy(out[52:], memo[:])
	return out
}
