// Package sapling implements the Sapling in-band note-encryption pipeline:
// key derivation, authenticated encryption, and the trial-decryption and
// output-recovery paths that bind a shielded note to its commitment and
// ephemeral key.
package sapling

import "errors"

// MemoSize is the fixed wire size of a memo field.
const MemoSize = 512

// Memo is a fixed 512-byte memo field attached to a note.
type Memo [MemoSize]byte

// ErrMemoTooLong is returned when constructing a memo from more than 512
// bytes of input.
var ErrMemoTooLong = errors.New("sapling: memo exceeds 512 bytes")

// NewMemoFromBytes right-pads b with zeros to 512 bytes; inputs longer than
// 512 bytes are rejected.
func NewMemoFromBytes(b []byte) (Memo, error) {
	var m Memo
	if len(b) > MemoSize {
		return m, ErrMemoTooLong
	}
	copy(m[:], b)
	return m, nil
}

// NewMemoFromUTF8 encodes s as a text memo (leading byte < 0xf5).
func NewMemoFromUTF8(s string) (Memo, error) {
	return NewMemoFromBytes([]byte(s))
}

// EmptyMemo returns the canonical empty memo: 0xf6 followed by zeros.
func EmptyMemo() Memo {
	var m Memo
	m[0] = 0xf6
	return m
}

// ToUTF8 returns the memo as text with trailing zeros trimmed, if the
// leading byte marks it as UTF-8 text (< 0xf5); the second return value is
// false for binary or the canonical-empty encoding.
func (m Memo) ToUTF8() (string, bool) {
	if m[0] >= 0xf5 {
		return "", false
	}
	end := MemoSize
	for end > 0 && m[end-1] == 0 {
		end--
	}
	return string(m[:end]), true
}

// IsEmpty reports whether m is the canonical empty memo (0xf6 then zeros).
func (m Memo) IsEmpty() bool {
	if m[0] != 0xf6 {
		return false
	}
	for i := 1; i < MemoSize; i++ {
		if m[i] != 0 {
			return false
		}
	}
	return true
}
