// Command sapling-tool is a small demonstration CLI over this module's
// note-encryption pipeline.
//
// Usage:
//
//	sapling-tool demo [--value N] [--memo TEXT]
//	sapling-tool version
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shieldedkit/sapling-crypto/pkg/consensus"
	"github.com/shieldedkit/sapling-crypto/pkg/jubjub"
	"github.com/shieldedkit/sapling-crypto/pkg/log"
	"github.com/shieldedkit/sapling-crypto/pkg/sapling"
)

var version = "v0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the actual entry point, returning an exit code. Accepts CLI
// arguments (without the program name) so it can be tested in isolation.
func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 2
	}

	switch args[0] {
	case "version":
		fmt.Printf("sapling-tool %s\n", version)
		return 0
	case "demo":
		return runDemo(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", args[0])
		printUsage()
		return 2
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: sapling-tool <demo|version> [flags]")
}

// runDemo generates a diversified address, encrypts a note to it, then
// trial-decrypts and recovers it, printing each stage's result.
func runDemo(args []string) int {
	logger := log.Default().Module("sapling-tool")

	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	value := fs.Uint64("value", 1000, "note value, in zatoshi")
	memoText := fs.String("memo", "", "memo text to attach to the note")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	ivk, err := jubjub.FsRandom()
	if err != nil {
		logger.Error("failed to generate incoming viewing key", "error", err)
		return 1
	}

	var diversifier [11]byte
	var gd *jubjub.Point
	for i := 0; ; i++ {
		diversifier[0] = byte(i)
		if p, ok := jubjub.DiversifierToPoint(diversifier); ok {
			gd = p
			break
		}
		if i == 255 {
			logger.Error("failed to find a valid diversifier")
			return 1
		}
	}
	pkd := gd.ScalarMulFs(ivk)

	var seed [32]byte
	copy(seed[:], []byte("sapling-tool demo seed material"))
	rseed := sapling.RseedAfterZip212(seed)
	rcm := rseed.Rcm(diversifier)
	cmu := sapling.NoteCommitment(gd, pkd, *value, rcm)

	note := sapling.Note{
		Value:        *value,
		Diversifier:  diversifier,
		Gd:           gd,
		Pkd:          pkd,
		Rseed:        rseed,
		CommitmentFr: cmu,
	}

	memo, err := sapling.NewMemoFromUTF8(*memoText)
	if err != nil {
		logger.Error("memo too long", "error", err)
		return 1
	}

	var ovk [32]byte
	copy(ovk[:], []byte("sapling-tool demo ovk material.."))
	var cv [32]byte
	copy(cv[:], []byte("sapling-tool demo cv material..."))

	out, err := sapling.EncryptNote(note, memo, ovk, cv, nil)
	if err != nil {
		logger.Error("encryption failed", "error", err)
		return 1
	}
	logger.Info("note encrypted", "value", note.Value, "enc_ciphertext_len", len(out.EncCiphertext))

	params := consensus.RegtestParameters()
	decrypted, err := sapling.TrySaplingNoteDecryption(params, 0, ivk, out.Epk, out.EncCiphertext, note.CommitmentFr, note.Pkd)
	if err != nil {
		logger.Error("trial decryption failed", "error", err)
		return 1
	}
	fmt.Printf("decrypted value: %d\n", decrypted.Note.Value)
	if text, ok := decrypted.Memo.ToUTF8(); ok {
		fmt.Printf("decrypted memo:  %q\n", text)
	}

	recovered, err := sapling.TrySaplingOutputRecovery(ovk, cv, note.CommitmentFr, out.Epk, out.EncCiphertext, out.OutCiphertext)
	if err != nil {
		logger.Error("output recovery failed", "error", err)
		return 1
	}
	fmt.Printf("recovered value: %d\n", recovered.Note.Value)
	return 0
}
