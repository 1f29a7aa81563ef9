package sapling

import "github.com/shieldedkit/sapling-crypto/pkg/consensus"

// plaintextVersionIsValid implements the §4.L.3 lead-byte policy: pre-Canopy
// only 0x01 is valid; during the Canopy grace period both 0x01 and 0x02 are
// valid; after the grace period only 0x02 is valid.
//
// This intentionally accepts 0x01 during the grace period even though
// Rseed parsing treats 0x01 as BeforeZip212 elsewhere — that is the
// ZIP-212-specified transition behavior, not a bug, and is covered by an
// explicit test asserting it verbatim.
func plaintextVersionIsValid(params consensus.Parameters, height uint32, leadByte byte) bool {
	canopyHeight, active := params.ActivationHeight(consensus.NUCanopy)
	if !active || height < canopyHeight {
		return leadByte == 0x01
	}
	if height < canopyHeight+consensus.CanopyGracePeriod {
		return leadByte == 0x01 || leadByte == 0x02
	}
	return leadByte == 0x02
}
