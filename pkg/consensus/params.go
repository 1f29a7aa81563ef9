// Package consensus exposes the network-upgrade activation-height
// capability that the note-encryption plaintext-version policy consults,
// without depending on a specific chain's parameter table.
package consensus

// NetworkUpgrade identifies a Zcash-style consensus rule change.
type NetworkUpgrade int

const (
	NUOverwinter NetworkUpgrade = iota
	NUSapling
	NUBlossom
	NUHeartwood
	NUCanopy
	NUNu5
)

// Parameters exposes activation heights for network upgrades. Callers that
// only need the Canopy-relative plaintext version policy use
// ActivationHeight(NUCanopy) and IsNUActive(NUCanopy, height).
type Parameters interface {
	ActivationHeight(nu NetworkUpgrade) (height uint32, active bool)
	IsNUActive(nu NetworkUpgrade, height uint32) bool
}

// staticParameters backs the three parameter sets below; an upgrade absent
// from the map is never active.
type staticParameters struct {
	heights map[NetworkUpgrade]uint32
}

func (p staticParameters) ActivationHeight(nu NetworkUpgrade) (uint32, bool) {
	h, ok := p.heights[nu]
	return h, ok
}

func (p staticParameters) IsNUActive(nu NetworkUpgrade, height uint32) bool {
	h, ok := p.heights[nu]
	return ok && height >= h
}

// MainNetParameters returns canonical Zcash mainnet activation heights.
func MainNetParameters() Parameters {
	return staticParameters{heights: map[NetworkUpgrade]uint32{
		NUOverwinter: 347500,
		NUSapling:    419200,
		NUBlossom:    653600,
		NUHeartwood:  903000,
		NUCanopy:     1046400,
		NUNu5:        1687104,
	}}
}

// TestNetParameters returns canonical Zcash testnet activation heights.
func TestNetParameters() Parameters {
	return staticParameters{heights: map[NetworkUpgrade]uint32{
		NUOverwinter: 207500,
		NUSapling:    280000,
		NUBlossom:    584000,
		NUHeartwood:  903800,
		NUCanopy:     1028500,
		NUNu5:        1842420,
	}}
}

// RegtestParameters returns a parameter set with every upgrade active from
// genesis, for local testing.
func RegtestParameters() Parameters {
	return staticParameters{heights: map[NetworkUpgrade]uint32{
		NUOverwinter: 0,
		NUSapling:    0,
		NUBlossom:    0,
		NUHeartwood:  0,
		NUCanopy:     0,
		NUNu5:        0,
	}}
}

// CanopyGracePeriod is the number of blocks after Canopy activation during
// which both pre- and post-ZIP-212 plaintext lead bytes remain valid.
const CanopyGracePeriod = 32256
