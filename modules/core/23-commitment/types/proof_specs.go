package types

import ics23 "github.com/cosmos/ics23/go"

// GetSDKSpecs returns the default proof specs used by a cosmos-sdk host
// chain's storage stack: an IAVL-backed application store nested under
// a Tendermint-backed block-header commitment, innermost first.
func GetSDKSpecs() []*ics23.ProofSpec {
	return []*ics23.ProofSpec{ics23.IavlSpec, ics23.TendermintSpec}
}
