package types

import (
	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/ibcx-labs/tm-lightclient/modules/core/02-client/types"
)

// Misbehaviour defines evidence of two conflicting headers: two
// different blocks at the same height (a fork), or two headers at
// different heights whose timestamps violate BFT time ordering.
// Submitting a valid Misbehaviour always freezes the client.
type Misbehaviour struct {
	ClientId string
	Header1  *Header
	Header2  *Header
}

// ClientType returns the client type: "07-tendermint".
func (Misbehaviour) ClientType() string { return "07-tendermint" }

// ValidateBasic performs stateless validation: both headers must be
// present and individually well-formed, and their trusted heights must
// share a revision number. The headers' own heights may differ.
func (m Misbehaviour) ValidateBasic() error {
	if m.Header1 == nil || m.Header2 == nil {
		return errorsmod.Wrap(ErrInvalidMisbehaviour, "misbehaviour headers cannot be nil")
	}
	if err := m.Header1.ValidateBasic(); err != nil {
		return errorsmod.Wrap(err, "header 1 failed validation")
	}
	if err := m.Header2.ValidateBasic(); err != nil {
		return errorsmod.Wrap(err, "header 2 failed validation")
	}
	if m.Header1.TrustedHeight.RevisionNumber != m.Header2.TrustedHeight.RevisionNumber {
		return errorsmod.Wrap(ErrInvalidMisbehaviour, "headers must have the same revision number")
	}
	return nil
}

// GetHeight returns Header1's height; for a fork this is the height
// both headers target.
func (m Misbehaviour) GetHeight() clienttypes.Height {
	return m.Header1.GetHeight()
}
