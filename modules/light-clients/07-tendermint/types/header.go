package types

import (
	"time"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	cmttypes "github.com/cometbft/cometbft/types"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/ibcx-labs/tm-lightclient/modules/core/02-client/types"
	commitmenttypes "github.com/ibcx-labs/tm-lightclient/modules/core/23-commitment/types"
)

// Header defines a Tendermint light client header update: the signed
// header and validator set at the new height, plus the trusted height
// and validator set the update is checked against.
type Header struct {
	SignedHeader      *cmtproto.SignedHeader
	ValidatorSet      *cmtproto.ValidatorSet
	TrustedHeight     clienttypes.Height
	TrustedValidators *cmtproto.ValidatorSet
}

// ClientType returns the client type: "07-tendermint".
func (Header) ClientType() string { return "07-tendermint" }

// ValidateBasic performs stateless validation of the header fields.
func (h Header) ValidateBasic() error {
	if h.SignedHeader == nil || h.SignedHeader.Header == nil {
		return errorsmod.Wrap(ErrInvalidHeader, "signed header cannot be nil")
	}
	if h.ValidatorSet == nil {
		return errorsmod.Wrap(ErrInvalidValidatorSet, "validator set cannot be nil")
	}
	if h.TrustedValidators == nil {
		return errorsmod.Wrap(ErrInvalidValidatorSet, "trusted validator set cannot be nil")
	}
	if h.GetHeight().LTE(h.TrustedHeight) {
		return errorsmod.Wrapf(ErrInvalidHeaderHeight, "header height (%s) <= trusted height (%s)", h.GetHeight(), h.TrustedHeight)
	}
	return nil
}

// GetHeight returns the header's height, at the same revision as the
// trusted height it updates from.
func (h Header) GetHeight() clienttypes.Height {
	return clienttypes.NewHeight(h.TrustedHeight.RevisionNumber, uint64(h.SignedHeader.Header.Height))
}

// GetTime returns the header's block timestamp.
func (h Header) GetTime() time.Time {
	return h.SignedHeader.Header.Time
}

// ConsensusState returns the ConsensusState this header would produce
// if accepted: the block timestamp, app hash, and next validator set
// hash it carries.
func (h Header) ConsensusState() *ConsensusState {
	cs := NewConsensusState(h.GetTime(), commitmenttypes.NewMerkleRoot(h.SignedHeader.Header.AppHash), h.SignedHeader.Header.NextValidatorsHash)
	return &cs
}

// TmSignedHeader converts the wire-format signed header into
// cometbft's own types.SignedHeader, the shape its light-client
// verifier consumes.
func (h Header) TmSignedHeader() (*cmttypes.SignedHeader, error) {
	return cmttypes.SignedHeaderFromProto(h.SignedHeader)
}

// TmValidatorSet converts the wire-format validator set into
// cometbft's own types.ValidatorSet.
func (h Header) TmValidatorSet() (*cmttypes.ValidatorSet, error) {
	return cmttypes.ValidatorSetFromProto(h.ValidatorSet)
}

// TmTrustedValidators converts the wire-format trusted validator set
// into cometbft's own types.ValidatorSet.
func (h Header) TmTrustedValidators() (*cmttypes.ValidatorSet, error) {
	return cmttypes.ValidatorSetFromProto(h.TrustedValidators)
}
