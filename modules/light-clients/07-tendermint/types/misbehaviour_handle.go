package types

import (
	"bytes"
	"time"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/ibcx-labs/tm-lightclient/modules/core/02-client/types"
	"github.com/ibcx-labs/tm-lightclient/modules/core/exported"
)

// verifyMisbehaviour checks a Misbehaviour submission carrying two
// headers: each header must independently satisfy checkValidity
// against its own trusted consensus state, the way the original's
// check_misbehaviour_and_update_state verifies both conflicting
// headers before accepting the evidence.
func (cs ClientState) verifyMisbehaviour(reader exported.ClientReader, clientID string, misbehaviour *Misbehaviour, now time.Time) error {
	if err := misbehaviour.ValidateBasic(); err != nil {
		return err
	}

	header1, header2 := misbehaviour.Header1, misbehaviour.Header2
	if header1.GetHeight().EQ(header2.GetHeight()) {
		// Fork: both headers commit the same height to different blocks.
		if bytes.Equal(header1.SignedHeader.Commit.BlockID.Hash, header2.SignedHeader.Commit.BlockID.Hash) {
			return errorsmod.Wrap(ErrInvalidMisbehaviour, "headers at same height have identical block hashes, not misbehaviour")
		}
	} else if header1.GetTime().After(header2.GetTime()) {
		// BFT time violation: height must increase monotonically with time.
		return errorsmod.Wrap(ErrInvalidMisbehaviour, "headers are not sequential in height and time")
	}

	trustedConsState1, found := reader.GetConsensusState(clientID, misbehaviour.Header1.TrustedHeight)
	if !found {
		return errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "could not get trusted consensus state for header 1 at height %s", misbehaviour.Header1.TrustedHeight)
	}
	tmTrustedConsState1, ok := trustedConsState1.(*ConsensusState)
	if !ok {
		return errorsmod.Wrapf(clienttypes.ErrInvalidConsensusState, "expected type %T, got %T", &ConsensusState{}, trustedConsState1)
	}

	trustedConsState2, found := reader.GetConsensusState(clientID, misbehaviour.Header2.TrustedHeight)
	if !found {
		return errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "could not get trusted consensus state for header 2 at height %s", misbehaviour.Header2.TrustedHeight)
	}
	tmTrustedConsState2, ok := trustedConsState2.(*ConsensusState)
	if !ok {
		return errorsmod.Wrapf(clienttypes.ErrInvalidConsensusState, "expected type %T, got %T", &ConsensusState{}, trustedConsState2)
	}

	if err := checkMisbehaviourHeader(&cs, tmTrustedConsState1, misbehaviour.Header1, now); err != nil {
		return errorsmod.Wrap(err, "verifying header 1 in misbehaviour failed")
	}
	if err := checkMisbehaviourHeader(&cs, tmTrustedConsState2, misbehaviour.Header2, now); err != nil {
		return errorsmod.Wrap(err, "verifying header 2 in misbehaviour failed")
	}
	return nil
}

// checkMisbehaviourHeader verifies a single header within a
// Misbehaviour submission against its own trusted consensus state.
// Unlike a plain header update, a misbehaviour header is permitted to
// be at or below the client's latest height (that is precisely what
// makes it evidence of a fork), so only signature/validator-set
// validity is checked, not height freshness.
func checkMisbehaviourHeader(clientState *ClientState, consState *ConsensusState, header *Header, now time.Time) error {
	return checkValidity(clientState, consState, header, now)
}
