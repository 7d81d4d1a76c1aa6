package types

import (
	"reflect"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/ibcx-labs/tm-lightclient/modules/core/02-client/types"
	"github.com/ibcx-labs/tm-lightclient/modules/core/exported"
)

// IsMatchingClientState returns true if the subject and substitute
// client states are identical except for the fields a governance-led
// substitution is allowed to change (latest height, frozen height,
// trusting period, chain-id, allow-update flags; see ZeroCustomFields),
// matching the comparison ibc-go's client-recovery proposal handler
// performs.
func IsMatchingClientState(subject, substitute ClientState) bool {
	return reflect.DeepEqual(subject.ZeroCustomFields(), substitute.ZeroCustomFields())
}

// CheckSubstituteAndUpdateState is the host-governance-invoked escape
// hatch that is the only path that ever un-freezes a client. It
// requires the substitute to agree with the subject on every field
// the governance process cannot itself change (trust level, unbonding
// period, max clock drift, proof specs); on success it unfreezes the
// subject and adopts the substitute's chain-id, trusting period and
// latest height, together with the consensus state and processed
// time/height metadata the caller must separately copy for that height
// (the keeper package owns that store-level copy; this function only
// updates the in-memory ClientState).
func CheckSubstituteAndUpdateState(subject, substitute ClientState) (ClientState, error) {
	if !IsMatchingClientState(subject, substitute) {
		return ClientState{}, errorsmod.Wrap(clienttypes.ErrInvalidSubstitute, "subject client state does not match substitute client state")
	}

	subject.FrozenHeight = clienttypes.ZeroHeight()
	subject.LatestHeight = substitute.LatestHeight
	subject.ChainId = substitute.ChainId
	subject.TrustingPeriod = substitute.TrustingPeriod
	return subject, nil
}

// VerifyUpgradeAndUpdateState implements the client-upgrade path spec
// §4.1/§9 directs to leave as a documented stub: upgrading a client to
// track a post-chain-upgrade validator set and unbonding period is a
// distinct, rarely-exercised flow this module does not implement.
func (cs ClientState) VerifyUpgradeAndUpdateState(
	_ exported.ClientReader, _ string,
	_ exported.ClientState, _ exported.ConsensusState,
	_ []byte, _ []byte,
) (ClientState, *ConsensusState, error) {
	return ClientState{}, nil, errorsmod.Wrap(ErrUpgradeNotImplemented, "client upgrade is not implemented")
}
