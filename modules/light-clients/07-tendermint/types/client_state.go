// Package types implements the ICS-07 Tendermint light client: the
// ClientState/ConsensusState data model, header and misbehaviour
// verification, and the Merkle-proof verification wrappers. Grounded
// on ibc-go's modules/light-clients/07-tendermint/types package and on
// the original Rust ics07_tendermint/client_state.rs implementation.
package types

import (
	"strings"
	"time"

	ics23 "github.com/cosmos/ics23/go"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/ibcx-labs/tm-lightclient/modules/core/02-client/types"
)

// MaxChainIDLen is the maximum length a chain-id may have, matching
// the bound tendermint's own chain.id package enforces.
const MaxChainIDLen = 50

// FrozenHeight is the sentinel height a ClientState's FrozenHeight
// field is set to on misbehaviour; it is never a real trusted height,
// it is only ever used as a boolean "is frozen" flag.
var FrozenHeight = clienttypes.NewHeight(0, 1)

// AllowUpdate carries the advisory allow-update-after-expiry and
// allow-update-after-misbehaviour flags mirrored from the original's
// AllowUpdate. They are stored and encoded with the ClientState;
// UpdateState and the verification paths do not read them.
type AllowUpdate struct {
	AfterExpiry      bool
	AfterMisbehaviour bool
}

// ClientState is the persisted, host-agnostic state of a single
// Tendermint light client instance tracking a counterparty chain.
type ClientState struct {
	ChainId                     string
	TrustLevel                  clienttypes.Fraction
	TrustingPeriod               time.Duration
	UnbondingPeriod              time.Duration
	MaxClockDrift                time.Duration
	LatestHeight                 clienttypes.Height
	ProofSpecs                   []*ics23.ProofSpec
	UpgradePath                  []string
	AllowUpdateAfterExpiry       bool
	AllowUpdateAfterMisbehaviour bool
	FrozenHeight                 clienttypes.Height
}

// NewClientState constructs a new ClientState, running every
// construction invariant in the same order ibc-rs's tendermint
// ClientState::new validates them.
func NewClientState(
	chainID string,
	trustLevel clienttypes.Fraction,
	trustingPeriod, unbondingPeriod, maxClockDrift time.Duration,
	latestHeight clienttypes.Height,
	specs []*ics23.ProofSpec,
	upgradePath []string,
	allowUpdate AllowUpdate,
) (*ClientState, error) {
	cs := &ClientState{
		ChainId:                      chainID,
		TrustLevel:                   trustLevel,
		TrustingPeriod:               trustingPeriod,
		UnbondingPeriod:              unbondingPeriod,
		MaxClockDrift:                maxClockDrift,
		LatestHeight:                 latestHeight,
		ProofSpecs:                   specs,
		UpgradePath:                  upgradePath,
		AllowUpdateAfterExpiry:       allowUpdate.AfterExpiry,
		AllowUpdateAfterMisbehaviour: allowUpdate.AfterMisbehaviour,
		FrozenHeight:                 clienttypes.ZeroHeight(),
	}
	if err := cs.Validate(); err != nil {
		return nil, err
	}
	return cs, nil
}

// ClientType returns the client type: "07-tendermint".
func (cs ClientState) ClientType() string { return "07-tendermint" }

// GetChainID returns the chain-id tracked by this client.
func (cs ClientState) GetChainID() string { return cs.ChainId }

// GetLatestHeight returns the latest trusted height.
func (cs ClientState) GetLatestHeight() clienttypes.Height { return cs.LatestHeight }

// IsFrozen returns true if the client's frozen height is set (non-zero).
func (cs ClientState) IsFrozen() bool { return !cs.FrozenHeight.IsZero() }

// Validate runs every construction invariant against the current
// field values, in the order the original new() constructor checks
// them: chain-id length, trust level validity, trusting/unbonding
// period positivity and ordering, max-clock-drift positivity, latest
// height revision matching chain-id, non-empty proof specs, and
// non-blank upgrade path entries.
func (cs ClientState) Validate() error {
	if len(cs.ChainId) > MaxChainIDLen {
		return errorsmod.Wrapf(ErrInvalidChainID, "chainID is too long: got %d, max %d", len(cs.ChainId), MaxChainIDLen)
	}
	if cs.TrustLevel == (clienttypes.Fraction{}) {
		return errorsmod.Wrap(clienttypes.ErrInvalidTrustLevel, "trust level cannot be zero")
	}
	if err := cs.TrustLevel.Validate(); err != nil {
		return err
	}
	if cs.TrustingPeriod <= 0 {
		return errorsmod.Wrap(ErrInvalidTrustingPeriod, "trusting period must be greater than zero")
	}
	if cs.UnbondingPeriod <= 0 {
		return errorsmod.Wrap(ErrInvalidUnbondingPeriod, "unbonding period must be greater than zero")
	}
	if cs.TrustingPeriod >= cs.UnbondingPeriod {
		return errorsmod.Wrapf(clienttypes.ErrInvalidTrustLevel, "trusting period (%s) must be smaller than unbonding period (%s)", cs.TrustingPeriod, cs.UnbondingPeriod)
	}
	if cs.MaxClockDrift <= 0 {
		return errorsmod.Wrap(ErrInvalidMaxClockDrift, "max clock drift must be greater than zero")
	}
	chainVersion := clienttypes.ParseChainID(cs.ChainId)
	if clienttypes.IsRevisionFormat(cs.ChainId) && cs.LatestHeight.RevisionNumber != chainVersion {
		return errorsmod.Wrapf(clienttypes.ErrInvalidHeight, "latest height revision number must match chain-id revision number (%d != %d)", cs.LatestHeight.RevisionNumber, chainVersion)
	}
	if len(cs.ProofSpecs) == 0 {
		return errorsmod.Wrap(ErrInvalidProofSpecs, "proof specs cannot be empty")
	}
	for i, spec := range cs.ProofSpecs {
		if spec == nil {
			return errorsmod.Wrapf(ErrInvalidProofSpecs, "proof spec at index %d cannot be nil", i)
		}
	}
	for i, key := range cs.UpgradePath {
		if strings.TrimSpace(key) == "" {
			return errorsmod.Wrapf(ErrInvalidUpgradePath, "upgrade path key at index %d cannot be blank", i)
		}
	}
	return nil
}

// RefreshTime returns the recommended interval at which a relayer
// should refresh this client to avoid expiry: two thirds of the
// trusting period.
func (cs ClientState) RefreshTime() time.Duration {
	return 2 * cs.TrustingPeriod / 3
}

// IsExpired returns true if the client's trusting period has elapsed
// since latestTimestamp, as observed at currentTime.
func (cs ClientState) IsExpired(latestTimestamp, currentTime time.Time) bool {
	expirationTime := latestTimestamp.Add(cs.TrustingPeriod)
	return !currentTime.Before(expirationTime)
}

// VerifyHeight checks that the client is at a sufficient latest
// height and not frozen at or before the given height.
func (cs ClientState) VerifyHeight(height clienttypes.Height) error {
	if cs.LatestHeight.LT(height) {
		return errorsmod.Wrapf(clienttypes.ErrInvalidHeight, "client state height < proof height (%s < %s)", cs.LatestHeight, height)
	}
	if cs.IsFrozen() && cs.FrozenHeight.LTE(height) {
		return errorsmod.Wrapf(ErrClientFrozen, "client frozen at height %s, height %s", cs.FrozenHeight, height)
	}
	return nil
}

// VerifyDelayPassed checks that the configured time-delay and
// block-delay periods have elapsed since the header that produced the
// consensus state being proven against was processed.
func VerifyDelayPassed(
	currentTime time.Time, currentHeight clienttypes.Height,
	processedTime time.Time, processedHeight clienttypes.Height,
	delayTimePeriod time.Duration, delayBlockPeriod uint64,
) error {
	earliestTime := processedTime.Add(delayTimePeriod)
	if currentTime.Before(earliestTime) {
		return errorsmod.Wrapf(ErrDelayPeriodNotPassed, "current time (%s) is before earliest time (%s)", currentTime, earliestTime)
	}

	earliestHeight := clienttypes.NewHeight(processedHeight.RevisionNumber, processedHeight.RevisionHeight+delayBlockPeriod)
	if currentHeight.LT(earliestHeight) {
		return errorsmod.Wrapf(ErrBlockDelayNotPassed, "current height (%s) is before earliest height (%s)", currentHeight, earliestHeight)
	}
	return nil
}

// ZeroCustomFields zeroes the fields a governance-driven client
// substitution is allowed to change (latest height, frozen height,
// trusting period, chain-id) and normalizes the deprecated AllowUpdate
// flags, returning a copy used for equality comparison in
// CheckSubstituteAndUpdateState. TrustLevel, UnbondingPeriod,
// MaxClockDrift and ProofSpecs are left untouched: the substitute must
// agree with the subject on those.
func (cs ClientState) ZeroCustomFields() ClientState {
	cs.LatestHeight = clienttypes.ZeroHeight()
	cs.FrozenHeight = clienttypes.ZeroHeight()
	cs.TrustingPeriod = 0
	cs.ChainId = ""
	cs.AllowUpdateAfterExpiry = true
	cs.AllowUpdateAfterMisbehaviour = true
	return cs
}
