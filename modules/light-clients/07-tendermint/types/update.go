package types

import (
	"bytes"
	"reflect"
	"time"

	cmtlight "github.com/cometbft/cometbft/light"
	cmttypes "github.com/cometbft/cometbft/types"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/ibcx-labs/tm-lightclient/modules/core/02-client/types"
	"github.com/ibcx-labs/tm-lightclient/modules/core/exported"
)

// VerifyClientMessage checks that the given ClientMessage (a Header or
// a Misbehaviour) is internally valid: for a Header, that it is a
// correctly signed, sufficiently-trusted update per the tendermint
// skipping algorithm; for a Misbehaviour, that both of its headers
// individually satisfy the same check. It performs no store writes.
func (cs ClientState) VerifyClientMessage(reader exported.ClientReader, clientID string, clientMsg exported.ClientMessage, now time.Time) error {
	switch msg := clientMsg.(type) {
	case *Header:
		return cs.verifyHeader(reader, clientID, msg, now)
	case *Misbehaviour:
		return cs.verifyMisbehaviour(reader, clientID, msg, now)
	default:
		return errorsmod.Wrapf(clienttypes.ErrInvalidClientType, "unsupported client message type %T", clientMsg)
	}
}

// verifyHeader checks that header is a valid update: its trusted
// validator set must hash to the stored consensus state's
// NextValidatorsHash, the header must be at the same revision as its
// trusted height, and the tendermint skipping-verification algorithm
// (cometbft/light.Verify) must accept it using this client's trust
// level, trusting period and max clock drift.
func (cs ClientState) verifyHeader(reader exported.ClientReader, clientID string, header *Header, now time.Time) error {
	if err := header.ValidateBasic(); err != nil {
		return err
	}

	if chainVersion := clienttypes.ParseChainID(cs.ChainId); header.GetHeight().RevisionNumber != chainVersion {
		return errorsmod.Wrapf(
			ErrMismatchedRevisions,
			"header height revision %d does not match client chain-id revision %d",
			header.GetHeight().RevisionNumber, chainVersion,
		)
	}

	trustedConsState, found := reader.GetConsensusState(clientID, header.TrustedHeight)
	if !found {
		return errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "could not get consensus state from client store at TrustedHeight: %s", header.TrustedHeight)
	}
	tmTrustedConsState, ok := trustedConsState.(*ConsensusState)
	if !ok {
		return errorsmod.Wrapf(clienttypes.ErrInvalidConsensusState, "expected type %T, got %T", &ConsensusState{}, trustedConsState)
	}

	if err := checkValidity(&cs, tmTrustedConsState, header, now); err != nil {
		return err
	}

	return checkHeaderMonotonicity(reader, clientID, &cs, header)
}

// checkHeaderMonotonicity rejects a header whose timestamp would break
// monotonicity against a neighbouring stored consensus state: it may
// not occur after the next known consensus state (cs-new, cs-next), nor
// before the previous one (cs-prev, cs-new). A header that merely fails
// these bounds is otherwise valid and is rejected with an error, not
// frozen; only a header that conflicts with an existing consensus state
// at its own height is misbehaviour (see checkHeaderMisbehaviour).
func checkHeaderMonotonicity(reader exported.ClientReader, clientID string, cs *ClientState, header *Header) error {
	height := header.GetHeight()
	timestamp := header.GetTime()

	if height.LT(cs.LatestHeight) {
		if nextCons, found := reader.GetNextConsensusState(clientID, height); found {
			if tmNextCons, ok := nextCons.(*ConsensusState); ok && timestamp.After(tmNextCons.Timestamp) {
				return errorsmod.Wrapf(
					ErrHeaderTimestampTooHigh,
					"header timestamp (%s) is after next consensus state's timestamp (%s)",
					timestamp, tmNextCons.Timestamp,
				)
			}
		}
	}

	if header.TrustedHeight.LT(height) {
		if prevCons, found := reader.GetPreviousConsensusState(clientID, height); found {
			if tmPrevCons, ok := prevCons.(*ConsensusState); ok && timestamp.Before(tmPrevCons.Timestamp) {
				return errorsmod.Wrapf(
					ErrHeaderTimestampTooLow,
					"header timestamp (%s) is before previous consensus state's timestamp (%s)",
					timestamp, tmPrevCons.Timestamp,
				)
			}
		}
	}

	return nil
}

// checkTrustedHeader checks that the header's trusted validator set is
// indeed the NextValidators of the last trusted consensus state, i.e.
// that trustedVals.Hash() == consState.NextValidatorsHash.
func checkTrustedHeader(header *Header, consState *ConsensusState) error {
	tmTrustedValidators, err := header.TmTrustedValidators()
	if err != nil {
		return errorsmod.Wrap(err, "trusted validator set is not tendermint validator set type")
	}

	tvalHash := tmTrustedValidators.Hash()
	if !bytes.Equal(consState.NextValidatorsHash, tvalHash) {
		return errorsmod.Wrapf(
			ErrInvalidValidatorSet,
			"trusted validators does not hash to latest trusted validators. expected: %X, got: %X",
			consState.NextValidatorsHash, tvalHash,
		)
	}
	return nil
}

// checkValidity checks that header is a valid update given consState,
// the trusted consensus state at header.TrustedHeight. This is the
// direct counterpart of the original's check_header_and_validator_set
// + verify_header_commit_against_trusted combination.
func checkValidity(clientState *ClientState, consState *ConsensusState, header *Header, currentTimestamp time.Time) error {
	if err := checkTrustedHeader(header, consState); err != nil {
		return err
	}

	if header.GetHeight().RevisionNumber != header.TrustedHeight.RevisionNumber {
		return errorsmod.Wrapf(
			ErrInvalidHeaderHeight,
			"header height revision %d does not match trusted header revision %d",
			header.GetHeight().RevisionNumber, header.TrustedHeight.RevisionNumber,
		)
	}

	if header.GetHeight().LTE(header.TrustedHeight) {
		return errorsmod.Wrapf(ErrInvalidHeader, "header height <= consensus state height (%s <= %s)", header.GetHeight(), header.TrustedHeight)
	}

	tmTrustedValidators, err := header.TmTrustedValidators()
	if err != nil {
		return errorsmod.Wrap(err, "trusted validator set is not tendermint validator set type")
	}
	tmSignedHeader, err := header.TmSignedHeader()
	if err != nil {
		return errorsmod.Wrap(err, "signed header is not tendermint signed header type")
	}
	tmValidatorSet, err := header.TmValidatorSet()
	if err != nil {
		return errorsmod.Wrap(err, "validator set is not tendermint validator set type")
	}

	chainID := clientState.GetChainID()
	if clienttypes.IsRevisionFormat(chainID) {
		chainID, _ = clienttypes.SetRevisionNumber(chainID, header.GetHeight().RevisionNumber)
	}

	// Only height, time and NextValidatorsHash are needed from the
	// trusted side to run the skipping verifier.
	trustedHeader := cmttypes.Header{
		ChainID:            chainID,
		Height:             int64(header.TrustedHeight.RevisionHeight),
		Time:               consState.Timestamp,
		NextValidatorsHash: consState.NextValidatorsHash,
	}
	trustedSignedHeader := cmttypes.SignedHeader{Header: &trustedHeader}

	// light.Verify asserts, in order: trusting period has not passed,
	// header timestamp is not beyond max clock drift in the future,
	// header timestamp is after the trusted header's timestamp, and a
	// TrustLevel proportion of the trusted validator set signed the
	// new commit (or, for adjacent headers, the full validator set).
	err = cmtlight.Verify(
		&trustedSignedHeader, tmTrustedValidators,
		tmSignedHeader, tmValidatorSet,
		clientState.TrustingPeriod, currentTimestamp, clientState.MaxClockDrift,
		clientState.TrustLevel.ToTendermint(),
	)
	if err != nil {
		return errorsmod.Wrap(err, "failed to verify header")
	}
	return nil
}

// CheckForMisbehaviour detects the one flavour of implicit misbehaviour
// a Header can carry once VerifyClientMessage has already accepted it:
// a conflict with an already-stored consensus state at the same height
// (fork). Time-monotonicity violations are rejected with an error
// earlier, in VerifyClientMessage (see checkHeaderMonotonicity), and so
// never reach this check — they leave the client usable, they do not
// freeze it. Any explicit Misbehaviour submission is always
// misbehaviour once VerifyClientMessage has accepted it.
func (cs ClientState) CheckForMisbehaviour(reader exported.ClientReader, clientID string, msg exported.ClientMessage) bool {
	switch msg := msg.(type) {
	case *Header:
		return cs.checkHeaderMisbehaviour(reader, clientID, msg)
	case *Misbehaviour:
		return true
	default:
		return false
	}
}

func (cs ClientState) checkHeaderMisbehaviour(reader exported.ClientReader, clientID string, header *Header) bool {
	consState := header.ConsensusState()

	prevConsState, found := reader.GetConsensusState(clientID, header.GetHeight())
	if !found {
		return false
	}
	// A consensus state already exists at this height. If it matches
	// the header exactly this is a benign replay, not misbehaviour. If
	// it does not match, the header has already been shown valid by
	// VerifyClientMessage, so a second, different valid header at the
	// same height is a fork.
	return !reflect.DeepEqual(prevConsState, consState)
}

// UpdateState persists the consensus state a valid, non-misbehaving
// Header produces and advances LatestHeight if the header is newer
// than any previously known height. Resubmitting a header for a
// height that already has a matching stored consensus state is a
// no-op: LatestHeight is not re-derived from it.
func (cs ClientState) UpdateState(reader exported.ClientReader, clientID string, clientMsg exported.ClientMessage) (ClientState, *ConsensusState, error) {
	header, ok := clientMsg.(*Header)
	if !ok {
		return cs, nil, errorsmod.Wrapf(clienttypes.ErrInvalidClientType, "expected type %T, got %T", &Header{}, clientMsg)
	}

	if existing, found := reader.GetConsensusState(clientID, header.GetHeight()); found {
		existingTm, _ := existing.(*ConsensusState)
		return cs, existingTm, nil
	}

	height := header.GetHeight()
	if height.GT(cs.LatestHeight) {
		cs.LatestHeight = height
	}
	consensusState := header.ConsensusState()
	return cs, consensusState, nil
}

// UpdateStateOnMisbehaviour freezes the client once misbehaviour has
// been detected. FrozenHeight is set to the {0,1} sentinel: it is
// never used as a real height, only as a boolean "frozen" marker, so
// subsequent VerifyHeight calls treat every height as unverifiable.
func (cs ClientState) UpdateStateOnMisbehaviour() ClientState {
	cs.FrozenHeight = FrozenHeight
	return cs
}
