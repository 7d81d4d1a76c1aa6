// Package tendermint wires the pure ICS-07 Tendermint light client
// logic in modules/light-clients/07-tendermint/types to the host
// through a LightClientModule adapter, grounded method-for-method on
// the solomachine light_client_module.go's current, post-refactor
// architecture for plugging a concrete client type into the core IBC
// keeper.
package tendermint

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/ibcx-labs/tm-lightclient/modules/core/02-client/types"
	commitmenttypes "github.com/ibcx-labs/tm-lightclient/modules/core/23-commitment/types"
	"github.com/ibcx-labs/tm-lightclient/modules/core/exported"
	tmkeeper "github.com/ibcx-labs/tm-lightclient/modules/light-clients/07-tendermint/keeper"
	tmtypes "github.com/ibcx-labs/tm-lightclient/modules/light-clients/07-tendermint/types"
)

// ClientType is the registered type string for this light client.
const ClientType = "07-tendermint"

// LightClientModule implements exported.LightClientModule for the
// Tendermint client.
type LightClientModule struct {
	keeper tmkeeper.Keeper
}

// NewLightClientModule constructs a LightClientModule.
func NewLightClientModule(keeper tmkeeper.Keeper) LightClientModule {
	return LightClientModule{keeper: keeper}
}

var _ exported.LightClientModule = LightClientModule{}

func (l LightClientModule) reader(ctx sdk.Context, clientID string) storeReader {
	return storeReader{ctx: ctx, store: l.keeper.ClientStore(ctx, clientID)}
}

func (l LightClientModule) clientState(ctx sdk.Context, clientID string) (*tmtypes.ClientState, storeReader, error) {
	r := l.reader(ctx, clientID)
	cs, found := tmkeeper.GetClientState(r.store)
	if !found {
		return nil, r, errorsmod.Wrapf(clienttypes.ErrClientNotFound, "client ID %s", clientID)
	}
	return cs, r, nil
}

// Initialize validates the initial client and consensus state bytes a
// MsgCreateClient carries and, if valid, persists them in the new
// client's store.
func (l LightClientModule) Initialize(ctx sdk.Context, clientID string, clientStateBz, consensusStateBz []byte) error {
	var clientState tmtypes.ClientState
	if err := clientState.Unmarshal(clientStateBz); err != nil {
		return errorsmod.Wrap(err, "failed to unmarshal client state")
	}
	if err := clientState.Validate(); err != nil {
		return err
	}

	var consensusState tmtypes.ConsensusState
	if err := consensusState.Unmarshal(consensusStateBz); err != nil {
		return errorsmod.Wrap(err, "failed to unmarshal consensus state")
	}

	store := l.keeper.ClientStore(ctx, clientID)
	tmkeeper.SetClientState(store, &clientState)
	tmkeeper.SetConsensusState(store, &consensusState, clientState.LatestHeight)
	tmkeeper.SetConsensusMetadata(ctx, store, clientState.LatestHeight)
	return nil
}

// VerifyClientMessage delegates to ClientState.VerifyClientMessage
// against the client's own reader, performing no store writes.
func (l LightClientModule) VerifyClientMessage(ctx sdk.Context, clientID string, clientMsg exported.ClientMessage) error {
	clientState, reader, err := l.clientState(ctx, clientID)
	if err != nil {
		return err
	}
	return clientState.VerifyClientMessage(reader, clientID, clientMsg, ctx.BlockTime())
}

// CheckForMisbehaviour delegates to ClientState.CheckForMisbehaviour.
func (l LightClientModule) CheckForMisbehaviour(ctx sdk.Context, clientID string, clientMsg exported.ClientMessage) bool {
	clientState, reader, err := l.clientState(ctx, clientID)
	if err != nil {
		panic(err)
	}
	return clientState.CheckForMisbehaviour(reader, clientID, clientMsg)
}

// UpdateStateOnMisbehaviour freezes the client and persists the
// updated client state.
func (l LightClientModule) UpdateStateOnMisbehaviour(ctx sdk.Context, clientID string, _ exported.ClientMessage) {
	clientState, reader, err := l.clientState(ctx, clientID)
	if err != nil {
		panic(err)
	}
	updated := clientState.UpdateStateOnMisbehaviour()
	tmkeeper.SetClientState(reader.store, &updated)

	tmkeeper.Logger(ctx).Info(
		"client frozen due to misbehaviour",
		"client-id", clientID,
		"frozen-height", updated.FrozenHeight.String(),
	)
}

// UpdateState persists the consensus state a valid header produces and
// the client state's possibly-advanced latest height, returning the
// list of heights newly stored (a single height, or none on a replay
// no-op).
func (l LightClientModule) UpdateState(ctx sdk.Context, clientID string, clientMsg exported.ClientMessage) []exported.Height {
	clientState, reader, err := l.clientState(ctx, clientID)
	if err != nil {
		panic(err)
	}

	header, ok := clientMsg.(*tmtypes.Header)
	if !ok {
		panic(fmt.Errorf("expected type %T, got %T", &tmtypes.Header{}, clientMsg))
	}
	height := header.GetHeight()
	_, alreadyStored := tmkeeper.GetConsensusState(reader.store, height)

	updated, consensusState, err := clientState.UpdateState(reader, clientID, clientMsg)
	if err != nil {
		panic(err)
	}
	tmkeeper.SetClientState(reader.store, &updated)

	if alreadyStored || consensusState == nil {
		return nil
	}
	tmkeeper.SetConsensusState(reader.store, consensusState, height)
	tmkeeper.SetConsensusMetadata(ctx, reader.store, height)
	return []exported.Height{height}
}

// VerifyMembership delegates to ClientState.VerifyMembership.
func (l LightClientModule) VerifyMembership(
	ctx sdk.Context, clientID string, height exported.Height,
	delayTimePeriod, delayBlockPeriod uint64,
	proof []byte, path exported.Path, value []byte,
) error {
	clientState, reader, err := l.clientState(ctx, clientID)
	if err != nil {
		return err
	}
	concreteHeight, merklePath, err := asConcreteHeightAndPath(height, path)
	if err != nil {
		return err
	}
	return clientState.VerifyMembership(reader, clientID, concreteHeight, delayTimePeriod, delayBlockPeriod, proof, merklePath, value)
}

// VerifyNonMembership delegates to ClientState.VerifyNonMembership.
func (l LightClientModule) VerifyNonMembership(
	ctx sdk.Context, clientID string, height exported.Height,
	delayTimePeriod, delayBlockPeriod uint64,
	proof []byte, path exported.Path,
) error {
	clientState, reader, err := l.clientState(ctx, clientID)
	if err != nil {
		return err
	}
	concreteHeight, merklePath, err := asConcreteHeightAndPath(height, path)
	if err != nil {
		return err
	}
	return clientState.VerifyNonMembership(reader, clientID, concreteHeight, delayTimePeriod, delayBlockPeriod, proof, merklePath)
}

func asConcreteHeightAndPath(height exported.Height, path exported.Path) (clienttypes.Height, commitmenttypes.MerklePath, error) {
	h, ok := height.(clienttypes.Height)
	if !ok {
		return clienttypes.Height{}, commitmenttypes.MerklePath{}, errorsmod.Wrapf(clienttypes.ErrInvalidHeight, "unexpected height type %T", height)
	}
	mp, ok := path.(commitmenttypes.MerklePath)
	if !ok {
		return clienttypes.Height{}, commitmenttypes.MerklePath{}, errorsmod.Wrapf(commitmenttypes.ErrInvalidCommitmentPath, "unexpected path type %T", path)
	}
	return h, mp, nil
}

// Status reports Frozen, Expired or Active, preferring Frozen over
// Expired when both hold.
func (l LightClientModule) Status(ctx sdk.Context, clientID string) exported.Status {
	clientState, reader, err := l.clientState(ctx, clientID)
	if err != nil {
		return exported.Unknown
	}
	if clientState.IsFrozen() {
		return exported.Frozen
	}
	consState, found := tmkeeper.GetConsensusState(reader.store, clientState.LatestHeight)
	if !found {
		return exported.Expired
	}
	if clientState.IsExpired(consState.Timestamp, ctx.BlockTime()) {
		return exported.Expired
	}
	return exported.Active
}

// TimestampAtHeight returns the block timestamp recorded in the
// consensus state stored at height.
func (l LightClientModule) TimestampAtHeight(ctx sdk.Context, clientID string, height exported.Height) (uint64, error) {
	_, reader, err := l.clientState(ctx, clientID)
	if err != nil {
		return 0, err
	}
	consState, found := tmkeeper.GetConsensusState(reader.store, height)
	if !found {
		return 0, errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "height %s", height)
	}
	return consState.GetTimestamp(), nil
}
