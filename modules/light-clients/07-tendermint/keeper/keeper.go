// Package keeper wires the pure verification logic in
// modules/light-clients/07-tendermint/types to a real sdk.Context,
// KVStore and BinaryCodec. Grounded on the store-level helper functions
// (GetConsensusState/setConsensusState/GetProcessedTime/GetProcessedHeight)
// referenced from ibc-go's 07-tendermint/types/proposal_handle.go, and on
// the client-store-scoping convention 08-wasm/internal/types/store.go
// and modules/core/24-host/client_paths.go establish.
package keeper

import (
	"fmt"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/ibcx-labs/tm-lightclient/modules/core/02-client/types"
	"github.com/ibcx-labs/tm-lightclient/modules/core/exported"
	host "github.com/ibcx-labs/tm-lightclient/modules/core/24-host"
	tmtypes "github.com/ibcx-labs/tm-lightclient/modules/light-clients/07-tendermint/types"
)

// SubModuleName is this client type's logging/event namespace.
const SubModuleName = "07-tendermint"

// Logger returns a module-scoped logger, the way every core IBC keeper
// tags its log lines with "x/ibc/<submodule>".
func Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/ibc/%s", SubModuleName))
}

// Keeper provides the 07-tendermint light client module's store and
// codec handle, satisfying exported.ClientKeeper.
type Keeper struct {
	storeKey storetypes.StoreKey
	cdc      codec.BinaryCodec
}

// NewKeeper constructs a Keeper.
func NewKeeper(storeKey storetypes.StoreKey, cdc codec.BinaryCodec) Keeper {
	return Keeper{storeKey: storeKey, cdc: cdc}
}

// Codec implements exported.ClientKeeper.
func (k Keeper) Codec() codec.BinaryCodec { return k.cdc }

// ClientStore implements exported.ClientKeeper: it returns a KVStore
// scoped to "clients/{clientID}/", so every call site (light client
// module, Reader) can address paths relative to a single client
// without repeating the client ID.
func (k Keeper) ClientStore(ctx sdk.Context, clientID string) storetypes.KVStore {
	clientPrefix := []byte(fmt.Sprintf("%s/%s/", host.KeyClientStorePrefix, clientID))
	return prefix.NewStore(ctx.KVStore(k.storeKey), clientPrefix)
}

// GetClientState reads and unmarshals the client state from store.
func GetClientState(store storetypes.KVStore) (*tmtypes.ClientState, bool) {
	bz := store.Get(host.ClientStateKey())
	if len(bz) == 0 {
		return nil, false
	}
	cs := new(tmtypes.ClientState)
	if err := cs.Unmarshal(bz); err != nil {
		return nil, false
	}
	return cs, true
}

// SetClientState marshals and writes the client state to store.
func SetClientState(store storetypes.KVStore, cs *tmtypes.ClientState) {
	bz, err := cs.Marshal()
	if err != nil {
		panic(err)
	}
	store.Set(host.ClientStateKey(), bz)
}

// GetConsensusState reads and unmarshals the consensus state at height
// from store, returning false if none is stored there.
func GetConsensusState(store storetypes.KVStore, height exported.Height) (*tmtypes.ConsensusState, bool) {
	bz := store.Get(host.ConsensusStateKey(height))
	if len(bz) == 0 {
		return nil, false
	}
	cs := new(tmtypes.ConsensusState)
	if err := cs.Unmarshal(bz); err != nil {
		return nil, false
	}
	return cs, true
}

// SetConsensusState marshals and writes the consensus state at height.
func SetConsensusState(store storetypes.KVStore, consState *tmtypes.ConsensusState, height exported.Height) {
	bz, err := consState.Marshal()
	if err != nil {
		panic(err)
	}
	store.Set(host.ConsensusStateKey(height), bz)
}

// SetConsensusMetadata records the host time and height at which the
// consensus state for height was written, the metadata VerifyDelayPassed
// reads back via GetProcessedTime/GetProcessedHeight.
func SetConsensusMetadata(ctx sdk.Context, store storetypes.KVStore, height exported.Height) {
	SetConsensusMetadataWithValues(store, height, clienttypes.NewHeight(0, uint64(ctx.BlockHeight())), ctx.BlockTime())
}

// SetConsensusMetadataWithValues records explicit processed height/time
// values, used when copying metadata from a substitute client.
func SetConsensusMetadataWithValues(store storetypes.KVStore, height exported.Height, processedHeight clienttypes.Height, processedTime time.Time) {
	store.Set(host.ProcessedTimeKey(height), []byte(fmt.Sprintf("%d", processedTime.UnixNano())))
	processedHeightBz, err := processedHeight.Marshal()
	if err != nil {
		panic(err)
	}
	store.Set(host.ProcessedHeightKey(height), processedHeightBz)
}

// GetProcessedTime returns the host time recorded for the consensus
// state at height.
func GetProcessedTime(store storetypes.KVStore, height exported.Height) (time.Time, bool) {
	bz := store.Get(host.ProcessedTimeKey(height))
	if len(bz) == 0 {
		return time.Time{}, false
	}
	var nanos int64
	if _, err := fmt.Sscanf(string(bz), "%d", &nanos); err != nil {
		return time.Time{}, false
	}
	return time.Unix(0, nanos).UTC(), true
}

// GetProcessedHeight returns the host height recorded for the
// consensus state at height.
func GetProcessedHeight(store storetypes.KVStore, height exported.Height) (clienttypes.Height, bool) {
	bz := store.Get(host.ProcessedHeightKey(height))
	if len(bz) == 0 {
		return clienttypes.Height{}, false
	}
	var ph clienttypes.Height
	if err := ph.Unmarshal(bz); err != nil {
		return clienttypes.Height{}, false
	}
	return ph, true
}

// GetNextConsensusState returns the consensus state with the smallest
// height strictly greater than height, scanning every stored consensus
// state under the client store rather than relying on the iteration
// order of their encoded keys to coincide with height order.
func GetNextConsensusState(store storetypes.KVStore, height exported.Height) (*tmtypes.ConsensusState, bool) {
	var best *tmtypes.ConsensusState
	var bestHeight clienttypes.Height
	found := false

	iterateConsensusStates(store, func(h clienttypes.Height, cs *tmtypes.ConsensusState) {
		if !h.GT(height) {
			return
		}
		if !found || h.LT(bestHeight) {
			best, bestHeight, found = cs, h, true
		}
	})
	return best, found
}

// GetPreviousConsensusState returns the consensus state with the
// largest height strictly less than height.
func GetPreviousConsensusState(store storetypes.KVStore, height exported.Height) (*tmtypes.ConsensusState, bool) {
	var best *tmtypes.ConsensusState
	var bestHeight clienttypes.Height
	found := false

	iterateConsensusStates(store, func(h clienttypes.Height, cs *tmtypes.ConsensusState) {
		if !h.LT(height) {
			return
		}
		if !found || h.GT(bestHeight) {
			best, bestHeight, found = cs, h, true
		}
	})
	return best, found
}

func iterateConsensusStates(store storetypes.KVStore, cb func(clienttypes.Height, *tmtypes.ConsensusState)) {
	iterator := storetypes.KVStorePrefixIterator(store, []byte(host.KeyConsensusStatePrefix+"/"))
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		heightStr := trimConsensusStatePrefix(string(iterator.Key()))
		h, err := clienttypes.ParseHeight(heightStr)
		if err != nil {
			continue
		}
		cs := new(tmtypes.ConsensusState)
		if err := cs.Unmarshal(iterator.Value()); err != nil {
			continue
		}
		cb(h, cs)
	}
}

func trimConsensusStatePrefix(key string) string {
	prefixLen := len(host.KeyConsensusStatePrefix) + 1
	if len(key) <= prefixLen {
		return ""
	}
	return key[prefixLen:]
}
