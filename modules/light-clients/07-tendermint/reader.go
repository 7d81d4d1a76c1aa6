package tendermint

import (
	"time"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/ibcx-labs/tm-lightclient/modules/core/02-client/types"
	"github.com/ibcx-labs/tm-lightclient/modules/core/exported"
	tmkeeper "github.com/ibcx-labs/tm-lightclient/modules/light-clients/07-tendermint/keeper"
)

// storeReader adapts a single client's KVStore (plus the surrounding
// sdk.Context for host time/height) to exported.ClientReader, the
// narrow view the pure verification functions in the types package
// depend on. One is constructed per light-client-module call.
type storeReader struct {
	ctx   sdk.Context
	store storetypes.KVStore
}

var _ exported.ClientReader = storeReader{}

func (r storeReader) GetClientState(_ string) (exported.ClientState, bool) {
	cs, found := tmkeeper.GetClientState(r.store)
	if !found {
		return nil, false
	}
	return cs, true
}

func (r storeReader) GetConsensusState(_ string, height exported.Height) (exported.ConsensusState, bool) {
	cs, found := tmkeeper.GetConsensusState(r.store, height)
	if !found {
		return nil, false
	}
	return cs, true
}

func (r storeReader) GetNextConsensusState(_ string, height exported.Height) (exported.ConsensusState, bool) {
	cs, found := tmkeeper.GetNextConsensusState(r.store, height)
	if !found {
		return nil, false
	}
	return cs, true
}

func (r storeReader) GetPreviousConsensusState(_ string, height exported.Height) (exported.ConsensusState, bool) {
	cs, found := tmkeeper.GetPreviousConsensusState(r.store, height)
	if !found {
		return nil, false
	}
	return cs, true
}

func (r storeReader) HostTimestamp() time.Time {
	return r.ctx.BlockTime()
}

func (r storeReader) HostHeight() exported.Height {
	return clienttypes.NewHeight(0, uint64(r.ctx.BlockHeight()))
}

func (r storeReader) GetClientUpdateTimeAndHeight(_ string, height exported.Height) (time.Time, exported.Height, bool) {
	processedTime, found := tmkeeper.GetProcessedTime(r.store, height)
	if !found {
		return time.Time{}, nil, false
	}
	processedHeight, found := tmkeeper.GetProcessedHeight(r.store, height)
	if !found {
		return time.Time{}, nil, false
	}
	return processedTime, processedHeight, true
}
