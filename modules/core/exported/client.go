// Package exported defines the interfaces a concrete light-client
// implementation (07-tendermint, in this module) must satisfy to be
// wired into a host chain, and the narrow reader interfaces that
// implementation depends on. It deliberately carries no concrete types.
package exported

import (
	"time"

	"cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Status is the status of a client.
type Status string

const (
	Active     Status = "Active"
	Expired    Status = "Expired"
	Frozen     Status = "Frozen"
	Unknown    Status = "Unknown"
	Unauthorized Status = "Unauthorized"
)

// Height is a monotonically increasing, lexicographically ordered
// (revision_number, revision_height) pair.
type Height interface {
	IsZero() bool
	LT(Height) bool
	LTE(Height) bool
	GT(Height) bool
	GTE(Height) bool
	EQ(Height) bool
	GetRevisionNumber() uint64
	GetRevisionHeight() uint64
	Increment() Height
	String() string
}

// ClientState is the interface a concrete light-client state type
// implements so that host-facing code can treat it opaquely.
type ClientState interface {
	ClientType() string
	GetLatestHeight() Height
	Validate() error
}

// ConsensusState is the interface a concrete consensus-state snapshot
// implements.
type ConsensusState interface {
	ClientType() string
	GetTimestamp() uint64
}

// ClientMessage is any message a client can be updated with: a Header
// or a Misbehaviour submission.
type ClientMessage interface {
	ClientType() string
	ValidateBasic() error
}

// Path identifies a commitment-proof target location, typically the
// string form of a well-known store path (modules/core/24-host).
type Path interface {
	String() string
}

// LightClientModule is the host-integration seam that adapts a
// concrete ClientState's pure methods to a real sdk.Context, KVStore
// and BinaryCodec. Its method set matches the one ibc-go clients
// (solomachine, tendermint, wasm) implement against the core keeper.
type LightClientModule interface {
	Initialize(ctx sdk.Context, clientID string, clientStateBz, consensusStateBz []byte) error

	VerifyClientMessage(ctx sdk.Context, clientID string, clientMsg ClientMessage) error
	CheckForMisbehaviour(ctx sdk.Context, clientID string, clientMsg ClientMessage) bool
	UpdateStateOnMisbehaviour(ctx sdk.Context, clientID string, clientMsg ClientMessage)
	UpdateState(ctx sdk.Context, clientID string, clientMsg ClientMessage) []Height

	VerifyMembership(
		ctx sdk.Context, clientID string, height Height,
		delayTimePeriod, delayBlockPeriod uint64,
		proof []byte, path Path, value []byte,
	) error
	VerifyNonMembership(
		ctx sdk.Context, clientID string, height Height,
		delayTimePeriod, delayBlockPeriod uint64,
		proof []byte, path Path,
	) error

	Status(ctx sdk.Context, clientID string) Status
	TimestampAtHeight(ctx sdk.Context, clientID string, height Height) (uint64, error)
}

// ClientKeeper is the minimal store/codec handle a LightClientModule
// needs from its host, matching the constructor shape ibc-go's
// 07-tendermint and 08-wasm keepers take.
type ClientKeeper interface {
	ClientStore(ctx sdk.Context, clientID string) types.KVStore
	Codec() codec.BinaryCodec
}

// HostTime is a source of the host's current time for code that is not
// handed an sdk.Context. Nothing in this module implements or calls it;
// ClientReader.HostTimestamp supplies host time to the verification code.
type HostTime interface {
	Now() time.Time
}
