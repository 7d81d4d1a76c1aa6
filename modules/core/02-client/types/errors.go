package types

import errorsmod "cosmossdk.io/errors"

// client error codespace and registered sentinel errors, following the
// per-package errorsmod.Register convention used throughout ibc-go.
const submoduleCodespace = "client"

var (
	ErrClientExists                 = errorsmod.Register(submoduleCodespace, 2, "light client already exists")
	ErrInvalidClient                = errorsmod.Register(submoduleCodespace, 3, "light client is invalid")
	ErrClientNotFound                = errorsmod.Register(submoduleCodespace, 4, "light client not found")
	ErrClientFrozen                  = errorsmod.Register(submoduleCodespace, 5, "light client is frozen due to misbehaviour")
	ErrInvalidClientMetadata        = errorsmod.Register(submoduleCodespace, 6, "invalid client metadata")
	ErrConsensusStateNotFound       = errorsmod.Register(submoduleCodespace, 7, "consensus state not found")
	ErrInvalidConsensusState        = errorsmod.Register(submoduleCodespace, 8, "invalid consensus state")
	ErrClientTypeNotFound           = errorsmod.Register(submoduleCodespace, 9, "client type not found")
	ErrInvalidClientType            = errorsmod.Register(submoduleCodespace, 10, "invalid client type")
	ErrInvalidHeader                = errorsmod.Register(submoduleCodespace, 11, "invalid header")
	ErrInvalidMisbehaviour           = errorsmod.Register(submoduleCodespace, 12, "invalid light client misbehaviour")
	ErrFailedClientStateVerification = errorsmod.Register(submoduleCodespace, 13, "client state verification failed")
	ErrFailedClientConsensusStateVerification = errorsmod.Register(submoduleCodespace, 14, "client consensus state verification failed")
	ErrFailedConnectionStateVerification      = errorsmod.Register(submoduleCodespace, 15, "connection state verification failed")
	ErrFailedChannelStateVerification         = errorsmod.Register(submoduleCodespace, 16, "channel state verification failed")
	ErrFailedPacketCommitmentVerification     = errorsmod.Register(submoduleCodespace, 17, "packet commitment verification failed")
	ErrFailedPacketAckVerification            = errorsmod.Register(submoduleCodespace, 18, "packet acknowledgement verification failed")
	ErrFailedPacketReceiptVerification        = errorsmod.Register(submoduleCodespace, 19, "packet receipt verification failed")
	ErrFailedNextSeqRecvVerification          = errorsmod.Register(submoduleCodespace, 20, "next sequence receive verification failed")
	ErrSelfConsensusStateNotFound    = errorsmod.Register(submoduleCodespace, 21, "self consensus state not found")
	ErrUpdateClientFailed            = errorsmod.Register(submoduleCodespace, 22, "unable to update light client")
	ErrInvalidUpdateClientProposal   = errorsmod.Register(submoduleCodespace, 23, "invalid update client proposal")
	ErrInvalidUpgradeClient          = errorsmod.Register(submoduleCodespace, 24, "invalid client upgrade")
	ErrInvalidHeight                 = errorsmod.Register(submoduleCodespace, 25, "invalid height")
	ErrInvalidSubstitute             = errorsmod.Register(submoduleCodespace, 26, "invalid substitute client")
	ErrInvalidTrustLevel             = errorsmod.Register(submoduleCodespace, 27, "invalid trust level")
	ErrUpgradeNotImplemented         = errorsmod.Register(submoduleCodespace, 28, "client upgrade path not implemented")
)
