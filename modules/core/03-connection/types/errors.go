package types

import errorsmod "cosmossdk.io/errors"

const submoduleCodespace = "connection"

var (
	ErrConnectionNotFound   = errorsmod.Register(submoduleCodespace, 2, "connection not found")
	ErrConnectionNotOpen    = errorsmod.Register(submoduleCodespace, 3, "connection state is not OPEN")
	ErrInvalidConnectionState = errorsmod.Register(submoduleCodespace, 4, "invalid connection state")
	ErrInvalidCounterparty  = errorsmod.Register(submoduleCodespace, 5, "invalid counterparty connection")
)
