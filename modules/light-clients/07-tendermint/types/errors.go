package types

import errorsmod "cosmossdk.io/errors"

// error taxonomy for the Tendermint light client, split into three
// groups: construction errors, update/misbehaviour errors, and
// verification errors.
const submoduleCodespace = "07-tendermint"

var (
	// construction errors
	ErrInvalidChainID            = errorsmod.Register(submoduleCodespace, 2, "invalid chain-id")
	ErrInvalidTrustingPeriod     = errorsmod.Register(submoduleCodespace, 3, "invalid trusting period")
	ErrInvalidUnbondingPeriod    = errorsmod.Register(submoduleCodespace, 4, "invalid unbonding period")
	ErrInvalidMaxClockDrift      = errorsmod.Register(submoduleCodespace, 5, "invalid max clock drift")
	ErrTrustingPeriodExpired     = errorsmod.Register(submoduleCodespace, 6, "time since latest trusted state has passed the trusting period")
	ErrUnbondingPeriodExpired    = errorsmod.Register(submoduleCodespace, 7, "time since latest trusted state has passed the unbonding period")
	ErrInvalidProofSpecs         = errorsmod.Register(submoduleCodespace, 8, "invalid proof specs")
	ErrInvalidUpgradePath        = errorsmod.Register(submoduleCodespace, 9, "invalid upgrade path")

	// update / misbehaviour errors
	ErrInvalidHeaderHeight    = errorsmod.Register(submoduleCodespace, 10, "invalid header height")
	ErrInvalidValidatorSet    = errorsmod.Register(submoduleCodespace, 11, "invalid validator set")
	ErrInvalidHeader          = errorsmod.Register(submoduleCodespace, 12, "invalid header")
	ErrInvalidMisbehaviour    = errorsmod.Register(submoduleCodespace, 13, "invalid misbehaviour")
	ErrMismatchedRevisions    = errorsmod.Register(submoduleCodespace, 21, "header revision does not match client chain-id revision")
	ErrHeaderTimestampTooHigh = errorsmod.Register(submoduleCodespace, 22, "header timestamp is after the next trusted consensus state's timestamp")
	ErrHeaderTimestampTooLow  = errorsmod.Register(submoduleCodespace, 23, "header timestamp is before the previous trusted consensus state's timestamp")

	// verification errors
	ErrClientFrozen                  = errorsmod.Register(submoduleCodespace, 14, "client is frozen")
	ErrClientExpired                 = errorsmod.Register(submoduleCodespace, 15, "client is expired")
	ErrDelayPeriodNotPassed          = errorsmod.Register(submoduleCodespace, 16, "delay time period has not yet elapsed")
	ErrBlockDelayNotPassed           = errorsmod.Register(submoduleCodespace, 17, "delay block period has not yet elapsed")
	ErrFailedMembershipVerification  = errorsmod.Register(submoduleCodespace, 18, "failed to verify membership proof")
	ErrFailedNonMembershipVerification = errorsmod.Register(submoduleCodespace, 19, "failed to verify non-membership proof")
	ErrUpgradeNotImplemented         = errorsmod.Register(submoduleCodespace, 20, "upgrade path not implemented")
)
