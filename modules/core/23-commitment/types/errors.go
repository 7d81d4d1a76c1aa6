package types

import errorsmod "cosmossdk.io/errors"

const submoduleCodespace = "commitment"

var (
	ErrInvalidProof            = errorsmod.Register(submoduleCodespace, 2, "invalid proof")
	ErrInvalidMerkleProof      = errorsmod.Register(submoduleCodespace, 3, "invalid merkle proof")
	ErrInvalidProofSpecs       = errorsmod.Register(submoduleCodespace, 4, "invalid proof specs")
	ErrInvalidCommitmentRoot   = errorsmod.Register(submoduleCodespace, 5, "invalid commitment root")
	ErrInvalidCommitmentPrefix = errorsmod.Register(submoduleCodespace, 6, "invalid commitment prefix")
	ErrInvalidCommitmentPath   = errorsmod.Register(submoduleCodespace, 7, "invalid commitment path")
)
