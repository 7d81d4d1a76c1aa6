// Package types implements ICS-23 commitment primitives: the root and
// prefix values a client trusts, and Merkle-proof verification against
// them using github.com/cosmos/ics23/go.
package types

import (
	"bytes"
	"fmt"

	ics23 "github.com/cosmos/ics23/go"

	errorsmod "cosmossdk.io/errors"
)

// MerkleRoot is the hash committed to at a given height, against which
// membership and non-membership proofs are checked.
type MerkleRoot struct {
	Hash []byte `protobuf:"bytes,1,opt,name=hash,proto3"`
}

// NewMerkleRoot returns a new MerkleRoot.
func NewMerkleRoot(hash []byte) MerkleRoot { return MerkleRoot{Hash: hash} }

// Empty returns true if the root is unset.
func (r MerkleRoot) Empty() bool { return len(r.Hash) == 0 }

// MerklePrefix is the prefix applied to a raw sub-store key path
// before it is merkle-proven against a chain's app-hash root, e.g.
// the "ibc" store prefix.
type MerklePrefix struct {
	KeyPrefix []byte `protobuf:"bytes,1,opt,name=key_prefix,json=keyPrefix,proto3"`
}

// NewMerklePrefix returns a new MerklePrefix.
func NewMerklePrefix(keyPrefix []byte) MerklePrefix { return MerklePrefix{KeyPrefix: keyPrefix} }

// MerklePath is an array of individual key paths making up the full
// path to query a value at, after a MerklePrefix has been applied.
type MerklePath struct {
	KeyPath []string
}

// NewMerklePath returns a new MerklePath.
func NewMerklePath(keyPath ...string) MerklePath { return MerklePath{KeyPath: keyPath} }

// String returns the slash-joined string representation of the path.
func (mp MerklePath) String() string {
	s := ""
	for _, k := range mp.KeyPath {
		s += "/" + k
	}
	return s
}

// ApplyPrefix constructs a MerklePath from the given MerklePrefix and
// path, prepending the prefix as the first path component, the way
// ibc-go's commitmenttypes.ApplyPrefix does.
func ApplyPrefix(prefix MerklePrefix, path string) (MerklePath, error) {
	if len(prefix.KeyPrefix) == 0 {
		return MerklePath{}, errorsmod.Wrap(ErrInvalidCommitmentPrefix, "prefix cannot be empty")
	}
	return NewMerklePath(string(prefix.KeyPrefix), path), nil
}

// MerkleProof wraps the ordered sequence of ICS-23 per-layer proofs
// produced by a host chain's storage stack (e.g. IAVL over Tendermint),
// in the order leaf-to-root.
type MerkleProof struct {
	Proofs []*ics23.CommitmentProof
}

// Empty returns true if there are no sub-proofs.
func (proof MerkleProof) Empty() bool { return len(proof.Proofs) == 0 }

// VerifyMembership verifies that the value is committed to under path
// in root, given the full chain of per-layer proofs and their specs
// (innermost proof first, matching specs order).
func (proof MerkleProof) VerifyMembership(specs []*ics23.ProofSpec, root MerkleRoot, path MerklePath, value []byte) error {
	if err := proof.validateVerificationArgs(specs, root); err != nil {
		return err
	}
	if len(path.KeyPath) != len(proof.Proofs) {
		return errorsmod.Wrapf(ErrInvalidMerkleProof, "path length %d not same as proof %d", len(path.KeyPath), len(proof.Proofs))
	}

	// keys are verified leaf-to-root: proof i proves path element
	// len-1-i, and the sub-root it computes becomes the value the next,
	// outer proof must commit to.
	subroot := []byte(value)
	var err error
	for i := 0; i < len(proof.Proofs); i++ {
		key := []byte(path.KeyPath[len(path.KeyPath)-1-i])
		subroot, err = ics23.CalculateRoot(proof.Proofs[i])
		if err != nil {
			return errorsmod.Wrapf(ErrInvalidMerkleProof, "could not calculate root for proof index %d: %v", i, err)
		}
		if !ics23.VerifyMembership(specs[i], subroot, proof.Proofs[i], key, value) {
			return errorsmod.Wrapf(ErrInvalidMerkleProof, "failed to verify membership proof at index %d", i)
		}
		value = subroot
	}

	if !bytes.Equal(subroot, root.Hash) {
		return errorsmod.Wrapf(ErrInvalidMerkleProof, "proof did not commit to expected root: got %X, expected %X", subroot, root.Hash)
	}
	return nil
}

// VerifyNonMembership verifies that no value is committed to under
// path in root.
func (proof MerkleProof) VerifyNonMembership(specs []*ics23.ProofSpec, root MerkleRoot, path MerklePath) error {
	if err := proof.validateVerificationArgs(specs, root); err != nil {
		return err
	}
	if len(path.KeyPath) != len(proof.Proofs) {
		return errorsmod.Wrapf(ErrInvalidMerkleProof, "path length %d not same as proof %d", len(path.KeyPath), len(proof.Proofs))
	}

	key := []byte(path.KeyPath[len(path.KeyPath)-1])
	subroot, err := ics23.CalculateRoot(proof.Proofs[0])
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidMerkleProof, "could not calculate root for non-membership proof: %v", err)
	}
	if !ics23.VerifyNonMembership(specs[0], subroot, proof.Proofs[0], key) {
		return errorsmod.Wrap(ErrInvalidMerkleProof, "failed to verify non-membership proof")
	}

	if len(proof.Proofs) == 1 {
		if !bytes.Equal(subroot, root.Hash) {
			return errorsmod.Wrapf(ErrInvalidMerkleProof, "proof did not commit to expected root: got %X, expected %X", subroot, root.Hash)
		}
		return nil
	}

	innerPath := MerklePath{KeyPath: path.KeyPath[:len(path.KeyPath)-1]}
	innerProof := MerkleProof{Proofs: proof.Proofs[1:]}
	return innerProof.VerifyMembership(specs[1:], root, innerPath, subroot)
}

func (proof MerkleProof) validateVerificationArgs(specs []*ics23.ProofSpec, root MerkleRoot) error {
	if proof.Empty() {
		return errorsmod.Wrap(ErrInvalidMerkleProof, "proof cannot be empty")
	}
	if root.Empty() {
		return errorsmod.Wrap(ErrInvalidCommitmentRoot, "root cannot be empty")
	}
	if len(specs) != len(proof.Proofs) {
		return errorsmod.Wrapf(ErrInvalidMerkleProof, "length of specs %d does not match length of proofs %d", len(specs), len(proof.Proofs))
	}
	for i, spec := range specs {
		if spec == nil {
			return errorsmod.Wrapf(ErrInvalidProofSpecs, "spec at index %d is nil", i)
		}
	}
	return nil
}

var _ fmt.Stringer = MerklePath{}
