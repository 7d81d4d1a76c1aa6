package types

import (
	"fmt"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"

	"github.com/ibcx-labs/tm-lightclient/modules/core/exported"
)

// Height is a monotonically increasing data type used to order
// consensus states on a single client. It is composed of a revision
// number, bumped on a chain upgrade that changes the chain ID, and a
// revision height, which resets to 1 on each new revision. Heights
// are compared first by revision number, then by revision height.
type Height struct {
	RevisionNumber uint64 `protobuf:"varint,1,opt,name=revision_number,json=revisionNumber,proto3"`
	RevisionHeight uint64 `protobuf:"varint,2,opt,name=revision_height,json=revisionHeight,proto3"`
}

// NewHeight is a constructor for the IBC height type.
func NewHeight(revisionNumber, revisionHeight uint64) Height {
	return Height{RevisionNumber: revisionNumber, RevisionHeight: revisionHeight}
}

// ZeroHeight returns a zero-value height, used as a sentinel for "not
// frozen" and "no trusted height set".
func ZeroHeight() Height {
	return Height{}
}

// IsZero returns true if both the revision number and height are zero.
func (h Height) IsZero() bool {
	return h.RevisionNumber == 0 && h.RevisionHeight == 0
}

// Compare returns -1, 0 or 1 according to whether h is less than,
// equal to, or greater than other, ordering first by revision number.
// other is accepted as exported.Height, like the rest of Height's
// relational methods, so callers holding the interface never need to
// unwrap it themselves; Compare does the type assertion internally.
func (h Height) Compare(other exported.Height) int64 {
	o := other.(Height)
	if h.RevisionNumber != o.RevisionNumber {
		if h.RevisionNumber < o.RevisionNumber {
			return -1
		}
		return 1
	}
	switch {
	case h.RevisionHeight < o.RevisionHeight:
		return -1
	case h.RevisionHeight > o.RevisionHeight:
		return 1
	default:
		return 0
	}
}

// LT returns true if h is strictly less than other.
func (h Height) LT(other exported.Height) bool { return h.Compare(other) == -1 }

// LTE returns true if h is less than or equal to other.
func (h Height) LTE(other exported.Height) bool { return h.Compare(other) <= 0 }

// GT returns true if h is strictly greater than other.
func (h Height) GT(other exported.Height) bool { return h.Compare(other) == 1 }

// GTE returns true if h is greater than or equal to other.
func (h Height) GTE(other exported.Height) bool { return h.Compare(other) >= 0 }

// EQ returns true if h and other are equal.
func (h Height) EQ(other exported.Height) bool { return h.Compare(other) == 0 }

// GetRevisionNumber returns the revision number of the height.
func (h Height) GetRevisionNumber() uint64 { return h.RevisionNumber }

// GetRevisionHeight returns the revision height of the height.
func (h Height) GetRevisionHeight() uint64 { return h.RevisionHeight }

// Increment returns a copy of h with its revision height incremented
// by one.
func (h Height) Increment() exported.Height {
	return Height{RevisionNumber: h.RevisionNumber, RevisionHeight: h.RevisionHeight + 1}
}

// String returns the canonical "<revision>-<height>" representation.
func (h Height) String() string {
	return fmt.Sprintf("%d-%d", h.RevisionNumber, h.RevisionHeight)
}

// ParseHeight parses a "<revision>-<height>" string produced by String
// back into a Height.
func ParseHeight(s string) (Height, error) {
	split := strings.Split(s, "-")
	if len(split) != 2 {
		return Height{}, errorsmod.Wrapf(ErrInvalidHeight, "expected format <revision>-<height>, got %s", s)
	}
	revisionNumber, err := strconv.ParseUint(split[0], 10, 64)
	if err != nil {
		return Height{}, errorsmod.Wrapf(ErrInvalidHeight, "invalid revision number: %s", err)
	}
	revisionHeight, err := strconv.ParseUint(split[1], 10, 64)
	if err != nil {
		return Height{}, errorsmod.Wrapf(ErrInvalidHeight, "invalid revision height: %s", err)
	}
	return NewHeight(revisionNumber, revisionHeight), nil
}
