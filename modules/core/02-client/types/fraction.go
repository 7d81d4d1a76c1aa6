package types

import (
	cmtmath "github.com/cometbft/cometbft/libs/math"

	errorsmod "cosmossdk.io/errors"
)

// Fraction is a ratio expressed as a numerator/denominator pair,
// used to represent the trust level a client must observe in a
// validator set before accepting a header signed by it.
type Fraction struct {
	Numerator   uint64 `protobuf:"varint,1,opt,name=numerator,proto3"`
	Denominator uint64 `protobuf:"varint,2,opt,name=denominator,proto3"`
}

// NewFraction returns a new Fraction.
func NewFraction(numerator, denominator uint64) Fraction {
	return Fraction{Numerator: numerator, Denominator: denominator}
}

// DefaultTrustLevel is the default light-client trust threshold, 1/3,
// the minimum fraction of voting power that must have signed a
// header for it to be considered trusted under the skipping algorithm.
var DefaultTrustLevel = NewFraction(1, 3)

// Validate returns an error if the client trust level is not within
// the allowed range, [1/3, 1). A trust level below 1/3 admits headers
// that a single validator subset could forge; a trust level of 1 or
// more makes the skipping algorithm degenerate into full verification.
func (f Fraction) Validate() error {
	if f.Denominator == 0 {
		return errorsmod.Wrap(ErrInvalidTrustLevel, "denominator cannot be zero")
	}
	if f.Numerator > f.Denominator {
		return errorsmod.Wrapf(ErrInvalidTrustLevel, "numerator %d cannot be greater than denominator %d", f.Numerator, f.Denominator)
	}
	// multiply out 1/3 <= num/denom < 1 to avoid floating point
	if 3*f.Numerator < f.Denominator {
		return errorsmod.Wrapf(ErrInvalidTrustLevel, "trust level %d/%d must be greater or equal to 1/3", f.Numerator, f.Denominator)
	}
	if f.Numerator >= f.Denominator {
		return errorsmod.Wrapf(ErrInvalidTrustLevel, "trust level %d/%d must be strictly less than 1", f.Numerator, f.Denominator)
	}
	return nil
}

// ToTendermint converts the fraction to the cometbft light-client
// verifier's own Fraction type.
func (f Fraction) ToTendermint() cmtmath.Fraction {
	return cmtmath.Fraction{Numerator: int64(f.Numerator), Denominator: int64(f.Denominator)}
}
