package types

import (
	"time"

	ics23 "github.com/cosmos/ics23/go"

	"github.com/ibcx-labs/tm-lightclient/internal/pbwire"
)

// durationSeconds and durationNanos split d into google.protobuf.Duration's
// two fields, matching ibc.lightclients.tendermint.v1's wire shape so
// this hand-written codec stays byte-compatible with the real proto
// definitions.
func durationSeconds(d time.Duration) int64 { return int64(d / time.Second) }
func durationNanos(d time.Duration) int32   { return int32(d % time.Second) }

// marshalDuration encodes d as an embedded google.protobuf.Duration
// message: seconds (field 1, varint) followed by nanos (field 2, varint).
func marshalDuration(d time.Duration) []byte {
	var dst []byte
	dst = pbwire.AppendUint64(dst, 1, uint64(durationSeconds(d)))
	dst = pbwire.AppendUint64(dst, 2, uint64(durationNanos(d)))
	return dst
}

// sizeDuration returns the encoded length of marshalDuration(d).
func sizeDuration(d time.Duration) int {
	return pbwire.SizeUint64Field(1, uint64(durationSeconds(d))) + pbwire.SizeUint64Field(2, uint64(durationNanos(d)))
}

// unmarshalDuration decodes a google.protobuf.Duration message body.
func unmarshalDuration(b []byte) (time.Duration, error) {
	var secs int64
	var nanos int32
	for len(b) > 0 {
		field, rest, err := pbwire.Next(b)
		if err != nil {
			return 0, err
		}
		b = rest
		switch field.Num {
		case 1:
			secs = int64(field.Varint)
		case 2:
			nanos = int32(field.Varint)
		}
	}
	return time.Duration(secs)*time.Second + time.Duration(nanos), nil
}

// Size returns the encoded length of cs.
func (cs *ClientState) Size() int {
	n := pbwire.SizeBytesField(1, []byte(cs.ChainId))
	trustLevelBz, _ := cs.TrustLevel.Marshal()
	n += sizeEmbedded(2, trustLevelBz)
	n += sizeEmbeddedLen(3, sizeDuration(cs.TrustingPeriod))
	n += sizeEmbeddedLen(4, sizeDuration(cs.UnbondingPeriod))
	n += sizeEmbeddedLen(5, sizeDuration(cs.MaxClockDrift))
	frozenBz, _ := cs.FrozenHeight.Marshal()
	n += sizeEmbedded(6, frozenBz)
	latestBz, _ := cs.LatestHeight.Marshal()
	n += sizeEmbedded(7, latestBz)
	for _, spec := range cs.ProofSpecs {
		bz, _ := spec.Marshal()
		n += sizeEmbedded(8, bz)
	}
	for _, p := range cs.UpgradePath {
		n += sizeEmbedded(9, []byte(p))
	}
	n += pbwire.SizeBoolField(10, cs.AllowUpdateAfterExpiry)
	n += pbwire.SizeBoolField(11, cs.AllowUpdateAfterMisbehaviour)
	return n
}

func sizeEmbedded(fieldNum int, bz []byte) int {
	return pbwire.SizeTag(fieldNum) + pbwire.SizeVarint(uint64(len(bz))) + len(bz)
}

// sizeEmbeddedLen is sizeEmbedded for a submessage whose body length is
// already known, avoiding re-marshaling it just to measure it.
func sizeEmbeddedLen(fieldNum int, bodyLen int) int {
	return pbwire.SizeTag(fieldNum) + pbwire.SizeVarint(uint64(bodyLen)) + bodyLen
}

// Marshal encodes cs in wire format.
func (cs *ClientState) Marshal() ([]byte, error) {
	return cs.MarshalAppend(nil)
}

// MarshalAppend appends cs's wire encoding to dst.
func (cs *ClientState) MarshalAppend(dst []byte) ([]byte, error) {
	if cs.ChainId != "" {
		dst = pbwire.AppendBytes(dst, 1, []byte(cs.ChainId))
	}
	trustLevelBz, err := cs.TrustLevel.Marshal()
	if err != nil {
		return nil, err
	}
	dst = pbwire.AppendBytes(dst, 2, trustLevelBz)

	dst = pbwire.AppendBytes(dst, 3, marshalDuration(cs.TrustingPeriod))
	dst = pbwire.AppendBytes(dst, 4, marshalDuration(cs.UnbondingPeriod))
	dst = pbwire.AppendBytes(dst, 5, marshalDuration(cs.MaxClockDrift))

	frozenBz, err := cs.FrozenHeight.Marshal()
	if err != nil {
		return nil, err
	}
	dst = pbwire.AppendBytes(dst, 6, frozenBz)

	latestBz, err := cs.LatestHeight.Marshal()
	if err != nil {
		return nil, err
	}
	dst = pbwire.AppendBytes(dst, 7, latestBz)

	for _, spec := range cs.ProofSpecs {
		bz, err := spec.Marshal()
		if err != nil {
			return nil, err
		}
		dst = pbwire.AppendBytes(dst, 8, bz)
	}
	for _, p := range cs.UpgradePath {
		dst = pbwire.AppendBytes(dst, 9, []byte(p))
	}
	dst = pbwire.AppendBool(dst, 10, cs.AllowUpdateAfterExpiry)
	dst = pbwire.AppendBool(dst, 11, cs.AllowUpdateAfterMisbehaviour)
	return dst, nil
}

// Unmarshal decodes b into cs, replacing its contents.
func (cs *ClientState) Unmarshal(b []byte) error {
	*cs = ClientState{}
	for len(b) > 0 {
		field, rest, err := pbwire.Next(b)
		if err != nil {
			return err
		}
		b = rest

		switch field.Num {
		case 1:
			cs.ChainId = string(field.Bytes)
		case 2:
			if err := cs.TrustLevel.Unmarshal(field.Bytes); err != nil {
				return err
			}
		case 3:
			cs.TrustingPeriod, err = unmarshalDuration(field.Bytes)
			if err != nil {
				return err
			}
		case 4:
			cs.UnbondingPeriod, err = unmarshalDuration(field.Bytes)
			if err != nil {
				return err
			}
		case 5:
			cs.MaxClockDrift, err = unmarshalDuration(field.Bytes)
			if err != nil {
				return err
			}
		case 6:
			if err := cs.FrozenHeight.Unmarshal(field.Bytes); err != nil {
				return err
			}
		case 7:
			if err := cs.LatestHeight.Unmarshal(field.Bytes); err != nil {
				return err
			}
		case 8:
			spec := new(ics23.ProofSpec)
			if err := spec.Unmarshal(field.Bytes); err != nil {
				return err
			}
			cs.ProofSpecs = append(cs.ProofSpecs, spec)
		case 9:
			cs.UpgradePath = append(cs.UpgradePath, string(field.Bytes))
		case 10:
			cs.AllowUpdateAfterExpiry = field.Varint != 0
		case 11:
			cs.AllowUpdateAfterMisbehaviour = field.Varint != 0
		}
	}
	return nil
}
