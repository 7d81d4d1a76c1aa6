package types

import (
	"encoding/binary"
	"time"

	ics23 "github.com/cosmos/ics23/go"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/ibcx-labs/tm-lightclient/modules/core/02-client/types"
	commitmenttypes "github.com/ibcx-labs/tm-lightclient/modules/core/23-commitment/types"
	"github.com/ibcx-labs/tm-lightclient/modules/core/exported"
	host "github.com/ibcx-labs/tm-lightclient/modules/core/24-host"
)

// VerifyMembership verifies a Merkle-inclusion proof that value is
// committed to under path in the client's consensus root at height,
// subject to the client being unfrozen, height not exceeding its latest
// height, and the configured delay periods having elapsed since the
// consensus state's processing time/height. Client expiry is not checked.
func (cs ClientState) VerifyMembership(
	reader exported.ClientReader, clientID string,
	height clienttypes.Height,
	delayTimePeriod, delayBlockPeriod uint64,
	proofBz []byte, path commitmenttypes.MerklePath, value []byte,
) error {
	if cs.IsFrozen() {
		return errorsmod.Wrap(ErrClientFrozen, "cannot verify membership using frozen client")
	}
	if err := cs.VerifyHeight(height); err != nil {
		return err
	}

	consState, processedTime, processedHeight, err := cs.consensusStateAndMetadata(reader, clientID, height)
	if err != nil {
		return err
	}

	currentHeight, ok := reader.HostHeight().(clienttypes.Height)
	if !ok {
		return errorsmod.Wrapf(clienttypes.ErrInvalidHeight, "unexpected host height type %T", reader.HostHeight())
	}
	if err := VerifyDelayPassed(reader.HostTimestamp(), currentHeight, processedTime, processedHeight, time.Duration(delayTimePeriod), delayBlockPeriod); err != nil {
		return err
	}

	var merkleProof commitmenttypes.MerkleProof
	if err := unmarshalMerkleProof(proofBz, &merkleProof); err != nil {
		return errorsmod.Wrap(ErrFailedMembershipVerification, err.Error())
	}

	if err := merkleProof.VerifyMembership(cs.ProofSpecs, consState.GetRoot(), path, value); err != nil {
		return errorsmod.Wrap(ErrFailedMembershipVerification, err.Error())
	}
	return nil
}

// VerifyNonMembership verifies a Merkle-exclusion proof that no value
// is committed to under path in the client's consensus root at height.
func (cs ClientState) VerifyNonMembership(
	reader exported.ClientReader, clientID string,
	height clienttypes.Height,
	delayTimePeriod, delayBlockPeriod uint64,
	proofBz []byte, path commitmenttypes.MerklePath,
) error {
	if cs.IsFrozen() {
		return errorsmod.Wrap(ErrClientFrozen, "cannot verify non-membership using frozen client")
	}
	if err := cs.VerifyHeight(height); err != nil {
		return err
	}

	consState, processedTime, processedHeight, err := cs.consensusStateAndMetadata(reader, clientID, height)
	if err != nil {
		return err
	}

	currentHeight, ok := reader.HostHeight().(clienttypes.Height)
	if !ok {
		return errorsmod.Wrapf(clienttypes.ErrInvalidHeight, "unexpected host height type %T", reader.HostHeight())
	}
	if err := VerifyDelayPassed(reader.HostTimestamp(), currentHeight, processedTime, processedHeight, time.Duration(delayTimePeriod), delayBlockPeriod); err != nil {
		return err
	}

	var merkleProof commitmenttypes.MerkleProof
	if err := unmarshalMerkleProof(proofBz, &merkleProof); err != nil {
		return errorsmod.Wrap(ErrFailedNonMembershipVerification, err.Error())
	}

	if err := merkleProof.VerifyNonMembership(cs.ProofSpecs, consState.GetRoot(), path); err != nil {
		return errorsmod.Wrap(ErrFailedNonMembershipVerification, err.Error())
	}
	return nil
}

func (cs ClientState) consensusStateAndMetadata(reader exported.ClientReader, clientID string, height clienttypes.Height) (*ConsensusState, time.Time, clienttypes.Height, error) {
	raw, found := reader.GetConsensusState(clientID, height)
	if !found {
		return nil, time.Time{}, clienttypes.Height{}, errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "please ensure the proof was constructed against a height that exists on the client")
	}
	consState, ok := raw.(*ConsensusState)
	if !ok {
		return nil, time.Time{}, clienttypes.Height{}, errorsmod.Wrapf(clienttypes.ErrInvalidConsensusState, "expected type %T, got %T", &ConsensusState{}, raw)
	}

	processedTime, processedHeight, found := reader.GetClientUpdateTimeAndHeight(clientID, height)
	if !found {
		return nil, time.Time{}, clienttypes.Height{}, errorsmod.Wrapf(clienttypes.ErrInvalidClientMetadata, "processed time/height metadata not found for height %s", height)
	}
	ph, ok := processedHeight.(clienttypes.Height)
	if !ok {
		return nil, time.Time{}, clienttypes.Height{}, errorsmod.Wrapf(clienttypes.ErrInvalidHeight, "unexpected processed height type %T", processedHeight)
	}
	return consState, processedTime, ph, nil
}

func unmarshalMerkleProof(bz []byte, proof *commitmenttypes.MerkleProof) error {
	var raw RawMerkleProof
	if err := raw.Unmarshal(bz); err != nil {
		return err
	}
	proof.Proofs = raw.Proofs
	return nil
}

// RawMerkleProof is the wire representation of an ordered sequence of
// ICS-23 commitment proofs, mirroring ibc.core.commitment.v1.MerkleProof.
type RawMerkleProof struct {
	Proofs []*ics23.CommitmentProof
}

// --- the eight named verification wrappers ---

// VerifyClientState verifies a proof that a counterparty chain's
// record of this (or another) client's state matches clientState.
func (cs ClientState) VerifyClientState(
	reader exported.ClientReader, clientID string, height clienttypes.Height,
	prefix commitmenttypes.MerklePrefix, counterpartyClientID string,
	proof []byte, clientStateBz []byte,
) error {
	path, err := commitmenttypes.ApplyPrefix(prefix, host.FullClientPath(counterpartyClientID, host.ClientStatePath()))
	if err != nil {
		return err
	}
	return cs.VerifyMembership(reader, clientID, height, 0, 0, proof, path, clientStateBz)
}

// VerifyClientConsensusState verifies a proof of a counterparty's
// stored consensus state for one of its clients at consensusHeight.
func (cs ClientState) VerifyClientConsensusState(
	reader exported.ClientReader, clientID string, height clienttypes.Height,
	prefix commitmenttypes.MerklePrefix, counterpartyClientID string, consensusHeight clienttypes.Height,
	proof []byte, consensusStateBz []byte,
) error {
	path, err := commitmenttypes.ApplyPrefix(prefix, host.FullConsensusStatePath(counterpartyClientID, consensusHeight))
	if err != nil {
		return err
	}
	return cs.VerifyMembership(reader, clientID, height, 0, 0, proof, path, consensusStateBz)
}

// VerifyConnectionState verifies a proof of a counterparty's stored
// connection end.
func (cs ClientState) VerifyConnectionState(
	reader exported.ClientReader, clientID string, height clienttypes.Height,
	prefix commitmenttypes.MerklePrefix, proof []byte, connectionID string, connectionEndBz []byte,
) error {
	path, err := commitmenttypes.ApplyPrefix(prefix, host.ConnectionPath(connectionID))
	if err != nil {
		return err
	}
	return cs.VerifyMembership(reader, clientID, height, 0, 0, proof, path, connectionEndBz)
}

// VerifyChannelState verifies a proof of a counterparty's stored
// channel end.
func (cs ClientState) VerifyChannelState(
	reader exported.ClientReader, clientID string, height clienttypes.Height,
	prefix commitmenttypes.MerklePrefix, proof []byte, portID, channelID string, channelEndBz []byte,
) error {
	path, err := commitmenttypes.ApplyPrefix(prefix, host.ChannelPath(portID, channelID))
	if err != nil {
		return err
	}
	return cs.VerifyMembership(reader, clientID, height, 0, 0, proof, path, channelEndBz)
}

// VerifyPacketCommitment verifies a proof of the packet commitment
// the sending chain stored for a given sequence.
func (cs ClientState) VerifyPacketCommitment(
	reader exported.ClientReader, clientID string, height clienttypes.Height,
	delayTimePeriod, delayBlockPeriod uint64,
	prefix commitmenttypes.MerklePrefix, proof []byte,
	portID, channelID string, sequence uint64, commitmentBytes []byte,
) error {
	path, err := commitmenttypes.ApplyPrefix(prefix, host.PacketCommitmentPath(portID, channelID, sequence))
	if err != nil {
		return err
	}
	return cs.VerifyMembership(reader, clientID, height, delayTimePeriod, delayBlockPeriod, proof, path, commitmentBytes)
}

// VerifyPacketAcknowledgement verifies a proof of a stored packet
// acknowledgement.
func (cs ClientState) VerifyPacketAcknowledgement(
	reader exported.ClientReader, clientID string, height clienttypes.Height,
	delayTimePeriod, delayBlockPeriod uint64,
	prefix commitmenttypes.MerklePrefix, proof []byte,
	portID, channelID string, sequence uint64, acknowledgement []byte,
) error {
	path, err := commitmenttypes.ApplyPrefix(prefix, host.PacketAcknowledgementPath(portID, channelID, sequence))
	if err != nil {
		return err
	}
	return cs.VerifyMembership(reader, clientID, height, delayTimePeriod, delayBlockPeriod, proof, path, acknowledgement)
}

// VerifyNextSequenceRecv verifies a proof of the next expected receive
// sequence on an ordered channel.
func (cs ClientState) VerifyNextSequenceRecv(
	reader exported.ClientReader, clientID string, height clienttypes.Height,
	delayTimePeriod, delayBlockPeriod uint64,
	prefix commitmenttypes.MerklePrefix, proof []byte,
	portID, channelID string, nextSequenceRecv uint64,
) error {
	path, err := commitmenttypes.ApplyPrefix(prefix, host.NextSequenceRecvPath(portID, channelID))
	if err != nil {
		return err
	}
	value := encodeUint64(nextSequenceRecv)
	return cs.VerifyMembership(reader, clientID, height, delayTimePeriod, delayBlockPeriod, proof, path, value)
}

// VerifyPacketReceiptAbsence verifies a proof that no receipt has
// been recorded for sequence on an unordered channel.
func (cs ClientState) VerifyPacketReceiptAbsence(
	reader exported.ClientReader, clientID string, height clienttypes.Height,
	delayTimePeriod, delayBlockPeriod uint64,
	prefix commitmenttypes.MerklePrefix, proof []byte,
	portID, channelID string, sequence uint64,
) error {
	path, err := commitmenttypes.ApplyPrefix(prefix, host.PacketReceiptPath(portID, channelID, sequence))
	if err != nil {
		return err
	}
	return cs.VerifyNonMembership(reader, clientID, height, delayTimePeriod, delayBlockPeriod, proof, path)
}

func encodeUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
