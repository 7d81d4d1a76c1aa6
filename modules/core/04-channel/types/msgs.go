package types

import clienttypes "github.com/ibcx-labs/tm-lightclient/modules/core/02-client/types"

// MsgRecvPacket is the message a relayer submits to deliver a packet
// and its Merkle-inclusion proof to the destination chain.
type MsgRecvPacket struct {
	Packet          Packet
	ProofCommitment []byte
	ProofHeight     clienttypes.Height
	Signer          string
}

// ValidateBasic performs stateless validation of the message.
func (msg MsgRecvPacket) ValidateBasic() error {
	if len(msg.ProofCommitment) == 0 {
		return ErrInvalidPacket
	}
	return msg.Packet.ValidateBasic()
}
