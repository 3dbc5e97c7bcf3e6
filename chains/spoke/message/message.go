// The Licensed Work is (c) 2024 Crossmesh
// SPDX-License-Identifier: LGPL-3.0-only

package message

import (
	"encoding/binary"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var ErrMalformedHeader = errors.New("message shorter than fixed header")

// Byte offsets of the fixed-layout envelope header. All integers are
// big-endian. The variable-length body starts at BodyIndex.
const (
	VersionIndex           = 0
	SourceDomainIndex      = 4
	DestinationDomainIndex = 8
	NonceIndex             = 12
	SenderIndex            = 20
	RecipientIndex         = 52
	DestinationCallerIndex = 84
	BodyIndex              = 116
)

// Address is a 32-byte account reference in the local address space.
type Address [32]byte

var ZeroAddress = Address{}

// AddressFromEVM maps a 20-byte foreign address into the local 32-byte
// address space, left-padded so the foreign bytes occupy the low-order end.
func AddressFromEVM(addr common.Address) Address {
	var a Address
	copy(a[12:], addr.Bytes())
	return a
}

// AddressFromHex parses a 32-byte address from its hex representation.
func AddressFromHex(s string) (Address, error) {
	var a Address
	b, err := hexutil.Decode(s)
	if err != nil {
		return a, err
	}
	if len(b) != 32 {
		return a, errors.New("address must be 32 bytes")
	}
	copy(a[:], b)
	return a, nil
}

func (a Address) String() string {
	return hexutil.Encode(a[:])
}

// Message is the envelope wrapping every inbound admin command. It is
// produced once per message by the attested transport and immutable
// afterwards.
type Message struct {
	Version           uint32
	SourceDomain      uint32
	DestinationDomain uint32
	// Nonce is consumed by the transport's replay bookkeeping, carried
	// here for logging and acknowledgement only.
	Nonce             uint64
	Sender            Address
	Recipient         Address
	// DestinationCaller restricts who may relay the message on the
	// destination. All-zero means unrestricted.
	DestinationCaller Address
	Body              []byte
}

// ParseMessage decodes a raw envelope. The buffer must contain at least the
// fixed header; the remainder is taken verbatim as the body.
func ParseMessage(data []byte) (*Message, error) {
	if len(data) < BodyIndex {
		return nil, ErrMalformedHeader
	}

	m := &Message{
		Version:           binary.BigEndian.Uint32(data[VersionIndex:SourceDomainIndex]),
		SourceDomain:      binary.BigEndian.Uint32(data[SourceDomainIndex:DestinationDomainIndex]),
		DestinationDomain: binary.BigEndian.Uint32(data[DestinationDomainIndex:NonceIndex]),
		Nonce:             binary.BigEndian.Uint64(data[NonceIndex:SenderIndex]),
		Body:              data[BodyIndex:],
	}
	copy(m.Sender[:], data[SenderIndex:RecipientIndex])
	copy(m.Recipient[:], data[RecipientIndex:DestinationCallerIndex])
	copy(m.DestinationCaller[:], data[DestinationCallerIndex:BodyIndex])
	return m, nil
}

// Marshal encodes the envelope back into its wire representation.
func (m *Message) Marshal() []byte {
	data := make([]byte, BodyIndex+len(m.Body))
	binary.BigEndian.PutUint32(data[VersionIndex:], m.Version)
	binary.BigEndian.PutUint32(data[SourceDomainIndex:], m.SourceDomain)
	binary.BigEndian.PutUint32(data[DestinationDomainIndex:], m.DestinationDomain)
	binary.BigEndian.PutUint64(data[NonceIndex:], m.Nonce)
	copy(data[SenderIndex:], m.Sender[:])
	copy(data[RecipientIndex:], m.Recipient[:])
	copy(data[DestinationCallerIndex:], m.DestinationCaller[:])
	copy(data[BodyIndex:], m.Body)
	return data
}
