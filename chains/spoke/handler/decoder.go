// The Licensed Work is (c) 2024 Crossmesh
// SPDX-License-Identifier: LGPL-3.0-only

package handler

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/crossmesh/spoke-relayer/chains/spoke/message"
)

var (
	ErrMalformedBody      = errors.New("malformed command body")
	ErrUnsupportedCommand = errors.New("unsupported command selector")
)

type CommandSig string

const (
	PauseDepositsSig       CommandSig = "pauseDeposits(bool)"
	PauseFillsSig          CommandSig = "pauseFills(bool)"
	SetCrossDomainAdminSig CommandSig = "setCrossDomainAdmin(address)"
	SetEnableRouteSig      CommandSig = "setEnableRoute(bytes32,uint64,bool)"
)

const (
	selectorLen = 4
	wordLen     = 32
)

// Selector returns the 4-byte selector of the command under the remote
// chain's contract-call convention.
func (cs CommandSig) Selector() [4]byte {
	var s [4]byte
	copy(s[:], crypto.Keccak256([]byte(cs)))
	return s
}

// DecodeCommand interprets an envelope body as one of the known admin
// commands. The body is a 4-byte selector followed by the command's
// arguments, each occupying a full 32-byte word.
func DecodeCommand(body []byte) (Command, error) {
	if len(body) < selectorLen {
		return nil, ErrMalformedBody
	}
	var selector [4]byte
	copy(selector[:], body)
	args := body[selectorLen:]

	switch selector {
	case PauseDepositsSig.Selector():
		paused, err := decodeBool(args, 0)
		if err != nil {
			return nil, err
		}
		return PauseDeposits{Paused: paused}, nil
	case PauseFillsSig.Selector():
		paused, err := decodeBool(args, 0)
		if err != nil {
			return nil, err
		}
		return PauseFills{Paused: paused}, nil
	case SetCrossDomainAdminSig.Selector():
		admin, err := decodeAddress(args, 0)
		if err != nil {
			return nil, err
		}
		return SetCrossDomainAdmin{Admin: admin}, nil
	case SetEnableRouteSig.Selector():
		token, err := decodeWord(args, 0)
		if err != nil {
			return nil, err
		}
		chainID, err := decodeUint64(args, 1)
		if err != nil {
			return nil, err
		}
		enabled, err := decodeBool(args, 2)
		if err != nil {
			return nil, err
		}
		return SetEnableRoute{
			OriginToken:        message.Address(token),
			DestinationChainID: chainID,
			Enabled:            enabled,
		}, nil
	default:
		return nil, ErrUnsupportedCommand
	}
}

func word(args []byte, index int) ([]byte, error) {
	start := index * wordLen
	if len(args) < start+wordLen {
		return nil, ErrMalformedBody
	}
	return args[start : start+wordLen], nil
}

func decodeWord(args []byte, index int) ([32]byte, error) {
	var w [32]byte
	b, err := word(args, index)
	if err != nil {
		return w, err
	}
	copy(w[:], b)
	return w, nil
}

// decodeBool accepts only canonical encodings: a zero word or a word whose
// final byte is one.
func decodeBool(args []byte, index int) (bool, error) {
	w, err := word(args, index)
	if err != nil {
		return false, err
	}
	if !bytes.Equal(w[:wordLen-1], make([]byte, wordLen-1)) {
		return false, ErrMalformedBody
	}
	switch w[wordLen-1] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrMalformedBody
	}
}

func decodeUint64(args []byte, index int) (uint64, error) {
	w, err := word(args, index)
	if err != nil {
		return 0, err
	}
	if !bytes.Equal(w[:wordLen-8], make([]byte, wordLen-8)) {
		return 0, ErrMalformedBody
	}
	return binary.BigEndian.Uint64(w[wordLen-8:]), nil
}

// decodeAddress reads a foreign 20-byte address word and maps it into the
// local 32-byte address space, keeping the foreign bytes at the low-order
// end. The 12 high-order padding bytes must be zero.
func decodeAddress(args []byte, index int) (message.Address, error) {
	var a message.Address
	w, err := word(args, index)
	if err != nil {
		return a, err
	}
	if !bytes.Equal(w[:12], make([]byte, 12)) {
		return a, ErrMalformedBody
	}
	copy(a[:], w)
	return a, nil
}
