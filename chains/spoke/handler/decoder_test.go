// The Licensed Work is (c) 2024 Crossmesh
// SPDX-License-Identifier: LGPL-3.0-only

package handler_test

import (
	"encoding/binary"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/crossmesh/spoke-relayer/chains/spoke/handler"
	"github.com/crossmesh/spoke-relayer/chains/spoke/message"
)

func commandBody(sig handler.CommandSig, words ...[32]byte) []byte {
	selector := sig.Selector()
	body := selector[:]
	for _, w := range words {
		body = append(body, w[:]...)
	}
	return body
}

func boolWord(v bool) [32]byte {
	var w [32]byte
	if v {
		w[31] = 1
	}
	return w
}

func uint64Word(v uint64) [32]byte {
	var w [32]byte
	binary.BigEndian.PutUint64(w[24:], v)
	return w
}

type DecoderTestSuite struct {
	suite.Suite
}

func TestRunDecoderTestSuite(t *testing.T) {
	suite.Run(t, new(DecoderTestSuite))
}

func (s *DecoderTestSuite) Test_DecodeCommand_BodyShorterThanSelector() {
	_, err := handler.DecodeCommand([]byte{0x01, 0x02})

	s.ErrorIs(err, handler.ErrMalformedBody)
}

func (s *DecoderTestSuite) Test_DecodeCommand_UnknownSelector() {
	_, err := handler.DecodeCommand([]byte{0x01, 0x02, 0x03, 0x04})

	s.ErrorIs(err, handler.ErrUnsupportedCommand)
}

func (s *DecoderTestSuite) Test_DecodeCommand_PauseDeposits() {
	cmd, err := handler.DecodeCommand(commandBody(handler.PauseDepositsSig, boolWord(true)))

	s.Nil(err)
	s.Equal(handler.PauseDeposits{Paused: true}, cmd)
}

func (s *DecoderTestSuite) Test_DecodeCommand_PauseFills() {
	cmd, err := handler.DecodeCommand(commandBody(handler.PauseFillsSig, boolWord(false)))

	s.Nil(err)
	s.Equal(handler.PauseFills{Paused: false}, cmd)
}

func (s *DecoderTestSuite) Test_DecodeCommand_PauseDeposits_MissingArgument() {
	_, err := handler.DecodeCommand(commandBody(handler.PauseDepositsSig))

	s.ErrorIs(err, handler.ErrMalformedBody)
}

func (s *DecoderTestSuite) Test_DecodeCommand_PauseDeposits_NonCanonicalBool() {
	w := boolWord(true)
	w[31] = 2

	_, err := handler.DecodeCommand(commandBody(handler.PauseDepositsSig, w))

	s.ErrorIs(err, handler.ErrMalformedBody)
}

func (s *DecoderTestSuite) Test_DecodeCommand_PauseDeposits_DirtyBoolPadding() {
	w := boolWord(true)
	w[0] = 1

	_, err := handler.DecodeCommand(commandBody(handler.PauseDepositsSig, w))

	s.ErrorIs(err, handler.ErrMalformedBody)
}

func (s *DecoderTestSuite) Test_DecodeCommand_SetCrossDomainAdmin() {
	evmAdmin := common.HexToAddress("0xff93B45308FD417dF303D6515aB04D9e89a750Ca")
	var w [32]byte
	copy(w[12:], evmAdmin.Bytes())

	cmd, err := handler.DecodeCommand(commandBody(handler.SetCrossDomainAdminSig, w))

	s.Nil(err)
	s.Equal(handler.SetCrossDomainAdmin{Admin: message.AddressFromEVM(evmAdmin)}, cmd)
}

func (s *DecoderTestSuite) Test_DecodeCommand_SetCrossDomainAdmin_DirtyPadding() {
	var w [32]byte
	w[0] = 1
	copy(w[12:], common.HexToAddress("0xff93B45308FD417dF303D6515aB04D9e89a750Ca").Bytes())

	_, err := handler.DecodeCommand(commandBody(handler.SetCrossDomainAdminSig, w))

	s.ErrorIs(err, handler.ErrMalformedBody)
}

func (s *DecoderTestSuite) Test_DecodeCommand_SetEnableRoute() {
	token := [32]byte{0x01, 0x02, 0x03}

	cmd, err := handler.DecodeCommand(commandBody(
		handler.SetEnableRouteSig,
		token,
		uint64Word(137),
		boolWord(true),
	))

	s.Nil(err)
	s.Equal(handler.SetEnableRoute{
		OriginToken:        message.Address(token),
		DestinationChainID: 137,
		Enabled:            true,
	}, cmd)
}

func (s *DecoderTestSuite) Test_DecodeCommand_SetEnableRoute_ChainIdOverflowsUint64() {
	w := uint64Word(137)
	w[0] = 1

	_, err := handler.DecodeCommand(commandBody(
		handler.SetEnableRouteSig,
		[32]byte{0x01},
		w,
		boolWord(true),
	))

	s.ErrorIs(err, handler.ErrMalformedBody)
}

func (s *DecoderTestSuite) Test_DecodeCommand_SetEnableRoute_TruncatedArguments() {
	_, err := handler.DecodeCommand(commandBody(
		handler.SetEnableRouteSig,
		[32]byte{0x01},
		uint64Word(137),
	))

	s.ErrorIs(err, handler.ErrMalformedBody)
}
