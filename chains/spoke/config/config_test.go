// The Licensed Work is (c) 2024 Crossmesh
// SPDX-License-Identifier: LGPL-3.0-only

package config_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/crossmesh/spoke-relayer/chains/spoke/config"
	"github.com/crossmesh/spoke-relayer/chains/spoke/message"
	"github.com/crossmesh/spoke-relayer/config/chain"
)

const adminHex = "0x000000000000000000000000ff93b45308fd417df303d6515ab04d9e89a750ca"

type NewSpokeConfigTestSuite struct {
	suite.Suite
}

func TestRunNewSpokeConfigTestSuite(t *testing.T) {
	suite.Run(t, new(NewSpokeConfigTestSuite))
}

func (s *NewSpokeConfigTestSuite) Test_FailedDecode() {
	_, err := config.NewSpokeConfig(map[string]interface{}{
		"id": "invalid",
	})

	s.NotNil(err)
}

func (s *NewSpokeConfigTestSuite) Test_RequiredFields() {
	_, err := config.NewSpokeConfig(map[string]interface{}{
		"id":   1,
		"type": "spoke",
		"name": "spoke1",
	})

	s.NotNil(err)
}

func (s *NewSpokeConfigTestSuite) Test_InvalidAdminAddress() {
	_, err := config.NewSpokeConfig(map[string]interface{}{
		"id":               1,
		"type":             "spoke",
		"name":             "spoke1",
		"remoteDomain":     3,
		"crossDomainAdmin": "0x1234",
	})

	s.NotNil(err)
}

func (s *NewSpokeConfigTestSuite) Test_ValidConfig() {
	rawConfig := map[string]interface{}{
		"id":               1,
		"type":             "spoke",
		"name":             "spoke1",
		"remoteDomain":     3,
		"crossDomainAdmin": adminHex,
	}

	actualConfig, err := config.NewSpokeConfig(rawConfig)

	id := new(uint32)
	*id = 1
	admin, _ := message.AddressFromHex(adminHex)
	s.Nil(err)
	s.Equal(&config.SpokeConfig{
		GeneralChainConfig: chain.GeneralChainConfig{
			Name: "spoke1",
			Id:   id,
			Type: "spoke",
		},
		RemoteDomain:     3,
		CrossDomainAdmin: admin,
		VaultSeed:        []byte("spoke-vault"),
	}, actualConfig)
}

func (s *NewSpokeConfigTestSuite) Test_VaultSeedOverride() {
	rawConfig := map[string]interface{}{
		"id":               1,
		"type":             "spoke",
		"name":             "spoke1",
		"remoteDomain":     3,
		"crossDomainAdmin": adminHex,
		"vaultSeed":        "custom-seed",
	}

	actualConfig, err := config.NewSpokeConfig(rawConfig)

	s.Nil(err)
	s.Equal([]byte("custom-seed"), actualConfig.VaultSeed)
}
