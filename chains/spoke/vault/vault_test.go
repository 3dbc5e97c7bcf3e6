// The Licensed Work is (c) 2024 Crossmesh
// SPDX-License-Identifier: LGPL-3.0-only

package vault_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/crossmesh/spoke-relayer/chains/spoke/message"
	"github.com/crossmesh/spoke-relayer/chains/spoke/vault"
)

type DeterministicProvisionerTestSuite struct {
	suite.Suite
	provisioner *vault.DeterministicProvisioner
}

func TestRunDeterministicProvisionerTestSuite(t *testing.T) {
	suite.Run(t, new(DeterministicProvisionerTestSuite))
}

func (s *DeterministicProvisionerTestSuite) SetupTest() {
	s.provisioner = vault.NewDeterministicProvisioner([]byte("test-vault"))
}

func (s *DeterministicProvisionerTestSuite) Test_ProvisionVault_Deterministic() {
	token := message.Address{0x01}

	first, err := s.provisioner.ProvisionVault(token, 137)
	s.Nil(err)
	second, err := s.provisioner.ProvisionVault(token, 137)
	s.Nil(err)

	s.Equal(first, second)
	s.NotEqual(message.ZeroAddress, first)
}

func (s *DeterministicProvisionerTestSuite) Test_ProvisionVault_DistinctPerRouteKey() {
	token := message.Address{0x01}
	otherToken := message.Address{0x02}

	a, err := s.provisioner.ProvisionVault(token, 137)
	s.Nil(err)
	b, err := s.provisioner.ProvisionVault(otherToken, 137)
	s.Nil(err)
	c, err := s.provisioner.ProvisionVault(token, 138)
	s.Nil(err)

	s.NotEqual(a, b)
	s.NotEqual(a, c)
	s.NotEqual(b, c)
}
