// The Licensed Work is (c) 2024 Crossmesh
// SPDX-License-Identifier: LGPL-3.0-only

package vault

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/crossmesh/spoke-relayer/chains/spoke/message"
)

// Provisioner creates the custody vault backing a route. Invoked once per
// route, on first enablement.
type Provisioner interface {
	ProvisionVault(originToken message.Address, destinationChainID uint64) (message.Address, error)
}

// DeterministicProvisioner derives vault addresses from the route key, so
// re-provisioning the same route always yields the same vault.
type DeterministicProvisioner struct {
	seed []byte
}

func NewDeterministicProvisioner(seed []byte) *DeterministicProvisioner {
	return &DeterministicProvisioner{
		seed: seed,
	}
}

func (p *DeterministicProvisioner) ProvisionVault(originToken message.Address, destinationChainID uint64) (message.Address, error) {
	chainID := make([]byte, 8)
	binary.BigEndian.PutUint64(chainID, destinationChainID)

	var vault message.Address
	copy(vault[:], crypto.Keccak256(p.seed, originToken[:], chainID))
	return vault, nil
}
