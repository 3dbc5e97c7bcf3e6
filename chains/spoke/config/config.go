// The Licensed Work is (c) 2024 Crossmesh
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/mitchellh/mapstructure"

	"github.com/crossmesh/spoke-relayer/chains/spoke/message"
	"github.com/crossmesh/spoke-relayer/config/chain"
)

type RawSpokeConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`
	RemoteDomain             *uint32 `mapstructure:"remoteDomain"`
	CrossDomainAdmin         string  `mapstructure:"crossDomainAdmin"`
	VaultSeed                string  `mapstructure:"vaultSeed" default:"spoke-vault"`
}

func (c *RawSpokeConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}

	if c.RemoteDomain == nil {
		return fmt.Errorf("required field chain.RemoteDomain empty for chain %v", *c.Id)
	}

	if c.CrossDomainAdmin == "" {
		return fmt.Errorf("required field chain.CrossDomainAdmin empty for chain %v", *c.Id)
	}
	return nil
}

type SpokeConfig struct {
	GeneralChainConfig chain.GeneralChainConfig
	RemoteDomain       uint32
	CrossDomainAdmin   message.Address
	VaultSeed          []byte
}

// NewSpokeConfig decodes and validates an instance of a SpokeConfig from
// raw chain config
func NewSpokeConfig(chainConfig map[string]interface{}) (*SpokeConfig, error) {
	var c RawSpokeConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	admin, err := message.AddressFromHex(c.CrossDomainAdmin)
	if err != nil {
		return nil, fmt.Errorf("invalid crossDomainAdmin for chain %v: %w", *c.Id, err)
	}

	config := &SpokeConfig{
		GeneralChainConfig: c.GeneralChainConfig,
		RemoteDomain:       *c.RemoteDomain,
		CrossDomainAdmin:   admin,
		VaultSeed:          []byte(c.VaultSeed),
	}

	return config, nil
}
