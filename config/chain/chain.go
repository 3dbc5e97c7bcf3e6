// The Licensed Work is (c) 2024 Crossmesh
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"fmt"
)

// GeneralChainConfig is the part of per-domain configuration shared by every
// chain type.
type GeneralChainConfig struct {
	Name string  `mapstructure:"name"`
	Id   *uint32 `mapstructure:"id"`
	Type string  `mapstructure:"type"`
}

func (c *GeneralChainConfig) Validate() error {
	// viper defaults to 0 for not specified ints, distinction of 0 and
	// not specified needs an Id pointer
	if c.Id == nil {
		return fmt.Errorf("required field domain.Id empty for chain %v", c.Id)
	}
	if c.Type == "" {
		return fmt.Errorf("required field chain.Type empty for chain %v", *c.Id)
	}
	if c.Name == "" {
		return fmt.Errorf("required field chain.Name empty for chain %v", *c.Id)
	}
	return nil
}

func (c *GeneralChainConfig) String() string {
	return fmt.Sprintf("%s:%d", c.Name, *c.Id)
}
