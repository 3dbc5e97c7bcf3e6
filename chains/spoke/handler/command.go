// The Licensed Work is (c) 2024 Crossmesh
// SPDX-License-Identifier: LGPL-3.0-only

package handler

import (
	"github.com/crossmesh/spoke-relayer/chains/spoke/message"
)

// Command is the closed set of admin commands the remote admin can issue.
// Dispatch is an exhaustive type switch over these variants.
type Command interface {
	isCommand()
}

type PauseDeposits struct {
	Paused bool
}

type PauseFills struct {
	Paused bool
}

type SetCrossDomainAdmin struct {
	Admin message.Address
}

type SetEnableRoute struct {
	OriginToken        message.Address
	DestinationChainID uint64
	Enabled            bool
}

func (PauseDeposits) isCommand()       {}
func (PauseFills) isCommand()          {}
func (SetCrossDomainAdmin) isCommand() {}
func (SetEnableRoute) isCommand()      {}
