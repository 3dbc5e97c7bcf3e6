// The Licensed Work is (c) 2024 Crossmesh
// SPDX-License-Identifier: LGPL-3.0-only

package spoke

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/crossmesh/spoke-relayer/chains/spoke/executor"
	"github.com/crossmesh/spoke-relayer/chains/spoke/listener"
	"github.com/crossmesh/spoke-relayer/chains/spoke/message"
	"github.com/crossmesh/spoke-relayer/store"
)

// SpokeChain is the admin control channel endpoint for one local domain.
type SpokeChain struct {
	handler  *listener.AdminMessageHandler
	domainID uint32
}

func NewSpokeChain(handler *listener.AdminMessageHandler, domainID uint32) *SpokeChain {
	return &SpokeChain{
		handler:  handler,
		domainID: domainID,
	}
}

func (c *SpokeChain) DomainID() uint32 {
	return c.domainID
}

// Listen blocks processing inbound admin messages until ctx is canceled.
func (c *SpokeChain) Listen(ctx context.Context) {
	log.Info().Uint32("domainID", c.domainID).Msg("Listening for admin messages")
	c.handler.Listen(ctx)
}

// InitializeState seeds the singleton spoke state on first startup. An
// existing state is never overwritten; after that the admin is changed only
// through a setCrossDomainAdmin command.
func InitializeState(stateStore executor.StateStorer, domainID uint32, crossDomainAdmin message.Address) error {
	_, err := stateStore.State(domainID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrStateNotFound) {
		return err
	}

	log.Info().Uint32("domainID", domainID).Str("admin", crossDomainAdmin.String()).Msg("Initializing spoke state")
	return stateStore.StoreState(domainID, &store.GlobalState{
		CrossDomainAdmin: crossDomainAdmin,
	})
}
