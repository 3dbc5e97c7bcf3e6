// The Licensed Work is (c) 2024 Crossmesh
// SPDX-License-Identifier: LGPL-3.0-only

package executor

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/crossmesh/spoke-relayer/chains/spoke/handler"
	"github.com/crossmesh/spoke-relayer/chains/spoke/message"
	"github.com/crossmesh/spoke-relayer/chains/spoke/vault"
	"github.com/crossmesh/spoke-relayer/store"
)

var (
	ErrInvalidRemoteDomain      = errors.New("message source domain does not match expected remote domain")
	ErrInvalidDestinationDomain = errors.New("message destination domain does not match local domain")
	ErrInvalidRemoteSender      = errors.New("message sender is not the cross-domain admin")
	ErrUnauthorized             = errors.New("dispatch invoked without self-authorization proof")
)

type StateStorer interface {
	State(domainID uint32) (*store.GlobalState, error)
	StoreState(domainID uint32, state *store.GlobalState) error
	Route(domainID uint32, originToken message.Address, destinationChainID uint64) (*store.Route, error)
	StoreRoute(domainID uint32, route *store.Route) error
}

type authorityProof struct{}

// Authority proves that Dispatch was re-entered from inside the
// authenticated receive path. A valid proof is mintable only within this
// package; the zero Authority, the only value constructible elsewhere,
// is rejected with ErrUnauthorized.
type Authority struct {
	proof *authorityProof
}

// Executor is the receiving endpoint of the admin channel. Receive is its
// only public entry and holds no mutating authority of its own: once a
// message authenticates, it re-enters Dispatch under a self-produced
// Authority.
type Executor struct {
	log          zerolog.Logger
	stateStore   StateStorer
	provisioner  vault.Provisioner
	localDomain  uint32
	remoteDomain uint32
}

func NewExecutor(
	logC zerolog.Context,
	stateStore StateStorer,
	provisioner vault.Provisioner,
	localDomain uint32,
	remoteDomain uint32,
) *Executor {
	return &Executor{
		log:          logC.Logger(),
		stateStore:   stateStore,
		provisioner:  provisioner,
		localDomain:  localDomain,
		remoteDomain: remoteDomain,
	}
}

// Receive processes one attested admin message to completion: authenticate,
// decode, dispatch. Any failure aborts the whole message with zero state
// mutation; the transport acknowledges the nonce only on success.
func (e *Executor) Receive(m *message.Message) error {
	err := e.authenticate(m)
	if err != nil {
		return err
	}

	cmd, err := handler.DecodeCommand(m.Body)
	if err != nil {
		return err
	}

	return e.Dispatch(e.selfAuthorize(), cmd)
}

// authenticate verifies the envelope's origin against the local trust
// anchors. The cross-domain admin is read live from the store so an admin
// rotation takes effect for the very next message.
func (e *Executor) authenticate(m *message.Message) error {
	if m.SourceDomain != e.remoteDomain {
		return ErrInvalidRemoteDomain
	}
	// Also verified by the transport before delivery.
	if m.DestinationDomain != e.localDomain {
		return ErrInvalidDestinationDomain
	}

	state, err := e.stateStore.State(e.localDomain)
	if err != nil {
		return err
	}
	if m.Sender != state.CrossDomainAdmin {
		return ErrInvalidRemoteSender
	}
	return nil
}

func (e *Executor) selfAuthorize() Authority {
	return Authority{proof: &authorityProof{}}
}

// Dispatch applies a decoded command to persistent state. It fails with
// ErrUnauthorized unless invoked with a proof minted by the receive path.
func (e *Executor) Dispatch(auth Authority, cmd handler.Command) error {
	if auth.proof == nil {
		return ErrUnauthorized
	}

	switch c := cmd.(type) {
	case handler.PauseDeposits:
		return e.pauseDeposits(c.Paused)
	case handler.PauseFills:
		return e.pauseFills(c.Paused)
	case handler.SetCrossDomainAdmin:
		return e.setCrossDomainAdmin(c.Admin)
	case handler.SetEnableRoute:
		return e.setEnableRoute(c.OriginToken, c.DestinationChainID, c.Enabled)
	default:
		return handler.ErrUnsupportedCommand
	}
}

func (e *Executor) pauseDeposits(paused bool) error {
	state, err := e.stateStore.State(e.localDomain)
	if err != nil {
		return err
	}

	state.PausedDeposits = paused
	err = e.stateStore.StoreState(e.localDomain, state)
	if err != nil {
		return err
	}

	e.log.Info().Bool("paused", paused).Msg("Updated deposit pause flag")
	return nil
}

func (e *Executor) pauseFills(paused bool) error {
	state, err := e.stateStore.State(e.localDomain)
	if err != nil {
		return err
	}

	state.PausedFills = paused
	err = e.stateStore.StoreState(e.localDomain, state)
	if err != nil {
		return err
	}

	e.log.Info().Bool("paused", paused).Msg("Updated fill pause flag")
	return nil
}

func (e *Executor) setCrossDomainAdmin(admin message.Address) error {
	state, err := e.stateStore.State(e.localDomain)
	if err != nil {
		return err
	}

	state.CrossDomainAdmin = admin
	err = e.stateStore.StoreState(e.localDomain, state)
	if err != nil {
		return err
	}

	// Every subsequent message authenticates against the new admin. A
	// wrong address locks this channel out permanently.
	e.log.Info().Str("admin", admin.String()).Msg("Rotated cross-domain admin")
	return nil
}

func (e *Executor) setEnableRoute(originToken message.Address, destinationChainID uint64, enabled bool) error {
	route, err := e.stateStore.Route(e.localDomain, originToken, destinationChainID)
	if err != nil {
		if !errors.Is(err, store.ErrRouteNotFound) {
			return err
		}

		vaultAddress, err := e.provisioner.ProvisionVault(originToken, destinationChainID)
		if err != nil {
			return err
		}
		route = &store.Route{
			OriginToken:        originToken,
			DestinationChainID: destinationChainID,
			Vault:              vaultAddress,
		}
	}

	route.Enabled = enabled
	err = e.stateStore.StoreRoute(e.localDomain, route)
	if err != nil {
		return err
	}

	e.log.Info().
		Str("originToken", originToken.String()).
		Uint64("destinationChainId", destinationChainID).
		Bool("enabled", enabled).
		Msg("Updated route")
	return nil
}
