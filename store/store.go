// The Licensed Work is (c) 2024 Crossmesh
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/crossmesh/spoke-relayer/chains/spoke/message"
)

var (
	stateKey = "domain:%d:state"
	routeKey = "domain:%d:route:originToken:%x:destinationChainId:%d"

	ErrStateNotFound = errors.New("spoke state not initialized")
	ErrRouteNotFound = errors.New("route not found")
)

type KeyValueReaderWriter interface {
	GetByKey(key []byte) ([]byte, error)
	SetByKey(key []byte, value []byte) error
}

// GlobalState is the singleton admin state of one spoke deployment. It is
// created once on startup and afterwards mutated exclusively by the
// executor.
type GlobalState struct {
	CrossDomainAdmin message.Address
	PausedDeposits   bool
	PausedFills      bool
}

// Route is a configured (origin token, destination chain) pairing. Its
// identity is fully determined by the key, so repeated enable/disable calls
// never create duplicates. The custody vault is provisioned on creation and
// kept for the lifetime of the route.
type Route struct {
	OriginToken        message.Address
	DestinationChainID uint64
	Enabled            bool
	Vault              message.Address
}

// SpokeStore persists spoke state per local domain. Every mutation is a
// single key write, so one admin command either fully applies or not at all.
type SpokeStore struct {
	db KeyValueReaderWriter
}

func NewSpokeStore(db KeyValueReaderWriter) *SpokeStore {
	return &SpokeStore{
		db: db,
	}
}

func (s *SpokeStore) State(domainID uint32) (*GlobalState, error) {
	key := fmt.Sprintf(stateKey, domainID)
	v, err := s.db.GetByKey([]byte(key))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrStateNotFound
		}
		return nil, err
	}

	state := &GlobalState{}
	err = json.Unmarshal(v, state)
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (s *SpokeStore) StoreState(domainID uint32, state *GlobalState) error {
	key := fmt.Sprintf(stateKey, domainID)
	v, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return s.db.SetByKey([]byte(key), v)
}

func (s *SpokeStore) Route(domainID uint32, originToken message.Address, destinationChainID uint64) (*Route, error) {
	key := fmt.Sprintf(routeKey, domainID, originToken, destinationChainID)
	v, err := s.db.GetByKey([]byte(key))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}

	route := &Route{}
	err = json.Unmarshal(v, route)
	if err != nil {
		return nil, err
	}
	return route, nil
}

func (s *SpokeStore) StoreRoute(domainID uint32, route *Route) error {
	key := fmt.Sprintf(routeKey, domainID, route.OriginToken, route.DestinationChainID)
	v, err := json.Marshal(route)
	if err != nil {
		return err
	}

	return s.db.SetByKey([]byte(key), v)
}
