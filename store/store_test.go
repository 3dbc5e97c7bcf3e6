// The Licensed Work is (c) 2024 Crossmesh
// SPDX-License-Identifier: LGPL-3.0-only

package store_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/crossmesh/spoke-relayer/chains/spoke/message"
	"github.com/crossmesh/spoke-relayer/store"
	mock_store "github.com/crossmesh/spoke-relayer/store/mock"
)

type SpokeStoreTestSuite struct {
	suite.Suite
	spokeStore           *store.SpokeStore
	keyValueReaderWriter *mock_store.MockKeyValueReaderWriter
}

func TestRunSpokeStoreTestSuite(t *testing.T) {
	suite.Run(t, new(SpokeStoreTestSuite))
}

func (s *SpokeStoreTestSuite) SetupTest() {
	gomockController := gomock.NewController(s.T())
	s.keyValueReaderWriter = mock_store.NewMockKeyValueReaderWriter(gomockController)
	s.spokeStore = store.NewSpokeStore(s.keyValueReaderWriter)
}

func (s *SpokeStoreTestSuite) Test_State_NotInitialized() {
	key := "domain:9:state"
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte(key)).Return(nil, leveldb.ErrNotFound)

	_, err := s.spokeStore.State(9)

	s.ErrorIs(err, store.ErrStateNotFound)
}

func (s *SpokeStoreTestSuite) Test_State_FailedFetch() {
	key := "domain:9:state"
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte(key)).Return(nil, errors.New("error"))

	_, err := s.spokeStore.State(9)

	s.NotNil(err)
}

func (s *SpokeStoreTestSuite) Test_State_SuccessfulFetch() {
	expected := &store.GlobalState{
		CrossDomainAdmin: message.Address{0x01},
		PausedDeposits:   true,
	}
	v, _ := json.Marshal(expected)
	key := "domain:9:state"
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte(key)).Return(v, nil)

	state, err := s.spokeStore.State(9)

	s.Nil(err)
	s.Equal(expected, state)
}

func (s *SpokeStoreTestSuite) Test_StoreState_FailedStore() {
	key := "domain:9:state"
	s.keyValueReaderWriter.EXPECT().SetByKey([]byte(key), gomock.Any()).Return(errors.New("error"))

	err := s.spokeStore.StoreState(9, &store.GlobalState{})

	s.NotNil(err)
}

func (s *SpokeStoreTestSuite) Test_StoreState_SuccessfulStore() {
	state := &store.GlobalState{PausedFills: true}
	v, _ := json.Marshal(state)
	key := "domain:9:state"
	s.keyValueReaderWriter.EXPECT().SetByKey([]byte(key), v).Return(nil)

	err := s.spokeStore.StoreState(9, state)

	s.Nil(err)
}

func (s *SpokeStoreTestSuite) Test_Route_NotFound() {
	token := message.Address{0x01}
	key := fmt.Sprintf("domain:9:route:originToken:%x:destinationChainId:137", token)
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte(key)).Return(nil, leveldb.ErrNotFound)

	_, err := s.spokeStore.Route(9, token, 137)

	s.ErrorIs(err, store.ErrRouteNotFound)
}

func (s *SpokeStoreTestSuite) Test_StoreRoute_RouteRoundTrip() {
	route := &store.Route{
		OriginToken:        message.Address{0x01},
		DestinationChainID: 137,
		Enabled:            true,
		Vault:              message.Address{0x02},
	}
	v, _ := json.Marshal(route)
	key := fmt.Sprintf("domain:9:route:originToken:%x:destinationChainId:137", route.OriginToken)
	s.keyValueReaderWriter.EXPECT().SetByKey([]byte(key), v).Return(nil)
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte(key)).Return(v, nil)

	err := s.spokeStore.StoreRoute(9, route)
	s.Nil(err)

	fetched, err := s.spokeStore.Route(9, route.OriginToken, route.DestinationChainID)
	s.Nil(err)
	s.Equal(route, fetched)
}
