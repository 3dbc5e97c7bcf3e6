// The Licensed Work is (c) 2024 Crossmesh
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
)

type NonceStatus string

var (
	nonceKey = "source:%d:nonce:%d"

	MissingNonce  NonceStatus = "missing"
	ConsumedNonce NonceStatus = "consumed"
)

// NonceStore is the transport's replay bookkeeping: one record per
// (sourceDomain, nonce) pair that fully dispatched.
type NonceStore struct {
	db KeyValueReaderWriter
}

func NewNonceStore(db KeyValueReaderWriter) *NonceStore {
	return &NonceStore{
		db: db,
	}
}

func (ns *NonceStore) MarkNonceConsumed(sourceDomain uint32, nonce uint64) error {
	key := fmt.Sprintf(nonceKey, sourceDomain, nonce)
	return ns.db.SetByKey([]byte(key), []byte(ConsumedNonce))
}

func (ns *NonceStore) NonceStatus(sourceDomain uint32, nonce uint64) (NonceStatus, error) {
	key := fmt.Sprintf(nonceKey, sourceDomain, nonce)
	v, err := ns.db.GetByKey([]byte(key))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return MissingNonce, nil
		}
		return MissingNonce, err
	}

	return NonceStatus(v), nil
}
