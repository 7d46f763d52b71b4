// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/ledgerd/fault"
)

// PoolHandle - a prefixed key space within the database
type PoolHandle struct {
	prefix byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair to the database
//
// the database write and the cache update happen under the write lock
// so that readers always see the last acknowledged value
// any database error is returned as is
func (p *PoolHandle) Put(key []byte, value []byte) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.database {
		return fault.NotInitialised
	}

	prefixedKey := p.prefixKey(key)
	err := poolData.database.Put(prefixedKey, value, nil)
	if nil != err {
		return err
	}

	poolData.cache.Set(string(prefixedKey), value)

	return nil
}

// Get - read a value for a given key
//
// returns nil, nil if the key is absent
func (p *PoolHandle) Get(key []byte) ([]byte, error) {
	prefixedKey := p.prefixKey(key)

	poolData.RLock()
	if nil == poolData.database {
		poolData.RUnlock()
		return nil, fault.NotInitialised
	}
	value, found := poolData.cache.Get(string(prefixedKey))
	poolData.RUnlock()

	if found {
		return value, nil
	}

	return p.fill(prefixedKey)
}

// read through to the database on a cache miss
//
// holds the write lock so a concurrent Put cannot be replaced by an
// older database value
func (p *PoolHandle) fill(prefixedKey []byte) ([]byte, error) {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.database {
		return nil, fault.NotInitialised
	}

	if value, found := poolData.cache.Get(string(prefixedKey)); found {
		return value, nil
	}

	value, err := poolData.database.Get(prefixedKey, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	} else if nil != err {
		return nil, err
	}

	poolData.cache.Set(string(prefixedKey), value)
	return value, nil
}

// Prefix - the single byte that begins every key of this pool
func (p *PoolHandle) Prefix() byte {
	return p.prefix
}
