// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - read cache in front of the database
//
// records are never deleted so only writes need to be tracked
// values are copied in and out so callers never share the cached slice
type Cache interface {
	Get(string) ([]byte, bool)
	Set(string, []byte)
	Clear()
}

const (
	defaultTimeout    = 1 * time.Minute
	defaultExpiration = 2 * time.Minute
)

type dbCache struct {
	cache *cache.Cache
}

func newCache() Cache {
	return &dbCache{
		cache: cache.New(defaultExpiration, defaultTimeout),
	}
}

func (c *dbCache) Get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	return duplicate(obj.([]byte)), true
}

func (c *dbCache) Set(key string, value []byte) {
	c.cache.Set(key, duplicate(value), cache.DefaultExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}

func duplicate(value []byte) []byte {
	d := make([]byte, len(value))
	copy(d, value)
	return d
}
