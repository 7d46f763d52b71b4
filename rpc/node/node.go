// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ledgerd/counter"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log        *logger.L
	Limiter    *rate.Limiter
	Start      time.Time
	Version    string
	Policy     ledger.KeyPolicy
	Statistics *ledger.Statistics
	counter    *counter.Counter
}

// New - create the node RPC handler
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, policy ledger.KeyPolicy, statistics *ledger.Statistics) *Node {
	return &Node{
		Log:        log,
		Limiter:    ratelimit.New(rateLimitNode, rateBurstNode),
		Start:      start,
		Version:    version,
		Policy:     policy,
		Statistics: statistics,
		counter:    counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version    string                   `json:"version"`
	Uptime     string                   `json:"uptime"`
	RPCs       uint64                   `json:"rpcs"`
	KeyPolicy  string                   `json:"keyPolicy"`
	Operations map[string]ledger.Counts `json:"operations"`
}

// Info - return some information about this node
// for more detail information use HTTP GET requests
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Statistics {
		return fault.NotInitialised
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.KeyPolicy = node.Policy.String()
	reply.Operations = node.Statistics.Snapshot()

	return nil
}
