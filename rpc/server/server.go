// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/ledgerd/counter"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/rpc/node"
	"github.com/bitmark-inc/ledgerd/rpc/transfer"
	"github.com/bitmark-inc/logger"
)

// Create - an rpc.Server with the Ledger and Node services registered
func Create(
	log *logger.L,
	version string,
	rpcCount *counter.Counter,
	l ledger.Ledger,
	policy ledger.KeyPolicy,
	statistics *ledger.Statistics,
) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(transfer.New(log, l))
	_ = server.Register(node.New(log, start, version, rpcCount, policy, statistics))

	return server
}
