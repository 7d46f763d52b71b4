// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring ledgerd services
//
// standard golang RPC services can be used on the client side to
// access these services
//
// services:
//
//   Ledger.Init         - write the seed records
//   Ledger.Create       - store a transfer record
//   Ledger.QueryByFrom  - fetch a record by sending party
//   Ledger.QueryByTo    - fetch a record by receiving party
//   Ledger.Invoke       - run an operation by name
//   Node.Info           - version, uptime and operation counts
package rpc
