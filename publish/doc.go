// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast ledger changes on a ZeroMQ PUB socket
//
// each message is three frames:
//
//   "ledger"            - topic
//   operation           - e.g. "createTransferRecord"
//   record              - canonical JSON of the stored record
//
// initLedger produces one message per seed record
package publish
