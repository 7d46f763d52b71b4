// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - transfer record operations over a world state
//
// The ledger never retries and never wraps a world state error; every
// failure reported by the store reaches the caller unchanged.
//
// Key policies:
//
//   shared   - one write per record, Sender pool keyed by from_pos;
//              both queries read the Sender pool
//   indexed  - Sender pool keyed by from_pos and Recipient pool keyed
//              by to_pos; the second write is not rolled back if the
//              first succeeded
package ledger
