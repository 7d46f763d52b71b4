// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transferrecord - the transfer record and its stored form
//
// A packed record is:
//
//   Varint64(tag) ++ JSON body
//
// The tag selects the body layout; the JSON body is field-name
// tagged so fields can be added without breaking older readers.
// Unknown JSON fields are ignored on unpack.
//
// Body fields:
//
//   docType        - always "ledger"
//   from_pos       - sending party
//   to_pos         - receiving party
//   amount         - decimal quantity kept as text
//   transfer_time  - epoch seconds kept as text
//                    (older records may carry "time" instead)
package transferrecord
