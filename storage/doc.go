// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk world state
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++           = concatenation of byte data
// 3. party        = utf-8 bytes of a party identifier
// 4. record       = packed transfer record (see transferrecord)
//
// World state:
//
//   S ++ party                 - latest record sent by party
//                                data: record
//   R ++ party                 - latest record received by party
//                                data: record
//
// Database:
//
//   0x00 ++ "VERSION"          - database version as big endian uint32
package storage
